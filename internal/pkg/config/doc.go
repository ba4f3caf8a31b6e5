// Package config loads and validates the service configuration.
//
// Settings come from a YAML file, an optional .env file and CALTRACK_* environment
// variables. Each section (logger, database, storage, auth, scheduler, broker) has its
// own struct with validator tags and a Validate method.
package config
