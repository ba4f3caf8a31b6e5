// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer for the equipment registry, calibration cards,
// instrument loans, non-conformance reports and accounts. Deletes are soft:
// rows keep their data and get the deleted flag set, and every read excludes them.
package persistence
