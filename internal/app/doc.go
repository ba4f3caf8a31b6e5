// Package app implements the application services on top of the domain repositories.
// Services validate input, apply the calibration rules and translate repository
// results into the apperr kinds the REST layer maps to status codes.
package app
