// Package calibration holds the scheduling rules shared by the equipment registry,
// the calibration card history and the instrument loan guard.
//
// It parses calibration frequencies such as "12 Week", derives the next due date
// from a calibration date, classifies due dates into expired, near-expiry and active
// buckets and filters records by a reporting period of one year and a month range.
package calibration
