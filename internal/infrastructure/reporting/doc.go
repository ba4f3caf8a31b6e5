// Package reporting renders report tables as PDF or Excel documents and equipment labels as QR codes.
package reporting
