// Package auth signs HMAC bearer tokens and hashes account passwords.
package auth
