// Package sanitizer provides input normalization functions applied before
// validation and storage.
//
// All functions are idempotent - applying them multiple times produces the
// same result. Invalid input is handled gracefully, typically by returning
// empty strings or empty slices rather than errors.
//
// Normalization includes:
//   - Strings: collapse whitespace, trim leading/trailing spaces
//   - Equipment tags: lowercase, remove special characters, dedupe
package sanitizer
