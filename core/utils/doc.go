// Package utils provides common helpers shared by the features: loose-value conversion for
// statement documents (numbers that arrive as strings, separators, json.Number) and
// request validation built on go-playground/validator.
package utils
