// Package validation wraps go-playground/validator for order records.
package validation

import "github.com/go-playground/validator/v10"

// New returns a validator configured for this service's models.
func New() *validator.Validate {
	return validator.New()
}
