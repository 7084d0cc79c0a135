package harvest

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator returns the package validator instance
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// validateStruct validates a struct using its tags
func validateStruct(s interface{}) error {
	return getValidator().Struct(s)
}
