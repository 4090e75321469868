package service

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("goal_category", func(fl validator.FieldLevel) bool {
			_, ok := ParseCategory(fl.Field().String())
			return ok
		})
		validate.RegisterValidation("goal_frequency", func(fl validator.FieldLevel) bool {
			_, ok := ParseFrequency(fl.Field().String())
			return ok
		})
	})
}

// ParseCategory matches a category name case-insensitively.
func ParseCategory(s string) (entity.Category, bool) {
	c := entity.Category(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range entity.Categories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

func ParseFrequency(s string) (entity.Frequency, bool) {
	f := entity.Frequency(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range entity.Frequencies {
		if f == known {
			return f, true
		}
	}
	return "", false
}

// validateStruct reports failed fields joined with ErrInvalidInput.
func validateStruct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		joined := errorvalues.ErrInvalidInput
		for _, fieldErr := range validationErrors {
			joined = errors.Join(joined, fieldErr)
		}
		return joined
	}
	return errors.New("validation unexpected error: " + err.Error())
}

func errInvalidBlank(field string) error {
	return errors.Join(errorvalues.ErrInvalidInput, errors.New(field+" is blank"))
}
