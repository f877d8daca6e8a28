package utils

import (
	"fmt"
	"go/token"
	"strings"
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Validator represents a validation function
type Validator[T any] func(T) error

// ValidatorChain runs validators in order and stops at the first failure
type ValidatorChain[T any] struct {
	validators []Validator[T]
}

// NewValidatorChain creates a new validator chain
func NewValidatorChain[T any](validators ...Validator[T]) *ValidatorChain[T] {
	return &ValidatorChain[T]{validators: validators}
}

// Validate runs all validators in the chain
func (vc *ValidatorChain[T]) Validate(value T) error {
	for _, validator := range vc.validators {
		if err := validator(value); err != nil {
			return err
		}
	}
	return nil
}

// NotEmpty validates that a string is not empty
func NotEmpty(field string) Validator[string] {
	return func(value string) error {
		if value == "" {
			return ValidationError{Field: field, Value: value, Message: "cannot be empty"}
		}
		return nil
	}
}

// IsValidGoIdentifier validates that a string is a valid Go identifier
func IsValidGoIdentifier(field string) Validator[string] {
	return func(value string) error {
		if !token.IsIdentifier(value) {
			return ValidationError{Field: field, Value: value, Message: "must be a valid Go identifier"}
		}
		return nil
	}
}

// IsOneOf validates that a value is one of the allowed values
func IsOneOf[T comparable](field string, allowed ...T) Validator[T] {
	return func(value T) error {
		for _, allowedValue := range allowed {
			if value == allowedValue {
				return nil
			}
		}
		return ValidationError{
			Field:   field,
			Value:   value,
			Message: fmt.Sprintf("must be one of: %v", allowed),
		}
	}
}

// Custom creates a validator from a predicate
func Custom[T any](field string, message string, validatorFunc func(T) bool) Validator[T] {
	return func(value T) error {
		if !validatorFunc(value) {
			return ValidationError{Field: field, Value: value, Message: message}
		}
		return nil
	}
}

// ValidateGoPackage validates the package clause used for emitted Go mocks
func ValidateGoPackage(field string) Validator[string] {
	return NewValidatorChain(
		NotEmpty(field),
		IsValidGoIdentifier(field),
		Custom(field, "must not be the blank identifier", func(s string) bool { return s != "_" }),
		Custom(field, "must be lower case", func(s string) bool { return s == strings.ToLower(s) }),
	).Validate
}
