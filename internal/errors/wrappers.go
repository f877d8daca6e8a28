package errors

import "fmt"

// Common error wrapping patterns used throughout the codebase

// WrapTemplateError wraps template processing errors
func WrapTemplateError(templateName, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s template '%s'", operation, templateName)
	return Wrap(TemplateErrorCode, message, cause).
		WithContext("template", templateName).
		WithContext("operation", operation)
}

// WrapGenerateError wraps an error with a "failed to generate" message
func WrapGenerateError(item string, cause error) *BaseError {
	return Wrap(GenerationErrorCode, fmt.Sprintf("failed to generate %s", item), cause)
}

// WrapConfigurationError wraps configuration-related errors
func WrapConfigurationError(key, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s configuration '%s'", operation, key)
	return Wrap(ConfigurationErrorCode, message, cause).
		WithContext("key", key).
		WithContext("operation", operation)
}

// InvalidSetting creates a configuration error for a value outside its allowed set
func InvalidSetting(key string, value interface{}, allowed ...string) *BaseError {
	err := Newf(ConfigurationErrorCode, "invalid %s %v", key, value).
		WithContext("key", key).
		WithContext("value", value)
	if len(allowed) > 0 {
		err.WithSuggestion(fmt.Sprintf("Use one of: %v", allowed))
	}
	return err
}

// InputError creates an error for unusable caller input
func InputError(message string, suggestions ...string) *BaseError {
	err := New(InputErrorCode, message)
	err.Hints = append(err.Hints, suggestions...)
	return err
}
