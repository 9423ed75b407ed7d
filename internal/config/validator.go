package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	// Register custom validation for backoff algorithm names
	_ = validate.RegisterValidation("algorithm", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case AlgorithmConstant, AlgorithmExponential, AlgorithmFibonacci,
			AlgorithmLILD, AlgorithmLIMD, AlgorithmMILD, AlgorithmMIMD:
			return true
		}
		return false
	})

	// Register custom validation for zerolog level names
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "trace", "debug", "info", "warn", "error", "fatal", "panic":
			return true
		}
		return false
	})

	// Register custom validation for log output formats
	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "json", "console", "text":
			return true
		}
		return false
	})

	// Register custom validation for comma-separated exit code lists
	_ = validate.RegisterValidation("exitcodes", func(fl validator.FieldLevel) bool {
		_, err := ParseExitCodeList(fl.Field().String())
		return err == nil
	})

	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return formatValidationErrors(validationErrors)
		}
		return err
	}

	return nil
}

// formatValidationErrors converts validator errors into a readable message
func formatValidationErrors(validationErrors validator.ValidationErrors) error {
	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, fmt.Sprintf(
			"field '%s' failed on the '%s' rule (value: %v)",
			fieldError.Namespace(), fieldError.Tag(), fieldError.Value(),
		))
	}
	return fmt.Errorf("config validation failed: %s", strings.Join(messages, "; "))
}
