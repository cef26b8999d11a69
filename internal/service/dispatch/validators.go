package dispatch

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/entities"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// регистрация не падает для непустого имени тега
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// validateCreate сворачивает ошибки полей в одно сообщение поверх ErrValidation.
func validateCreate(in entities.TransportRequestCreate) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		messages = append(messages, fieldMessage(fieldError))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(messages, "; "))
}

func fieldMessage(fieldError validator.FieldError) string {
	field := strings.ToLower(fieldError.Field())
	switch fieldError.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fieldError.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fieldError.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func isValidLocation(location string) bool {
	return strings.TrimSpace(location) != ""
}
