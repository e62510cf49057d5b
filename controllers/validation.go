package controllers

import (
	"fmt"
	"strings"

	"github.com/Kariqs/vkusnyashka/services"
	"github.com/go-playground/validator/v10"
	"github.com/juju/errors"
)

// bindingErrors turns a gin binding failure into per-field messages. Failures
// that are not field validations land under "__all__".
func bindingErrors(err error) services.FieldErrors {
	fields := services.FieldErrors{}
	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		fields["__all__"] = msgInvalidInput
		return fields
	}
	for _, fe := range invalid {
		fields[strings.ToLower(fe.Field())] = fieldMessage(fe)
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return fmt.Sprintf("Ensure this value has at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	case "oneof":
		return "Select a valid choice."
	}
	return "Enter a valid value."
}
