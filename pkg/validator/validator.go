package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldError describe una validación fallida de un campo del request.
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

// Struct valida un DTO según sus tags `validate` y devuelve los campos fallidos.
func Struct(data interface{}) []FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	var out []FieldError
	for _, fe := range err.(validator.ValidationErrors) {
		out = append(out, FieldError{
			Field: fe.StructNamespace(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

// Message arma un mensaje legible a partir de los errores de campo.
func Message(errs []FieldError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		if e.Param != "" {
			parts = append(parts, fmt.Sprintf("%s (%s=%s)", e.Field, e.Tag, e.Param))
		} else {
			parts = append(parts, fmt.Sprintf("%s (%s)", e.Field, e.Tag))
		}
	}
	return "validación fallida: " + strings.Join(parts, ", ")
}
