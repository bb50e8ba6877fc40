package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidator 校验错误中使用 json 字段名
func RegisterValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
}

func bindErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		msgs := make([]string, 0, len(validationErrs))
		for _, e := range validationErrs {
			msgs = append(msgs, fieldMessage(e))
		}
		return strings.Join(msgs, "; ")
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("%s: must be %s", typeErr.Field, typeErr.Type.String())
	}

	if errors.Is(err, io.EOF) {
		return "request body is required"
	}

	return "invalid request body: " + err.Error()
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: field required", e.Field())
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s: length must be at least %s", e.Field(), e.Param())
		}
		return fmt.Sprintf("%s: must be greater than or equal to %s", e.Field(), e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s: length must be at most %s", e.Field(), e.Param())
		}
		return fmt.Sprintf("%s: must be less than or equal to %s", e.Field(), e.Param())
	}
	return fmt.Sprintf("%s: failed on '%s' validation", e.Field(), e.Tag())
}
