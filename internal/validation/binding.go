package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// engine returns gin's validator with wire (json) names reported for fields.
func engine() *validator.Validate {
	v, _ := binding.Validator.Engine().(*validator.Validate)
	if v == nil {
		return nil
	}
	registerOnce.Do(func() {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
	return v
}

// BindJSON decodes body into obj and runs its `binding` tags. An empty body
// is treated as an empty object. Decode and tag failures come back as
// FieldErrors.
func BindJSON(body []byte, obj any) error {
	engine()

	if len(strings.TrimSpace(string(body))) == 0 {
		body = []byte("{}")
	}
	if err := json.Unmarshal(body, obj); err != nil {
		return decodeErrors(err)
	}
	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return tagErrors(err)
	}
	return nil
}

// Email reports whether s is a well-formed address per the validator's
// email rule.
func Email(s string) bool {
	v := engine()
	if v == nil {
		return strings.Contains(s, "@")
	}
	return v.Var(s, "required,email") == nil
}

func decodeErrors(err error) FieldErrors {
	fe := FieldErrors{}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		fe.Add(typeErr.Field, typeMessage(typeErr.Type))
		return fe
	}
	fe.Add(NonField, "JSON parse error - "+err.Error())
	return fe
}

func typeMessage(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "A valid integer is required."
	case reflect.Float32, reflect.Float64:
		return "A valid number is required."
	case reflect.Bool:
		return "Must be a valid boolean."
	case reflect.String:
		return "Not a valid string."
	}
	return "Invalid value."
}

func tagErrors(err error) FieldErrors {
	fe := FieldErrors{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fe.Add(NonField, err.Error())
		return fe
	}
	for _, e := range verrs {
		fe.Add(e.Field(), tagMessage(e))
	}
	return fe
}

func tagMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return MsgRequired
	case "email":
		return MsgEmail
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", e.Param())
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", e.Param())
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", e.Param())
	case "lte":
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", e.Param())
	}
	return "Invalid value."
}
