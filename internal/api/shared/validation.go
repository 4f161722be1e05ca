package shared

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/apiary-api/internal/domain"
)

var (
	clockPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)
	oneofValues  = regexp.MustCompile(`'[^']*'|\S+`)
)

// validate is shared by all handlers. It reports fields by their JSON names
// and knows the clock, isodate and notfutureyear tags.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "clock", func(fl validator.FieldLevel) bool {
		return clockPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "isodate", func(fl validator.FieldLevel) bool {
		return domain.IsDate(fl.Field().String())
	})
	mustRegister(v, "notfutureyear", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() <= int64(time.Now().Year())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		// ALLOW-PANIC: tags are registered once at init
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// FieldError is one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateRequest validates v against its struct tags. The error, if any, is
// a validator.ValidationErrors.
func ValidateRequest(v any) error {
	return validate.Struct(v)
}

// FieldErrors converts err into per-field messages. It returns nil if err is
// not a validation error.
func FieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, FieldError{
				Field:   fieldPath(fe.Namespace()),
				Message: tagMessage(fe),
			})
		}
		return out
	}

	var derr *domain.ValidationError
	if errors.As(err, &derr) {
		return []FieldError{{Field: derr.Field, Message: derr.Message}}
	}
	return nil
}

// fieldPath turns "CreateHiveParams.HiveFields.colony_info.strength" into
// "colony_info.strength". Go type and embedded field names start upper case;
// JSON names do not.
func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	kept := make([]string, 0, len(parts))
	for _, p := range parts[1:] {
		if p == "" || unicode.IsUpper([]rune(p)[0]) {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, ".")
}

func tagMessage(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		values := oneofValues.FindAllString(fe.Param(), -1)
		for i, v := range values {
			values[i] = strings.Trim(v, "'")
		}
		return "must be one of: " + strings.Join(values, ", ")
	case "isodate":
		return "must be a valid ISO 8601 date"
	case "clock":
		return "must be in HH:MM format"
	case "notfutureyear":
		return "cannot be in the future"
	default:
		return "is invalid"
	}
}
