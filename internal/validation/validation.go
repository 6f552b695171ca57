package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

	weekdays = map[string]struct{}{
		"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
		"friday": {}, "saturday": {}, "sunday": {},
	}
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// timefmt: zero-padded 24-hour "HH:MM"
	must(validate.RegisterValidation("timefmt", func(fl validator.FieldLevel) bool {
		return IsTime(fl.Field().String())
	}))

	// datefmt: "YYYY-MM-DD"
	must(validate.RegisterValidation("datefmt", func(fl validator.FieldLevel) bool {
		return IsDate(fl.Field().String())
	}))

	// dayofweek: lowercase weekday name
	must(validate.RegisterValidation("dayofweek", func(fl validator.FieldLevel) bool {
		_, ok := weekdays[fl.Field().String()]
		return ok
	}))

	// colortag: "#RGB" or "#RRGGBB"
	must(validate.RegisterValidation("colortag", func(fl validator.FieldLevel) bool {
		return hexColorRe.MatchString(fl.Field().String())
	}))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Struct validates a struct against its `validate` tags and returns a
// single flattened error suitable for CLI display.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !asValidationErrors(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "timefmt":
		return fmt.Sprintf("%s must be a time in HH:MM format", field)
	case "datefmt":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field)
	case "dayofweek":
		return fmt.Sprintf("%s must be a weekday name (monday..sunday)", field)
	case "colortag":
		return fmt.Sprintf("%s must be a hex color like #6366f1", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

// IsHexColor reports whether s is a "#RGB" or "#RRGGBB" color tag.
func IsHexColor(s string) bool {
	return hexColorRe.MatchString(s)
}

// IsTime reports whether s is a valid zero-padded "HH:MM" time.
func IsTime(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

// IsDate reports whether s is a valid "YYYY-MM-DD" date.
func IsDate(s string) bool {
	if len(s) != 10 {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
