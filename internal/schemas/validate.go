// Package schemas defines the validated transfer shapes of the API boundary:
// per resource a Create shape (required fields mandatory, optional fields
// defaulted) and an Update shape (every field optional, absent fields left
// untouched). Read shapes are the entity structs in internal/models.
package schemas

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fieldsolutions/backend/internal/apperr"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report JSON names, not Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Check runs struct validation and converts failures into field-level
// validation errors.
func Check(obj any) error {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Validationf("body", "invalid request body")
	}

	details := make([]apperr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, apperr.FieldError{Field: fe.Field(), Message: errorMsg(fe)})
	}
	return apperr.Validation(details...)
}

func errorMsg(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "invalid email format"
	case "gt":
		return "value must be greater than " + err.Param()
	case "oneof":
		return "value must be one of: " + err.Param()
	default:
		return "invalid value"
	}
}

func validEmail(s string) error {
	if validate.Var(s, "email") != nil {
		return errors.New("invalid email format")
	}
	return nil
}

// changes accumulates the column assignments of a partial update together
// with any field-level failures.
type changes struct {
	set  map[string]any
	errs []apperr.FieldError
}

func newChanges() *changes {
	return &changes{set: make(map[string]any)}
}

func (c *changes) fail(field, msg string) {
	c.errs = append(c.errs, apperr.FieldError{Field: field, Message: msg})
}

func (c *changes) result() (map[string]any, error) {
	if len(c.errs) > 0 {
		return nil, apperr.Validation(c.errs...)
	}
	return c.set, nil
}

// apply records o into column col when present. Null is only legal for
// nullable columns; checks run against non-null values.
func apply[T any](c *changes, field, col string, o Optional[T], nullable bool, checks ...func(T) error) {
	if !o.Present() {
		return
	}
	v, ok := o.Get()
	if !ok {
		if !nullable {
			c.fail(field, "must not be null")
			return
		}
		c.set[col] = nil
		return
	}
	for _, check := range checks {
		if err := check(v); err != nil {
			c.fail(field, err.Error())
			return
		}
	}
	c.set[col] = v
}
