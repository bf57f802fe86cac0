package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tourdesk/tour-service/internal/core/domain"
)

// inputValidator checks decoded mutation inputs and reports problems as a
// domain.ValidationError, using the GraphQL field names.
type inputValidator struct {
	v *validator.Validate
}

func newInputValidator() *inputValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &inputValidator{v: v}
}

func (iv *inputValidator) Struct(i any) error {
	if err := iv.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			problems := make([]string, 0, len(ve))
			for _, fe := range ve {
				problems = append(problems, fieldError(fe))
			}
			return &domain.ValidationError{Problems: problems}
		}
		return err
	}
	return nil
}

// fieldError converts a single FieldError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "min":
		return field + " must not be empty"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

type tourInput struct {
	Name          string  `json:"name" validate:"required,max=200"`
	Price         float64 `json:"price" validate:"gt=0"`
	Description   string  `json:"description" validate:"required"`
	IsActive      *bool   `json:"isActive"`
	ImageFilename *string `json:"imageFilename" validate:"omitempty,max=255"`
}

type tourUpdateInput struct {
	Name          *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Price         *float64 `json:"price" validate:"omitempty,gt=0"`
	Description   *string  `json:"description" validate:"omitempty,min=1"`
	IsActive      *bool    `json:"isActive"`
	ImageFilename *string  `json:"imageFilename" validate:"omitempty,max=255"`
}

func decodeTourInput(m map[string]interface{}) tourInput {
	var in tourInput
	in.Name, _ = m["name"].(string)
	in.Price, _ = m["price"].(float64)
	in.Description, _ = m["description"].(string)
	if v, ok := m["isActive"].(bool); ok {
		in.IsActive = &v
	}
	if v, ok := m["imageFilename"].(string); ok {
		in.ImageFilename = &v
	}
	return in
}

func decodeTourUpdateInput(m map[string]interface{}) tourUpdateInput {
	var in tourUpdateInput
	if v, ok := m["name"].(string); ok {
		in.Name = &v
	}
	if v, ok := m["price"].(float64); ok {
		in.Price = &v
	}
	if v, ok := m["description"].(string); ok {
		in.Description = &v
	}
	if v, ok := m["isActive"].(bool); ok {
		in.IsActive = &v
	}
	if v, ok := m["imageFilename"].(string); ok {
		in.ImageFilename = &v
	}
	return in
}
