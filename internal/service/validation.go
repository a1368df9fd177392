package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/stellarnotes/internal/db"
)

// NonFieldErrorsKey collects errors that do not belong to a single field.
const NonFieldErrorsKey = "non_field_errors"

const (
	requiredMessage = "This field is required."
	notNullMessage  = "This field may not be null."
)

// webURLSchemes are the schemes accepted for image links.
var webURLSchemes = map[string]bool{"http": true, "https": true, "ftp": true, "ftps": true}

// ValidationError carries per-field messages for a rejected input.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError returns a ValidationError holding a single message.
func NewValidationError(field, message string) *ValidationError {
	e := &ValidationError{}
	e.Add(field, message)
	return e
}

// Add appends message to field.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", key, strings.Join(e.Fields[key], " ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func inputValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		if err := v.RegisterValidation("shape_type", func(fl validator.FieldLevel) bool {
			return db.ValidShapeType(fl.Field().String())
		}); err != nil {
			panic(err)
		}
		if err := v.RegisterValidation("json_array", func(fl validator.FieldLevel) bool {
			return IsJSONArray(fl.Field().Bytes())
		}); err != nil {
			panic(err)
		}
		if err := v.RegisterValidation("web_url", func(fl validator.FieldLevel) bool {
			return IsWebURL(fl.Field().String())
		}); err != nil {
			panic(err)
		}
		validate = v
	})
	return validate
}

// IsJSONArray reports whether raw is a well-formed JSON array.
func IsJSONArray(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return false
	}
	var items []json.RawMessage
	return json.Unmarshal(trimmed, &items) == nil
}

// IsWebURL reports whether raw is an absolute http, https, ftp or ftps URL
// with a host.
func IsWebURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return webURLSchemes[strings.ToLower(u.Scheme)] && u.Host != ""
}

// ShapeTypeMessage is the error shown for a shape outside the enum.
func ShapeTypeMessage() string {
	return "Shape type must be one of: " + strings.Join(db.ShapeTypes(), ", ")
}

var fieldMessages = map[string]string{
	"image_url.required": "Image URL is required",
}

func validateInput(input interface{}) error {
	err := inputValidator().Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	result := &ValidationError{}
	for _, fe := range fieldErrs {
		result.Add(fe.Field(), messageFor(fe))
	}
	return result
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required":
		return requiredMessage
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "url", "web_url":
		return "Enter a valid URL."
	case "json_array":
		return "Coordinates must be a JSON array"
	case "shape_type":
		return ShapeTypeMessage()
	default:
		return "Invalid value."
	}
}

// mergeValidation folds extra into err, which must be nil or a *ValidationError.
func mergeValidation(err error, field, message string) error {
	if err == nil {
		return NewValidationError(field, message)
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		verr.Add(field, message)
		return verr
	}
	return err
}
