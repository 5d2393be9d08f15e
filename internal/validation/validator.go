package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "lookup-console/internal/errors"
	"lookup-console/internal/models"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("notblank", validateNotBlank)
	_ = v.RegisterValidation("console_handle", validateConsoleHandle)
	v.RegisterStructValidation(validateSearchCriteria, models.SearchCriteria{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a tagged struct
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// ValidatePIN reports a precondition error when pin is blank
func (v *Validator) ValidatePIN(pin string) error {
	if err := v.validate.Var(pin, "notblank"); err != nil {
		return apperrors.NewPrecondition(apperrors.ValidationMissingPIN)
	}
	return nil
}

// ValidateSearch reports a precondition error when a field search has no field set
func (v *Validator) ValidateSearch(criteria models.SearchCriteria) error {
	if err := v.validate.Struct(criteria); err != nil {
		return apperrors.NewPrecondition(apperrors.ValidationEmptySearch)
	}
	return nil
}

// Custom validation functions

// validateNotBlank rejects strings that are empty after trimming whitespace
func validateNotBlank(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(fl.Field().String()) != ""
}

var compactJWS = regexp.MustCompile(`^[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+$`)

// validateConsoleHandle checks the compact JWS shape before any signature work
func validateConsoleHandle(fl validator.FieldLevel) bool {
	return compactJWS.MatchString(fl.Field().String())
}

// validateSearchCriteria requires at least one of name, dpi or nit for a field search
func validateSearchCriteria(sl validator.StructLevel) {
	criteria := sl.Current().Interface().(models.SearchCriteria)
	if criteria.Type() == models.SearchTypeValue {
		return
	}
	if !criteria.HasAnyField() {
		sl.ReportError(criteria.Name, "Name", "Name", "search_field_required", "")
	}
}
