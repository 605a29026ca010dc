package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/piresc/freightdesk/internal/utils"
)

// Validator implements echo.Validator on top of go-playground/validator
// with the Brazilian document, plate and phone tags registered.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "cpf", stringRule(utils.IsValidCPF))
	mustRegister(v, "cnpj", stringRule(utils.IsValidCNPJ))
	mustRegister(v, "document", stringRule(utils.IsValidDocument))
	mustRegister(v, "plate", stringRule(utils.IsValidPlate))
	mustRegister(v, "br_phone", stringRule(utils.IsValidPhone))

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

func stringRule(check func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		return check(fl.Field().String())
	}
}

// Validate returns a *models.ValidationError describing the first failing field
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return models.NewValidationError("invalid request")
	}
	return models.NewValidationError("%s", message(fieldErrs[0]))
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid e-mail"
	case "cpf":
		return field + " must be a valid CPF"
	case "cnpj":
		return field + " must be a valid CNPJ"
	case "document":
		return field + " must be a valid CPF or CNPJ"
	case "plate":
		return field + " must be a valid plate (AAA9999 or AAA9A99)"
	case "br_phone":
		return field + " must be a valid Brazilian phone number"
	case "numeric":
		return field + " must contain only digits"
	case "min":
		return fmt.Sprintf("%s must have at least %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte", "lt":
		return fmt.Sprintf("%s must be below %s", field, fe.Param())
	}
	return field + " is invalid"
}
