package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	IntlPhoneTag = "intlphone"
)

var valid = map[string]func(fl validator.FieldLevel) bool{
	IntlPhoneTag: ValidateIntlPhone,
}

func ValidateIntlPhone(fl validator.FieldLevel) bool {
	return strings.HasPrefix(fl.Field().String(), "+")
}
