package user

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/masomo-layout/core"
)

var (
	roleTag  = "role"
	roleText = "{0} must be a known role"
)

// InitValidators registers the `role` tag: the field (a string or every element of a []string)
// must be one of AllRoles.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(roleTag, roleValidation)
	core.RegisterCustomTranslation(validate, translator, roleTag, roleText)
}

func roleValidation(fl validator.FieldLevel) bool {
	switch v := fl.Field().Interface().(type) {
	case string:
		return IsKnownRole(v)
	case []string:
		for _, role := range v {
			if !IsKnownRole(role) {
				return false
			}
		}
		return true
	}
	return false
}
