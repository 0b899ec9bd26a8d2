package layout

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/masomo-layout/core"
	"github.com/trezcool/masomo-layout/core/user"
)

var (
	// custom validation tags & texts
	platformTag    = "platform"
	platformText   = "{0} must be one of [community, lms]"
	deviceTag      = "device"
	deviceText     = "{0} must be one of [mobile, tablet, desktop]"
	viewTag        = "view"
	viewText       = "{0} must be one of [browser, webview]"
	headerTypeTag  = "headertype"
	headerTypeText = "{0} must be one of [community, lms, minimal, universal]"
	sidePosTag     = "sidepos"
	sidePosText    = "{0} must be one of [left, right]"
)

// InitValidators registers the layout validation tags.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	register := func(tag, text string, fn validator.Func) {
		_ = validate.RegisterValidation(tag, fn)
		core.RegisterCustomTranslation(validate, translator, tag, text)
	}

	register(platformTag, platformText, func(fl validator.FieldLevel) bool {
		return Platform(fl.Field().String()).Valid()
	})
	register(deviceTag, deviceText, func(fl validator.FieldLevel) bool {
		return Device(fl.Field().String()).Valid()
	})
	register(viewTag, viewText, func(fl validator.FieldLevel) bool {
		return View(fl.Field().String()).Valid()
	})
	register(headerTypeTag, headerTypeText, func(fl validator.FieldLevel) bool {
		return HeaderType(fl.Field().String()).Valid()
	})
	register(sidePosTag, sidePosText, func(fl validator.FieldLevel) bool {
		return Position(fl.Field().String()).Valid()
	})

	validate.RegisterStructValidation(headerItemValidation, HeaderItem{})
}

// headerItemValidation requires an action on a header item and on each of its dropdown entries.
func headerItemValidation(sl validator.StructLevel) {
	it := sl.Current().Interface().(HeaderItem)
	reportMissingAction(sl, it)
}

func reportMissingAction(sl validator.StructLevel, it HeaderItem) {
	switch a := it.Action.(type) {
	case nil:
		sl.ReportError(it.Action, "action", "Action", "required", "")
	case DropdownAction:
		for _, child := range a.Items {
			reportMissingAction(sl, child)
		}
	}
}

// NewValidate returns a validator with the core and layout tags registered.
func NewValidate(translator ut.Translator) *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	InitValidators(validate, translator)
	return validate
}
