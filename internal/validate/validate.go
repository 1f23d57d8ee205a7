// Package validate wraps go-playground/validator with English translations
// so callers get human-readable messages for form-style input.
package validate

import (
	"errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var validate *validator.Validate

var translator ut.Translator

func init() {
	validate = validator.New()

	translator, _ = ut.New(en.New(), en.New()).GetTranslator("en")
	en_translations.RegisterDefaultTranslations(validate, translator)
}

// Check validates the struct's `validate` tags and returns the first
// translated violation, or nil when the value is valid.
func Check(val any) error {
	problems := Problems(val)
	if len(problems) == 0 {
		return nil
	}
	return errors.New(problems[0])
}

// Problems validates the struct's `validate` tags and returns every
// translated violation. An empty slice means the value is valid.
func Problems(val any) []string {
	err := validate.Struct(val)
	if err == nil {
		return nil
	}

	verrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(verrors))
	for _, ve := range verrors {
		messages = append(messages, ve.Translate(translator))
	}
	return messages
}
