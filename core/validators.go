package core

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	Validate   *validator.Validate
	Translator ut.Translator

	// custom validation tags & texts
	emailTag  = "email_"
	emailText = "invalid email address"

	requiredTag  = "required"
	requiredText = "this field is required"
)

// Instantiate the validator for use.
func init() {
	Validate = validator.New()

	// Register the english error messages for validation errors.
	_en := en.New()
	uni := ut.New(_en, _en)
	Translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(Validate, Translator)

	// Use JSON tag names for errors instead of Go struct names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = Validate.RegisterValidation(emailTag, emailValidation)
	RegisterCustomTranslation(emailTag, emailText)

	RegisterCustomTranslation(requiredTag, requiredText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = Validate.RegisterTranslation(
		tag, Translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// Custom Global Validators

// emailValidation checks that the field holds a well-formed email address.
func emailValidation(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}

// IsValidEmail reports whether email has an "@" past the first character and
// a "." after the "@" that is not the last character.
func IsValidEmail(email string) bool {
	atPos := strings.Index(email, "@")
	dotPos := strings.LastIndex(email, ".")
	return atPos > 0 && dotPos > atPos && dotPos < len(email)-1
}

// IsValidGrade reports whether grade is a percentage in [0, 100].
func IsValidGrade(grade int) bool { return grade >= 0 && grade <= 100 }

// IsValidIndex reports whether idx is a 0-based index into a collection of size length.
func IsValidIndex(idx, length int) bool { return idx >= 0 && idx < length }

// IsValidString reports whether s is non-empty and at most 100 characters long.
func IsValidString(s string) bool { return len(s) > 0 && len(s) <= 100 }
