// Package validation implements the client-side form validation engine on top
// of go-playground/validator. Schemas are declared as struct tags on form
// types; validation is pure and always runs before any network call.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Character classes for the custom password rules. These are literal checks,
// not locale-aware.
const (
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	symbolChars = `!@#$%^&*(),.?":{}|<>`
)

// Validator evaluates form structs against their tag schemas and renders
// failures as per-field human-readable messages.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New builds a Validator with English messages and the custom password rules
// registered: hasupper (at least one of A-Z) and hassymbol (at least one of
// the special character class).
func New() *Validator {
	v := validator.New()

	// Report fields under their json names so error keys match the wire
	// format instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, trans)

	mustRegisterRule(v, trans, "hasupper",
		func(fl validator.FieldLevel) bool {
			return strings.ContainsAny(fl.Field().String(), upperChars)
		},
		"{0} must contain at least one uppercase letter")

	mustRegisterRule(v, trans, "hassymbol",
		func(fl validator.FieldLevel) bool {
			return strings.ContainsAny(fl.Field().String(), symbolChars)
		},
		"{0} must contain at least one special character")

	return &Validator{validate: v, trans: trans}
}

func mustRegisterRule(v *validator.Validate, trans ut.Translator, tag string, fn validator.Func, message string) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
	err := v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, message, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fe.Field())
			return t
		})
	if err != nil {
		panic(err)
	}
}

// Validate evaluates form against its tag schema. It returns nil when the
// form is valid, otherwise a *FieldErrors aggregating every failing rule.
// It never short-circuits: a field violating two rules reports two messages.
func (v *Validator) Validate(form any) *FieldErrors {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-validation failure (e.g. a non-struct argument) is a caller
		// defect, surfaced as a single opaque entry.
		return &FieldErrors{Errors: []FieldError{{Field: "form", Tag: "invalid", Message: err.Error()}}}
	}

	fe := &FieldErrors{Errors: make([]FieldError, 0, len(verrs))}
	for _, e := range verrs {
		fe.Errors = append(fe.Errors, FieldError{
			Field:   e.Field(),
			Tag:     e.Tag(),
			Message: e.Translate(v.trans),
		})
	}
	return fe
}
