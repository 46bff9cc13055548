package validator

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/shandysiswandi/formbite/internal/pkg/strcase"
)

var (
	// ASCII local part, single-label domain, dotted tld.
	reFormEmail = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)
)

// ErrTranslatorNotFound indicates the requested translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

// V10Validator implements Validator using go-playground/validator v10.
type V10Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewV10Validator constructs a V10Validator with English translations and custom rules.
//
// Field names in reported errors are lowerCamelCase, matching the JSON payload keys.
func NewV10Validator() (*V10Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strcase.ToLowerCamel(fld.Name)
	})

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	if err := v10CustomValidation(validate, enTrans); err != nil {
		return nil, err
	}

	return &V10Validator{
		validate:   validate,
		translator: enTrans,
	}, nil
}

// Validate validates a struct and returns FieldErrors on failure. Messages
// supplied through the Messages interface replace the English defaults.
func (v *V10Validator) Validate(data any) error {
	if err := v.validate.Struct(data); err != nil {
		var validateErrs validator.ValidationErrors
		if !errors.As(err, &validateErrs) {
			return err
		}

		var custom map[string]string
		if m, ok := data.(Messages); ok {
			custom = m.ValidationMessages()
		}

		errs := make(FieldErrors, 0, len(validateErrs))
		for _, fe := range validateErrs {
			msg, ok := custom[fe.Field()+"."+fe.Tag()]
			if ok {
				msg = strings.ReplaceAll(msg, "{VALUE}", fmt.Sprint(fe.Value()))
			} else {
				msg = fe.Translate(v.translator)
			}

			errs = append(errs, FieldError{Field: fe.Field(), Message: msg})
		}

		return errs
	}

	return nil
}

// IsFormEmail reports whether s matches the email pattern accepted by the forms.
func IsFormEmail(s string) bool {
	return reFormEmail.MatchString(s)
}

func v10CustomValidation(validate *validator.Validate, enTrans ut.Translator) error {
	if err := validate.RegisterValidation("formemail", func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		return IsFormEmail(s)
	}); err != nil {
		return err
	}

	return validate.RegisterTranslation("formemail", enTrans,
		func(ut ut.Translator) error {
			return ut.Add("formemail", "{0} has an invalid email format", false)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, err := ut.T(fe.Tag(), fe.Field())
			if err != nil {
				slog.Warn("warning: error translating", "FieldError", fe, "error", err)
				return fe.Error()
			}

			return t
		},
	)
}
