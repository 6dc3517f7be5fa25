// Package forms binds and validates the venue, artist and show forms.
package forms

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/farellandr/showbook/internal/models"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// ValidationError carries one human readable message per failed field.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid form: " + strings.Join(e.Problems, "; ")
}

// ShowTimeLayouts are the accepted start_time formats, tried in order.
var ShowTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

var phonePattern = regexp.MustCompile(`^[0-9]{3}-?[0-9]{3}-?[0-9]{4}$`)

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	validate, translator = newValidator()
}

func newValidator() (*validator.Validate, ut.Translator) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	mustRegister(v, "usstate", func(fl validator.FieldLevel) bool {
		_, ok := stateSet[fl.Field().String()]
		return ok
	})
	mustRegister(v, "genre", func(fl validator.FieldLevel) bool {
		_, ok := genreSet[fl.Field().String()]
		return ok
	})
	mustRegister(v, "genresfit", func(fl validator.FieldLevel) bool {
		genres, ok := fl.Field().Interface().([]string)
		return ok && len(models.JoinGenres(genres)) <= models.GenresMaxLen
	})
	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "showtime", func(fl validator.FieldLevel) bool {
		_, err := ParseShowTime(fl.Field().String())
		return err == nil
	})

	english := en.New()
	trans, _ := ut.New(english, english).GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
		panic(fmt.Sprintf("forms: register translations: %v", err))
	}
	for tag, text := range map[string]string{
		"usstate":   "{0} must be a valid state code",
		"genre":     "{0} must only contain listed genres",
		"genresfit": fmt.Sprintf("{0} must fit in %d characters", models.GenresMaxLen),
		"phone":     "{0} must look like 555-555-5555",
		"showtime":  "{0} must be a date and time like 2006-01-02 15:04",
	} {
		registerTranslation(v, trans, tag, text)
	}
	return v, trans
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("forms: register %s: %v", tag, err))
	}
}

func registerTranslation(v *validator.Validate, trans ut.Translator, tag, text string) {
	err := v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error {
			return t.Add(tag, text, true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, err := t.T(tag, genreField(fe))
			if err != nil {
				return fe.Error()
			}
			return msg
		},
	)
	if err != nil {
		panic(fmt.Sprintf("forms: translate %s: %v", tag, err))
	}
}

// genreField strips the slice index dive adds, so "genres[1]" reads as
// "genres".
func genreField(fe validator.FieldError) string {
	field := fe.Field()
	if i := strings.IndexByte(field, '['); i > 0 {
		return field[:i]
	}
	return field
}

// check runs the struct validator and converts failures to a
// ValidationError.
func check(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	problems := make([]string, 0, len(errs))
	seen := make(map[string]bool, len(errs))
	for _, fe := range errs {
		msg := fe.Translate(translator)
		if seen[msg] {
			continue
		}
		seen[msg] = true
		problems = append(problems, msg)
	}
	return &ValidationError{Problems: problems}
}

// ParseShowTime parses a start time in any of ShowTimeLayouts. Layouts
// without a zone are read as UTC.
func ParseShowTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range ShowTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised start time %q", value)
}
