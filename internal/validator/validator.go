// Package validator provides custom validation functions for Gin's binding engine
// and translates validation failures into per-field messages.
package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/shopspring/decimal"

	apperrors "carteira/internal/errors"
	"carteira/internal/models"
	"carteira/internal/schemas"
)

var (
	cpfCnpjRegex  = regexp.MustCompile(`^(\d{11}|\d{14})$`)
	telefoneRegex = regexp.MustCompile(`^\d{10,15}$`)
	tickerRegex   = regexp.MustCompile(`^[A-Z0-9]{3,10}$`)
)

var (
	registerOnce sync.Once
	registerErr  error
	translator   ut.Translator
)

// Register registers all custom validators and translations with the Gin binding engine.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin binding engine is not go-playground/validator")
			return
		}
		registerErr = Setup(v)
	})
	if registerErr != nil {
		panic(fmt.Sprintf("validator: %v", registerErr))
	}
}

// Setup installs the custom rules, the JSON-name field naming and the English
// translations on v.
func Setup(v *validator.Validate) error {
	v.RegisterTagNameFunc(fieldName)

	validations := map[string]validator.Func{
		"cpf_cnpj":      matches(cpfCnpjRegex),
		"telefone":      matches(telefoneRegex),
		"ticker":        matches(tickerRegex),
		"decimal_gt":        validateDecimalGT,
		"decimal_gte":       validateDecimalGTE,
		"decimal_scale":     validateDecimalScale,
		"decimal_precision": validateDecimalPrecision,
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}

	v.RegisterStructValidation(validateBuscarCliente, schemas.BuscarClienteQuery{})

	english := en.New()
	translator, _ = ut.New(english, english).GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(v, translator); err != nil {
		return fmt.Errorf("register default translations: %w", err)
	}

	messages := map[string]string{
		"cpf_cnpj":          "{0} must contain exactly 11 or 14 digits",
		"telefone":          "{0} must contain between 10 and 15 digits",
		"ticker":            "{0} must be 3 to 10 uppercase letters or digits",
		"decimal_gt":        "{0} must be greater than {1}",
		"decimal_gte":       "{0} must be greater than or equal to {1}",
		"decimal_scale":     "{0} must have at most {1} decimal places",
		"decimal_precision": "{0} must have at most {1} digits before the decimal point",
		"one_of_required":   "provide {0} or {1}",
		"only_one_of":       "provide either {0} or {1}, but not both",
	}
	for tag, text := range messages {
		if err := registerTranslation(v, tag, text); err != nil {
			return fmt.Errorf("register %s translation: %w", tag, err)
		}
	}
	return nil
}

func registerTranslation(v *validator.Validate, tag, text string) error {
	return v.RegisterTranslation(tag, translator,
		func(t ut.Translator) error {
			return t.Add(tag, text, true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			param := fe.Param()
			switch tag {
			case "decimal_scale":
				if param == "" {
					_, scale, _ := models.DecimalValue(fe.Value())
					param = strconv.Itoa(int(scale))
				}
			case "decimal_precision":
				_, scale, _ := models.DecimalValue(fe.Value())
				precision, err := precisionParam(param)
				if err != nil {
					return fe.Error()
				}
				param = strconv.Itoa(int(precision - scale))
			}
			msg, err := t.T(tag, fe.Field(), param)
			if err != nil {
				return fe.Error()
			}
			return msg
		})
}

// fieldName reports fields by their wire name so messages match the payload.
func fieldName(fld reflect.StructField) string {
	for _, key := range []string{"json", "form", "uri"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func decimalParam(fl validator.FieldLevel) (decimal.Decimal, decimal.Decimal, bool) {
	d, _, ok := models.DecimalValue(fl.Field().Interface())
	if !ok {
		return decimal.Decimal{}, decimal.Decimal{}, false
	}
	bound, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, false
	}
	return d, bound, true
}

func validateDecimalGT(fl validator.FieldLevel) bool {
	d, bound, ok := decimalParam(fl)
	return ok && d.GreaterThan(bound)
}

func validateDecimalGTE(fl validator.FieldLevel) bool {
	d, bound, ok := decimalParam(fl)
	return ok && d.GreaterThanOrEqual(bound)
}

// validateDecimalScale rejects values with more fractional digits than the
// type stores. An explicit parameter overrides the type's scale.
func validateDecimalScale(fl validator.FieldLevel) bool {
	d, scale, ok := models.DecimalValue(fl.Field().Interface())
	if !ok {
		return false
	}
	if p := fl.Param(); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			return false
		}
		scale = int32(n)
	}
	return fractionalDigits(d) <= int64(scale)
}

// validateDecimalPrecision rejects values whose integer part does not fit a
// NUMERIC(precision, scale) column. The parameter overrides
// models.DecimalPrecision.
func validateDecimalPrecision(fl validator.FieldLevel) bool {
	d, scale, ok := models.DecimalValue(fl.Field().Interface())
	if !ok {
		return false
	}
	precision, err := precisionParam(fl.Param())
	if err != nil {
		return false
	}
	return integerDigits(d) <= int64(precision-scale)
}

func precisionParam(p string) (int32, error) {
	if p == "" {
		return models.DecimalPrecision, nil
	}
	n, err := strconv.Atoi(p)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}

// integerDigits and fractionalDigits read the coefficient and exponent only.
// Rescaling a value such as 1e100000000 would materialize a hundred million
// digits, so neither helper ever rescales.
func integerDigits(d decimal.Decimal) int64 {
	n := int64(d.NumDigits()) + int64(d.Exponent())
	if n < 0 {
		return 0
	}
	return n
}

func fractionalDigits(d decimal.Decimal) int64 {
	if d.Exponent() >= 0 {
		return 0
	}
	coef := strings.TrimPrefix(d.Coefficient().String(), "-")
	trailingZeros := len(coef) - len(strings.TrimRight(coef, "0"))
	n := -int64(d.Exponent()) - int64(trailingZeros)
	if n < 0 {
		return 0
	}
	return n
}

// Rules reported when a customer search does not carry exactly one criterion.
const (
	TagOneOfRequired = "one_of_required"
	TagOnlyOneOf     = "only_one_of"
)

// validateBuscarCliente requires exactly one of the two search criteria.
func validateBuscarCliente(sl validator.StructLevel) {
	q := sl.Current().Interface().(schemas.BuscarClienteQuery)
	switch {
	case q.NomeCompleto == "" && q.CpfCnpj == "":
		sl.ReportError(q.NomeCompleto, "nome_completo", "NomeCompleto", TagOneOfRequired, "cpf_cnpj")
	case q.NomeCompleto != "" && q.CpfCnpj != "":
		sl.ReportError(q.NomeCompleto, "nome_completo", "NomeCompleto", TagOnlyOneOf, "cpf_cnpj")
	}
}

// Translate converts validator failures into per-field messages. It returns
// nil when err carries no validation errors.
func Translate(err error) []apperrors.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := fe.Error()
		if translator != nil {
			msg = fe.Translate(translator)
		}
		out = append(out, apperrors.FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}

// HasTag reports whether err carries a failure of the given rule.
func HasTag(err error, tag string) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() == tag {
			return true
		}
	}
	return false
}

// BindingError maps an error returned by gin's ShouldBind* helpers onto the
// error taxonomy. Rule violations become VALIDATION_ERROR with one entry per
// failing rule; anything that failed while decoding or coercing the input
// becomes INVALID_INPUT.
func BindingError(err error) *apperrors.AppError {
	if details := Translate(err); details != nil {
		return apperrors.WithDetails(apperrors.ErrValidation, details)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		e := apperrors.WithMessage(apperrors.ErrInvalidInput, "Malformed request: "+field+" has the wrong type")
		e.Details = []apperrors.FieldError{{Field: field, Message: field + " must be a " + typeErr.Type.String()}}
		return e
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Malformed JSON body")
	}

	return apperrors.WithMessage(apperrors.ErrInvalidInput, "Malformed request: "+err.Error())
}
