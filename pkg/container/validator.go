package container

import (
	"errors"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Mode selects how non-critical violations are handled.
type Mode int

const (
	// Strict rejects every violation.
	Strict Mode = iota
	// Permissive logs non-critical violations as warnings and accepts the value.
	Permissive
)

// String returns the mode name
func (m Mode) String() string {
	if m == Permissive {
		return "permissive"
	}
	return "strict"
}

// ModeFor maps a "permissive" configuration flag to a Mode.
func ModeFor(permissive bool) Mode {
	if permissive {
		return Permissive
	}
	return Strict
}

// Validator decodes, checks and edits container graphs in a fixed Mode.
// It is safe for concurrent use.
type Validator struct {
	mode   Mode
	logger *zerolog.Logger
}

// Option configures a Validator
type Option func(*Validator)

// WithLogger sends permissive-mode warnings to logger instead of the global
// zerolog logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(v *Validator) {
		v.logger = &logger
	}
}

// NewValidator creates a Validator for mode.
func NewValidator(mode Mode, opts ...Option) *Validator {
	v := &Validator{mode: mode}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Mode returns the validation mode
func (v *Validator) Mode() Mode { return v.mode }

var strictValidator = NewValidator(Strict)

func (v *Validator) log() *zerolog.Logger {
	if v.logger != nil {
		return v.logger
	}
	return &log.Logger
}

// spanRule mirrors the three span fields of an Annotation for validation.
type spanRule struct {
	Begin       int `validate:"gte=0"`
	End         int `validate:"gte=0,gtfield=Begin"`
	CoveredText *string
}

// tagCoveredLen is the only non-critical rule.
const tagCoveredLen = "coveredlen"

var spanValidate = newSpanValidate()

func newSpanValidate() *validator.Validate {
	validate := validator.New()
	validate.RegisterStructValidation(func(sl validator.StructLevel) {
		r := sl.Current().Interface().(spanRule)
		if r.CoveredText != nil && utf8.RuneCountInString(*r.CoveredText) != r.End-r.Begin {
			sl.ReportError(*r.CoveredText, "CoveredText", "coveredText", tagCoveredLen, "")
		}
	}, spanRule{})
	return validate
}

// checkSpan validates a span. Critical violations are always errors; a
// coveredText length mismatch is an error in strict mode and a warning in
// permissive mode.
func (v *Validator) checkSpan(path string, begin, end int, coveredText *string) error {
	err := spanValidate.Struct(spanRule{Begin: begin, End: end, CoveredText: coveredText})
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return newSchemaError(path, nil, "span validation failed: %v", err)
	}

	var soft *SchemaError
	for _, fe := range fieldErrs {
		schemaErr := spanError(path, begin, end, fe)
		if !schemaErr.nonCritical {
			return schemaErr
		}
		soft = schemaErr
	}
	if soft == nil {
		return nil
	}
	if v.mode == Strict {
		return soft
	}

	v.log().Warn().
		Str("path", soft.Path).
		Int("begin", begin).
		Int("end", end).
		Int("covered_text_length", utf8.RuneCountInString(*coveredText)).
		Msg("coveredText length does not match span, accepted in permissive mode")
	return nil
}

func spanError(path string, begin, end int, fe validator.FieldError) *SchemaError {
	switch fe.Tag() {
	case "gtfield":
		return newSchemaError(joinPath(path, "end"), end, "begin must be strictly less than end (begin=%d)", begin)
	case tagCoveredLen:
		e := newSchemaError(joinPath(path, "coveredText"), fe.Value(), "coveredText length must equal end-begin (%d)", end-begin)
		e.nonCritical = true
		return e
	}
	if fe.Field() == "Begin" {
		return newSchemaError(joinPath(path, "begin"), begin, "begin must be greater than or equal to 0")
	}
	return newSchemaError(joinPath(path, "end"), end, "end must be greater than or equal to 0")
}
