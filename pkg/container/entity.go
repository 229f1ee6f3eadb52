package container

import "unicode/utf8"

// Entity is the base of every identifiable record in the model.
type Entity struct {
	ID      *string `acd:"id"`
	UID     *int    `acd:"uid"`
	Type    *string `acd:"type"`
	MergeID *int    `acd:"mergeId"`
	Extensible
}

// Annotation is an Entity anchored to a span of the container text.
//
// Offsets count code points. The span is kept consistent at all times:
// begin >= 0, end >= 0, begin < end, and when coveredText is present it is
// exactly end-begin code points long. The fields are only reachable through
// setters, and a setter that would break the span returns a *SchemaError and
// changes nothing.
//
// A decoded Annotation remembers the Validator that produced it and applies
// its mode on later edits. An Annotation built as a struct literal edits in
// strict mode.
type Annotation struct {
	Entity

	begin       int
	end         int
	coveredText *string
	validator   *Validator
}

// Begin returns the start offset in code points
func (a *Annotation) Begin() int { return a.begin }

// End returns the exclusive end offset in code points
func (a *Annotation) End() int { return a.end }

// CoveredText returns the covered text and whether it is set
func (a *Annotation) CoveredText() (string, bool) {
	if a.coveredText == nil {
		return "", false
	}
	return *a.coveredText, true
}

// Len returns the span length in code points
func (a *Annotation) Len() int { return a.end - a.begin }

// SetBegin moves the start of the span.
func (a *Annotation) SetBegin(begin int) error {
	return a.setSpan(begin, a.end, a.coveredText)
}

// SetEnd moves the end of the span.
func (a *Annotation) SetEnd(end int) error {
	return a.setSpan(a.begin, end, a.coveredText)
}

// SetSpan moves both offsets at once, keeping the covered text.
// Use it when a single-offset move would pass through an invalid span.
func (a *Annotation) SetSpan(begin, end int) error {
	return a.setSpan(begin, end, a.coveredText)
}

// SetSpanText replaces the offsets and the covered text together.
func (a *Annotation) SetSpanText(begin, end int, coveredText string) error {
	return a.setSpan(begin, end, &coveredText)
}

// SetCoveredText replaces the covered text.
func (a *Annotation) SetCoveredText(text string) error {
	return a.setSpan(a.begin, a.end, &text)
}

// ClearCoveredText removes the covered text. It cannot fail.
func (a *Annotation) ClearCoveredText() {
	a.coveredText = nil
}

func (a *Annotation) setSpan(begin, end int, text *string) error {
	if err := a.checker().checkSpan("", begin, end, text); err != nil {
		return err
	}
	a.begin, a.end, a.coveredText = begin, end, text
	return nil
}

func (a *Annotation) checker() *Validator {
	if a.validator != nil {
		return a.validator
	}
	return strictValidator
}

// Assertion carries the clinical qualifiers shared by most annotation kinds.
type Assertion struct {
	Negated          *bool             `acd:"negated"`
	Hypothetical     *bool             `acd:"hypothetical"`
	HypotheticalType *string           `acd:"hypotheticalType"`
	InsightModelData *InsightModelData `acd:"insightModelData"`
	Temporal         []*TemporalData   `acd:"temporal"`
}

// ClinicalAnnotation is the generic annotation kind used for indicator
// categories, including the experimental ones registered at startup.
type ClinicalAnnotation struct {
	Annotation
	Assertion
}

// NewAnnotation returns an Annotation over [begin, end) bound to v.
func (v *Validator) NewAnnotation(begin, end int) (Annotation, error) {
	if err := v.checkSpan("", begin, end, nil); err != nil {
		return Annotation{}, err
	}
	return Annotation{begin: begin, end: end, validator: v}, nil
}

// Cover returns an Annotation over [begin, end) of text with the covered
// text filled in from text.
func (v *Validator) Cover(text string, begin, end int) (Annotation, error) {
	if err := v.checkSpan("", begin, end, nil); err != nil {
		return Annotation{}, err
	}
	covered, ok := Substring(text, begin, end)
	if !ok {
		return Annotation{}, newSchemaError("end", end, "span exceeds text of %d code points", utf8.RuneCountInString(text))
	}
	return Annotation{begin: begin, end: end, coveredText: &covered, validator: v}, nil
}

// Substring returns the code points [begin, end) of text.
func Substring(text string, begin, end int) (string, bool) {
	if begin < 0 || end < begin {
		return "", false
	}
	start, stop := -1, -1
	i := 0
	for pos := range text {
		if i == begin {
			start = pos
		}
		if i == end {
			stop = pos
			break
		}
		i++
	}
	if start < 0 && i == begin {
		start = len(text)
	}
	if stop < 0 && i == end {
		stop = len(text)
	}
	if start < 0 || stop < 0 {
		return "", false
	}
	return text[start:stop], true
}
