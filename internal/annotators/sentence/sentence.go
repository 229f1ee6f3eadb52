// Package sentence provides an annotator that splits documents into
// sentences with a small set of punctuation and layout rules.
package sentence

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/acd-annotator/acd-annotator-go/pkg/annotator"
	"github.com/acd-annotator/acd-annotator-go/pkg/container"
)

// Field is the unstructured data field holding the sentences
const Field = "sentences"

// MatchType is the type of every Sentence the annotator creates
const MatchType = "RuleSentence"

// Sentence is a span of text forming one sentence.
type Sentence struct {
	container.Annotation
}

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterFields declares the sentences field on unstructured container
// data. It is safe to call more than once.
func RegisterFields() error {
	registerOnce.Do(func() {
		ft := container.ListOf(container.RecordOf[Sentence]())
		if err := container.RegisterField[container.UnstructuredContainerData](Field, ft); err != nil {
			registerErr = fmt.Errorf("register %s: %w", Field, err)
		}
	})
	return registerErr
}

// Annotator adds Sentence annotations to unstructured containers.
type Annotator struct {
	annotator.Base
}

// New registers the sentences field and returns an Annotator.
func New() (*Annotator, error) {
	if err := RegisterFields(); err != nil {
		return nil, err
	}
	return &Annotator{}, nil
}

// Annotate appends one Sentence per sentence of the text. A sentence runs
// from its first non-space character to the start of the next sentence, or
// to the end of the text.
func (a *Annotator) Annotate(_ context.Context, req *annotator.Request, doc *container.UnstructuredContainer) error {
	begins := Split(doc.Text)
	if len(begins) == 0 {
		return nil
	}
	length := len([]rune(doc.Text))

	sentences, _ := container.Field[[]*Sentence](doc.Data, Field)
	for i, begin := range begins {
		end := length
		if i+1 < len(begins) {
			end = begins[i+1]
		}
		span, err := req.Validator.Cover(doc.Text, begin, end)
		if err != nil {
			return err
		}
		typ := MatchType
		s := &Sentence{Annotation: span}
		s.Type = &typ
		sentences = append(sentences, s)
	}

	req.Logger.Debug().Int("sentences", len(begins)).Int("chars", length).Msg("Sentence annotator finished")
	return req.Validator.Set(doc.Data, Field, sentences)
}

// closers may follow a terminator inside the same sentence
const closers = `"')]}’”`

// Split returns the code point offset at which each sentence of text begins.
// A sentence ends after a run of '.', '!' or '?' (and any closing quotes or
// brackets) that is followed by whitespace, or at a blank line.
func Split(text string) []int {
	runes := []rune(text)
	var begins []int

	i := skipSpace(runes, 0)
	for i < len(runes) {
		begins = append(begins, i)
		i = sentenceEnd(runes, i)
		i = skipSpace(runes, i)
	}
	return begins
}

// sentenceEnd returns the offset just past the sentence starting at i
func sentenceEnd(runes []rune, i int) int {
	for i < len(runes) {
		r := runes[i]
		switch {
		case r == '.' || r == '!' || r == '?':
			j := i + 1
			for j < len(runes) && (runes[j] == '.' || runes[j] == '!' || runes[j] == '?') {
				j++
			}
			for j < len(runes) && strings.ContainsRune(closers, runes[j]) {
				j++
			}
			if j == len(runes) || unicode.IsSpace(runes[j]) {
				return j
			}
			i = j
		case r == '\n' && blankLineAt(runes, i):
			return i
		default:
			i++
		}
	}
	return i
}

// blankLineAt reports whether the newline at i is followed by another
// newline with only spaces in between
func blankLineAt(runes []rune, i int) bool {
	for j := i + 1; j < len(runes); j++ {
		switch {
		case runes[j] == '\n':
			return true
		case !unicode.IsSpace(runes[j]):
			return false
		}
	}
	return false
}

func skipSpace(runes []rune, i int) int {
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return i
}
