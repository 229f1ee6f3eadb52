// Package regex provides an annotator that adds a Concept over every match
// of a set of regular expressions.
package regex

import (
	"context"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/acd-annotator/acd-annotator-go/pkg/annotator"
	"github.com/acd-annotator/acd-annotator-go/pkg/container"
)

const (
	// MatchCUI is the cui of every Concept the annotator creates
	MatchCUI = "RegexAnnotator"
	// MatchType is the type of every Concept the annotator creates
	MatchType = "RegexType"
)

// DefaultPatterns find mentions of the person a note is about.
var DefaultPatterns = []string{
	`\b[Pp]atients?\b`,
	`\b[Ss]ubjects?\b`,
	`\b[Ii]npatients?\b`,
	`\b[Oo]utpatients?\b`,
	`\b[Ss]ufferers?\b`,
}

// Annotator creates Concepts over regular expression matches.
type Annotator struct {
	annotator.Base
	patterns []*regexp.Regexp
}

// New compiles patterns into an Annotator. DefaultPatterns are used when
// patterns is empty.
func New(patterns []string) (*Annotator, error) {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	a := &Annotator{patterns: make([]*regexp.Regexp, 0, len(patterns))}
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
		a.patterns = append(a.patterns, re)
	}

	log.Info().Strs("patterns", patterns).Msg("Initializing regex annotator")
	return a, nil
}

// Annotate appends a Concept for every match of every pattern, pattern by
// pattern in configuration order.
func (a *Annotator) Annotate(_ context.Context, req *annotator.Request, doc *container.UnstructuredContainer) error {
	counts := make(map[string]int, len(a.patterns))

	for _, re := range a.patterns {
		for _, loc := range re.FindAllStringIndex(doc.Text, -1) {
			if loc[0] == loc[1] {
				continue
			}
			begin := utf8.RuneCountInString(doc.Text[:loc[0]])
			end := begin + utf8.RuneCountInString(doc.Text[loc[0]:loc[1]])

			span, err := req.Validator.Cover(doc.Text, begin, end)
			if err != nil {
				return err
			}
			concept := &container.Concept{
				ClinicalAnnotation: container.ClinicalAnnotation{Annotation: span},
				CUI:                strPtr(MatchCUI),
			}
			concept.Type = strPtr(MatchType)

			doc.Data.Concepts = append(doc.Data.Concepts, concept)
			counts[re.String()]++
		}
	}

	req.Logger.Debug().Interface("pattern_match_counts", counts).Msg("Regex annotator finished")
	return nil
}

func strPtr(s string) *string { return &s }
