// Package coderesolution provides an annotator that keeps only the most
// specific code of a known hierarchy among a document's attribute values.
package coderesolution

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/acd-annotator/acd-annotator-go/pkg/annotator"
	"github.com/acd-annotator/acd-annotator-go/pkg/container"
)

// CodeField is the attribute value field holding comma separated SNOMED codes
const CodeField = "snomedConceptId"

// LungCancerHierarchy orders codes from least to most specific: cancer, lung
// cancer, non-small-cell lung cancer.
var LungCancerHierarchy = []string{"363346000", "93880001", "254637007"}

// Annotator removes attribute values whose codes are subsumed by a more
// specific code found elsewhere in the same document.
type Annotator struct {
	annotator.Base
	hierarchy []string
	rank      map[string]int
}

// New creates an Annotator for hierarchy, ordered from least to most
// specific. LungCancerHierarchy is used when hierarchy is empty.
func New(hierarchy []string) (*Annotator, error) {
	if len(hierarchy) == 0 {
		hierarchy = LungCancerHierarchy
	}

	rank := make(map[string]int, len(hierarchy))
	for i, code := range hierarchy {
		code = strings.TrimSpace(code)
		if code == "" {
			return nil, errors.New("code hierarchy contains an empty code")
		}
		if _, dup := rank[code]; dup {
			return nil, errors.New("code hierarchy lists " + code + " twice")
		}
		rank[code] = i
	}

	log.Info().Strs("codes", hierarchy).Msg("Initializing code resolution annotator")
	return &Annotator{hierarchy: hierarchy, rank: rank}, nil
}

// codes returns the hierarchy ranks of the codes of attr
func (a *Annotator) codes(attr *container.AttributeValue) []int {
	value, ok := container.Field[string](attr, CodeField)
	if !ok {
		return nil
	}
	var ranks []int
	for _, code := range strings.Split(value, ",") {
		if r, ok := a.rank[strings.TrimSpace(code)]; ok {
			ranks = append(ranks, r)
		}
	}
	return ranks
}

// Annotate drops every attribute value carrying a hierarchy code other than
// the most specific one present in the document.
func (a *Annotator) Annotate(_ context.Context, req *annotator.Request, doc *container.UnstructuredContainer) error {
	attrs := doc.Data.AttributeValues
	if len(attrs) == 0 {
		return nil
	}

	best := -1
	for _, attr := range attrs {
		for _, r := range a.codes(attr) {
			best = max(best, r)
		}
	}
	if best < 0 {
		return nil
	}

	kept := attrs[:0]
	removed := 0
	for _, attr := range attrs {
		subsumed := false
		for _, r := range a.codes(attr) {
			if r != best {
				subsumed = true
				break
			}
		}
		if subsumed {
			removed++
			continue
		}
		kept = append(kept, attr)
	}
	clear(attrs[len(kept):])
	doc.Data.AttributeValues = kept

	req.Logger.Debug().Int("removed", removed).Str("code", a.hierarchy[best]).Msg("Code resolution finished")
	return nil
}
