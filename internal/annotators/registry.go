// Package annotators maps annotator kinds, as named in configuration, to the
// example annotators that implement them.
package annotators

import (
	"fmt"
	"sort"
	"strings"

	"github.com/acd-annotator/acd-annotator-go/internal/annotators/bmi"
	"github.com/acd-annotator/acd-annotator-go/internal/annotators/coderesolution"
	"github.com/acd-annotator/acd-annotator-go/internal/annotators/regex"
	"github.com/acd-annotator/acd-annotator-go/internal/annotators/sentence"
	"github.com/acd-annotator/acd-annotator-go/internal/config"
	"github.com/acd-annotator/acd-annotator-go/pkg/annotator"
)

// Factory builds an annotator from its configuration section.
type Factory func(cfg *config.AnnotatorSettings) (annotator.Annotator, error)

// Registry lists every annotator kind the service can host.
var Registry = map[string]Factory{
	// regex: Concepts over regular expression matches
	"regex": func(cfg *config.AnnotatorSettings) (annotator.Annotator, error) {
		ann, err := regex.New(cfg.Patterns)
		if err != nil {
			return nil, err
		}
		return ann, nil
	},
	// bmi: body mass index of structured height and weight
	"bmi": func(*config.AnnotatorSettings) (annotator.Annotator, error) {
		ann, err := bmi.New()
		if err != nil {
			return nil, err
		}
		return ann, nil
	},
	// coderesolution: drops attribute values subsumed by a more specific code
	"coderesolution": func(cfg *config.AnnotatorSettings) (annotator.Annotator, error) {
		ann, err := coderesolution.New(cfg.CodeHierarchy)
		if err != nil {
			return nil, err
		}
		return ann, nil
	},
	// sentence: rule-based sentence spans
	"sentence": func(*config.AnnotatorSettings) (annotator.Annotator, error) {
		ann, err := sentence.New()
		if err != nil {
			return nil, err
		}
		return ann, nil
	},
}

// New creates the annotator configured by cfg.Kind.
func New(cfg *config.AnnotatorSettings) (annotator.Annotator, error) {
	factory, ok := Registry[cfg.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown annotator kind %q (available: %s)", cfg.Kind, strings.Join(Kinds(), ", "))
	}
	ann, err := factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("create %s annotator: %w", cfg.Kind, err)
	}
	return ann, nil
}

// Kinds returns the registered annotator kinds in sorted order.
func Kinds() []string {
	kinds := make([]string, 0, len(Registry))
	for kind := range Registry {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
