package annotators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acd-annotator/acd-annotator-go/internal/annotators"
	"github.com/acd-annotator/acd-annotator-go/internal/annotators/bmi"
	"github.com/acd-annotator/acd-annotator-go/internal/annotators/coderesolution"
	"github.com/acd-annotator/acd-annotator-go/internal/annotators/regex"
	"github.com/acd-annotator/acd-annotator-go/internal/annotators/sentence"
	"github.com/acd-annotator/acd-annotator-go/internal/config"
	"github.com/acd-annotator/acd-annotator-go/pkg/annotator"
)

func TestKinds(t *testing.T) {
	assert.Equal(t, []string{"bmi", "coderesolution", "regex", "sentence"}, annotators.Kinds())
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.AnnotatorSettings
		check   func(t *testing.T, ann annotator.Annotator)
		wantErr string
	}{
		{
			name: "regex",
			cfg:  config.AnnotatorSettings{Kind: "regex", Patterns: []string{`\bpain\b`}},
			check: func(t *testing.T, ann annotator.Annotator) {
				assert.IsType(t, &regex.Annotator{}, ann)
			},
		},
		{
			name: "bmi is structured",
			cfg:  config.AnnotatorSettings{Kind: "bmi"},
			check: func(t *testing.T, ann annotator.Annotator) {
				assert.IsType(t, &bmi.Annotator{}, ann)
				_, ok := ann.(annotator.StructuredAnnotator)
				assert.True(t, ok)
			},
		},
		{
			name: "coderesolution",
			cfg:  config.AnnotatorSettings{Kind: "coderesolution"},
			check: func(t *testing.T, ann annotator.Annotator) {
				assert.IsType(t, &coderesolution.Annotator{}, ann)
			},
		},
		{
			name: "sentence",
			cfg:  config.AnnotatorSettings{Kind: "sentence"},
			check: func(t *testing.T, ann annotator.Annotator) {
				assert.IsType(t, &sentence.Annotator{}, ann)
			},
		},
		{
			name:    "unknown kind",
			cfg:     config.AnnotatorSettings{Kind: "spacy"},
			wantErr: `unknown annotator kind "spacy" (available: bmi, coderesolution, regex, sentence)`,
		},
		{
			name:    "bad pattern",
			cfg:     config.AnnotatorSettings{Kind: "regex", Patterns: []string{"("}},
			wantErr: "create regex annotator: invalid pattern",
		},
		{
			name:    "bad hierarchy",
			cfg:     config.AnnotatorSettings{Kind: "coderesolution", CodeHierarchy: []string{"1", "1"}},
			wantErr: "create coderesolution annotator",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ann, err := annotators.New(&tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, ann)
				return
			}
			require.NoError(t, err)
			tt.check(t, ann)
		})
	}
}
