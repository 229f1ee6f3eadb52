package bmi_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acd-annotator/acd-annotator-go/internal/annotators/bmi"
	"github.com/acd-annotator/acd-annotator-go/pkg/annotator"
	"github.com/acd-annotator/acd-annotator-go/pkg/container"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		height, weight int
		want           float64
	}{
		{height: 74, weight: 170, want: 21.8},
		{height: 70, weight: 170, want: 24.4},
		{height: 60, weight: 100, want: 19.5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, bmi.Compute(tt.height, tt.weight))
	}
}

func process(t *testing.T, a *bmi.Annotator, v *container.Validator, doc string) (*container.ContainerGroup, error) {
	t.Helper()
	raw, err := container.DecodeRaw([]byte(doc))
	require.NoError(t, err)
	group, err := v.Parse(raw)
	if err != nil {
		return nil, err
	}

	req := &annotator.Request{Logger: zerolog.Nop(), Validator: v}
	for _, s := range group.Structured {
		s.EnsureData()
		if err := a.AnnotateStructured(context.Background(), req, s); err != nil {
			return nil, err
		}
	}
	return group, nil
}

func TestAnnotateStructured(t *testing.T) {
	a, err := bmi.New()
	require.NoError(t, err)
	v := container.NewValidator(container.Strict)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "computes bmi",
			in:   `{"structured": [{"data": {"heightInches": 74, "weightPounds": 170}}]}`,
			want: `{"structured": [{"data": {"heightInches": 74, "weightPounds": 170, "bmi": 21.8}}]}`,
		},
		{
			name: "missing weight",
			in:   `{"structured": [{"data": {"heightInches": 74}}]}`,
			want: `{"structured": [{"data": {"heightInches": 74}}]}`,
		},
		{
			name: "no data",
			in:   `{"structured": [{"id": "s1"}]}`,
			want: `{"structured": [{"id": "s1", "data": {}}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group, err := process(t, a, v, tt.in)
			require.NoError(t, err)
			out, err := container.MarshalJSON(group)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(out))
		})
	}
}

func TestRegisteredFieldsAreTyped(t *testing.T) {
	_, err := bmi.New()
	require.NoError(t, err)
	v := container.NewValidator(container.Strict)

	_, err = process(t, &bmi.Annotator{}, v, `{"structured": [{"data": {"heightInches": "74", "weightPounds": 170}}]}`)
	require.Error(t, err)
	assert.True(t, container.IsSchemaError(err))

	// Misspellings of the registered names are rejected too
	_, err = process(t, &bmi.Annotator{}, v, `{"structured": [{"data": {"height_inches": 74}}]}`)
	require.Error(t, err)
}

func TestZeroHeight(t *testing.T) {
	a, err := bmi.New()
	require.NoError(t, err)

	_, err = process(t, a, container.NewValidator(container.Strict), `{"structured": [{"data": {"heightInches": 0, "weightPounds": 170}}]}`)
	require.Error(t, err)

	var annErr *annotator.Error
	require.ErrorAs(t, err, &annErr)
	assert.Equal(t, http.StatusBadRequest, annErr.StatusCode)
}

func TestNewIsRepeatable(t *testing.T) {
	for i := 0; i < 3; i++ {
		_, err := bmi.New()
		require.NoError(t, err)
	}
	fields, ok := container.Describe("StructuredContainerData")
	require.True(t, ok)
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{bmi.HeightField, bmi.WeightField}, names)
}
