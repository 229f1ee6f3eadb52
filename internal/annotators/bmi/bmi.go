// Package bmi provides a structured annotator that computes a body mass
// index from a height in inches and a weight in pounds.
package bmi

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"sync"

	"github.com/acd-annotator/acd-annotator-go/pkg/annotator"
	"github.com/acd-annotator/acd-annotator-go/pkg/container"
)

// Field names on structured container data
const (
	HeightField = "heightInches"
	WeightField = "weightPounds"
	BMIField    = "bmi"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterFields declares heightInches and weightPounds as integer fields of
// structured container data, so that requests carrying other types are
// rejected. It is safe to call more than once.
func RegisterFields() error {
	registerOnce.Do(func() {
		for _, name := range []string{HeightField, WeightField} {
			if err := container.RegisterField[container.StructuredContainerData](name, container.IntField); err != nil {
				registerErr = fmt.Errorf("register %s: %w", name, err)
				return
			}
		}
	})
	return registerErr
}

// Annotator computes BMI for structured containers. It leaves unstructured
// containers alone.
type Annotator struct {
	annotator.Base
}

// New registers the BMI input fields and returns an Annotator.
func New() (*Annotator, error) {
	if err := RegisterFields(); err != nil {
		return nil, err
	}
	return &Annotator{}, nil
}

// Annotate does nothing; BMI inputs only arrive in structured containers.
func (a *Annotator) Annotate(context.Context, *annotator.Request, *container.UnstructuredContainer) error {
	return nil
}

// AnnotateStructured sets bmi, rounded to one decimal, when both height and
// weight are present.
func (a *Annotator) AnnotateStructured(_ context.Context, req *annotator.Request, doc *container.StructuredContainer) error {
	height, okHeight := container.Field[int](doc.Data, HeightField)
	weight, okWeight := container.Field[int](doc.Data, WeightField)
	if !okHeight || !okWeight {
		return nil
	}
	if height <= 0 {
		return annotator.NewError(http.StatusBadRequest, HeightField+" must be a positive number", nil)
	}

	return req.Validator.Set(doc.Data, BMIField, Compute(height, weight))
}

// Compute returns the body mass index for a height in inches and a weight in
// pounds, rounded to one decimal.
func Compute(heightInches, weightPounds int) float64 {
	h := float64(heightInches)
	bmi := float64(weightPounds) / (h * h) * 703
	return math.Round(bmi*10) / 10
}
