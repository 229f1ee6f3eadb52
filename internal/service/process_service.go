package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/acd-annotator/acd-annotator-go/internal/constants"
	"github.com/acd-annotator/acd-annotator-go/internal/utils"
	"github.com/acd-annotator/acd-annotator-go/pkg/annotator"
	"github.com/acd-annotator/acd-annotator-go/pkg/container"
	"github.com/acd-annotator/acd-annotator-go/pkg/offsets"
)

// PanicError wraps a value recovered from annotator logic.
type PanicError struct {
	Value interface{}
}

// Error implements the error interface
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// ProcessService runs the hosted annotator over container groups.
type ProcessService struct {
	annotator annotator.Annotator
	mode      container.Mode
}

// NewProcessService creates a ProcessService that validates containers in mode.
func NewProcessService(ann annotator.Annotator, mode container.Mode) *ProcessService {
	return &ProcessService{
		annotator: ann,
		mode:      mode,
	}
}

// Mode returns the validation mode of the service
func (s *ProcessService) Mode() container.Mode {
	return s.mode
}

// Process annotates a raw container group with offsets counted in UTF-16
// units and returns the annotated group in the same form. raw is realigned
// in place.
//
// Errors are *utils.AppError values: 400 when the input does not validate,
// the annotator's own status for *annotator.Error, and 500 when annotator
// logic fails or leaves an invalid container behind.
func (s *ProcessService) Process(ctx context.Context, req *annotator.Request, raw map[string]any) (map[string]any, error) {
	if req.Validator == nil {
		// Warnings raised while handling this request carry its correlation id
		req.Validator = container.NewValidator(s.mode, container.WithLogger(req.Logger))
	}

	offsets.UTF16ToCodePoints(raw)

	group, err := req.Validator.Parse(raw)
	if err != nil {
		req.Logger.Warn().Err(err).Msg("Input container failed validation")
		return nil, utils.NewInvalidInputError(err)
	}

	if err := s.annotate(ctx, req, group); err != nil {
		return nil, err
	}

	// Annotations built as struct literals are only checked here
	if err := req.Validator.Validate(group); err != nil {
		req.Logger.Error().Err(err).Msg("Annotator produced an invalid container")
		return nil, utils.NewInvalidOutputError(err)
	}

	result := container.ToRaw(group)
	offsets.CodePointsToUTF16(result)
	return result, nil
}

// annotate runs the annotator over every container of group
func (s *ProcessService) annotate(ctx context.Context, req *annotator.Request, group *container.ContainerGroup) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			req.Logger.Error().
				Str("panic", fmt.Sprintf("%v", rec)).
				Str("stack", string(debug.Stack())).
				Msg("Annotator panicked")
			err = classify(req, &PanicError{Value: rec})
		}
	}()

	for i, doc := range group.Unstructured {
		if doc == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return utils.NewInternalServerError(err)
		}
		doc.EnsureData()
		if err := s.annotator.Annotate(ctx, req, doc); err != nil {
			req.Logger.Debug().Int(constants.LogKeyDocument, i).Msg("Annotator failed on unstructured container")
			return classify(req, err)
		}
	}

	structured, ok := s.annotator.(annotator.StructuredAnnotator)
	for i, doc := range group.Structured {
		if doc == nil {
			continue
		}
		doc.EnsureData()
		if !ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			return utils.NewInternalServerError(err)
		}
		if err := structured.AnnotateStructured(ctx, req, doc); err != nil {
			req.Logger.Debug().Int(constants.LogKeyDocument, i).Msg("Annotator failed on structured container")
			return classify(req, err)
		}
	}
	return nil
}

// classify maps an annotator error to the response it produces
func classify(req *annotator.Request, err error) error {
	var annErr *annotator.Error
	var appErr *utils.AppError
	switch {
	case errors.As(err, &annErr), errors.As(err, &appErr):
		// Annotators may fail a request with their own status
		return utils.ParseError(err)
	case container.IsSchemaError(err):
		invalid := utils.NewInvalidOutputError(err)
		req.Logger.Error().Err(err).Msg(invalid.Description)
		return invalid
	}

	failure := utils.NewAnnotatorFailureError(err)
	req.Logger.Error().Err(err).Msg(constants.MsgAnnotatorFailure)
	return failure
}

// StartAnnotator runs the annotator's startup hook.
func StartAnnotator(ctx context.Context, ann annotator.Annotator) error {
	log.Info().Msg("Starting annotator")
	if err := ann.OnStartup(ctx); err != nil {
		return fmt.Errorf("annotator startup failed: %w", err)
	}
	return nil
}
