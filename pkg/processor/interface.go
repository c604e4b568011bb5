package processor

import (
	"context"
	"image"
)

// Input is handed to local preprocessors.
type Input struct {
	Image      image.Image
	Resolution int
	ThresholdA float64
	ThresholdB float64
	// Model is nil when no model is selected or the preprocessor is model-free.
	Model *string
}

type Output struct {
	// Image may be nil for preprocessors that only produce structured data.
	Image   image.Image
	IsImage bool
}

// JSONSink receives the auxiliary JSON document a preprocessor emits.
type JSONSink func(document string)

// Preprocessor is either ImageOnly or EmitsJSON. Only EmitsJSON preprocessors
// are handed a JSONSink; a fresh sink on every call would make the call
// unmemoizable, so ImageOnly preprocessors never receive one.
type Preprocessor interface {
	EmitsJSON() bool
}

type ImageOnly func(ctx context.Context, in Input) (Output, error)

func (ImageOnly) EmitsJSON() bool { return false }

type EmitsJSON func(ctx context.Context, in Input, sink JSONSink) (Output, error)

func (EmitsJSON) EmitsJSON() bool { return true }
