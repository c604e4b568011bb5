package dispatch

import (
	"context"
	"fmt"
	"image"

	"github.com/xingzheai/tss-annotator/pkg/processor"
)

// LocalStrategy runs in-process preprocessors from a registry.
type LocalStrategy struct {
	registry *processor.Registry
}

func NewLocalStrategy(registry *processor.Registry) *LocalStrategy {
	return &LocalStrategy{registry}
}

// Resolve maps a module or its display alias to a registered preprocessor.
func (s *LocalStrategy) Resolve(module string) (string, processor.Preprocessor, error) {
	name, preprocessor, found := s.registry.Lookup(module)
	if !found {
		return name, nil, fmt.Errorf("%w: %s", ErrUnknownModule, module)
	}

	return name, preprocessor, nil
}

// Execute invokes preprocessor. sink is only handed to EmitsJSON
// preprocessors.
func (s *LocalStrategy) Execute(
	ctx context.Context,
	preprocessor processor.Preprocessor,
	input image.Image,
	req Request,
	sink processor.JSONSink,
) (processor.Output, error) {
	in := processor.Input{
		Image:      input,
		Resolution: req.Params.Resolution,
		ThresholdA: req.Params.ThresholdA,
		ThresholdB: req.Params.ThresholdB,
		Model:      req.Model,
	}

	switch run := preprocessor.(type) {
	case processor.ImageOnly:
		return run(ctx, in)
	case processor.EmitsJSON:
		if sink == nil {
			sink = func(string) {}
		}
		return run(ctx, in, sink)
	}

	return processor.Output{}, fmt.Errorf("%w: unsupported preprocessor kind %T", ErrUnknownModule, preprocessor)
}
