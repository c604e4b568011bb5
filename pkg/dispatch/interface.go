package dispatch

import (
	"context"
	"image"

	"github.com/xingzheai/tss-annotator/pkg/postprocess"
	"github.com/xingzheai/tss-annotator/pkg/processor"
)

// Mode selects the execution strategy. Worker processes never call the
// remote service, whatever RemoteEnabled says.
type Mode struct {
	RemoteEnabled bool
	Worker        bool
}

func (m Mode) Remote() bool {
	return m.RemoteEnabled && !m.Worker
}

type Params struct {
	Resolution   int
	ThresholdA   float64
	ThresholdB   float64
	TargetWidth  int
	TargetHeight int
	PixelPerfect bool
	ResizeMode   processor.ResizeMode
}

type Request struct {
	// Image is the source image. A nil image yields an empty result.
	Image image.Image
	// Mask may be nil.
	Mask   image.Image
	Module string
	// Model is nil when no model is selected.
	Model  *string
	Params Params
}

// Result is a finalized annotation. An empty result with a Reason means the
// remote job produced nothing usable; the caller decides what to do next.
type Result struct {
	postprocess.Display
	Reason error
	Cached bool
}

type Dispatcher interface {
	Run(ctx context.Context, req Request) (Result, error)
}
