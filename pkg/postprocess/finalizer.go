package postprocess

import (
	"image"

	"github.com/disintegration/imaging"
)

type finalizer struct {
	editor PoseEditor
}

var _ Finalizer = (*finalizer)(nil)

func NewFinalizer(editor PoseEditor) Finalizer {
	if editor == nil {
		editor = NopPoseEditor{}
	}

	return &finalizer{editor}
}

// Finalize forwards poseJSON to the pose editor even when raw is absent, so
// JSON-only preprocessors still surface their keypoints.
func (f *finalizer) Finalize(raw image.Image, isImage bool, poseJSON string) Display {
	f.editor.Update(poseJSON)

	if raw == nil || !isImage {
		return Display{PoseJSON: poseJSON}
	}

	return Display{Image: VisualizeInpaintMask(raw), PoseJSON: poseJSON}
}

// VisualizeInpaintMask halves the opacity of masked regions of images that
// carry transparency: alpha becomes 255 - alpha/2. Fully opaque images are
// returned unchanged whatever their pixel format.
func VisualizeInpaintMask(img image.Image) image.Image {
	if !hasAlphaChannel(img) {
		return img
	}

	result := imaging.Clone(img)
	for i := 3; i < len(result.Pix); i += 4 {
		result.Pix[i] = 0xff - result.Pix[i]/2
	}

	return result
}

func hasAlphaChannel(img image.Image) bool {
	if typed, ok := img.(interface{ Opaque() bool }); ok {
		return !typed.Opaque()
	}

	return false
}

type NopPoseEditor struct{}

func (NopPoseEditor) Update(string) {}
