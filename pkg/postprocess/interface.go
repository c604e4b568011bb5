package postprocess

import "image"

// PoseEditor consumes the pose keypoints captured while preprocessing.
type PoseEditor interface {
	Update(poseJSON string)
}

// Display is a finalized annotation ready to be shown.
type Display struct {
	// Image is nil when there is nothing to show.
	Image    image.Image
	PoseJSON string
}

func (d Display) Empty() bool {
	return d.Image == nil
}

type Finalizer interface {
	Finalize(raw image.Image, isImage bool, poseJSON string) Display
}
