package processor

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strconv"
)

type ResizeMode int

const (
	// JustResize stretches the control image to the target size.
	JustResize ResizeMode = iota
	// CropAndResize fits the target inside the image and crops the overflow.
	CropAndResize
	// ResizeAndFill fits the image inside the target and fills the border.
	ResizeAndFill
)

var resizeModeNames = map[ResizeMode]string{
	JustResize:    "Just Resize",
	CropAndResize: "Crop and Resize",
	ResizeAndFill: "Resize and Fill",
}

func (m ResizeMode) String() string {
	if name, found := resizeModeNames[m]; found {
		return name
	}

	return "ResizeMode(" + strconv.Itoa(int(m)) + ")"
}

// ParseResizeMode accepts a numeric index or a mode name.
func ParseResizeMode(value string) (ResizeMode, error) {
	if index, err := strconv.Atoi(value); err == nil {
		mode := ResizeMode(index)
		if _, found := resizeModeNames[mode]; found {
			return mode, nil
		}
	}

	for mode, name := range resizeModeNames {
		if name == value {
			return mode, nil
		}
	}

	return JustResize, fmt.Errorf("%w: %q", ErrUnknownResizeMode, value)
}

// PixelPerfectResolution computes the preprocessor resolution that maps the
// image pixels one to one onto the target canvas.
func PixelPerfectResolution(img image.Image, targetWidth, targetHeight int, mode ResizeMode) int {
	bounds := img.Bounds()
	rawWidth, rawHeight := float64(bounds.Dx()), float64(bounds.Dy())
	if rawWidth == 0 || rawHeight == 0 {
		return 0
	}

	k0 := float64(targetHeight) / rawHeight
	k1 := float64(targetWidth) / rawWidth

	var estimation float64
	if mode == ResizeAndFill {
		estimation = math.Min(k0, k1) * math.Min(rawWidth, rawHeight)
	} else {
		estimation = math.Max(k0, k1) * math.Min(rawWidth, rawHeight)
	}

	return int(math.RoundToEven(estimation))
}

var (
	ErrUnknownResizeMode = errors.New("unknown resize mode")
)
