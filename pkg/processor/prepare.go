package processor

import (
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
)

// Mask thresholds on the first channel. A mask entirely below the low bound or
// entirely above the high bound carries no selection.
const (
	maskLowThreshold  = 5
	maskHighThreshold = 250
)

// Opaque converts img to an opaque NRGBA image, compositing translucent pixels
// over white.
func Opaque(img image.Image) *image.NRGBA {
	result := imaging.Clone(img)
	pix := result.Pix
	for i := 0; i < len(pix); i += 4 {
		alpha := uint32(pix[i+3])
		if alpha == 0xff {
			continue
		}

		for c := 0; c < 3; c++ {
			pix[i+c] = uint8((uint32(pix[i+c])*alpha + 0xff*(0xff-alpha)) / 0xff)
		}
		pix[i+3] = 0xff
	}

	return result
}

// BlankMask returns an all-black mask covering img.
func BlankMask(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	return imaging.New(bounds.Dx(), bounds.Dy(), color.NRGBA{0, 0, 0, 0xff})
}

// HasMask reports whether the first channel of mask selects anything.
func HasMask(mask image.Image) bool {
	channel := firstChannel(mask)
	allLow, allHigh := true, true
	for _, value := range channel.Pix {
		if value > maskLowThreshold {
			allLow = false
		}
		if value < maskHighThreshold {
			allHigh = false
		}
		if !allLow && !allHigh {
			return true
		}
	}

	return false
}

// PrepareInput builds the image a local preprocessor receives for module.
// Inpaint modules get the color image with the mask as alpha; other modules
// get the mask itself when it selects anything and ignoreNonInpaintMask is off.
func PrepareInput(img, mask image.Image, module string, ignoreNonInpaintMask bool) image.Image {
	colorImage := Opaque(img)
	if mask == nil {
		return colorImage
	}

	if strings.Contains(module, "inpaint") {
		alpha := firstChannel(mask)
		for i := 0; i+3 < len(colorImage.Pix) && i/4 < len(alpha.Pix); i += 4 {
			colorImage.Pix[i+3] = alpha.Pix[i/4]
		}
		return colorImage
	}

	if HasMask(mask) && !ignoreNonInpaintMask {
		return grayToRGB(firstChannel(mask))
	}

	return colorImage
}

func firstChannel(img image.Image) *image.Gray {
	source := imaging.Clone(img)
	bounds := source.Bounds()
	channel := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for i := 0; i < len(channel.Pix); i++ {
		channel.Pix[i] = source.Pix[i*4]
	}

	return channel
}

func grayToRGB(gray *image.Gray) *image.NRGBA {
	bounds := gray.Bounds()
	result := image.NewNRGBA(bounds)
	for i, value := range gray.Pix {
		result.Pix[i*4] = value
		result.Pix[i*4+1] = value
		result.Pix[i*4+2] = value
		result.Pix[i*4+3] = 0xff
	}

	return result
}
