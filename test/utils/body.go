package testutils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

func bytesReader(body []byte) *bytes.Reader {
	return bytes.NewReader(body)
}

// SolidPNG encodes a width x height PNG filled with c.
func SolidPNG(width, height int, c color.Color) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	var buff bytes.Buffer
	if err := png.Encode(&buff, img); err != nil {
		panic("cannot encode testing png: " + err.Error())
	}

	return buff.Bytes()
}
