package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"image"

	"github.com/disintegration/imaging"
)

// Key holds every parameter that determines an annotation result.
type Key struct {
	Strategy     string  `json:"strategy"`
	Module       string  `json:"module"`
	Model        string  `json:"model"`
	Resolution   int     `json:"resolution"`
	ThresholdA   float64 `json:"thresholdA"`
	ThresholdB   float64 `json:"thresholdB"`
	TargetWidth  int     `json:"targetWidth"`
	TargetHeight int     `json:"targetHeight"`
	PixelPerfect bool    `json:"pixelPerfect"`
	ResizeMode   string  `json:"resizeMode"`
}

// Signature hashes key together with the pixels of images. A nil image is
// hashed as a distinct marker, so a missing mask never collides with a
// present one.
func Signature(key Key, images ...image.Image) string {
	hash := sha256.New()

	encodedKey, _ := json.Marshal(key)
	hash.Write(encodedKey)

	for _, img := range images {
		if img == nil {
			hash.Write([]byte{0})
			continue
		}

		pixels := imaging.Clone(img)
		bounds := pixels.Bounds()

		var size [9]byte
		size[0] = 1
		binary.BigEndian.PutUint32(size[1:5], uint32(bounds.Dx()))
		binary.BigEndian.PutUint32(size[5:9], uint32(bounds.Dy()))
		hash.Write(size[:])
		hash.Write(pixels.Pix)
	}

	return hex.EncodeToString(hash.Sum(nil))
}
