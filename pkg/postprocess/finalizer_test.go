package postprocess_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/franela/goblin"
	"github.com/golang/mock/gomock"
	"github.com/xingzheai/tss-annotator/pkg/postprocess"
	mock_postprocess "github.com/xingzheai/tss-annotator/pkg/postprocess/mocks"
)

func TestFinalizer(t *testing.T) {
	g := goblin.Goblin(t)

	g.Describe("Finalize", func() {
		g.It("Should return empty display and still forward pose json when raw image is absent", func() {
			mockCtrl := gomock.NewController(g)
			defer mockCtrl.Finish()

			editor := mock_postprocess.NewMockPoseEditor(mockCtrl)
			editor.EXPECT().Update(`{"people": []}`).Times(1)

			display := postprocess.NewFinalizer(editor).Finalize(nil, false, `{"people": []}`)

			g.Assert(display.Empty()).IsTrue()
			g.Assert(display.PoseJSON).Equal(`{"people": []}`)
		})

		g.It("Should forward empty pose json for image results", func() {
			mockCtrl := gomock.NewController(g)
			defer mockCtrl.Finish()

			editor := mock_postprocess.NewMockPoseEditor(mockCtrl)
			editor.EXPECT().Update("").Times(1)

			raw := imaging.New(2, 2, color.NRGBA{1, 2, 3, 255})
			display := postprocess.NewFinalizer(editor).Finalize(raw, true, "")

			g.Assert(display.Empty()).IsFalse()
			g.Assert(display.PoseJSON).Equal("")
		})

		g.It("Should not display results that are not flagged as images", func() {
			raw := imaging.New(2, 2, color.NRGBA{1, 2, 3, 255})

			display := postprocess.NewFinalizer(nil).Finalize(raw, false, "{}")

			g.Assert(display.Empty()).IsTrue()
			g.Assert(display.PoseJSON).Equal("{}")
		})
	})

	g.Describe("VisualizeInpaintMask", func() {
		g.It("Should halve alpha of masked regions", func() {
			raw := image.NewNRGBA(image.Rect(0, 0, 3, 1))
			raw.Pix = []uint8{1, 1, 1, 0, 2, 2, 2, 255, 3, 3, 3, 100}

			result := postprocess.VisualizeInpaintMask(raw).(*image.NRGBA)

			g.Assert(result.Pix).Equal([]uint8{1, 1, 1, 255, 2, 2, 2, 128, 3, 3, 3, 205})
			g.Assert(raw.Pix[3]).Equal(uint8(0))
		})

		g.It("Should leave images without alpha channel unchanged", func() {
			raw := image.NewGray(image.Rect(0, 0, 2, 2))

			result := postprocess.VisualizeInpaintMask(raw)

			g.Assert(result == image.Image(raw)).IsTrue()
		})

		g.It("Should leave opaque non-premultiplied images unchanged", func() {
			raw := imaging.New(2, 1, color.NRGBA{7, 8, 9, 255})

			result := postprocess.VisualizeInpaintMask(raw)

			g.Assert(result == image.Image(raw)).IsTrue()
			g.Assert(raw.Pix[3]).Equal(uint8(255))
		})

		g.It("Should leave opaque premultiplied images unchanged", func() {
			raw := image.NewRGBA(image.Rect(0, 0, 1, 1))
			raw.Set(0, 0, color.RGBA{9, 9, 9, 255})

			result := postprocess.VisualizeInpaintMask(raw)

			g.Assert(result == image.Image(raw)).IsTrue()
		})
	})
}
