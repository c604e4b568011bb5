package upload

import (
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/franela/goblin"
	"github.com/xingzheai/tss-annotator/pkg/auth"
	"github.com/xingzheai/tss-annotator/pkg/tss"
	testutils "github.com/xingzheai/tss-annotator/test/utils"
)

func startStorage(t *testing.T, registerCode int, putStatus int) (*testutils.TestHttpServer, *tss.Client) {
	server := testutils.NewTestHttpServer()
	server.HandleEnvelope("/v1/oss-files", func(r *http.Request) (int, interface{}) {
		var reg registration
		json.NewDecoder(r.Body).Decode(&reg)
		return registerCode, map[string]string{
			"url":     server.URL() + "/presigned/" + reg.Filename + "?sig=1",
			"oss_key": "uploads/" + reg.Filename,
		}
	})
	server.HandleFunc("/presigned/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(putStatus)
	})
	server.Start(t)

	store := auth.NewStore()
	store.Set(auth.Credential{Token: "abc", ExpiresAt: time.Now().Add(time.Hour)})
	client := tss.NewClient(tss.Config{Host: server.URL(), Bucket: "xingzheaidraw"}, auth.NewTokenProvider(store))

	return server, client
}

func TestUploader(t *testing.T) {
	g := goblin.Goblin(t)
	ctx := context.Background()

	g.Describe("Upload", func() {
		g.It("Should register descriptor and put bytes to pre-signed url", func() {
			server, client := startStorage(t, tss.CodeOK, http.StatusOK)
			uploader := &uploader{client, func() string { return "fixed.png" }}

			blob, err := uploader.Upload(ctx, []byte{1, 2, 3, 4}, true)

			g.Assert(err).IsNil()
			g.Assert(blob).Equal(UploadedBlob{Key: "uploads/fixed.png", Bucket: "xingzheaidraw"})
			g.Assert(blob.Path()).Equal("xingzheaidraw/uploads/fixed.png")

			registrations := server.Requests("/v1/oss-files")
			g.Assert(len(registrations)).Equal(1)
			g.Assert(registrations[0].Method).Equal(http.MethodPost)
			g.Assert(registrations[0].Header.Get("Authorization")).Equal("Bearer abc")

			var reg map[string]interface{}
			json.Unmarshal(registrations[0].Body, &reg)
			g.Assert(reg["filename"]).Equal("fixed.png")
			g.Assert(reg["file_size"]).Equal(float64(4))
			g.Assert(reg["persistent"]).Equal(true)

			puts := server.Requests("/presigned/fixed.png")
			g.Assert(len(puts)).Equal(1)
			g.Assert(puts[0].Method).Equal(http.MethodPut)
			g.Assert(puts[0].Query).Equal("sig=1")
			g.Assert(puts[0].Header.Get("Content-Type")).Equal("image/png")
			g.Assert(puts[0].Header.Get("Authorization")).Equal("")
			g.Assert(puts[0].Body).Equal([]byte{1, 2, 3, 4})
		})

		g.It("Should fail with ErrUploadFailed when registration is rejected", func() {
			server, client := startStorage(t, 401, http.StatusOK)
			uploader := NewUploader(client)

			_, err := uploader.Upload(ctx, []byte{1}, false)

			g.Assert(errors.Is(err, ErrUploadFailed)).IsTrue()
			g.Assert(len(server.Requests("/v1/oss-files"))).Equal(1)
		})

		g.It("Should fail with ErrUploadFailed when put is rejected", func() {
			_, client := startStorage(t, tss.CodeOK, http.StatusForbidden)
			uploader := NewUploader(client)

			_, err := uploader.Upload(ctx, []byte{1}, false)

			g.Assert(errors.Is(err, ErrUploadFailed)).IsTrue()
		})

		g.It("Should encode images as png before upload", func() {
			server, client := startStorage(t, tss.CodeOK, http.StatusOK)
			uploader := &uploader{client, func() string { return "img.png" }}
			img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
			img.Set(0, 0, color.NRGBA{255, 0, 0, 255})

			_, err := uploader.UploadImage(ctx, img, false)

			g.Assert(err).IsNil()
			puts := server.Requests("/presigned/img.png")
			g.Assert(strings.HasPrefix(string(puts[0].Body), "\x89PNG")).IsTrue()
		})
	})

	g.Describe("NewFilename", func() {
		g.It("Should never repeat across 10000 sequential calls", func() {
			seen := make(map[string]struct{}, 10000)
			for i := 0; i < 10000; i++ {
				name := NewFilename()
				if _, exists := seen[name]; exists {
					g.Fail("duplicate filename " + name)
				}
				seen[name] = struct{}{}
			}

			g.Assert(len(seen)).Equal(10000)
		})

		g.It("Should use png extension", func() {
			g.Assert(strings.HasSuffix(NewFilename(), ".png")).IsTrue()
		})
	})
}
