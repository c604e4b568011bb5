package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/go-chi/render"
	"github.com/gorilla/schema"
	"github.com/xingzheai/tss-annotator/pkg/cache"
	cacherepositories "github.com/xingzheai/tss-annotator/pkg/cache/repositories"
	"github.com/xingzheai/tss-annotator/pkg/catalog"
	"github.com/xingzheai/tss-annotator/pkg/dispatch"
	"github.com/xingzheai/tss-annotator/pkg/processor"
)

const (
	maxUploadSize     = 32 << 20
	annotationTimeout = 10 * time.Minute
	requestTimeout    = time.Minute
)

type annotateForm struct {
	Module       string  `schema:"module,required"`
	Model        string  `schema:"model"`
	Resolution   int     `schema:"resolution"`
	ThresholdA   float64 `schema:"threshold_a"`
	ThresholdB   float64 `schema:"threshold_b"`
	TargetWidth  int     `schema:"target_width"`
	TargetHeight int     `schema:"target_height"`
	PixelPerfect bool    `schema:"pixel_perfect"`
	ResizeMode   string  `schema:"resize_mode"`
	Format       string  `schema:"format"`
}

type annotateResponse struct {
	Image    string `json:"image,omitempty"`
	Mime     string `json:"mime,omitempty"`
	PoseJSON string `json:"pose_json"`
	Reason   string `json:"reason,omitempty"`
	Cached   bool   `json:"cached"`
}

type modelResponse struct {
	Name  string  `json:"name"`
	Value *string `json:"value"`
}

type annotatorHandler struct {
	dispatcher  dispatch.Dispatcher
	catalog     catalog.Cache
	registry    *processor.Registry
	invalidator cache.InvalidationService
	mode        dispatch.Mode
	decoder     *schema.Decoder
}

// newAnnotatorHandler builds the HTTP handlers. invalidator may be nil when the
// result cache is not configured.
func newAnnotatorHandler(
	dispatcher dispatch.Dispatcher,
	catalogCache catalog.Cache,
	registry *processor.Registry,
	invalidator cache.InvalidationService,
	mode dispatch.Mode,
) *annotatorHandler {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &annotatorHandler{
		dispatcher:  dispatcher,
		catalog:     catalogCache,
		registry:    registry,
		invalidator: invalidator,
		mode:        mode,
		decoder:     decoder,
	}
}

func renderError(w http.ResponseWriter, r *http.Request, statusCode int, err error, details string) {
	if statusCode >= http.StatusInternalServerError {
		slog.Error("request failed", "path", r.URL.Path, "error", err, "details", details)
	}

	render.Status(r, statusCode)
	render.JSON(w, r, map[string]string{"error": err.Error(), "details": details})
}

func (h *annotatorHandler) Annotate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), annotationTimeout)
	defer cancel()

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		renderError(w, r, http.StatusBadRequest, err, "request must be multipart/form-data")
		return
	}

	var form annotateForm
	if err := h.decoder.Decode(&form, r.MultipartForm.Value); err != nil {
		renderError(w, r, http.StatusBadRequest, err, "invalid form fields")
		return
	}

	if form.Format != "" && form.Format != "png" && form.Format != "webp" {
		renderError(w, r, http.StatusBadRequest, errUnsupportedFormat, "format must be png or webp")
		return
	}

	resizeMode := processor.JustResize
	if form.ResizeMode != "" {
		mode, err := processor.ParseResizeMode(form.ResizeMode)
		if err != nil {
			renderError(w, r, http.StatusBadRequest, err, "invalid resize_mode")
			return
		}
		resizeMode = mode
	}

	img, err := formImage(r.MultipartForm, "image")
	if err != nil {
		renderError(w, r, http.StatusBadRequest, err, "image cannot be decoded")
		return
	}

	mask, err := formImage(r.MultipartForm, "mask")
	if err != nil {
		renderError(w, r, http.StatusBadRequest, err, "mask cannot be decoded")
		return
	}

	model, err := h.resolveModel(ctx, form.Model)
	if err != nil {
		renderError(w, r, http.StatusBadGateway, err, "models cannot be listed")
		return
	}

	result, err := h.dispatcher.Run(ctx, dispatch.Request{
		Image:  img,
		Mask:   mask,
		Module: form.Module,
		Model:  model,
		Params: dispatch.Params{
			Resolution:   form.Resolution,
			ThresholdA:   form.ThresholdA,
			ThresholdB:   form.ThresholdB,
			TargetWidth:  form.TargetWidth,
			TargetHeight: form.TargetHeight,
			PixelPerfect: form.PixelPerfect,
			ResizeMode:   resizeMode,
		},
	})
	if err != nil {
		renderError(w, r, annotationErrorStatus(err), err, "annotation failed")
		return
	}

	response := annotateResponse{PoseJSON: result.PoseJSON, Cached: result.Cached}
	if result.Reason != nil {
		response.Reason = result.Reason.Error()
	}

	if !result.Empty() {
		encoded, mime, err := encodeImage(result.Image, form.Format)
		if err != nil {
			renderError(w, r, http.StatusInternalServerError, err, "result cannot be encoded")
			return
		}
		response.Image = base64.StdEncoding.EncodeToString(encoded)
		response.Mime = mime
	}

	render.JSON(w, r, response)
}

// resolveModel maps a model display name to the value sent to the remote
// service. Names no longer offered fall back to no model. Local preprocessors
// receive the name as given.
func (h *annotatorHandler) resolveModel(ctx context.Context, name string) (*string, error) {
	if name == "" || name == catalog.NoneModel {
		return nil, nil
	}

	if !h.mode.Remote() {
		return &name, nil
	}

	models, err := h.catalog.FetchModels(ctx)
	if err != nil {
		return nil, err
	}

	value, _ := models.Lookup(models.Resolve(name))
	return value, nil
}

func (h *annotatorHandler) ListModules(w http.ResponseWriter, r *http.Request) {
	if !h.mode.Remote() {
		render.JSON(w, r, h.registry.Keys())
		return
	}

	modules, err := h.catalog.FetchModules(r.Context())
	if err != nil {
		renderError(w, r, http.StatusBadGateway, err, "modules cannot be listed")
		return
	}

	render.JSON(w, r, catalog.PreprocessorKeys(modules))
}

// ListModels serves the remote catalog in remote mode. Local processes only
// offer the "None" sentinel.
func (h *annotatorHandler) ListModels(w http.ResponseWriter, r *http.Request) {
	if !h.mode.Remote() {
		render.JSON(w, r, []modelResponse{{Name: catalog.NoneModel}})
		return
	}

	models, err := h.catalog.FetchModels(r.Context())
	if err != nil {
		renderError(w, r, http.StatusBadGateway, err, "models cannot be listed")
		return
	}

	response := make([]modelResponse, len(models))
	for i, option := range models {
		response[i] = modelResponse{Name: option.Name, Value: option.Value}
	}

	render.JSON(w, r, response)
}

func (h *annotatorHandler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if h.invalidator == nil {
		renderError(w, r, http.StatusNotImplemented, errCacheDisabled, "result cache is not configured")
		return
	}

	modules := r.URL.Query()["module"]
	if len(modules) == 0 {
		renderError(w, r, http.StatusBadRequest, errModuleRequired, "module query parameter is required")
		return
	}

	result, err := h.invalidator.Invalidate(ctx, modules)
	if err != nil {
		slog.Error("invalidation failed", "modules", modules, "error", err)
		render.Status(r, http.StatusInternalServerError)
	}

	render.JSON(w, r, result)
}

func (h *annotatorHandler) LatestInvalidation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if h.invalidator == nil {
		renderError(w, r, http.StatusNotImplemented, errCacheDisabled, "result cache is not configured")
		return
	}

	module := r.URL.Query().Get("module")
	if module == "" {
		renderError(w, r, http.StatusBadRequest, errModuleRequired, "module query parameter is required")
		return
	}

	result, err := h.invalidator.GetLastKnownInvalidation(ctx, module)
	if errors.Is(err, cacherepositories.ErrInvalidationNotFound) {
		renderError(w, r, http.StatusNotFound, err, "module was never invalidated")
		return
	}
	if err != nil {
		renderError(w, r, http.StatusInternalServerError, err, "latest invalidation cannot be read")
		return
	}

	render.JSON(w, r, result)
}

// requireBearer rejects requests without the expected bearer token. An empty
// token disables the check.
func requireBearer(token string) func(http.Handler) http.Handler {
	expected := fmt.Sprintf("Bearer %s", token)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token != "" && r.Header.Get("Authorization") != expected {
				renderError(w, r, http.StatusUnauthorized, errUnauthorized, "access token authorization failed")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func annotationErrorStatus(err error) int {
	switch {
	case errors.Is(err, dispatch.ErrUnknownModule):
		return http.StatusBadRequest
	case errors.Is(err, dispatch.ErrRemoteNotConfigured):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

// formImage decodes the named file part. A missing part yields a nil image.
func formImage(form *multipart.Form, field string) (image.Image, error) {
	headers := form.File[field]
	if len(headers) == 0 {
		return nil, nil
	}

	file, err := headers[0].Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return imaging.Decode(file)
}

func encodeImage(img image.Image, format string) ([]byte, string, error) {
	var buf bytes.Buffer
	if format == "webp" {
		if err := webp.Encode(&buf, img, &webp.Options{Lossless: true}); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "image/webp", nil
	}

	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "image/png", nil
}

var (
	errCacheDisabled     = errors.New("result cache disabled")
	errModuleRequired    = errors.New("module is required")
	errUnauthorized      = errors.New("unauthorized")
	errUnsupportedFormat = errors.New("unsupported output format")
)
