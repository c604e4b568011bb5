package dispatch

import (
	"context"
	"errors"
	"image"
	"log/slog"

	"github.com/xingzheai/tss-annotator/pkg/cache"
	"github.com/xingzheai/tss-annotator/pkg/postprocess"
	"github.com/xingzheai/tss-annotator/pkg/processor"
	"github.com/xingzheai/tss-annotator/pkg/tasks"
)

type Config struct {
	Mode                 Mode
	ModelFree            processor.ModelFreeSet
	IgnoreNonInpaintMask bool
}

type dispatcher struct {
	config    Config
	remote    *RemoteStrategy
	local     *LocalStrategy
	finalizer postprocess.Finalizer
	memo      *memoizer
}

var _ Dispatcher = (*dispatcher)(nil)

// NewDispatcher builds a dispatcher. remote may be nil for processes that only
// run locally. cacheService may be nil, in which case nothing is memoized.
func NewDispatcher(
	config Config,
	remote *RemoteStrategy,
	local *LocalStrategy,
	finalizer postprocess.Finalizer,
	cacheService cache.CacheService,
) Dispatcher {
	if config.ModelFree == nil {
		config.ModelFree = processor.DefaultModelFree
	}

	if local == nil {
		local = NewLocalStrategy(processor.NewDefaultRegistry())
	}

	return &dispatcher{
		config:    config,
		remote:    remote,
		local:     local,
		finalizer: finalizer,
		memo:      newMemoizer(cacheService),
	}
}

func (d *dispatcher) Run(ctx context.Context, req Request) (Result, error) {
	if req.Image == nil {
		return Result{Display: d.finalizer.Finalize(nil, false, "")}, nil
	}

	if d.config.ModelFree.Contains(req.Module) {
		req.Model = nil
	}

	if d.config.Mode.Remote() {
		return d.runRemote(ctx, req)
	}

	return d.runLocal(ctx, req)
}

func (d *dispatcher) runRemote(ctx context.Context, req Request) (Result, error) {
	if d.remote == nil {
		return Result{}, ErrRemoteNotConfigured
	}

	req.Params = withPixelPerfectResolution(req.Image, req.Params)

	key := d.cacheKey(cacheStrategyRemote, req)
	raw, cached, err := d.memo.do(ctx, key, []image.Image{req.Image, req.Mask}, func() (image.Image, bool, error) {
		raw, err := d.remote.Execute(ctx, req)
		return raw, true, err
	})
	if err != nil {
		if isNoResult(err) {
			slog.Warn("remote annotation produced no result", "module", req.Module, "reason", err)
			return Result{Display: d.finalizer.Finalize(nil, false, ""), Reason: err}, nil
		}

		slog.Error("remote annotation failed", "module", req.Module, "error", err)
		return Result{}, err
	}

	return Result{Display: d.finalizer.Finalize(raw, true, ""), Cached: cached}, nil
}

func (d *dispatcher) runLocal(ctx context.Context, req Request) (Result, error) {
	name, preprocessor, err := d.local.Resolve(req.Module)
	if err != nil {
		return Result{}, err
	}

	input := processor.PrepareInput(req.Image, req.Mask, name, d.config.IgnoreNonInpaintMask)
	req.Params = withPixelPerfectResolution(input, req.Params)

	if d.config.ModelFree.Contains(name) {
		req.Model = nil
	}

	if !preprocessor.EmitsJSON() {
		key := d.cacheKey(cacheStrategyLocal, req)
		key.Module = name

		var output processor.Output
		raw, cached, err := d.memo.do(ctx, key, []image.Image{input}, func() (image.Image, bool, error) {
			var err error
			output, err = d.local.Execute(ctx, preprocessor, input, req, nil)
			return output.Image, output.IsImage, err
		})
		if err != nil {
			return Result{}, err
		}

		return Result{Display: d.finalizer.Finalize(raw, cached || output.IsImage, ""), Cached: cached}, nil
	}

	var poseJSON string
	output, err := d.local.Execute(ctx, preprocessor, input, req, func(document string) {
		poseJSON = document
	})
	if err != nil {
		return Result{}, err
	}

	return Result{Display: d.finalizer.Finalize(output.Image, output.IsImage, poseJSON)}, nil
}

func (d *dispatcher) cacheKey(strategy string, req Request) cache.Key {
	key := cache.Key{
		Strategy:     strategy,
		Module:       req.Module,
		Resolution:   req.Params.Resolution,
		ThresholdA:   req.Params.ThresholdA,
		ThresholdB:   req.Params.ThresholdB,
		TargetWidth:  req.Params.TargetWidth,
		TargetHeight: req.Params.TargetHeight,
		PixelPerfect: req.Params.PixelPerfect,
		ResizeMode:   req.Params.ResizeMode.String(),
	}
	if req.Model != nil {
		key.Model = *req.Model
	}

	return key
}

func withPixelPerfectResolution(img image.Image, params Params) Params {
	if params.PixelPerfect {
		params.Resolution = processor.PixelPerfectResolution(img, params.TargetWidth, params.TargetHeight, params.ResizeMode)
	}

	return params
}

// isNoResult reports whether err means the remote job finished without a
// usable artifact rather than a failed call.
func isNoResult(err error) bool {
	return errors.Is(err, tasks.ErrJobTimeout) ||
		errors.Is(err, tasks.ErrJobFailed) ||
		errors.Is(err, tasks.ErrNoArtifact)
}

var (
	ErrRemoteNotConfigured = errors.New("remote execution is not configured")
	ErrUnknownModule       = errors.New("unknown preprocessor module")
	ErrUndecodableArtifact = errors.New("downloaded artifact is not a decodable image")
)
