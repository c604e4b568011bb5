package dispatch

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"github.com/disintegration/imaging"
	"github.com/xingzheai/tss-annotator/pkg/artifact"
	"github.com/xingzheai/tss-annotator/pkg/processor"
	"github.com/xingzheai/tss-annotator/pkg/tasks"
	"github.com/xingzheai/tss-annotator/pkg/upload"
	_ "golang.org/x/image/webp"
)

// RemoteStrategy runs annotations on the remote service: upload, submit,
// poll, download, decode. It never produces pose JSON.
type RemoteStrategy struct {
	uploader upload.Uploader
	runner   tasks.Runner
	fetcher  artifact.Fetcher
}

func NewRemoteStrategy(uploader upload.Uploader, runner tasks.Runner, fetcher artifact.Fetcher) *RemoteStrategy {
	return &RemoteStrategy{uploader, runner, fetcher}
}

func (s *RemoteStrategy) Execute(ctx context.Context, req Request) (image.Image, error) {
	mask := req.Mask
	if mask == nil {
		mask = processor.BlankMask(req.Image)
	}

	imageBlob, err := s.uploader.UploadImage(ctx, req.Image, false)
	if err != nil {
		return nil, err
	}

	maskBlob, err := s.uploader.UploadImage(ctx, mask, false)
	if err != nil {
		return nil, err
	}

	resultURL, err := s.runner.SubmitAndWait(ctx, imageBlob, maskBlob, tasks.Params{
		Module:       req.Module,
		Resolution:   req.Params.Resolution,
		ThresholdA:   req.Params.ThresholdA,
		ThresholdB:   req.Params.ThresholdB,
		TargetWidth:  req.Params.TargetWidth,
		TargetHeight: req.Params.TargetHeight,
		PixelPerfect: req.Params.PixelPerfect,
		ResizeMode:   req.Params.ResizeMode.String(),
	})
	if err != nil {
		return nil, err
	}

	localPath, err := s.fetcher.Fetch(ctx, resultURL)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := s.fetcher.Release(localPath); err != nil {
			slog.Warn("cannot remove downloaded artifact", "path", localPath, "error", err)
		}
	}()

	result, err := imaging.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodableArtifact, err)
	}

	return result, nil
}
