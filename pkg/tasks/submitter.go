package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/xingzheai/tss-annotator/pkg/upload"
)

const submitTimeout = 4 * time.Second

type serviceClient interface {
	Call(ctx context.Context, method, path string, timeout time.Duration, body, out interface{}) error
}

type jobDescriptor struct {
	Image               string  `json:"image"`
	Mask                string  `json:"mask"`
	Module              string  `json:"module"`
	AnnotatorResolution int     `json:"annotator_resolution"`
	ThresholdA          float64 `json:"pthr_a"`
	ThresholdB          float64 `json:"pthr_b"`
	TargetWidth         int     `json:"t2i_w"`
	TargetHeight        int     `json:"t2i_h"`
	PixelPerfect        bool    `json:"pp"`
	ResizeMode          string  `json:"rm"`
}

type Submitter interface {
	Submit(ctx context.Context, image, mask upload.UploadedBlob, params Params) (taskID string, err error)
}

type submitter struct {
	client serviceClient
}

var _ Submitter = (*submitter)(nil)

func NewSubmitter(client serviceClient) Submitter {
	return &submitter{client}
}

func (s *submitter) Submit(ctx context.Context, image, mask upload.UploadedBlob, params Params) (string, error) {
	descriptor := jobDescriptor{
		Image:               image.Path(),
		Mask:                mask.Path(),
		Module:              params.Module,
		AnnotatorResolution: params.Resolution,
		ThresholdA:          params.ThresholdA,
		ThresholdB:          params.ThresholdB,
		TargetWidth:         params.TargetWidth,
		TargetHeight:        params.TargetHeight,
		PixelPerfect:        params.PixelPerfect,
		ResizeMode:          params.ResizeMode,
	}

	var created Job
	if err := s.client.Call(ctx, http.MethodPost, "/v1/img2img-tasks/cnet", submitTimeout, descriptor, &created); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	if created.ID == "" {
		return "", fmt.Errorf("%w: empty task id", ErrSubmissionFailed)
	}

	slog.Info("annotation job submitted", "task_id", created.ID, "module", params.Module)
	return created.ID, nil
}

var (
	ErrSubmissionFailed = errors.New("job submission failed")
)
