package tasks

import (
	"context"
	"errors"

	"github.com/xingzheai/tss-annotator/pkg/upload"
)

// Runner submits a job and waits for its artifact.
type Runner interface {
	SubmitAndWait(ctx context.Context, image, mask upload.UploadedBlob, params Params) (resultURL string, err error)
}

type runner struct {
	submitter Submitter
	poller    Poller
}

var _ Runner = (*runner)(nil)

func NewRunner(submitter Submitter, poller Poller) Runner {
	return &runner{submitter, poller}
}

func (r *runner) SubmitAndWait(ctx context.Context, image, mask upload.UploadedBlob, params Params) (string, error) {
	taskID, err := r.submitter.Submit(ctx, image, mask, params)
	if err != nil {
		return "", err
	}

	job, err := r.poller.Wait(ctx, taskID)
	if err != nil {
		return "", err
	}

	url := job.ResultURL()
	if url == "" {
		return "", ErrNoArtifact
	}

	return url, nil
}

var (
	ErrNoArtifact = errors.New("job succeeded without result images")
)
