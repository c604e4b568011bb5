package tasks

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

type PollerConfig struct {
	// Interval separates two status checks. The first check happens one
	// interval after Wait is entered.
	Interval time.Duration
	// Timeout bounds the whole wait, measured from entering Wait.
	Timeout time.Duration
	// RequestTimeout bounds a single status request.
	RequestTimeout time.Duration
}

func DefaultPollerConfig() PollerConfig {
	return PollerConfig{
		Interval:       2 * time.Second,
		Timeout:        300 * time.Second,
		RequestTimeout: 5 * time.Second,
	}
}

type Poller interface {
	// Wait blocks until taskID reaches a terminal status. It returns
	// ErrJobFailed for the failure status and ErrJobTimeout when no terminal
	// status was observed within the configured timeout.
	Wait(ctx context.Context, taskID string) (Job, error)
}

type poller struct {
	client serviceClient
	config PollerConfig
	now    func() time.Time
	sleep  func(ctx context.Context, d time.Duration) error
}

var _ Poller = (*poller)(nil)

func NewPoller(client serviceClient, config PollerConfig) Poller {
	return &poller{client, config, time.Now, sleepContext}
}

func (p *poller) Wait(ctx context.Context, taskID string) (Job, error) {
	start := p.now()

	for p.now().Sub(start) < p.config.Timeout {
		if err := p.sleep(ctx, p.config.Interval); err != nil {
			return Job{ID: taskID}, err
		}

		job, err := p.check(ctx, taskID)
		if err != nil {
			slog.Warn("job status check failed", "task_id", taskID, "error", err)
			continue
		}

		switch job.Status {
		case StatusSucceeded:
			slog.Info("annotation job succeeded", "task_id", taskID)
			return job, nil
		case StatusFailed:
			slog.Warn("annotation job failed", "task_id", taskID)
			return job, ErrJobFailed
		}
	}

	slog.Warn("annotation job timed out", "task_id", taskID, "timeout", p.config.Timeout)
	return Job{ID: taskID}, ErrJobTimeout
}

func (p *poller) check(ctx context.Context, taskID string) (Job, error) {
	var job Job
	if err := p.client.Call(ctx, http.MethodGet, "/v1/img-tasks/"+taskID, p.config.RequestTimeout, nil, &job); err != nil {
		return Job{}, err
	}

	job.ID = taskID
	return job, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var (
	ErrJobFailed  = errors.New("job failed")
	ErrJobTimeout = errors.New("job timed out")
)
