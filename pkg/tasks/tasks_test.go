package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/franela/goblin"
	"github.com/xingzheai/tss-annotator/pkg/auth"
	"github.com/xingzheai/tss-annotator/pkg/tss"
	"github.com/xingzheai/tss-annotator/pkg/upload"
	testutils "github.com/xingzheai/tss-annotator/test/utils"
)

type fakeClock struct {
	lock   sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	return ctx.Err()
}

type statusScript struct {
	lock     sync.Mutex
	statuses []map[string]interface{}
	polls    int
}

// next returns scripted statuses in order and repeats the last one.
func (s *statusScript) next() map[string]interface{} {
	s.lock.Lock()
	defer s.lock.Unlock()

	i := s.polls
	if i >= len(s.statuses) {
		i = len(s.statuses) - 1
	}
	s.polls++
	return s.statuses[i]
}

func startService(t *testing.T, submitCode int, script *statusScript) (*testutils.TestHttpServer, *tss.Client) {
	server := testutils.NewTestHttpServer()
	server.HandleEnvelope("/v1/img2img-tasks/cnet", func(r *http.Request) (int, interface{}) {
		return submitCode, map[string]string{"task_id": "task-1"}
	})
	server.HandleEnvelope("/v1/img-tasks/task-1", func(r *http.Request) (int, interface{}) {
		return tss.CodeOK, script.next()
	})
	server.Start(t)

	store := auth.NewStore()
	store.Set(auth.Credential{Token: "abc", ExpiresAt: time.Now().Add(time.Hour)})
	client := tss.NewClient(tss.Config{Host: server.URL(), Bucket: "xingzheaidraw"}, auth.NewTokenProvider(store))

	return server, client
}

func newTestingPoller(client serviceClient, clock *fakeClock) *poller {
	return &poller{client, DefaultPollerConfig(), clock.Now, clock.Sleep}
}

var (
	imageBlob = upload.UploadedBlob{Key: "a.png", Bucket: "xingzheaidraw"}
	maskBlob  = upload.UploadedBlob{Key: "b.png", Bucket: "xingzheaidraw"}
)

func TestTasks(t *testing.T) {
	g := goblin.Goblin(t)
	ctx := context.Background()

	g.Describe("Submitter", func() {
		g.It("Should post job descriptor referencing bucket qualified keys", func() {
			server, client := startService(t, tss.CodeOK, &statusScript{})
			submitter := NewSubmitter(client)

			taskID, err := submitter.Submit(ctx, imageBlob, maskBlob, Params{
				Module:       "canny",
				Resolution:   512,
				ThresholdA:   100,
				ThresholdB:   200,
				TargetWidth:  768,
				TargetHeight: 512,
				PixelPerfect: true,
				ResizeMode:   "Crop and Resize",
			})

			g.Assert(err).IsNil()
			g.Assert(taskID).Equal("task-1")

			requests := server.Requests("/v1/img2img-tasks/cnet")
			var body map[string]interface{}
			json.Unmarshal(requests[0].Body, &body)
			g.Assert(body).Equal(map[string]interface{}{
				"image":                "xingzheaidraw/a.png",
				"mask":                 "xingzheaidraw/b.png",
				"module":               "canny",
				"annotator_resolution": float64(512),
				"pthr_a":               float64(100),
				"pthr_b":               float64(200),
				"t2i_w":                float64(768),
				"t2i_h":                float64(512),
				"pp":                   true,
				"rm":                   "Crop and Resize",
			})
		})

		g.It("Should fail with ErrSubmissionFailed on application failure code", func() {
			_, client := startService(t, 500, &statusScript{})
			submitter := NewSubmitter(client)

			_, err := submitter.Submit(ctx, imageBlob, maskBlob, Params{Module: "canny"})

			g.Assert(errors.Is(err, ErrSubmissionFailed)).IsTrue()
		})
	})

	g.Describe("Poller", func() {
		g.It("Should wait one interval before the first status check", func() {
			script := &statusScript{statuses: []map[string]interface{}{{"status": 10, "images": []string{"http://x/out.png"}}}}
			server, client := startService(t, tss.CodeOK, script)
			clock := &fakeClock{now: time.Unix(0, 0)}

			job, err := newTestingPoller(client, clock).Wait(ctx, "task-1")

			g.Assert(err).IsNil()
			g.Assert(job.ResultURL()).Equal("http://x/out.png")
			g.Assert(clock.sleeps).Equal([]time.Duration{2 * time.Second})
			g.Assert(len(server.Requests("/v1/img-tasks/task-1"))).Equal(1)
		})

		g.It("Should keep polling through non terminal statuses", func() {
			script := &statusScript{statuses: []map[string]interface{}{
				{"status": 0}, {"status": 1}, {"status": 2}, {"status": 10, "images": []string{"http://x/out.png"}},
			}}
			_, client := startService(t, tss.CodeOK, script)
			clock := &fakeClock{now: time.Unix(0, 0)}

			_, err := newTestingPoller(client, clock).Wait(ctx, "task-1")

			g.Assert(err).IsNil()
			g.Assert(script.polls).Equal(4)
		})

		g.It("Should return ErrJobFailed on failure status", func() {
			script := &statusScript{statuses: []map[string]interface{}{{"status": 1}, {"status": 1}, {"status": -1}}}
			_, client := startService(t, tss.CodeOK, script)
			clock := &fakeClock{now: time.Unix(0, 0)}

			_, err := newTestingPoller(client, clock).Wait(ctx, "task-1")

			g.Assert(err).Equal(ErrJobFailed)
			g.Assert(script.polls).Equal(3)
		})

		g.It("Should return ErrJobTimeout when no terminal status arrives within timeout", func() {
			script := &statusScript{statuses: []map[string]interface{}{{"status": 3}}}
			_, client := startService(t, tss.CodeOK, script)
			clock := &fakeClock{now: time.Unix(0, 0)}

			_, err := newTestingPoller(client, clock).Wait(ctx, "task-1")

			g.Assert(err).Equal(ErrJobTimeout)
			g.Assert(script.polls).Equal(150)
		})

		g.It("Should time out in real time with short configuration", func() {
			script := &statusScript{statuses: []map[string]interface{}{{"status": 0}}}
			_, client := startService(t, tss.CodeOK, script)
			poller := NewPoller(client, PollerConfig{Interval: time.Millisecond, Timeout: 30 * time.Millisecond, RequestTimeout: time.Second})

			_, err := poller.Wait(ctx, "task-1")

			g.Assert(errors.Is(err, ErrJobTimeout)).IsTrue()
		})

		g.It("Should treat undecodable status checks as missed observations", func() {
			server := testutils.NewTestHttpServer()
			calls := 0
			server.HandleFunc("/v1/img-tasks/task-1", func(w http.ResponseWriter, r *http.Request) {
				calls++
				if calls < 3 {
					w.WriteHeader(http.StatusServiceUnavailable)
					return
				}
				testutils.WriteEnvelope(w, tss.CodeOK, map[string]interface{}{"status": 10, "images": []string{"http://x/y.png"}})
			})
			server.Start(t)
			client := tss.NewClient(tss.Config{Host: server.URL()}, auth.NewTokenProvider(auth.NewStore()))
			clock := &fakeClock{now: time.Unix(0, 0)}

			job, err := newTestingPoller(client, clock).Wait(ctx, "task-1")

			g.Assert(err).IsNil()
			g.Assert(job.ResultURL()).Equal("http://x/y.png")
		})

		g.It("Should stop waiting when context is cancelled", func() {
			_, client := startService(t, tss.CodeOK, &statusScript{statuses: []map[string]interface{}{{"status": 0}}})
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := NewPoller(client, DefaultPollerConfig()).Wait(cancelled, "task-1")

			g.Assert(err).Equal(context.Canceled)
		})
	})

	g.Describe("Job", func() {
		g.It("Should prefer high quality images when both lists are present", func() {
			job := Job{HigImages: []string{"http://x/hig.png", "http://x/hig2.png"}, Images: []string{"http://x/std.png"}}

			g.Assert(job.ResultURL()).Equal("http://x/hig.png")
		})

		g.It("Should fall back to standard images when high quality list is empty", func() {
			job := Job{HigImages: []string{}, Images: []string{"http://x/std.png"}}

			g.Assert(job.ResultURL()).Equal("http://x/std.png")
		})

		g.It("Should treat only 10 and -1 as terminal", func() {
			g.Assert(StatusSucceeded.Terminal()).IsTrue()
			g.Assert(StatusFailed.Terminal()).IsTrue()
			for _, status := range []Status{-2, 0, 1, 2, 9, 11, 100} {
				g.Assert(status.Terminal()).IsFalse()
			}
		})
	})

	g.Describe("Runner", func() {
		g.It("Should return first high quality url of succeeded job", func() {
			script := &statusScript{statuses: []map[string]interface{}{
				{"status": 10, "hig_images": []string{"http://x/hig.png"}, "images": []string{"http://x/std.png"}},
			}}
			_, client := startService(t, tss.CodeOK, script)
			clock := &fakeClock{now: time.Unix(0, 0)}
			runner := NewRunner(NewSubmitter(client), newTestingPoller(client, clock))

			url, err := runner.SubmitAndWait(ctx, imageBlob, maskBlob, Params{Module: "canny"})

			g.Assert(err).IsNil()
			g.Assert(url).Equal("http://x/hig.png")
		})

		g.It("Should return ErrNoArtifact when succeeded job carries no images", func() {
			script := &statusScript{statuses: []map[string]interface{}{{"status": 10}}}
			_, client := startService(t, tss.CodeOK, script)
			clock := &fakeClock{now: time.Unix(0, 0)}
			runner := NewRunner(NewSubmitter(client), newTestingPoller(client, clock))

			_, err := runner.SubmitAndWait(ctx, imageBlob, maskBlob, Params{Module: "canny"})

			g.Assert(err).Equal(ErrNoArtifact)
		})

		g.It("Should not poll when submission fails", func() {
			script := &statusScript{statuses: []map[string]interface{}{{"status": 10}}}
			server, client := startService(t, 403, script)
			clock := &fakeClock{now: time.Unix(0, 0)}
			runner := NewRunner(NewSubmitter(client), newTestingPoller(client, clock))

			_, err := runner.SubmitAndWait(ctx, imageBlob, maskBlob, Params{Module: "canny"})

			g.Assert(errors.Is(err, ErrSubmissionFailed)).IsTrue()
			g.Assert(len(server.Requests("/v1/img-tasks/task-1"))).Equal(0)
		})
	})
}
