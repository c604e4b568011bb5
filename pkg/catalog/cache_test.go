package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/franela/goblin"
)

type fakeCatalogClient struct {
	lock     sync.Mutex
	payloads map[string]string
	err      error
	calls    []string
}

func (c *fakeCatalogClient) Call(ctx context.Context, method, path string, timeout time.Duration, body, out interface{}) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.calls = append(c.calls, path)
	if c.err != nil {
		return c.err
	}

	return json.Unmarshal([]byte(c.payloads[path]), out)
}

func (c *fakeCatalogClient) fail(err error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.err = err
}

func (c *fakeCatalogClient) serve(path, payload string) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.err = nil
	c.payloads[path] = payload
}

const (
	modulesPath = "/v1/samplers/category?categorys=3"
	modelsPath  = "/v1/samplers/category?categorys=4"

	modulesPayload = `{"items": {"3": [
		{"real_value": "None", "display_value": "无"},
		{"real_value": "canny", "display_value": "Canny"},
		{"real_value": "openpose_full", "display_value": "OpenPose"}
	]}}`

	modelsPayload = `{"items": {"4": [
		{"real_value": "control_canny [e3fe7712]", "display_value": "canny"},
		{"real_value": null, "display_value": "无"},
		{"real_value": "control_openpose [9ca67cc5]", "display_value": "openpose"}
	]}}`
)

func newFakeCatalogClient() *fakeCatalogClient {
	return &fakeCatalogClient{payloads: map[string]string{
		modulesPath: modulesPayload,
		modelsPath:  modelsPayload,
	}}
}

func TestCategoryCache(t *testing.T) {
	g := goblin.Goblin(t)
	ctx := context.Background()

	g.Describe("FetchModules", func() {
		g.It("Should return real values of module category", func() {
			cache := NewCache(newFakeCatalogClient())

			modules, err := cache.FetchModules(ctx)

			g.Assert(err).IsNil()
			g.Assert(modules).Equal([]string{"None", "canny", "openpose_full"})
		})

		g.It("Should request module category with a 5 second timeout", func() {
			var seen time.Duration
			client := &timeoutRecordingClient{newFakeCatalogClient(), &seen}
			cache := NewCache(client)

			cache.FetchModules(ctx)

			g.Assert(seen).Equal(5 * time.Second)
		})

		g.It("Should fall back to cached modules when catalog fails", func() {
			client := newFakeCatalogClient()
			cache := NewCache(client)
			first, _ := cache.FetchModules(ctx)

			client.fail(errors.New("connection refused"))
			second, err := cache.FetchModules(ctx)

			g.Assert(err).IsNil()
			g.Assert(second).Equal(first)
		})

		g.It("Should return ErrCatalogUnavailable when nothing is cached", func() {
			client := newFakeCatalogClient()
			client.fail(errors.New("connection refused"))
			cache := NewCache(client)

			_, err := cache.FetchModules(ctx)

			g.Assert(errors.Is(err, ErrCatalogUnavailable)).IsTrue()
		})

		g.It("Should cache an empty category like any other answer", func() {
			client := newFakeCatalogClient()
			cache := NewCache(client)
			cache.FetchModules(ctx)

			client.serve(modulesPath, `{"items": {}}`)
			emptied, err := cache.FetchModules(ctx)

			g.Assert(err).IsNil()
			g.Assert(emptied).Equal([]string{})

			client.fail(errors.New("connection refused"))
			fallback, err := cache.FetchModules(ctx)

			g.Assert(err).IsNil()
			g.Assert(fallback).Equal([]string{})
		})
	})

	g.Describe("FetchModels", func() {
		g.It("Should drop empty selection entry and append None sentinel last", func() {
			cache := NewCache(newFakeCatalogClient())

			models, err := cache.FetchModels(ctx)

			g.Assert(err).IsNil()
			g.Assert(models.Names()).Equal([]string{"canny", "openpose", "None"})

			value, found := models.Lookup("None")
			g.Assert(found).IsTrue()
			g.Assert(value == nil).IsTrue()

			_, found = models.Lookup(emptySelection)
			g.Assert(found).IsFalse()
		})

		g.It("Should keep a single None sentinel when catalog also offers one", func() {
			client := newFakeCatalogClient()
			client.serve(modelsPath, `{"items": {"4": [
				{"real_value": "x", "display_value": "None"},
				{"real_value": "control_canny", "display_value": "canny"}
			]}}`)
			cache := NewCache(client)

			models, _ := cache.FetchModels(ctx)

			g.Assert(models.Names()).Equal([]string{"canny", "None"})
			value, _ := models.Lookup("None")
			g.Assert(value == nil).IsTrue()
		})

		g.It("Should return identical models on consecutive fetches of unchanged catalog", func() {
			cache := NewCache(newFakeCatalogClient())

			first, _ := cache.FetchModels(ctx)
			second, _ := cache.FetchModels(ctx)

			g.Assert(second).Equal(first)
		})

		g.It("Should return previous successful models exactly when catalog fails", func() {
			client := newFakeCatalogClient()
			cache := NewCache(client)
			first, _ := cache.FetchModels(ctx)

			client.fail(errors.New("code 500"))
			second, err := cache.FetchModels(ctx)

			g.Assert(err).IsNil()
			g.Assert(second).Equal(first)
		})

		g.It("Should replace snapshot wholesale after catalog change", func() {
			client := newFakeCatalogClient()
			cache := NewCache(client)
			cache.FetchModels(ctx)

			client.serve(modelsPath, `{"items": {"4": [{"real_value": "depth", "display_value": "depth"}]}}`)
			updated, _ := cache.FetchModels(ctx)
			client.fail(errors.New("timeout"))
			fallback, _ := cache.FetchModels(ctx)

			g.Assert(updated.Names()).Equal([]string{"depth", "None"})
			g.Assert(fallback).Equal(updated)
		})

		g.It("Should keep categories independent", func() {
			client := newFakeCatalogClient()
			cache := NewCache(client)
			cache.FetchModules(ctx)

			client.fail(errors.New("timeout"))
			_, err := cache.FetchModels(ctx)

			g.Assert(errors.Is(err, ErrCatalogUnavailable)).IsTrue()
		})

		g.It("Should observe only complete snapshots under concurrent refreshes", func() {
			client := newFakeCatalogClient()
			cache := NewCache(client)
			cache.FetchModels(ctx)

			wg := sync.WaitGroup{}
			for i := 0; i < 20; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					if i%2 == 0 {
						client.fail(errors.New("flaky"))
					} else {
						client.serve(modelsPath, modelsPayload)
					}

					models, err := cache.FetchModels(ctx)
					if err != nil || len(models) != 3 {
						t.Errorf("unexpected snapshot: %v %v", models, err)
					}
				}(i)
			}
			wg.Wait()
		})
	})

	g.Describe("Models", func() {
		g.It("Should resolve unknown selection to None", func() {
			models := Models{{Name: "canny"}, {Name: NoneModel}}

			g.Assert(models.Resolve("canny")).Equal("canny")
			g.Assert(models.Resolve("gone")).Equal(NoneModel)
		})

		g.It("Should rename None module to lowercase preprocessor key", func() {
			g.Assert(PreprocessorKeys([]string{"None", "canny"})).Equal([]string{"none", "canny"})
		})
	})

	g.Describe("Warmup", func() {
		g.It("Should fetch both categories only once", func() {
			client := newFakeCatalogClient()
			cache := NewCache(client)

			g.Assert(cache.Warmup(ctx)).IsNil()
			g.Assert(cache.Warmup(ctx)).IsNil()

			g.Assert(client.calls).Equal([]string{modulesPath, modelsPath})
		})

		g.It("Should retry warmup after failure", func() {
			client := newFakeCatalogClient()
			client.fail(errors.New("down"))
			cache := NewCache(client)

			g.Assert(errors.Is(cache.Warmup(ctx), ErrCatalogUnavailable)).IsTrue()

			client.serve(modulesPath, modulesPayload)
			g.Assert(cache.Warmup(ctx)).IsNil()
		})
	})
}

type timeoutRecordingClient struct {
	*fakeCatalogClient
	seen *time.Duration
}

func (c *timeoutRecordingClient) Call(ctx context.Context, method, path string, timeout time.Duration, body, out interface{}) error {
	*c.seen = timeout
	return c.fakeCatalogClient.Call(ctx, method, path, timeout, body, out)
}
