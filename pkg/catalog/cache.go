package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"
)

const (
	ModulesCategory = 3
	ModelsCategory  = 4
)

// NoneModel is the display name of the "no model" sentinel.
const NoneModel = "None"

// emptySelection is the catalog's own localized "none" entry, replaced by NoneModel.
const emptySelection = "无"

const requestTimeout = 5 * time.Second

type categoryData struct {
	Items map[string][]Item `json:"items"`
}

type cache struct {
	client catalogClient

	lock      sync.RWMutex
	snapshots map[int][]Item
	warmed    bool
}

var _ Cache = (*cache)(nil)

func NewCache(client catalogClient) Cache {
	return &cache{
		client:    client,
		snapshots: make(map[int][]Item),
	}
}

func (c *cache) FetchModules(ctx context.Context) ([]string, error) {
	items, err := c.fetch(ctx, ModulesCategory)
	if err != nil {
		return nil, err
	}

	modules := make([]string, 0, len(items))
	for _, item := range items {
		if item.RealValue == nil {
			continue
		}
		modules = append(modules, *item.RealValue)
	}

	return modules, nil
}

func (c *cache) FetchModels(ctx context.Context) (Models, error) {
	items, err := c.fetch(ctx, ModelsCategory)
	if err != nil {
		return nil, err
	}

	models := make(Models, 0, len(items)+1)
	positions := make(map[string]int, len(items))
	for _, item := range items {
		if item.DisplayValue == emptySelection || item.DisplayValue == NoneModel {
			continue
		}

		option := ModelOption{Name: item.DisplayValue, Value: item.RealValue}
		if i, exists := positions[item.DisplayValue]; exists {
			models[i] = option
			continue
		}

		positions[item.DisplayValue] = len(models)
		models = append(models, option)
	}

	return append(models, ModelOption{Name: NoneModel}), nil
}

func (c *cache) Warmup(ctx context.Context) error {
	c.lock.RLock()
	warmed := c.warmed
	c.lock.RUnlock()
	if warmed {
		return nil
	}

	slog.Info("requesting remote preprocessors and models")
	if _, err := c.FetchModules(ctx); err != nil {
		return err
	}
	if _, err := c.FetchModels(ctx); err != nil {
		return err
	}

	c.lock.Lock()
	c.warmed = true
	c.lock.Unlock()
	return nil
}

// fetch returns fresh items of category, or the last snapshot when the catalog
// cannot be reached. Snapshots are replaced whole and never mutated, so a
// reader holds either the old or the new slice.
func (c *cache) fetch(ctx context.Context, category int) ([]Item, error) {
	items, err := c.request(ctx, category)
	if err == nil {
		c.lock.Lock()
		c.snapshots[category] = items
		c.lock.Unlock()
		return items, nil
	}

	c.lock.RLock()
	cached, found := c.snapshots[category]
	c.lock.RUnlock()

	if !found {
		slog.Error("catalog unavailable and nothing cached", "category", category, "error", err)
		return nil, fmt.Errorf("%w: category %d: %v", ErrCatalogUnavailable, category, err)
	}

	slog.Warn("catalog request failed, using cached snapshot", "category", category, "error", err)
	return cached, nil
}

func (c *cache) request(ctx context.Context, category int) ([]Item, error) {
	key := strconv.Itoa(category)
	path := "/v1/samplers/category?categorys=" + key

	var data categoryData
	if err := c.client.Call(ctx, http.MethodGet, path, requestTimeout, nil, &data); err != nil {
		return nil, err
	}

	items := data.Items[key]
	if items == nil {
		items = []Item{}
	}

	return items, nil
}

var (
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)
