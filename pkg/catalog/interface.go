package catalog

import (
	"context"
	"time"
)

type Cache interface {
	// FetchModules returns internal names of the preprocessors offered by the
	// remote catalog.
	FetchModules(ctx context.Context) ([]string, error)

	// FetchModels returns models offered by the remote catalog, keyed by display
	// name. The last entry is always the "None" sentinel.
	FetchModels(ctx context.Context) (Models, error)

	// Warmup fetches both categories once per cache lifetime.
	Warmup(ctx context.Context) error
}

type catalogClient interface {
	Call(ctx context.Context, method, path string, timeout time.Duration, body, out interface{}) error
}

type Item struct {
	RealValue    *string `json:"real_value"`
	DisplayValue string  `json:"display_value"`
}

type ModelOption struct {
	Name  string
	Value *string
}

type Models []ModelOption

func (m Models) Lookup(name string) (value *string, found bool) {
	for _, option := range m {
		if option.Name == name {
			return option.Value, true
		}
	}

	return nil, false
}

func (m Models) Names() []string {
	names := make([]string, len(m))
	for i, option := range m {
		names[i] = option.Name
	}

	return names
}

// Resolve keeps selected when it is still offered and falls back to the
// "None" sentinel otherwise.
func (m Models) Resolve(selected string) string {
	if _, found := m.Lookup(selected); found {
		return selected
	}

	return NoneModel
}

// PreprocessorKeys converts remote module names to the keys shown to users.
func PreprocessorKeys(modules []string) []string {
	keys := make([]string, len(modules))
	for i, module := range modules {
		if module == NoneModel {
			module = "none"
		}
		keys[i] = module
	}

	return keys
}
