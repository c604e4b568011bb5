package processor

import (
	"context"
	"sort"
	"sync"

	"github.com/disintegration/imaging"
)

// Registry maps module names to local preprocessors. Modules may also be
// addressed by a display alias.
type Registry struct {
	lock          sync.RWMutex
	preprocessors map[string]Preprocessor
	aliases       map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		preprocessors: make(map[string]Preprocessor),
		aliases:       make(map[string]string),
	}
}

// NewDefaultRegistry returns a registry holding the built-in preprocessors.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()
	registry.Register("none", ImageOnly(identity))
	registry.Register("invert", ImageOnly(invert))
	registry.Alias("invert", "invert (from white bg & black line)")
	return registry
}

func (r *Registry) Register(name string, preprocessor Preprocessor) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.preprocessors[name] = preprocessor
}

// Alias sets the display name of module name.
func (r *Registry) Alias(name, display string) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.aliases[name] = display
}

// Basename resolves a display alias to its module name. Unknown names are
// returned unchanged.
func (r *Registry) Basename(module string) string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	for name, display := range r.aliases {
		if display == module {
			return name
		}
	}

	return module
}

func (r *Registry) Lookup(module string) (name string, preprocessor Preprocessor, found bool) {
	name = r.Basename(module)

	r.lock.RLock()
	defer r.lock.RUnlock()

	preprocessor, found = r.preprocessors[name]
	return name, preprocessor, found
}

// Keys lists display names: "none" and invert first, the rest sorted.
func (r *Registry) Keys() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	keys := []string{"none", r.display("invert")}
	var rest []string
	for name := range r.preprocessors {
		display := r.display(name)
		if display == keys[0] || display == keys[1] {
			continue
		}
		rest = append(rest, display)
	}

	sort.Strings(rest)
	return append(keys, rest...)
}

func (r *Registry) display(name string) string {
	if display, found := r.aliases[name]; found {
		return display
	}

	return name
}

func identity(ctx context.Context, in Input) (Output, error) {
	return Output{Image: in.Image, IsImage: true}, nil
}

func invert(ctx context.Context, in Input) (Output, error) {
	return Output{Image: imaging.Invert(in.Image), IsImage: true}, nil
}
