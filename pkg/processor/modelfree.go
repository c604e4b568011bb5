package processor

import "github.com/ryanuber/go-glob"

// DefaultModelFree lists the preprocessors that never consult a model.
var DefaultModelFree = ModelFreeSet{
	"reference_only",
	"reference_adain",
	"reference_adain+attn",
	"revision_clipvision",
	"revision_ignore_prompt",
}

// ModelFreeSet holds glob patterns of model-free module names.
type ModelFreeSet []string

func (s ModelFreeSet) Contains(module string) bool {
	for _, pattern := range s {
		if glob.Glob(pattern, module) {
			return true
		}
	}

	return false
}
