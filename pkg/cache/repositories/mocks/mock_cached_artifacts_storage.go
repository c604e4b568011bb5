package mock_cacherepositories

import (
	context "context"
	"sync"

	cacherepositories "github.com/xingzheai/tss-annotator/pkg/cache/repositories"
)

// MockCachedArtifactsStorage is an in-memory CachedArtifactsStorage.
type MockCachedArtifactsStorage struct {
	artifacts map[string][]byte
	lock      sync.Mutex
	err       error
}

var _ cacherepositories.CachedArtifactsStorage = (*MockCachedArtifactsStorage)(nil)

func NewMockCachedArtifactsStorage() *MockCachedArtifactsStorage {
	return &MockCachedArtifactsStorage{
		artifacts: make(map[string][]byte),
	}
}

func (s *MockCachedArtifactsStorage) InstantSave(signature, module string, data []byte) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.artifacts[s.resourceID(signature, module)] = data
}

// ReturnError makes every following call fail with err.
func (s *MockCachedArtifactsStorage) ReturnError(err error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.err = err
}

func (s *MockCachedArtifactsStorage) Save(ctx context.Context, signature, module, mimeType string, data []byte) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.err != nil {
		return s.err
	}

	resourceID := s.resourceID(signature, module)
	if _, exists := s.artifacts[resourceID]; exists {
		return cacherepositories.ErrArtifactAlreadyExists
	}

	s.artifacts[resourceID] = append([]byte(nil), data...)
	return nil
}

func (s *MockCachedArtifactsStorage) Get(ctx context.Context, signature, module string) ([]byte, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.err != nil {
		return nil, s.err
	}

	if data, ok := s.artifacts[s.resourceID(signature, module)]; ok {
		return data, nil
	}

	return nil, cacherepositories.ErrArtifactNotFound
}

func (s *MockCachedArtifactsStorage) Delete(ctx context.Context, signature, module string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.err != nil {
		return s.err
	}

	resourceID := s.resourceID(signature, module)
	if _, ok := s.artifacts[resourceID]; ok {
		delete(s.artifacts, resourceID)
		return nil
	}

	return cacherepositories.ErrArtifactNotFound
}

func (s *MockCachedArtifactsStorage) Exists(signature, module string) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	_, ok := s.artifacts[s.resourceID(signature, module)]
	return ok
}

func (s *MockCachedArtifactsStorage) resourceID(signature, module string) string {
	return module + "/" + signature
}
