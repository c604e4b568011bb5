package artifact

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
)

const downloadTimeout = 10 * time.Second

type objectGetter interface {
	GetObject(ctx context.Context, url string, timeout time.Duration) ([]byte, error)
}

type FetcherConfig struct {
	TempDir string
	// AllowedDomains holds glob patterns of hosts results may be downloaded
	// from. An empty list allows every host.
	AllowedDomains []string
}

type fetcher struct {
	getter objectGetter
	config FetcherConfig
}

var _ Fetcher = (*fetcher)(nil)

func NewFetcher(getter objectGetter, config FetcherConfig) Fetcher {
	if config.TempDir == "" {
		config.TempDir = os.TempDir()
	}

	return &fetcher{getter, config}
}

func (f *fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	if !f.isAllowedDomain(parsed.Hostname()) {
		return "", fmt.Errorf("%w: %s", ErrDomainNotAllowed, parsed.Hostname())
	}

	data, err := f.getter.GetObject(ctx, rawURL, downloadTimeout)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	if err := os.MkdirAll(f.config.TempDir, 0755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	callDir, err := os.MkdirTemp(f.config.TempDir, "artifact-")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	localPath := filepath.Join(callDir, f.localName(parsed))
	if err := os.WriteFile(localPath, data, 0644); err != nil {
		os.RemoveAll(callDir)
		return "", fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	return localPath, nil
}

func (f *fetcher) Release(localPath string) error {
	callDir := filepath.Dir(localPath)
	if filepath.Dir(callDir) != filepath.Clean(f.config.TempDir) {
		return fmt.Errorf("%w: %s", ErrNotFetched, localPath)
	}

	return os.RemoveAll(callDir)
}

// localName is the last segment of the URL path, or a random name when the
// path has none.
func (f *fetcher) localName(source *url.URL) string {
	name := path.Base(source.Path)
	if name == "." || name == "/" || name == "" {
		return "artifact-" + uuid.NewString()
	}

	return name
}

func (f *fetcher) isAllowedDomain(host string) bool {
	if len(f.config.AllowedDomains) == 0 {
		return true
	}

	for _, allowedDomain := range f.config.AllowedDomains {
		if glob.Glob(allowedDomain, host) {
			return true
		}
	}

	return false
}

var (
	ErrDownloadFailed   = errors.New("artifact download failed")
	ErrDomainNotAllowed = errors.New("artifact domain not allowed")
	ErrNotFetched       = errors.New("path was not returned by this fetcher")
)
