package artifact

import "context"

type Fetcher interface {
	// Fetch downloads url into a directory of its own under the fetcher's
	// temporary directory and returns the local path.
	Fetch(ctx context.Context, url string) (localPath string, err error)

	// Release removes a file returned by Fetch together with its directory.
	Release(localPath string) error
}
