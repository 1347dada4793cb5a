package fetch

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// FileFetcher reads pages saved to disk. A "file://" prefix is accepted.
type FileFetcher struct{}

// NewFileFetcher creates a FileFetcher.
func NewFileFetcher() *FileFetcher {
	return &FileFetcher{}
}

// Fetch reads the file at path and decodes it to UTF-8 using its BOM or
// <meta> charset declaration.
func (f *FileFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(strings.TrimPrefix(path, "file://"))
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	defer file.Close()

	data, err := readLimited(file)
	if err != nil {
		return nil, err
	}
	return decodeUTF8(data, "")
}

// Close is a no-op.
func (f *FileFetcher) Close() error {
	return nil
}
