package storage

import "context"

// Client defines the interface for storing and serving generated assets
// (chart PNGs) regardless of deployment target
type Client interface {
	// Close closes the storage client
	Close() error

	// StoreFile stores a file at the specified path
	StoreFile(ctx context.Context, filePath string, fileData []byte) error

	// GetFile retrieves a file from the specified path
	GetFile(ctx context.Context, filePath string) ([]byte, error)

	// FileExists checks if a file exists at the specified path
	FileExists(ctx context.Context, filePath string) (bool, error)

	// ListFiles lists stored file paths under the given prefix, sorted
	ListFiles(ctx context.Context, prefix string) ([]string, error)
}
