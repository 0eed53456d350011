package ports

import "context"

// FileWatcher notifies about changes to a single file.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type FileWatcher interface {
	// Watch calls onChange after path was written, created or replaced.
	// It returns once watching has started; watching stops when ctx is done.
	Watch(ctx context.Context, path string, onChange func()) error
}
