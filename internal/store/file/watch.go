package file

import (
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"paydesk/internal/domain/directory"
)

// Watch publishes a change signal whenever another process rewrites a
// collection file, the cross-tab storage event of the original
// dashboard. The returned stop function closes the watcher.
func (s *Store) Watch(bus directory.ChangePublisher) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				name := filepath.Base(event.Name)
				if name != employeesFile && name != payslipsFile {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				bus.Publish()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("store watch error", "err", err)
			}
		}
	}()

	return func() { _ = watcher.Close() }, nil
}
