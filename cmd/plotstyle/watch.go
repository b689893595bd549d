// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchLag is how long to wait after the last change before re-rendering,
// so that a burst of writes renders once.
const watchLag = 100 * time.Millisecond

// watch calls render whenever one of the files is written, created or
// renamed into place, until ctx is done. Render errors are logged and
// watching continues. The parent directories are watched, so that files
// replaced by rename (as editors and log rotation do) are still seen.
func watch(ctx context.Context, files []string, render func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	watched := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, fn := range files {
		abs, err := filepath.Abs(fn)
		if err != nil {
			return err
		}
		watched[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return err
		}
		dirs[dir] = true
	}
	slog.Info("watching", "files", files)

	timer := time.NewTimer(watchLag)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				slog.Debug("log changed", "file", event.Name, "op", event.Op.String())
				timer.Reset(watchLag)
			}
		case <-timer.C:
			if err := render(); err != nil {
				slog.Error("render failed", "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "err", err)
		}
	}
}
