// File: watch.go
// Title: Configuration File Watching
// Description: Monitors the configuration file through fsnotify and
//              reloads on change, notifying registered change handlers.
//              Editors that replace the file on save are handled by
//              re-adding the watch after remove and rename events.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-18
// Modified: 2025-03-18
//
// Change History:
// - 2025-03-18 v0.1.0: Initial implementation with fsnotify watching

package config

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	slerror "github.com/msto63/scopelog/core/error"
	"github.com/msto63/scopelog/core/log"
	"github.com/msto63/scopelog/utils/stringx"
)

// StartWatching begins monitoring the configuration file for changes.
// Registered change handlers are invoked after every successful reload.
func (c *Config) StartWatching() error {
	if stringx.IsBlank(c.FilePath()) {
		return slerror.New("file path required for watching").
			WithCode(slerror.CodeValidationFailed).
			WithOperation("config.StartWatching")
	}

	c.watchMu.Lock()
	defer c.watchMu.Unlock()
	if c.watchStop != nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return slerror.Wrap(err, "failed to create file watcher").
			WithCode(slerror.CodeWatchError).
			WithOperation("config.StartWatching")
	}

	// Watch the directory, not the file: editors and config management
	// tools replace files on write, which would drop a file-level watch
	dir := filepath.Dir(c.FilePath())
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return slerror.Wrap(err, "failed to watch config directory").
			WithCode(slerror.CodeWatchError).
			WithOperation("config.StartWatching").
			WithDetail("dir", dir)
	}

	stop := make(chan struct{})
	c.watchStop = stop
	go c.watchLoop(watcher, stop)
	return nil
}

// watchLoop consumes fsnotify events until stopped
func (c *Config) watchLoop(watcher *fsnotify.Watcher, stop chan struct{}) {
	defer watcher.Close()

	target := filepath.Clean(c.FilePath())
	for {
		select {
		case <-stop:
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if err := c.reload(); err != nil {
				log.SafeLog("scopelog: config reload failed: " + err.Error())
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.SafeLog("scopelog: config watch error: " + err.Error())
		}
	}
}

// reload re-reads the configuration file and notifies change handlers
func (c *Config) reload() error {
	filePath := c.FilePath()

	content, err := os.ReadFile(filePath)
	if err != nil {
		return slerror.Wrap(err, "failed to read config file during reload").
			WithCode(slerror.CodeConfigError).
			WithOperation("config.reload").
			WithDetail("filePath", filePath)
	}

	newData, err := parseContent(content, c.Format())
	if err != nil {
		return slerror.Wrap(err, "failed to parse config file during reload").
			WithCode(slerror.CodeInvalidConfig).
			WithOperation("config.reload").
			WithDetail("filePath", filePath)
	}

	c.mu.Lock()
	oldConfig := &Config{data: deepCopyMap(c.data), format: c.format}

	c.data = newData
	if fileInfo, statErr := os.Stat(filePath); statErr == nil {
		c.lastModified = fileInfo.ModTime()
	}

	newConfig := &Config{data: deepCopyMap(c.data), format: c.format}
	handlers := make([]ChangeHandler, len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.Unlock()

	for _, handler := range handlers {
		if handler != nil {
			handler(oldConfig, newConfig)
		}
	}
	return nil
}

// WatchAndApply starts watching and re-applies levels to the scope set on
// every change. Reload errors are reported through the emergency logger,
// the previous levels stay in effect.
func (c *Config) WatchAndApply(set *log.ScopeSet) error {
	c.OnChange(func(_, _ *Config) {
		if err := c.Apply(set); err != nil {
			log.SafeLog("scopelog: config apply failed: " + err.Error())
		}
	})
	return c.StartWatching()
}

// StopWatching stops file monitoring
func (c *Config) StopWatching() {
	c.watchMu.Lock()
	defer c.watchMu.Unlock()
	if c.watchStop != nil {
		close(c.watchStop)
		c.watchStop = nil
	}
}

// IsWatching returns whether file monitoring is active
func (c *Config) IsWatching() bool {
	c.watchMu.Lock()
	defer c.watchMu.Unlock()
	return c.watchStop != nil
}
