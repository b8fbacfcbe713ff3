package internal

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/plint-dev/plint/internal/types"
)

// EnableWatch prepares the engine to watch the given directories. Call
// StartWatching afterwards to begin receiving events.
func (e *Engine) EnableWatch(dirs []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	e.watcher = watcher
	e.watchDirs = dirs
	return nil
}

func (e *Engine) StartWatching() error {
	if e.watcher == nil {
		return fmt.Errorf("watch not enabled")
	}
	if e.isWatching.Load() {
		return fmt.Errorf("already watching")
	}

	for _, dir := range e.watchDirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return e.watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	e.isWatching.Store(true)
	go e.watchLoop()
	return nil
}

func (e *Engine) StopWatching() error {
	if e.watcher == nil {
		return fmt.Errorf("watch not enabled")
	}
	if !e.isWatching.Swap(false) {
		log.Println("not watching")
	}
	return e.watcher.Close()
}

func (e *Engine) watchLoop() {
	for e.isWatching.Load() {
		select {
		case event, ok := <-e.watcher.Events:
			if !ok {
				return
			}
			e.handleFileEvent(event)
		case err, ok := <-e.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("error: %v", err)
		}
	}
}

func (e *Engine) handleFileEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write == fsnotify.Write {
		if HasTargetExtension(event.Name) {
			// coalesce bursts of writes into one run
			time.Sleep(100 * time.Millisecond)
			issues, err := e.Run(event.Name)
			if err != nil {
				log.Printf("error: %v", err)
				return
			}
			e.reportIssues(event.Name, issues)
		}
	}
}

func (e *Engine) reportIssues(filename string, issues []types.Issue) {
	if len(issues) == 0 {
		log.Printf("no issues found in %s", filename)
		return
	}

	log.Printf("found %d issues in %s", len(issues), filename)
	for _, issue := range issues {
		log.Printf("- %d:%d %s: %s", issue.Line, issue.Column, issue.Check, issue.Message)
	}
}
