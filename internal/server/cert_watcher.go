package server

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"prepmatter/internal/errors"

	"github.com/fsnotify/fsnotify"
)

// CertWatcher watches certificate files for changes and triggers reloads
type CertWatcher struct {
	watcher        *fsnotify.Watcher
	certFile       string
	keyFile        string
	caFile         string
	debounceDelay  time.Duration
	reloadCallback func()
	logger         *errors.Logger

	mu           sync.Mutex
	running      bool
	stopChan     chan struct{}
	debounceTime *time.Timer
	lastModTimes map[string]time.Time
}

// NewCertWatcher creates a new certificate file watcher
func NewCertWatcher(certFile, keyFile, caFile string, debounceDelay time.Duration, reloadCallback func(), logger *errors.Logger) (*CertWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if debounceDelay <= 0 {
		debounceDelay = 5 * time.Second
	}

	return &CertWatcher{
		watcher:        watcher,
		certFile:       certFile,
		keyFile:        keyFile,
		caFile:         caFile,
		debounceDelay:  debounceDelay,
		reloadCallback: reloadCallback,
		logger:         logger,
		stopChan:       make(chan struct{}),
		lastModTimes:   make(map[string]time.Time),
	}, nil
}

// Start begins watching the certificate files for changes
func (cw *CertWatcher) Start() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if cw.running {
		return fmt.Errorf("watcher already running")
	}

	// Watch the containing directories too so atomic writes (rename
	// over the original file) are still detected.
	watched := make(map[string]bool)
	for _, file := range cw.watchedFiles() {
		if err := cw.watcher.Add(file); err != nil {
			return fmt.Errorf("failed to watch %s: %w", file, err)
		}
		cw.recordModTime(file)

		dir := filepath.Dir(file)
		if !watched[dir] {
			if err := cw.watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch directory %s: %w", dir, err)
			}
			watched[dir] = true
		}
	}

	cw.running = true
	go cw.watchLoop()

	if cw.logger != nil {
		cw.logger.Info("Certificate watcher started",
			"files", cw.watchedFiles(),
			"debounce_delay", cw.debounceDelay)
	}

	return nil
}

// Stop stops watching the certificate files
func (cw *CertWatcher) Stop() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if !cw.running {
		return nil
	}

	close(cw.stopChan)
	cw.running = false

	if cw.debounceTime != nil {
		cw.debounceTime.Stop()
	}

	return cw.watcher.Close()
}

// IsRunning reports whether the watcher is active
func (cw *CertWatcher) IsRunning() bool {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	return cw.running
}

// GetWatchedFiles returns the list of files being watched
func (cw *CertWatcher) GetWatchedFiles() []string {
	return cw.watchedFiles()
}

func (cw *CertWatcher) watchedFiles() []string {
	files := make([]string, 0, 3)
	for _, f := range []string{cw.certFile, cw.keyFile, cw.caFile} {
		if f != "" {
			files = append(files, f)
		}
	}
	return files
}

func (cw *CertWatcher) recordModTime(file string) {
	if info, err := os.Stat(file); err == nil {
		cw.lastModTimes[file] = info.ModTime()
	}
}

// watchLoop processes filesystem events until the watcher is stopped
func (cw *CertWatcher) watchLoop() {
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			cw.handleEvent(event)
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			if cw.logger != nil {
				cw.logger.LogError(err, "Certificate watcher error")
			}
		case <-cw.stopChan:
			return
		}
	}
}

// handleEvent filters events down to the watched files and debounces reloads
func (cw *CertWatcher) handleEvent(event fsnotify.Event) {
	if !cw.isWatchedFile(event.Name) {
		return
	}

	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	if !cw.hasFileChanged(event.Name) {
		return
	}

	if cw.logger != nil {
		cw.logger.Debug("Certificate file changed",
			"file", event.Name,
			"op", event.Op.String())
	}

	cw.scheduleReload()
}

func (cw *CertWatcher) isWatchedFile(name string) bool {
	cleaned := filepath.Clean(name)
	for _, f := range cw.watchedFiles() {
		if filepath.Clean(f) == cleaned {
			return true
		}
	}
	return false
}

// hasFileChanged checks modification time to suppress duplicate events
func (cw *CertWatcher) hasFileChanged(file string) bool {
	info, err := os.Stat(file)
	if err != nil {
		// File may be mid-rename; treat as changed so the reload
		// attempt picks up the new file once it lands.
		return true
	}

	cw.mu.Lock()
	defer cw.mu.Unlock()

	lastMod, seen := cw.lastModTimes[file]
	if seen && !info.ModTime().After(lastMod) {
		return false
	}

	cw.lastModTimes[file] = info.ModTime()
	return true
}

// scheduleReload debounces rapid successive events into a single reload
func (cw *CertWatcher) scheduleReload() {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if cw.debounceTime != nil {
		cw.debounceTime.Stop()
	}

	cw.debounceTime = time.AfterFunc(cw.debounceDelay, func() {
		if cw.reloadCallback != nil {
			cw.reloadCallback()
		}
	})
}
