package sources

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/gobwas/glob"
	log "github.com/sirupsen/logrus"

	"github.com/dylanblandino12/moodys-data-quality-lab/core"
)

// MaxFileWorkers sets the number of parallel workers that load dataset files.
var MaxFileWorkers = runtime.NumCPU()

// GlobIssuerSource loads every CSV beneath a directory whose base name
// matches the configured glob pattern, fanning the files out to a worker
// pool and concatenating the row sets.
type GlobIssuerSource struct {
	Directory string
	Pattern   string // defaults to "*.csv"
}

func (s *GlobIssuerSource) Load() ([]core.Issuer, error) {
	info, err := os.Stat(s.Directory)
	if err != nil {
		return nil, &core.DataSourceError{Source: s.Directory, Err: err}
	}
	if !info.IsDir() {
		return nil, &core.DataSourceError{Source: s.Directory, Err: fmt.Errorf("'%s' is not a directory", s.Directory)}
	}

	pattern := s.Pattern
	if pattern == "" {
		pattern = "*.csv"
	}
	matcher, err := glob.Compile(pattern)
	if err != nil {
		return nil, &core.DataSourceError{Source: s.Directory, Err: fmt.Errorf("invalid pattern '%s': %w", pattern, err)}
	}

	var matched []string
	walkErr := filepath.WalkDir(s.Directory, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && matcher.Match(filepath.Base(path)) {
			matched = append(matched, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, &core.DataSourceError{Source: s.Directory, Err: walkErr}
	}

	if len(matched) == 0 {
		return nil, &core.DataSourceError{Source: s.Directory, Err: fmt.Errorf("no files matching '%s'", pattern)}
	}

	files := make(chan string, len(matched))
	rowSets := make(chan []core.Issuer, len(matched))
	errs := make(chan error, len(matched))

	var wg sync.WaitGroup
	for i := 0; i < MaxFileWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range files {
				rows, err := NewCsvIssuerSource(path).Load()
				if err != nil {
					errs <- err
					continue
				}
				rowSets <- rows
			}
		}()
	}

	for _, path := range matched {
		files <- path
	}
	close(files)

	go func() {
		wg.Wait()
		close(rowSets)
		close(errs)
	}()

	var issuers []core.Issuer
	for rows := range rowSets {
		issuers = append(issuers, rows...)
	}

	var errorMessages []string
	for err := range errs {
		log.Errorf("Error loading dataset file: %v", err)
		errorMessages = append(errorMessages, err.Error())
	}
	if len(errorMessages) > 0 {
		return nil, &core.DataSourceError{Source: s.Directory, Err: fmt.Errorf("errors encountered during load:\n%s",
			strings.Join(errorMessages, "\n"))}
	}

	return issuers, nil
}
