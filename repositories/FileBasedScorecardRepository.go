package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"path"

	log "github.com/sirupsen/logrus"

	"github.com/dylanblandino12/moodys-data-quality-lab/core"
	"github.com/dylanblandino12/moodys-data-quality-lab/utils"
)

// FileBasedScorecardRepository keeps each stored batch of rule results as a
// JSON file in the temp directory.
type FileBasedScorecardRepository struct {
	path  string
	files []string
}

func NewFileBasedScorecardRepository() core.ScorecardRepository {
	return &FileBasedScorecardRepository{
		path:  os.TempDir(),
		files: make([]string, 0),
	}
}

func (r *FileBasedScorecardRepository) Store(results []core.RuleResult) error {
	jsonData, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}

	filePath := path.Join(r.path, utils.GenerateRandomFilename("json"))
	r.files = append(r.files, filePath)
	err = os.WriteFile(filePath, jsonData, 0644)
	if err != nil {
		return err
	}
	return nil
}

func (r *FileBasedScorecardRepository) Clear() error {
	for _, filePath := range r.files {
		err := os.Remove(filePath)
		if err != nil {
			return err
		}
	}
	r.files = nil
	return nil
}

// NewIterator creates a new FileBasedScorecardIterator for the repository.
func (r *FileBasedScorecardRepository) NewIterator() core.ScorecardIterator {
	return &FileBasedScorecardIterator{
		repository: r,
	}
}

func (r *FileBasedScorecardRepository) Close() error {
	return nil
}

// FileBasedScorecardIterator walks the stored batch files one at a time.
type FileBasedScorecardIterator struct {
	repository  *FileBasedScorecardRepository
	currentFile int
	resultSet   core.ScorecardSet
}

// HasNext loads files until a parseable batch is found or all files are
// exhausted.
func (it *FileBasedScorecardIterator) HasNext() bool {
	for it.currentFile < len(it.repository.files) {
		err := it.loadNextFile()
		if err != nil {
			log.Printf("Error loading file %s: %v", it.repository.files[it.currentFile], err)
			it.currentFile++
			continue
		}
		return true
	}
	return false
}

// Next retrieves the last successfully loaded batch.
func (it *FileBasedScorecardIterator) Next() (core.ScorecardSet, error) {
	if it.resultSet.Results == nil {
		return core.ScorecardSet{}, fmt.Errorf("no more result sets available")
	}
	return it.resultSet, nil
}

func (it *FileBasedScorecardIterator) Reset() error {
	it.currentFile = 0
	it.resultSet = core.ScorecardSet{}
	return nil
}

func (it *FileBasedScorecardIterator) loadNextFile() error {
	if it.currentFile >= len(it.repository.files) {
		return fmt.Errorf("no more files to load")
	}

	filePath := it.repository.files[it.currentFile]
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	var results []core.RuleResult
	err = json.Unmarshal(data, &results)
	if err != nil {
		return fmt.Errorf("failed to parse JSON in file %s: %w", filePath, err)
	}

	it.resultSet = core.ScorecardSet{Results: results}
	it.currentFile++

	return nil
}
