package utils

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/dylanblandino12/moodys-data-quality-lab/core"
)

const RunsBucketName = "scorecard_runs"

// RunHistory appends completed scorecard runs to a bbolt file so consecutive
// profiles of the same dataset can be compared later.
type RunHistory struct {
	Path string
}

// RunRecord is one persisted scorecard run. Keys are ordered by RecordedAt so
// a cursor walk returns runs chronologically.
type RunRecord struct {
	ID         string         `json:"id"`
	Dataset    string         `json:"dataset"`
	RecordedAt time.Time      `json:"recorded_at"`
	Scorecard  core.Scorecard `json:"scorecard"`
}

func (h RunHistory) AppendRun(dataset string, scorecard core.Scorecard) error {
	db, err := bbolt.Open(h.Path, 0666, nil)
	if err != nil {
		return fmt.Errorf("failed to open run history %s: %w", h.Path, err)
	}
	defer db.Close()

	record := RunRecord{
		ID:         uuid.New().String(),
		Dataset:    dataset,
		RecordedAt: time.Now().UTC(),
		Scorecard:  scorecard,
	}

	return db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(RunsBucketName))
		if err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}

		data, err := json.Marshal(record)
		if err != nil {
			return err
		}

		key := fmt.Sprintf("%s_%s", record.RecordedAt.Format(time.RFC3339Nano), record.ID)
		return b.Put([]byte(key), data)
	})
}

func (h RunHistory) ListRuns() ([]RunRecord, error) {
	db, err := bbolt.Open(h.Path, 0666, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open run history %s: %w", h.Path, err)
	}
	defer db.Close()

	var records []RunRecord
	err = db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(RunsBucketName))
		if b == nil {
			return nil
		}

		return b.ForEach(func(k, v []byte) error {
			var record RunRecord
			if err := json.Unmarshal(v, &record); err != nil {
				return err
			}
			records = append(records, record)
			return nil
		})
	})
	return records, err
}
