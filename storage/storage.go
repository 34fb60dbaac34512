// Package storage persists extracted results to CSV and JSON files. Saves
// overwrite the target; failures are logged and degrade to an error or an
// absent value, never a panic.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"os"

	"go.uber.org/zap"
)

type FileStorage struct {
	options
}

func New(opts ...Option) *FileStorage {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}
	return &FileStorage{
		options: options,
	}
}

// SaveCSV writes one record per row, overwriting path.
func (s *FileStorage) SaveCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		s.logger.Error("create csv failed",
			zap.String("path", path),
			zap.Error(err))
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		s.logger.Error("write csv failed",
			zap.String("path", path),
			zap.Error(err))
		return err
	}
	return nil
}

// SaveJSON writes v pretty-printed with 4-space indentation, overwriting
// path.
func (s *FileStorage) SaveJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		s.logger.Error("marshal json failed",
			zap.String("path", path),
			zap.Error(err))
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		s.logger.Error("write json failed",
			zap.String("path", path),
			zap.Error(err))
		return err
	}
	return nil
}

// LoadJSON reads one JSON value from path, or absent when the file is
// missing or malformed.
func (s *FileStorage) LoadJSON(path string) (any, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Error("read json failed",
			zap.String("path", path),
			zap.Error(err))
		return nil, false
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		s.logger.Error("decode json failed",
			zap.String("path", path),
			zap.Error(err))
		return nil, false
	}
	return v, true
}
