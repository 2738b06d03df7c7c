package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/emojisense/emojisense-backend/internal/validation"
	"github.com/emojisense/emojisense-backend/pkg/logger"
)

// listContentFiles returns the sorted *.json paths in dir. A missing
// directory is treated as an empty corpus, not an error.
func listContentFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// loadRecords decodes every *.json file in dir into T. A file that fails
// to read or parse is logged and skipped; it never aborts the rest.
func loadRecords[T any](dir string) []*T {
	files, err := listContentFiles(dir)
	if err != nil {
		logger.Warn("content: cannot read directory %s: %v", dir, err)
		return nil
	}

	records := make([]*T, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("content: skipping %s: %v", path, err)
			continue
		}
		rec := new(T)
		if err := json.Unmarshal(data, rec); err != nil {
			logger.Warn("content: skipping %s: parse error: %v", path, err)
			continue
		}
		records = append(records, rec)
	}
	return records
}

// LoadRawRecords reads every *.json file in dir as an untyped record for
// the validator. Unlike loadRecords, a syntactically broken file is
// reported as a validation error instead of being skipped silently.
func LoadRawRecords(dir string) ([]validation.RawRecord, []validation.Error, error) {
	files, err := listContentFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	var (
		records []validation.RawRecord
		errs    []validation.Error
	)
	for _, path := range files {
		name := filepath.Base(path)
		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, validation.Error{Record: name, Message: "cannot read file: " + err.Error()})
			continue
		}
		var fields map[string]interface{}
		if err := json.Unmarshal(data, &fields); err != nil {
			errs = append(errs, validation.Error{Record: name, Message: "invalid JSON: " + err.Error()})
			continue
		}
		records = append(records, validation.RawRecord{
			ID:     validation.RecordID(fields, name),
			Fields: fields,
		})
	}
	return records, errs, nil
}
