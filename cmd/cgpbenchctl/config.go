package main

import (
	"encoding/json"
	"fmt"
	"os"

	"cgpbench/internal/model"
)

// loadParams merges JSON objects from the given files into one parameter
// map. Later files win on key collisions.
func loadParams(paths []string) (map[string]any, error) {
	params := make(map[string]any)
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var chunk map[string]any
		if err := json.Unmarshal(data, &chunk); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		for key, value := range chunk {
			params[key] = value
		}
	}
	return params, nil
}

// loadRunRecords reads one file holding either a single run record object
// or an array of them.
func loadRunRecords(path string) ([]model.RunRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []model.RunRecord
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	var record model.RunRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return []model.RunRecord{record}, nil
}
