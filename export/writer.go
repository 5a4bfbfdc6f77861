package export

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSONFile writes a target document as pretty-printed UTF-8 JSON
// with 4-space indentation. This is the on-disk format for every target
// except the FreeTube files, which have their own writers below.
func WriteJSONFile(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteFreeTubeSubscriptionsFile writes FreeTube subscriptions as a
// single compact JSON line, the format of FreeTube's profiles.db.
func WriteFreeTubeSubscriptionsFile(path string, subs *FreeTubeSubscriptions) error {
	data, err := json.Marshal(subs)
	if err != nil {
		return fmt.Errorf("marshal subscriptions: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteFreeTubeHistoryFile writes FreeTube history as newline-delimited
// JSON, one record per line, the format of FreeTube's history.db.
func WriteFreeTubeHistoryFile(path string, entries []FreeTubeHistoryEntry) error {
	var data []byte
	for _, entry := range entries {
		line, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("marshal history entry: %w", err)
		}
		data = append(data, line...)
		data = append(data, '\n')
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
