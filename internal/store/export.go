// ABOUTME: Export and import of the full record set.
// ABOUTME: Supports JSON and YAML output formats.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// ExportData is the full backup format: every record keyed as stored.
type ExportData struct {
	Version    string                     `json:"version" yaml:"version"`
	ExportedAt time.Time                  `json:"exported_at" yaml:"exported_at"`
	Tool       string                     `json:"tool" yaml:"tool"`
	Records    map[string]json.RawMessage `json:"records" yaml:"records"`
}

// Export retrieves all records for backup.
func Export(s Store) (*ExportData, error) {
	keys, err := s.Keys()
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}

	records := make(map[string]json.RawMessage, len(keys))
	for _, k := range keys {
		val, err := s.Get(k)
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", k, err)
		}
		if !json.Valid(val) {
			continue // Skip corrupt records
		}
		records[k] = json.RawMessage(val)
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "fitverse",
		Records:    records,
	}, nil
}

// Import writes every record from an export into the store,
// overwriting existing keys.
func Import(s Store, data *ExportData) error {
	for k, v := range data.Records {
		if err := s.Set(k, v); err != nil {
			return fmt.Errorf("import %s: %w", k, err)
		}
	}
	return nil
}

// JSON renders the export as indented JSON.
func (d *ExportData) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// YAML renders the export as YAML, decoding each record so values
// appear as structured documents rather than raw bytes.
func (d *ExportData) YAML() ([]byte, error) {
	records := make(map[string]any, len(d.Records))
	for k, raw := range d.Records {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", k, err)
		}
		records[k] = v
	}

	doc := map[string]any{
		"version":     d.Version,
		"exported_at": d.ExportedAt,
		"tool":        d.Tool,
		"records":     records,
	}
	return yaml.Marshal(doc)
}

// ParseExport decodes a JSON export document.
func ParseExport(data []byte) (*ExportData, error) {
	var d ExportData
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}
	return &d, nil
}
