package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	RunMetadata
	Records []Record `json:"records"`
}

// ExportJSON writes the run metadata and all generations as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, records []Record) error {
	data := ExportData{
		RunMetadata: *meta,
		Records:     records,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
