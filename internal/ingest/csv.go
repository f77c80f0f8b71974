package ingest

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/veritaslabs/veritas/internal/model"
)

var csvHeader = []string{"id", "title", "url", "date", "text"}

// SaveCSV writes fetched documents to a CSV snapshot so a later run
// can rebuild the index without refetching.
func SaveCSV(path string, docs []model.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, doc := range docs {
		record := []string{
			doc.ID,
			metaString(doc.Metadata, "title"),
			metaString(doc.Metadata, "url"),
			metaString(doc.Metadata, "date"),
			doc.Text,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write record %s: %w", doc.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}

// LoadCSV reads a document snapshot written by SaveCSV.
func LoadCSV(path string) ([]model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	if len(records[0]) != len(csvHeader) || records[0][0] != "id" {
		return nil, fmt.Errorf("%s: unrecognized header %v", path, records[0])
	}

	docs := make([]model.Document, 0, len(records)-1)
	for _, rec := range records[1:] {
		docs = append(docs, model.Document{
			ID:   rec[0],
			Text: rec[4],
			Metadata: map[string]any{
				"source": rec[0],
				"title":  rec[1],
				"url":    rec[2],
				"date":   rec[3],
			},
		})
	}
	return docs, nil
}

func metaString(meta map[string]any, key string) string {
	if meta == nil {
		return ""
	}
	if v, ok := meta[key].(string); ok {
		return v
	}
	return ""
}
