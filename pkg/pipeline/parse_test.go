package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/streemap/pkg/dataset"
	"github.com/matzehuels/streemap/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		format   dataset.Format
		setName  string
		wantName string
		wantN    int
	}{
		{
			name:     "json object",
			data:     `{"name": "fruit", "items": [{"id": "apple", "weight": 3}, {"id": "pear", "weight": 1}]}`,
			format:   dataset.FormatJSON,
			wantName: "fruit",
			wantN:    2,
		},
		{
			name:     "json array renamed",
			data:     `[{"id": "a", "weight": 1}]`,
			format:   dataset.FormatJSON,
			setName:  "upload",
			wantName: "upload",
			wantN:    1,
		},
		{
			name:     "toml nested",
			data:     "name = \"disk\"\n[[items]]\nid = \"home\"\n[[items.items]]\nid = \"docs\"\nweight = 5\n",
			format:   dataset.FormatTOML,
			wantName: "disk",
			wantN:    2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := Parse(context.Background(), strings.NewReader(tt.data), tt.format, tt.setName)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if ds.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", ds.Name, tt.wantName)
			}
			if ds.Count() != tt.wantN {
				t.Errorf("Count() = %d, want %d", ds.Count(), tt.wantN)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format dataset.Format
		code   errors.Code
	}{
		{"malformed", `{"items": [`, dataset.FormatJSON, errors.ErrCodeInvalidInput},
		{"no items", `{"items": []}`, dataset.FormatJSON, errors.ErrCodeInvalidInput},
		{"negative", `[{"id": "a", "weight": -1}]`, dataset.FormatJSON, errors.ErrCodeInvalidWeight},
		{"duplicate", `[{"id": "a", "weight": 1}, {"id": "a", "weight": 2}]`, dataset.FormatJSON, errors.ErrCodeInvalidInput},
		{"unknown format", `[]`, dataset.Format("yaml"), errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBytes(context.Background(), []byte(tt.data), tt.format, "")
			if !errors.Is(err, tt.code) {
				t.Errorf("ParseBytes() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sales.json")
	if err := os.WriteFile(path, []byte(`[{"id": "q1", "weight": 10}, {"id": "q2", "weight": 12}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	ds, err := ParseFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if ds.Name != "sales" || len(ds.Items) != 2 {
		t.Errorf("ParseFile() = %q with %d items, want sales with 2", ds.Name, len(ds.Items))
	}

	if _, err := ParseFile(context.Background(), filepath.Join(dir, "missing.json")); !errors.IsNotFound(err) {
		t.Errorf("ParseFile(missing) error = %v, want not found", err)
	}
	if _, err := ParseFile(context.Background(), filepath.Join(dir, "data.csv")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ParseFile(csv) error = %v, want INVALID_FORMAT", err)
	}
}
