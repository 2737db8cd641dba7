package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/streemap/pkg/errors"
)

const nestedJSON = `{
  "name": "disk",
  "items": [
    {"id": "src", "weight": 120, "color": "#4e79a7"},
    {"id": "docs", "items": [
      {"id": "docs/api", "weight": 30},
      {"id": "docs/guide", "label": "Guide", "weight": 12}
    ]}
  ]
}`

const nestedTOML = `
name = "disk"

[[items]]
id = "src"
weight = 120
color = "#4e79a7"

[[items]]
id = "docs"

  [[items.items]]
  id = "docs/api"
  weight = 30

  [[items.items]]
  id = "docs/guide"
  label = "Guide"
  weight = 12
`

func nestedDataset() Dataset {
	return Dataset{
		Name: "disk",
		Items: []Item{
			{ID: "src", Weight: 120, Color: "#4e79a7"},
			{ID: "docs", Items: []Item{
				{ID: "docs/api", Weight: 30},
				{ID: "docs/guide", Label: "Guide", Weight: 12},
			}},
		},
	}
}

func TestRead(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
		want   Dataset
	}{
		{"json", nestedJSON, FormatJSON, nestedDataset()},
		{"toml", nestedTOML, FormatTOML, nestedDataset()},
		{
			name:   "json array",
			input:  "  \n[{\"id\": \"a\", \"weight\": 1}, {\"id\": \"b\", \"weight\": 2}]",
			format: FormatJSON,
			want:   Dataset{Items: []Item{{ID: "a", Weight: 1}, {ID: "b", Weight: 2}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Read() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
		code   errors.Code
	}{
		{"bad json", `{"items": [`, FormatJSON, errors.ErrCodeInvalidInput},
		{"bad toml", `items = [`, FormatTOML, errors.ErrCodeInvalidInput},
		{"unknown toml key", "[[items]]\nid = \"a\"\nsize = 3\n", FormatTOML, errors.ErrCodeInvalidInput},
		{"unknown format", `{}`, Format("yaml"), errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), tt.format)
			if !errors.Is(err, tt.code) {
				t.Errorf("Read() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "usage.toml")
	if err := os.WriteFile(path, []byte("[[items]]\nid = \"a\"\nweight = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ds, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if ds.Name != "usage" {
		t.Errorf("Name = %q, want name from file", ds.Name)
	}

	if _, err := ReadFile(filepath.Join(dir, "missing.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ReadFile(missing) error = %v, want FILE_NOT_FOUND", err)
	}
	if _, err := ReadFile(filepath.Join(dir, "data.csv")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ReadFile(csv) error = %v, want INVALID_FORMAT", err)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, nestedDataset(), format); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			got, err := Read(&buf, format)
			if err != nil {
				t.Fatalf("Read() error = %v\n%s", err, buf.String())
			}
			if diff := cmp.Diff(nestedDataset(), got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"items.json", FormatJSON, false},
		{"dir/Items.TOML", FormatTOML, false},
		{"items.yaml", "", true},
		{"items", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestEffectiveWeight(t *testing.T) {
	ds := nestedDataset()
	if got := ds.Items[1].EffectiveWeight(); got != 42 {
		t.Errorf("group EffectiveWeight() = %v, want 42", got)
	}

	explicit := Item{ID: "g", Weight: 10, Items: []Item{{ID: "c", Weight: 99}}}
	if got := explicit.EffectiveWeight(); got != 10 {
		t.Errorf("explicit EffectiveWeight() = %v, want 10", got)
	}

	if got := ds.TotalWeight(); got != 162 {
		t.Errorf("TotalWeight() = %v, want 162", got)
	}
	if got := ds.Count(); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		ds   Dataset
		code errors.Code
	}{
		{"valid nested", nestedDataset(), ""},
		{"empty", Dataset{}, errors.ErrCodeInvalidInput},
		{"missing id", Dataset{Items: []Item{{Weight: 1}}}, errors.ErrCodeInvalidInput},
		{"duplicate id", Dataset{Items: []Item{{ID: "a", Weight: 1}, {ID: "a", Weight: 2}}}, errors.ErrCodeInvalidInput},
		{"duplicate across depth", Dataset{Items: []Item{{ID: "a", Items: []Item{{ID: "a", Weight: 2}}}}}, errors.ErrCodeInvalidInput},
		{"negative", Dataset{Items: []Item{{ID: "a", Weight: -1}, {ID: "b", Weight: 2}}}, errors.ErrCodeInvalidWeight},
		{"all zero", Dataset{Items: []Item{{ID: "a"}, {ID: "b"}}}, errors.ErrCodeInvalidWeight},
		{"bad child", Dataset{Items: []Item{{ID: "g", Weight: 5, Items: []Item{{ID: "c", Weight: -3}}}}}, errors.ErrCodeInvalidWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ds.Validate()
			if tt.code == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Validate() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestSortByWeight(t *testing.T) {
	ds := Dataset{Items: []Item{
		{ID: "a", Weight: 1},
		{ID: "b", Weight: 5},
		{ID: "c", Weight: 1},
		{ID: "g", Items: []Item{{ID: "g1", Weight: 1}, {ID: "g2", Weight: 3}}},
	}}
	ds.SortByWeight()

	var got []string
	for _, it := range ds.Items {
		got = append(got, it.ID)
	}
	if diff := cmp.Diff([]string{"b", "g", "a", "c"}, got); diff != "" {
		t.Errorf("SortByWeight() order (-want +got):\n%s", diff)
	}
	if ds.Items[1].Items[0].ID != "g2" {
		t.Errorf("children not sorted: %v", ds.Items[1].Items)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := nestedDataset()
	c := orig.Clone()
	c.Items[1].Items[0].Weight = 1000
	if orig.Items[1].Items[0].Weight != 30 {
		t.Error("Clone shares nested items with the original")
	}
}

func TestMarshalIsDeterministic(t *testing.T) {
	a, err := Marshal(nestedDataset())
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Marshal(nestedDataset())
	if !bytes.Equal(a, b) {
		t.Error("Marshal() output differs between calls")
	}
}
