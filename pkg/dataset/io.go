package dataset

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/streemap/pkg/errors"
)

// Format is a dataset encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot tell dataset format from %q (want .json or .toml)", path)
}

// ParseFormat accepts "json" or "toml" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatTOML:
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown dataset format %q (must be json or toml)", s)
}

// =============================================================================
// Dataset Serialization API
// =============================================================================

// Read decodes a dataset in the given format.
func Read(r io.Reader, format Format) (Dataset, error) {
	switch format {
	case FormatJSON:
		return readJSON(r)
	case FormatTOML:
		return readTOML(r)
	}
	return Dataset{}, errors.New(errors.ErrCodeInvalidFormat, "unknown dataset format %q", format)
}

// ReadFile reads a dataset file, picking the format from its extension. The
// dataset name defaults to the file's base name.
func ReadFile(path string) (Dataset, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Dataset{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Dataset{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return Dataset{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	ds, err := Read(f, format)
	if err != nil {
		return Dataset{}, fmt.Errorf("read %s: %w", path, err)
	}
	if ds.Name == "" {
		ds.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return ds, nil
}

// Unmarshal is Read for in-memory data.
func Unmarshal(data []byte, format Format) (Dataset, error) {
	return Read(bytes.NewReader(data), format)
}

// Marshal encodes a dataset as compact JSON. The encoding is deterministic,
// so it doubles as the input to content hashes.
func Marshal(d Dataset) ([]byte, error) {
	return json.Marshal(d)
}

// Write encodes a dataset in the given format.
func Write(w io.Writer, d Dataset, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case FormatTOML:
		return toml.NewEncoder(w).Encode(d)
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unknown dataset format %q", format)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func readJSON(r io.Reader) (Dataset, error) {
	br := bufio.NewReader(r)
	if first, err := peekNonSpace(br); err == nil && first == '[' {
		var items []Item
		if err := json.NewDecoder(br).Decode(&items); err != nil {
			return Dataset{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json")
		}
		return Dataset{Items: items}, nil
	}

	var d Dataset
	if err := json.NewDecoder(br).Decode(&d); err != nil {
		return Dataset{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json")
	}
	return d, nil
}

func readTOML(r io.Reader) (Dataset, error) {
	var d Dataset
	md, err := toml.NewDecoder(r).Decode(&d)
	if err != nil {
		return Dataset{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Dataset{}, errors.New(errors.ErrCodeInvalidInput, "unknown toml key %q", undecoded[0].String())
	}
	return d, nil
}

// peekNonSpace returns the first non-space byte without consuming it.
func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.Peek(1)
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(rune(b[0])) {
			return b[0], nil
		}
		if _, err := br.Discard(1); err != nil {
			return 0, err
		}
	}
}
