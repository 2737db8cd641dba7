package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/matzehuels/streemap/pkg/dataset"
	"github.com/matzehuels/streemap/pkg/errors"
	"github.com/matzehuels/streemap/pkg/observability"
)

// MaxDatasetBytes bounds how much input Parse reads.
const MaxDatasetBytes = 32 << 20

// Parse reads and validates a dataset in the given format. An empty name
// keeps the name stored in the data.
func Parse(ctx context.Context, r io.Reader, format dataset.Format, name string) (dataset.Dataset, error) {
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, string(format), name)
	start := time.Now()

	ds, err := parse(r, format)
	if err == nil && name != "" {
		ds.Name = name
	}
	hooks.OnParseComplete(ctx, string(format), ds.Name, ds.Count(), time.Since(start), err)
	return ds, err
}

// ParseBytes is Parse over an in-memory document.
func ParseBytes(ctx context.Context, data []byte, format dataset.Format, name string) (dataset.Dataset, error) {
	return Parse(ctx, bytes.NewReader(data), format, name)
}

// ParseFile reads a dataset from path, picking the format by extension.
func ParseFile(ctx context.Context, path string) (dataset.Dataset, error) {
	format, err := dataset.FormatFromPath(path)
	if err != nil {
		return dataset.Dataset{}, err
	}

	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, string(format), path)
	start := time.Now()

	ds, err := dataset.ReadFile(path)
	if err == nil {
		err = validate(ds)
	}
	hooks.OnParseComplete(ctx, string(format), ds.Name, ds.Count(), time.Since(start), err)
	return ds, err
}

func parse(r io.Reader, format dataset.Format) (dataset.Dataset, error) {
	lr := &io.LimitedReader{R: r, N: MaxDatasetBytes + 1}
	ds, err := dataset.Read(lr, format)
	if lr.N <= 0 {
		return dataset.Dataset{}, errors.New(errors.ErrCodeInvalidInput, "dataset exceeds %d bytes", MaxDatasetBytes)
	}
	if err != nil {
		return dataset.Dataset{}, err
	}
	return ds, validate(ds)
}

func validate(ds dataset.Dataset) error {
	if err := ds.Validate(); err != nil {
		return fmt.Errorf("dataset %q: %w", ds.Name, err)
	}
	return nil
}
