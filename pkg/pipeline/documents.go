package pipeline

import (
	"context"

	"github.com/google/uuid"

	"github.com/matzehuels/streemap/pkg/cache"
	"github.com/matzehuels/streemap/pkg/dataset"
	"github.com/matzehuels/streemap/pkg/errors"
)

// SaveLayout stores a layout under a fresh ID and returns it with the ID set.
// Stored layouts expire after cache.TTLDocument.
func (r *Runner) SaveLayout(ctx context.Context, l dataset.Layout) (dataset.Layout, error) {
	l.ID = uuid.NewString()
	data, err := dataset.MarshalLayout(l)
	if err != nil {
		return dataset.Layout{}, errors.Wrap(errors.ErrCodeInternal, err, "serialize layout")
	}
	if err := r.Cache.Set(ctx, r.Keyer.DocumentKey(l.ID), data, cache.TTLDocument); err != nil {
		return dataset.Layout{}, errors.Wrap(errors.ErrCodeInternal, err, "store layout %s", l.ID)
	}
	return l, nil
}

// LoadLayout returns the layout stored under id.
func (r *Runner) LoadLayout(ctx context.Context, id string) (dataset.Layout, error) {
	if _, err := uuid.Parse(id); err != nil {
		return dataset.Layout{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "layout id %q", id)
	}
	data, hit, err := r.Cache.Get(ctx, r.Keyer.DocumentKey(id))
	if err != nil {
		return dataset.Layout{}, errors.Wrap(errors.ErrCodeInternal, err, "load layout %s", id)
	}
	if !hit {
		return dataset.Layout{}, errors.New(errors.ErrCodeNotFound, "layout %s not found", id)
	}
	l, err := dataset.UnmarshalLayout(data)
	if err != nil {
		return dataset.Layout{}, err
	}
	l.ID = id
	return l, nil
}
