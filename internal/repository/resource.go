package repository

import (
	"context"
	"strconv"

	"github.com/iliyamo/car-rental-admin/internal/apiclient"
)

// resource implements the four calls every entity endpoint supports.
type resource[T any] struct {
	api  *apiclient.Client
	path string // e.g. "/api/cars"
}

func (r resource[T]) list(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.api.Get(ctx, r.path, &out); err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r resource[T]) get(ctx context.Context, id uint64) (*T, error) {
	out := new(T)
	if err := r.api.Get(ctx, r.itemPath(id), out); err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r resource[T]) create(ctx context.Context, rec *T) error {
	return translate(r.api.Post(ctx, r.path, rec, rec))
}

// update replaces the whole record stored under id.
func (r resource[T]) update(ctx context.Context, id uint64, rec *T) error {
	return translate(r.api.Put(ctx, r.itemPath(id), rec, nil))
}

func (r resource[T]) itemPath(id uint64) string {
	return r.path + "/" + strconv.FormatUint(id, 10)
}
