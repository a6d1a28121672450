package repository

import (
	"context"

	"github.com/iliyamo/car-rental-admin/internal/apiclient"
	"github.com/iliyamo/car-rental-admin/internal/model"
)

// CarRepo wraps the /api/cars endpoints.
type CarRepo struct {
	res resource[model.Car]
}

// NewCarRepo constructs a CarRepo over the given API client.
func NewCarRepo(api *apiclient.Client) *CarRepo {
	return &CarRepo{res: resource[model.Car]{api: api, path: "/api/cars"}}
}

func (r *CarRepo) List(ctx context.Context) ([]model.Car, error) { return r.res.list(ctx) }

// GetByID returns ErrNotFound when the id is unknown.
func (r *CarRepo) GetByID(ctx context.Context, id uint64) (*model.Car, error) {
	return r.res.get(ctx, id)
}

func (r *CarRepo) Create(ctx context.Context, c *model.Car) error { return r.res.create(ctx, c) }

// Update replaces the car stored under c.ID.
func (r *CarRepo) Update(ctx context.Context, c *model.Car) error { return r.res.update(ctx, c.ID, c) }
