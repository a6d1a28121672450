package repository

import (
	"context"

	"github.com/iliyamo/car-rental-admin/internal/apiclient"
	"github.com/iliyamo/car-rental-admin/internal/model"
)

// RentalRepo wraps the /api/rentals endpoints.
type RentalRepo struct {
	res resource[model.Rental]
}

// NewRentalRepo constructs a RentalRepo over the given API client.
func NewRentalRepo(api *apiclient.Client) *RentalRepo {
	return &RentalRepo{res: resource[model.Rental]{api: api, path: "/api/rentals"}}
}

// List returns every rental the API knows about.
func (r *RentalRepo) List(ctx context.Context) ([]model.Rental, error) {
	return r.res.list(ctx)
}

// GetByID returns ErrNotFound when the id is unknown.
func (r *RentalRepo) GetByID(ctx context.Context, id uint64) (*model.Rental, error) {
	return r.res.get(ctx, id)
}

// Create posts a new rental; the API's answer (with the new id) is decoded back into rt.
func (r *RentalRepo) Create(ctx context.Context, rt *model.Rental) error {
	return r.res.create(ctx, rt)
}

// Update replaces the rental stored under rt.ID.
func (r *RentalRepo) Update(ctx context.Context, rt *model.Rental) error {
	return r.res.update(ctx, rt.ID, rt)
}
