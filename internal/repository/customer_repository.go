package repository

import (
	"context"

	"github.com/iliyamo/car-rental-admin/internal/apiclient"
	"github.com/iliyamo/car-rental-admin/internal/model"
)

// CustomerRepo wraps the /api/customers endpoints.
type CustomerRepo struct {
	res resource[model.Customer]
}

// NewCustomerRepo constructs a CustomerRepo over the given API client.
func NewCustomerRepo(api *apiclient.Client) *CustomerRepo {
	return &CustomerRepo{res: resource[model.Customer]{api: api, path: "/api/customers"}}
}

// List returns all customers.  The API does not paginate this endpoint.
func (r *CustomerRepo) List(ctx context.Context) ([]model.Customer, error) {
	return r.res.list(ctx)
}

// GetByID returns ErrNotFound when the id is unknown.
func (r *CustomerRepo) GetByID(ctx context.Context, id uint64) (*model.Customer, error) {
	return r.res.get(ctx, id)
}

// Create posts a new customer; the API's answer (with the new id) is decoded back into c.
func (r *CustomerRepo) Create(ctx context.Context, c *model.Customer) error {
	return r.res.create(ctx, c)
}

// Update replaces the customer stored under c.ID.
func (r *CustomerRepo) Update(ctx context.Context, c *model.Customer) error {
	return r.res.update(ctx, c.ID, c)
}
