package repository

import (
	"context"

	"github.com/iliyamo/car-rental-admin/internal/apiclient"
	"github.com/iliyamo/car-rental-admin/internal/model"
)

// FeedbackRepo wraps the /api/feedbacks endpoints.
type FeedbackRepo struct {
	res resource[model.Feedback]
}

// NewFeedbackRepo constructs a FeedbackRepo over the given API client.
func NewFeedbackRepo(api *apiclient.Client) *FeedbackRepo {
	return &FeedbackRepo{res: resource[model.Feedback]{api: api, path: "/api/feedbacks"}}
}

// List returns every feedback the API knows about.
func (r *FeedbackRepo) List(ctx context.Context) ([]model.Feedback, error) {
	return r.res.list(ctx)
}

// GetByID returns ErrNotFound when the id is unknown.
func (r *FeedbackRepo) GetByID(ctx context.Context, id uint64) (*model.Feedback, error) {
	return r.res.get(ctx, id)
}

// Create posts a new feedback; the API's answer (with the new id) is decoded back into f.
func (r *FeedbackRepo) Create(ctx context.Context, f *model.Feedback) error {
	return r.res.create(ctx, f)
}

// Update replaces the feedback stored under f.ID.
func (r *FeedbackRepo) Update(ctx context.Context, f *model.Feedback) error {
	return r.res.update(ctx, f.ID, f)
}
