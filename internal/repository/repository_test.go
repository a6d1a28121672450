package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/car-rental-admin/internal/apiclient"
	"github.com/iliyamo/car-rental-admin/internal/model"
	"github.com/iliyamo/car-rental-admin/internal/repository"
)

func newAPI(t *testing.T, h http.HandlerFunc) *apiclient.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return apiclient.NewWithHTTPClient(srv.URL, srv.Client())
}

func TestFeedbackRepo_UpdatePutsFullRecordByID(t *testing.T) {
	var got model.Feedback
	api := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/feedbacks/9", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})

	fb := &model.Feedback{ID: 9, CustomerID: 2, RentalID: 3, Rating: 4, Comments: "fine"}
	require.NoError(t, repository.NewFeedbackRepo(api).Update(context.Background(), fb))
	require.Equal(t, *fb, got)
}

func TestCarRepo_GetByIDUnknownIsErrNotFound(t *testing.T) {
	api := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := repository.NewCarRepo(api).GetByID(context.Background(), 42)

	require.True(t, errors.Is(err, repository.ErrNotFound))
	var se *apiclient.StatusError
	require.True(t, errors.As(err, &se), "status error stays in the chain")
}

func TestCustomerRepo_ListForbidden(t *testing.T) {
	api := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := repository.NewCustomerRepo(api).List(context.Background())

	require.ErrorIs(t, err, repository.ErrForbidden)
}

func TestRentalRepo_CreateDecodesAssignedID(t *testing.T) {
	api := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/rentals", r.URL.Path)
		var in model.Rental
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = 55
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(in)
	})

	rt := &model.Rental{CarID: 1, CustomerID: 2, StartDate: "2024-01-01", EndDate: "2024-01-03", TotalPrice: 120}
	require.NoError(t, repository.NewRentalRepo(api).Create(context.Background(), rt))
	require.Equal(t, uint64(55), rt.ID)
	require.Equal(t, 120.0, rt.TotalPrice)
}

func TestAuthRepo_Login(t *testing.T) {
	api := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		var in map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "jwt"})
	})
	repo := repository.NewAuthRepo(api)

	tok, err := repo.Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	require.Equal(t, "jwt", tok)

	_, err = repo.Login(context.Background(), "a@b.c", "nope")
	require.ErrorIs(t, err, repository.ErrInvalidCredentials)
}
