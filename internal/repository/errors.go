// Package repository reads and writes car-rental records through the remote
// API.  The sentinel errors below let handlers tell failure cases apart
// without looking at HTTP status codes.
package repository

import (
	"errors"
	"net/http"

	"github.com/iliyamo/car-rental-admin/internal/apiclient"
)

// ErrNotFound is returned when the API has no record with the requested id.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the API rejects the admin's token.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidCredentials is returned by Login for a rejected email/password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// translate maps API status errors onto the sentinels above, keeping the
// original error in the chain.
func translate(err error) error {
	var se *apiclient.StatusError
	if !errors.As(err, &se) {
		return err
	}
	switch se.Status {
	case http.StatusNotFound:
		return errors.Join(ErrNotFound, err)
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.Join(ErrForbidden, err)
	}
	return err
}
