package repository

import (
	"context"
	"errors"
	"net/http"

	"github.com/iliyamo/car-rental-admin/internal/apiclient"
)

// AuthRepo exchanges admin credentials for an API access token.
type AuthRepo struct {
	api *apiclient.Client
}

func NewAuthRepo(api *apiclient.Client) *AuthRepo {
	return &AuthRepo{api: api}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	Token string `json:"token"`
}

// Login returns the raw JWT issued by the API.  Bad credentials (400/401)
// come back as ErrInvalidCredentials.
func (r *AuthRepo) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResp
	err := r.api.Post(ctx, "/api/auth/login", loginReq{Email: email, Password: password}, &resp)
	if err != nil {
		var se *apiclient.StatusError
		if errors.As(err, &se) && (se.Status == http.StatusUnauthorized || se.Status == http.StatusBadRequest) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if resp.Token == "" {
		return "", errors.New("login: empty token in response")
	}
	return resp.Token, nil
}
