package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"zuccess/go_backend/internal/infra/db/postgres"
)

type stubUsers struct {
	id  int64
	err error
}

func (s *stubUsers) Authenticate(ctx context.Context, username, password string) (int64, error) {
	return s.id, s.err
}

func TestLoginSuccess(t *testing.T) {
	h := &Handlers{Users: &stubUsers{id: 3}, Log: zap.NewNop()}

	rec := postJSON(t, h.Login, `{"username":"admin","password":"password123"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"username":"admin"`)
}

func TestLoginInvalidCredentials(t *testing.T) {
	h := &Handlers{Users: &stubUsers{err: postgres.ErrInvalidCredentials}, Log: zap.NewNop()}

	rec := postJSON(t, h.Login, `{"username":"admin","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid username or password")
}

func TestLoginMissingFields(t *testing.T) {
	h := &Handlers{Users: &stubUsers{}, Log: zap.NewNop()}

	rec := postJSON(t, h.Login, `{"username":"admin"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username and password required")
}
