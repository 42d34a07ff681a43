package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	adminID string
	err     error
}

func (s stubVerifier) Verify(token string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.adminID, nil
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		verifier   stubVerifier
		wantStatus int
		wantCalled bool
	}{
		{
			name:       "valid token passes through",
			authHeader: "Bearer good-token",
			verifier:   stubVerifier{adminID: "admin-1"},
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty token",
			authHeader: "Bearer ",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad-token",
			verifier:   stubVerifier{err: errors.New("expired")},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			var gotAdminID string
			handler := RequireAuth(tt.verifier)(func(w http.ResponseWriter, r *http.Request) {
				called = true
				gotAdminID, _ = AdminIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			require.Equal(t, tt.wantCalled, called)
			if tt.wantCalled {
				assert.Equal(t, "admin-1", gotAdminID)
			}
		})
	}
}
