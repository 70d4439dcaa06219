package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pos-backend/pkg/token"
	"pos-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func TestAuth(t *testing.T) {
	logger := zap.NewNop()

	nextCalled := false
	var gotUserID, gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		gotUserID, _ = utils.GetUserIDFromContext(r.Context())
		gotRole, _ = utils.GetRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := Auth(testSecret, logger)(next)

	t.Run("valid token passes and injects claims", func(t *testing.T) {
		nextCalled = false
		signed, err := token.Issue("user-1", "admin", testSecret)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/products", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, nextCalled)
		assert.Equal(t, "user-1", gotUserID)
		assert.Equal(t, "admin", gotRole)
	})

	t.Run("missing header", func(t *testing.T) {
		nextCalled = false
		req := httptest.NewRequest(http.MethodPost, "/products", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, nextCalled)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		nextCalled = false
		req := httptest.NewRequest(http.MethodPost, "/products", nil)
		req.Header.Set("Authorization", "Basic abc123")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, nextCalled)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		nextCalled = false
		signed, err := token.Issue("user-1", "admin", "other-secret")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/products", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, nextCalled)
	})
}

func TestRequireRole(t *testing.T) {
	logger := zap.NewNop()

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})

	handler := RequireRole("admin", logger)(next)

	t.Run("matching role passes", func(t *testing.T) {
		nextCalled = false
		req := httptest.NewRequest(http.MethodPost, "/products", nil)
		req = req.WithContext(utils.SetUserContext(req.Context(), "user-1", "admin"))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, nextCalled)
	})

	t.Run("other role is forbidden", func(t *testing.T) {
		nextCalled = false
		req := httptest.NewRequest(http.MethodPost, "/products", nil)
		req = req.WithContext(utils.SetUserContext(req.Context(), "user-2", "cashier"))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.False(t, nextCalled)
	})

	t.Run("no auth context", func(t *testing.T) {
		nextCalled = false
		req := httptest.NewRequest(http.MethodPost, "/products", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, nextCalled)
	})
}
