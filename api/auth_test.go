package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	secret := []byte("test-secret")

	t.Run("valid password issues a token accepted by the middleware", func(t *testing.T) {
		handler := newAuthHandler("hunter2", secret, time.Hour)

		form := url.Values{}
		form.Set("password", "hunter2")
		rec := postForm(t, handler.login(), form)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp TokenResponse
		require.NoError(t, jsonDecode(rec, &resp))
		require.NotEmpty(t, resp.Token)

		// round-trip through the auth middleware
		called := false
		protected := newAuthMiddleware(secret).authenticate(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

		req := httptest.NewRequest(http.MethodGet, "/admin/projects", nil)
		req.Header.Set("Authorization", "Bearer "+resp.Token)
		protected.ServeHTTP(httptest.NewRecorder(), req)

		assert.True(t, called)
	})

	t.Run("wrong password", func(t *testing.T) {
		handler := newAuthHandler("hunter2", secret, time.Hour)

		form := url.Values{}
		form.Set("password", "guess")
		rec := postForm(t, handler.login(), form)

		requireFailure(t, rec, http.StatusUnauthorized, "Invalid password.")
	})

	t.Run("unconfigured", func(t *testing.T) {
		handler := newAuthHandler("", nil, time.Hour)
		rec := postForm(t, handler.login(), url.Values{})
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	secret := []byte("test-secret")

	serve := func(m authMiddleware, header string) *httptest.ResponseRecorder {
		protected := m.authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		}))

		req := httptest.NewRequest(http.MethodGet, "/admin/projects", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		return rec
	}

	t.Run("missing header", func(t *testing.T) {
		rec := serve(newAuthMiddleware(secret), "")
		requireFailure(t, rec, http.StatusUnauthorized, "Missing bearer token.")
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := serve(newAuthMiddleware(secret), "Bearer not.a.jwt")
		requireFailure(t, rec, http.StatusUnauthorized, "Invalid or expired token.")
	})

	t.Run("unconfigured secret", func(t *testing.T) {
		rec := serve(newAuthMiddleware(nil), "Bearer whatever")
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
