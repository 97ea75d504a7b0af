//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"collective-lifecycle/internal/handler/dto/request"
	"collective-lifecycle/tests/common/dbtest"
	"collective-lifecycle/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// LoginUser returns the access token set as a cookie by the login endpoint.
func LoginUser(t *testing.T, handler http.Handler, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, handler, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, handler http.Handler, email, role string, offererID *uuid.UUID) (uuid.UUID, string) {
	t.Helper()
	id := dbtest.CreateUser(t, db, email, role, offererID)
	return id, LoginUser(t, handler, email, dbtest.DefaultPassword)
}

func LogoutUser(t *testing.T, handler http.Handler, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, handler, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
