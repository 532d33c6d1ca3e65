//go:build unit || e2e

package authtest

import (
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"

	"campsite-booking/internal/handler/dto/request"
	"campsite-booking/internal/pkg/cookie"
	"campsite-booking/tests/common/dbtest"
	"campsite-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	loginPath  = "/api/auth/login"
	logoutPath = "/api/auth/logout"
)

func login(t *testing.T, router *gin.Engine, email, password string) *stdhttptest.ResponseRecorder {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, loginPath,
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, "login as %s: %s", email, w.Body.String())
	return w
}

// LoginUser returns the access token the login endpoint set as a cookie.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	access := httptest.ExtractCookie(login(t, router, email, password), cookie.AccessTokenCookieName)
	require.NotNil(t, access, "access token cookie missing")
	require.NotEmpty(t, access.Value)
	return access.Value
}

// LoginSession returns every cookie of a login response, for requests that authenticate the way a browser does.
func LoginSession(t *testing.T, router *gin.Engine, email, password string) []*http.Cookie {
	t.Helper()

	cookies := httptest.ExtractCookies(login(t, router, email, password))
	require.NotEmpty(t, cookies)
	return cookies
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, dbtest.TestPassword)
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, logoutPath, nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
