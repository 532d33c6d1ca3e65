package cookie

import (
	"net/http"
	"strings"
	"time"

	"campsite-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"

	// refresh token is only ever read by the auth endpoints
	refreshTokenPath = "/api/auth"
)

type tokenCookie struct {
	name   string
	path   string
	value  string
	maxAge int
}

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	write(c, cfg,
		tokenCookie{name: AccessTokenCookieName, path: "/", value: accessToken, maxAge: int(accessExpiry.Seconds())},
		tokenCookie{name: RefreshTokenCookieName, path: refreshTokenPath, value: refreshToken, maxAge: int(refreshExpiry.Seconds())},
	)
}

func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	write(c, cfg,
		tokenCookie{name: AccessTokenCookieName, path: "/", maxAge: -1},
		tokenCookie{name: RefreshTokenCookieName, path: refreshTokenPath, maxAge: -1},
	)
}

func write(c *gin.Context, cfg config.CookieConfig, cookies ...tokenCookie) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	for _, tc := range cookies {
		c.SetCookie(tc.name, tc.value, tc.maxAge, tc.path, cfg.Domain, cfg.Secure, true)
	}
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func getSameSite(sameSite string) http.SameSite {
	switch strings.ToLower(sameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "lax":
		return http.SameSiteLaxMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
