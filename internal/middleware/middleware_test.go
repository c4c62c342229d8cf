package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-services/internal/service"
)

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(method, Claims{
		Role: "Teacher",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func newJWTRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(JWT("secret"))
	router.GET("/Term", func(c *gin.Context) {
		claims := ClaimsFromContext(c)
		c.String(http.StatusOK, claims.Subject)
	})
	return router
}

func TestJWTAcceptsValidToken(t *testing.T) {
	router := newJWTRouter()
	req := httptest.NewRequest(http.MethodGet, "/Term", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, []byte("secret"), time.Now().Add(time.Hour)))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "42", rec.Body.String())
}

func TestJWTRejectsBadTokens(t *testing.T) {
	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic abc",
		"wrong secret":   "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), time.Now().Add(time.Hour)),
		"expired":        "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("secret"), time.Now().Add(-time.Minute)),
		"wrong method":   "Bearer " + signToken(t, jwt.SigningMethodHS384, []byte("secret"), time.Now().Add(time.Hour)),
	}

	router := newJWTRouter()
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/Term", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestMetricsMiddlewareUsesRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := service.NewMetricsService("grade-service")
	router := gin.New()
	router.Use(Metrics(metrics))
	router.GET("/Grade/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/Grade/5", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/Grade/6", nil))

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",path="/Grade/:id",service="grade-service",status="200"} 2`)
}
