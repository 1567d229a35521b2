package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altiusfest/altius-api/internal/pkg/jwthelper"
)

func newProtectedRouter(signingKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", NewAuthenticator(signingKey).VerifyJWT(), func(ctx *gin.Context) {
		claims := ctx.MustGet(ClaimsContextKey).(*jwthelper.UserClaims)
		ctx.JSON(http.StatusOK, gin.H{"username": claims.Username})
	})

	return router
}

func TestAuthenticator_VerifyJWT(t *testing.T) {
	const signingKey = "test-signing-key"

	t.Run("valid bearer token passes through", func(t *testing.T) {
		pair, err := jwthelper.GenerateTokenPair([]byte(signingKey), 7, "organizer1")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)

		recorder := httptest.NewRecorder()
		newProtectedRouter(signingKey).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "organizer1")
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)

		recorder := httptest.NewRecorder()
		newProtectedRouter(signingKey).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		pair, err := jwthelper.GenerateTokenPair([]byte("other-key"), 7, "organizer1")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)

		recorder := httptest.NewRecorder()
		newProtectedRouter(signingKey).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestRateLimiter_Limit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/limited", NewRateLimiter(2).Limit(), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	// The bucket holds two tokens; the third immediate request trips it.
	for i := 0; i < 2; i++ {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/limited", nil))
		require.Equal(t, http.StatusOK, recorder.Code)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
}
