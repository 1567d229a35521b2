package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/altiusfest/altius-api/internal/api/handler/v1/response"
	"github.com/altiusfest/altius-api/internal/pkg/jwthelper"
)

// ClaimsContextKey is where VerifyJWT stores the parsed user claims.
const ClaimsContextKey = "user_claims"

var errMissingBearerToken = errors.New("missing bearer token")

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingBearerToken))

			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))

			return
		}

		ctx.Set(ClaimsContextKey, claims)
		ctx.Next()
	}
}
