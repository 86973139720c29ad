package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"practice-catalog/internal/model"
	"practice-catalog/pkg/response"
)

var ErrNoUser = errors.New("no authenticated user in context")

type userClaims struct {
	Name        string `json:"name"`
	PracticeKey string `json:"practice_key"`
	jwt.RegisteredClaims
}

// Auth validates the Bearer token and stores the authenticated user in
// the request context. Tokens without a practice key are rejected:
// every catalog operation is scoped to a practice.
func (mw Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		claims := new(userClaims)
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(mw.jwtSecret), nil
		})
		if err != nil || !token.Valid {
			mw.l.Warnf(ctx, "middleware.Auth: invalid token: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}
		if claims.PracticeKey == "" {
			mw.l.Warnf(ctx, "middleware.Auth: token without practice key (sub=%s)", claims.Subject)
			response.Forbidden(c)
			c.Abort()
			return
		}

		user := model.User{
			ID:          claims.Subject,
			Name:        claims.Name,
			PracticeKey: claims.PracticeKey,
		}
		c.Request = c.Request.WithContext(WithUser(ctx, user))
		c.Next()
	}
}
