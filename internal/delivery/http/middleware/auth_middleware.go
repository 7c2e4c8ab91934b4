package middleware

import (
	"net/http"
	"strings"

	"go-jobboard-api/internal/delivery/http/response"
	"go-jobboard-api/internal/domain"
	"go-jobboard-api/pkg/auth"
	"go-jobboard-api/pkg/logger"
	"go-jobboard-api/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenParser verifies a bearer token and returns its claims.
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// AuthMiddleware requires a valid bearer token and stores the caller's id,
// email and role on the gin context. The role is taken from the signed claims.
func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			logInvalidToken(c, err.Error())
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		role := domain.UserRole(claims.Role)
		if !role.IsValid() {
			logInvalidToken(c, "unknown role claim")
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), claims.UserID)
		c.Set(string(domain.KeyUserEmail), claims.Email)
		c.Set(string(domain.KeyUserRole), role)
		c.Request = c.Request.WithContext(logger.WithFields(c.Request.Context(), zap.String("user_id", claims.UserID)))

		c.Next()
	}
}

// RequireRole rejects authenticated callers whose role is not in roles.
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFrom(c)
		for _, r := range roles {
			if actor.Role == r {
				c.Next()
				return
			}
		}
		response.Error(c, http.StatusForbidden, "Insufficient permissions", nil)
		c.Abort()
	}
}

// ActorFrom reads the identity AuthMiddleware stored on the context. It is the
// zero Actor on routes without AuthMiddleware.
func ActorFrom(c *gin.Context) domain.Actor {
	role, _ := c.Get(string(domain.KeyUserRole))
	r, _ := role.(domain.UserRole)
	return domain.Actor{
		UserID: c.GetString(string(domain.KeyUserID)),
		Email:  c.GetString(string(domain.KeyUserEmail)),
		Role:   r,
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// MetaFrom collects the request attributes recorded with security events.
func MetaFrom(c *gin.Context) security.RequestMeta {
	return security.RequestMeta{
		IP:        c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
		RequestID: c.GetString(string(domain.KeyRequestID)),
	}
}

func logInvalidToken(c *gin.Context, reason string) {
	if sl := security.DefaultLogger(); sl != nil {
		sl.LogInvalidToken(c.Request.Context(), MetaFrom(c), reason)
	}
}
