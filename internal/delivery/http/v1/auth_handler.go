package v1

import (
	"context"
	"net/http"

	"go-jobboard-api/internal/delivery/http/middleware"
	"go-jobboard-api/internal/delivery/http/response"
	"go-jobboard-api/internal/domain"
	"go-jobboard-api/pkg/apperror"
	"go-jobboard-api/pkg/logger"
	"go-jobboard-api/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenIssuer signs bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID, email, role string) (string, error)
}

// LoginGuard blocks repeated failed logins for the same email.
type LoginGuard interface {
	IsBlocked(ctx context.Context, email string) (bool, error)
	RecordFailedAttempt(ctx context.Context, email string, meta security.RequestMeta) (bool, int, error)
	ClearAttempts(ctx context.Context, email string) error
}

type AuthHandler struct {
	authUC domain.AuthUsecase
	tokens TokenIssuer
	guard  LoginGuard
}

func NewAuthHandler(public, protected *gin.RouterGroup, authUC domain.AuthUsecase, tokens TokenIssuer, guard LoginGuard) {
	handler := &AuthHandler{
		authUC: authUC,
		tokens: tokens,
		guard:  guard,
	}

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register", handler.Register)
		publicAuth.POST("/login", handler.Login)
	}

	protected.GET("/auth/me", handler.Me)
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name" binding:"no_emoji"`
	Role     string `json:"role" binding:"omitempty,user_role"`
}

func (r RegisterRequest) input() domain.RegisterInput {
	return domain.RegisterInput{
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
		Role:     r.Role,
	}
}

// Field rules live in the domain so clients see one set of messages.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register godoc
// @Summary      Register
// @Description  Create a CANDIDATE or COMPANY account and return it with a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration details"
// @Success      201       {object}  response.Response{data=AuthResponse}
// @Failure      400       {object}  response.Response
// @Failure      409       {object}  response.Response
// @Failure      429       {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authUC.Register(c.Request.Context(), req.input())
	if err != nil {
		_ = c.Error(err)
		return
	}

	security.DefaultLogger().LogUserRegistered(c.Request.Context(), user.ID(), string(user.Role()), middleware.MetaFrom(c))
	h.respondWithToken(c, http.StatusCreated, "User registered", user)
}

// Login godoc
// @Summary      Login
// @Description  Exchange email and password for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200    {object}  response.Response{data=AuthResponse}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      429    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	blocked, err := h.guard.IsBlocked(ctx, req.Email)
	if err != nil {
		logger.From(ctx).Warn("login guard unavailable", zap.Error(err))
	}
	if blocked {
		response.Error(c, http.StatusTooManyRequests, "Too many failed login attempts. Please try again later.", nil)
		return
	}

	user, err := h.authUC.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if apperror.Is(err, apperror.KindUnauthorized) {
			if _, _, trackErr := h.guard.RecordFailedAttempt(ctx, req.Email, middleware.MetaFrom(c)); trackErr != nil {
				logger.From(ctx).Warn("failed to record login attempt", zap.Error(trackErr))
			}
		}
		_ = c.Error(err)
		return
	}

	if err := h.guard.ClearAttempts(ctx, req.Email); err != nil {
		logger.From(ctx).Warn("failed to clear login attempts", zap.Error(err))
	}
	security.DefaultLogger().LogLoginSuccess(ctx, user.ID(), middleware.MetaFrom(c))
	h.respondWithToken(c, http.StatusOK, "Login successful", user)
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=UserResponse}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	user, err := h.authUC.GetCurrentUser(c.Request.Context(), actor.UserID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Current user", toUserResponse(user))
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, message string, user domain.User) {
	token, err := h.tokens.Issue(user.ID(), user.Email().String(), string(user.Role()))
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, status, message, AuthResponse{User: toUserResponse(user), Token: token})
}
