package v1

import (
	"net/http"

	"go-jobboard-api/internal/delivery/http/response"
	"go-jobboard-api/internal/domain"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	authUC domain.AuthUsecase
}

func NewUserHandler(public *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &UserHandler{authUC: authUC}
	public.POST("/users", handler.Create)
}

// Create godoc
// @Summary      Create user
// @Description  Create an account without issuing a token. Same rules as registration.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      RegisterRequest  true  "User details"
// @Success      201   {object}  response.Response{data=UserResponse}
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authUC.CreateUser(c.Request.Context(), req.input())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "User created", toUserResponse(user))
}
