package v1

import (
	"net/http"

	"go-jobboard-api/internal/delivery/http/middleware"
	"go-jobboard-api/internal/delivery/http/response"
	"go-jobboard-api/internal/domain"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(protected *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := protected.Group("/candidates")
	{
		candidates.POST("", handler.Create)
		candidates.GET("/me", handler.GetMine)
		candidates.PATCH("/me", handler.UpdateResume)
	}
}

type CandidateRequest struct {
	Resume string `json:"resume"`
}

// Create godoc
// @Summary      Create candidate profile
// @Description  Create the caller's candidate profile. Requires the CANDIDATE role.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body      CandidateRequest  true  "Profile"
// @Success      201        {object}  response.Response{data=CandidateResponse}
// @Failure      400        {object}  response.Response
// @Failure      409        {object}  response.Response
// @Router       /candidates [post]
// @Security     BearerAuth
func (h *CandidateHandler) Create(c *gin.Context) {
	var req CandidateRequest
	if !bindJSON(c, &req) {
		return
	}

	candidate, err := h.candidateUC.CreateCandidate(c.Request.Context(), middleware.ActorFrom(c), req.Resume)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Candidate profile created", toCandidateResponse(candidate))
}

// GetMine godoc
// @Summary      Get my candidate profile
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response{data=CandidateResponse}
// @Failure      404  {object}  response.Response
// @Router       /candidates/me [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetMine(c *gin.Context) {
	candidate, err := h.candidateUC.GetMyProfile(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate profile", toCandidateResponse(candidate))
}

// UpdateResume godoc
// @Summary      Update my resume
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body      CandidateRequest  true  "Resume"
// @Success      200        {object}  response.Response{data=CandidateResponse}
// @Failure      400        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /candidates/me [patch]
// @Security     BearerAuth
func (h *CandidateHandler) UpdateResume(c *gin.Context) {
	var req CandidateRequest
	if !bindJSON(c, &req) {
		return
	}

	candidate, err := h.candidateUC.UpdateResume(c.Request.Context(), middleware.ActorFrom(c), req.Resume)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume updated", toCandidateResponse(candidate))
}
