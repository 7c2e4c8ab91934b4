package v1

import (
	"net/http"

	"go-jobboard-api/internal/delivery/http/middleware"
	"go-jobboard-api/internal/delivery/http/response"
	"go-jobboard-api/internal/domain"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := protected.Group("/applications")
	{
		applications.POST("", handler.Apply)
		applications.GET("/me", handler.ListMine)
		applications.PATCH("/:id/accept", handler.Accept)
		applications.PATCH("/:id/reject", handler.Reject)
	}

	protected.GET("/jobs/:id/applications", handler.ListForJob)
	protected.GET("/companies/me/applications", handler.ListForCompany)
}

type ApplyRequest struct {
	JobID string `json:"jobId" binding:"required"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  The candidate profile is resolved from the token. Applying twice to the same job is a conflict.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application  body      ApplyRequest  true  "Job to apply to"
// @Success      201          {object}  response.Response{data=ApplicationResponse}
// @Failure      400          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Failure      409          {object}  response.Response
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if !bindJSON(c, &req) {
		return
	}

	application, err := h.applicationUC.Apply(c.Request.Context(), middleware.ActorFrom(c), req.JobID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted", toApplicationResponse(application))
}

// ListMine godoc
// @Summary      List my applications
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]ApplicationResponse}
// @Failure      404  {object}  response.Response
// @Router       /applications/me [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	applications, err := h.applicationUC.ListMyApplications(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "My applications", mapSlice(applications, toApplicationResponse))
}

// ListForJob godoc
// @Summary      List applications to a job
// @Description  Only the company that owns the job may list its applications.
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response{data=[]ApplicationResponse}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	applications, err := h.applicationUC.ListJobApplications(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job applications", mapSlice(applications, toApplicationResponse))
}

// ListForCompany godoc
// @Summary      List applications to my company's jobs
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]ApplicationResponse}
// @Failure      404  {object}  response.Response
// @Router       /companies/me/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForCompany(c *gin.Context) {
	applications, err := h.applicationUC.ListCompanyApplications(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company applications", mapSlice(applications, toApplicationResponse))
}

// Accept godoc
// @Summary      Accept an application
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  response.Response{data=ApplicationResponse}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id}/accept [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) Accept(c *gin.Context) {
	application, err := h.applicationUC.Accept(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application accepted", toApplicationResponse(application))
}

// Reject godoc
// @Summary      Reject an application
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  response.Response{data=ApplicationResponse}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id}/reject [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) Reject(c *gin.Context) {
	application, err := h.applicationUC.Reject(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application rejected", toApplicationResponse(application))
}
