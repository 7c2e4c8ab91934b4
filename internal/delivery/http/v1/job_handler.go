package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-api/internal/delivery/http/middleware"
	"go-jobboard-api/internal/delivery/http/response"
	"go-jobboard-api/internal/domain"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// Browsing is public. Only open jobs are listed.
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.List)
		publicJobs.GET("/:id", handler.GetDetails)
	}

	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.POST("", handler.Create)
		protectedJobs.PATCH("/:id/close", handler.Close)
		protectedJobs.PATCH("/:id/reopen", handler.Reopen)
	}

	protected.GET("/companies/me/jobs", handler.ListMine)
}

type CreateJobRequest struct {
	Title       string `json:"title" binding:"no_emoji"`
	Description string `json:"description"`
}

// Create godoc
// @Summary      Create a job
// @Description  Post a new OPEN job for the caller's company. Requires the COMPANY role.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job"
// @Success      201  {object}  response.Response{data=JobResponse}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if !bindJSON(c, &req) {
		return
	}

	job, err := h.jobUC.CreateJob(c.Request.Context(), middleware.ActorFrom(c), domain.CreateJobInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job created", toJobResponse(job))
}

// List godoc
// @Summary      List open jobs
// @Description  Paginated list of OPEN jobs, newest first. Out of range values fall back to the defaults.
// @Tags         jobs
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 10, max 100)"
// @Success      200    {object}  response.Response{data=response.Page}
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	// Unparseable values become 0 and are replaced by the defaults.
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	result, err := h.jobUC.ListJobs(c.Request.Context(), page, limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Paginated(c, http.StatusOK, "Job list", mapSlice(result.Items, toJobResponse), result.Pagination)
}

// GetDetails godoc
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response{data=JobResponse}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	job, err := h.jobUC.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job details", toJobResponse(job))
}

// ListMine godoc
// @Summary      List my company's jobs
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response{data=[]JobResponse}
// @Failure      404  {object}  response.Response
// @Router       /companies/me/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListMine(c *gin.Context) {
	jobs, err := h.jobUC.ListMyJobs(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company jobs", mapSlice(jobs, toJobResponse))
}

// Close godoc
// @Summary      Close a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response{data=JobResponse}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/close [patch]
// @Security     BearerAuth
func (h *JobHandler) Close(c *gin.Context) {
	job, err := h.jobUC.CloseJob(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job closed", toJobResponse(job))
}

// Reopen godoc
// @Summary      Reopen a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response{data=JobResponse}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/reopen [patch]
// @Security     BearerAuth
func (h *JobHandler) Reopen(c *gin.Context) {
	job, err := h.jobUC.ReopenJob(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job reopened", toJobResponse(job))
}
