package v1

import (
	"net/http"

	"go-jobboard-api/internal/delivery/http/response"
	"go-jobboard-api/internal/domain"
	"go-jobboard-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(public *gin.RouterGroup, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}
	public.GET("/health", handler.Check)
}

// Check godoc
// @Summary      Health check
// @Description  Reports the state of the database and, when configured, Redis
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response{data=usecase.HealthReport}
// @Failure      503  {object}  response.Response{data=usecase.HealthReport}
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	report := h.healthUC.Check(c.Request.Context())
	if report.Status != "ok" {
		c.JSON(http.StatusServiceUnavailable, response.Response{
			Success:   false,
			Message:   "System degraded",
			Data:      report,
			RequestID: c.GetString(string(domain.KeyRequestID)),
		})
		return
	}
	response.Success(c, http.StatusOK, "System operational", report)
}
