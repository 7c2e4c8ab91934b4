package v1

import (
	"net/http"

	"go-jobboard-api/internal/delivery/http/middleware"
	"go-jobboard-api/internal/delivery/http/response"
	"go-jobboard-api/internal/domain"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(protected *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	companies := protected.Group("/companies")
	{
		companies.POST("", handler.Create)
		companies.GET("/me", handler.GetMine)
		companies.PATCH("/me", handler.Update)
	}
}

type CompanyRequest struct {
	CompanyName string `json:"companyName" binding:"valid_name,no_emoji"`
	Description string `json:"description" binding:"no_emoji"`
}

func (r CompanyRequest) input() domain.CompanyInput {
	return domain.CompanyInput{CompanyName: r.CompanyName, Description: r.Description}
}

// Create godoc
// @Summary      Create company profile
// @Description  Create the caller's company profile. Requires the COMPANY role.
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        company  body      CompanyRequest  true  "Company"
// @Success      201      {object}  response.Response{data=CompanyResponse}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /companies [post]
// @Security     BearerAuth
func (h *CompanyHandler) Create(c *gin.Context) {
	var req CompanyRequest
	if !bindJSON(c, &req) {
		return
	}

	company, err := h.companyUC.CreateCompany(c.Request.Context(), middleware.ActorFrom(c), req.input())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Company profile created", toCompanyResponse(company))
}

// GetMine godoc
// @Summary      Get my company profile
// @Tags         companies
// @Produce      json
// @Success      200  {object}  response.Response{data=CompanyResponse}
// @Failure      404  {object}  response.Response
// @Router       /companies/me [get]
// @Security     BearerAuth
func (h *CompanyHandler) GetMine(c *gin.Context) {
	company, err := h.companyUC.GetMyCompany(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company profile", toCompanyResponse(company))
}

// Update godoc
// @Summary      Update my company profile
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        company  body      CompanyRequest  true  "Company"
// @Success      200      {object}  response.Response{data=CompanyResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /companies/me [patch]
// @Security     BearerAuth
func (h *CompanyHandler) Update(c *gin.Context) {
	var req CompanyRequest
	if !bindJSON(c, &req) {
		return
	}

	company, err := h.companyUC.UpdateCompany(c.Request.Context(), middleware.ActorFrom(c), req.input())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company profile updated", toCompanyResponse(company))
}
