package v1

import (
	"net/http"

	"go-talent-intake/internal/delivery/http/response"
	"go-talent-intake/internal/domain"
	"go-talent-intake/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	registrationUC domain.RegistrationUsecase
	catalog        domain.JobCatalog
}

// NewRegistrationHandler mounts the public intake routes. register may carry
// extra middleware such as the rate limiter.
func NewRegistrationHandler(r *gin.RouterGroup, registrationUC domain.RegistrationUsecase, catalog domain.JobCatalog, register ...gin.HandlerFunc) {
	handler := &RegistrationHandler{registrationUC: registrationUC, catalog: catalog}

	r.GET("/job-categories", handler.JobCategories)

	candidates := r.Group("/candidates")
	{
		candidates.POST("/register", append(register, handler.Register)...)
	}
}

// Register godoc
// @Summary      Register a candidate
// @Description  Validates the registration form and stores a new candidate. Every violation is reported at once.
// @Tags         registration
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request  body      domain.RegistrationForm  true  "Registration form"
// @Success      201      {object}  response.Response{data=domain.Candidate}
// @Failure      400      {object}  response.Response
// @Failure      422      {object}  response.Response{data=domain.RegistrationForm}
// @Failure      429      {object}  response.Response
// @Router       /candidates/register [post]
func (h *RegistrationHandler) Register(c *gin.Context) {
	var form domain.RegistrationForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	candidate, err := h.registrationUC.Register(c.Request.Context(), form)
	if err != nil {
		// Validation failures echo the submitted values back for re-display.
		if appErr, ok := apperror.As(err); ok && appErr.Code == http.StatusUnprocessableEntity {
			response.ErrorWithData(c, appErr.Code, appErr.Message, appErr.Details, form)
			return
		}
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful! Thank you for joining our talent network.", candidate)
}

// JobCategories godoc
// @Summary      List job categories
// @Description  Categories and their roles, used to populate the role selector
// @Tags         registration
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.JobCategory}
// @Router       /job-categories [get]
func (h *RegistrationHandler) JobCategories(c *gin.Context) {
	response.Success(c, http.StatusOK, "Job categories", h.catalog.Categories())
}
