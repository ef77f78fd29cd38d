package v1

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"go-talent-intake/internal/delivery/http/response"
	"go-talent-intake/internal/domain"
	"go-talent-intake/internal/usecase"
	"go-talent-intake/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// Dashboard quick actions accepted by POST /admin/candidates.
const (
	ActionUpdateStatus    = "update_status"
	ActionDeleteCandidate = "delete_candidate"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

// CandidateActionRequest is the dashboard's quick action form.
type CandidateActionRequest struct {
	Action      string `form:"action" json:"action"`
	CandidateID string `form:"candidate_id" json:"candidate_id"`
	Status      string `form:"status" json:"status"`
}

func NewCandidateHandler(admin *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := admin.Group("/candidates")
	{
		candidates.GET("", handler.List)
		candidates.POST("", handler.Action)
		candidates.GET("/details", handler.Details)
		candidates.GET("/export", handler.Export)
	}
	admin.GET("/stats", handler.Stats)
}

// List godoc
// @Summary      List candidates
// @Description  Filtered, paginated candidate listing with header statistics and filter options
// @Tags         admin
// @Produce      json
// @Param        page              query     int     false  "Page number (1-based)"
// @Param        search            query     string  false  "Substring of name or phone"
// @Param        job_category      query     string  false  "Exact job category"
// @Param        experience_range  query     string  false  "Exact experience range"
// @Param        status            query     string  false  "Exact status"
// @Param        date_from         query     string  false  "Registered on or after (YYYY-MM-DD)"
// @Param        date_to           query     string  false  "Registered on or before (YYYY-MM-DD)"
// @Success      200  {object}  response.Response{data=domain.CandidateListing}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /admin/candidates [get]
// @Security     BearerAuth
func (h *CandidateHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))

	listing, err := h.candidateUC.ListCandidates(c.Request.Context(), candidateFilterFromQuery(c), page)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidates retrieved", listing)
}

// Action godoc
// @Summary      Candidate quick action
// @Description  action=update_status changes a candidate's status; action=delete_candidate removes the record
// @Tags         admin
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request       body      CandidateActionRequest  true  "Quick action"
// @Param        X-CSRF-Token  header    string                  false "CSRF token (cookie sessions)"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /admin/candidates [post]
// @Security     BearerAuth
func (h *CandidateHandler) Action(c *gin.Context) {
	var req CandidateActionRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	id, _ := strconv.ParseInt(strings.TrimSpace(req.CandidateID), 10, 64)

	switch req.Action {
	case ActionUpdateStatus:
		if err := h.candidateUC.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
			c.Error(err)
			return
		}
		response.Success(c, http.StatusOK, usecase.MsgStatusUpdated, nil)
	case ActionDeleteCandidate:
		if err := h.candidateUC.Delete(c.Request.Context(), id); err != nil {
			c.Error(err)
			return
		}
		response.Success(c, http.StatusOK, usecase.MsgCandidateDeleted, nil)
	default:
		c.Error(apperror.BadRequest("Invalid action"))
	}
}

// Details godoc
// @Summary      Candidate detail
// @Tags         admin
// @Produce      json
// @Param        id   query     int  true  "Candidate ID"
// @Success      200  {object}  response.Response{data=domain.CandidateDetail}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/candidates/details [get]
// @Security     BearerAuth
func (h *CandidateHandler) Details(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Query("id"), 10, 64)

	detail, err := h.candidateUC.GetDetail(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate detail", detail)
}

// Export godoc
// @Summary      Export candidates
// @Description  Downloads every candidate matching the current filters
// @Tags         admin
// @Produce      octet-stream
// @Param        type              query     string  false  "csv (default), xlsx or json"
// @Param        search            query     string  false  "Substring of name or phone"
// @Param        job_category      query     string  false  "Exact job category"
// @Param        experience_range  query     string  false  "Exact experience range"
// @Param        status            query     string  false  "Exact status"
// @Param        date_from         query     string  false  "Registered on or after (YYYY-MM-DD)"
// @Param        date_to           query     string  false  "Registered on or before (YYYY-MM-DD)"
// @Success      200  {file}    file
// @Failure      400  {object}  response.Response
// @Router       /admin/candidates/export [get]
// @Security     BearerAuth
func (h *CandidateHandler) Export(c *gin.Context) {
	file, err := h.candidateUC.ExportCandidates(c.Request.Context(), domain.ExportRequest{
		Filter: candidateFilterFromQuery(c),
		Format: c.Query("type"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// Stats godoc
// @Summary      Dashboard statistics
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CandidateStats}
// @Router       /admin/stats [get]
// @Security     BearerAuth
func (h *CandidateHandler) Stats(c *gin.Context) {
	stats, err := h.candidateUC.GetStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate statistics", stats)
}

// candidateFilterFromQuery reads the dashboard filters. Dates that do not
// parse as YYYY-MM-DD are dropped.
func candidateFilterFromQuery(c *gin.Context) domain.CandidateFilter {
	return domain.CandidateFilter{
		Search:          strings.TrimSpace(c.Query("search")),
		JobCategory:     c.Query("job_category"),
		ExperienceRange: c.Query("experience_range"),
		Status:          c.Query("status"),
		DateFrom:        parseDate(c.Query("date_from")),
		DateTo:          parseDate(c.Query("date_to")),
	}
}

func parseDate(s string) *time.Time {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &t
}
