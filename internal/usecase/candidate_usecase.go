package usecase

import (
	"context"
	"errors"
	"net/http"

	"go-talent-intake/internal/domain"
	"go-talent-intake/pkg/apperror"
	"go-talent-intake/pkg/audit"
	"go-talent-intake/pkg/metrics"
	"go-talent-intake/pkg/pagination"
)

const (
	MsgInvalidCandidateID = "Invalid candidate ID"
	MsgCandidateNotFound  = "Candidate not found"
	MsgInvalidStatus      = "Invalid status"
	MsgStatusUpdated      = "Status updated successfully"
	MsgStatusFailed       = "Failed to update status"
	MsgCandidateDeleted   = "Candidate deleted successfully"
	MsgDeleteFailed       = "Failed to delete candidate"
)

// DefaultExportMaxRows caps an export when no limit is configured.
const DefaultExportMaxRows = 10000

type CandidateUsecaseConfig struct {
	PageSize      int
	ExportMaxRows int
}

type candidateUsecase struct {
	repo  domain.CandidateRepository
	audit *audit.Logger
	cfg   CandidateUsecaseConfig
}

func NewCandidateUsecase(repo domain.CandidateRepository, auditLogger *audit.Logger, cfg CandidateUsecaseConfig) domain.CandidateUsecase {
	if cfg.PageSize < 1 {
		cfg.PageSize = pagination.DefaultPageSize
	}
	if cfg.ExportMaxRows < 1 {
		cfg.ExportMaxRows = DefaultExportMaxRows
	}
	return &candidateUsecase{repo: repo, audit: auditLogger, cfg: cfg}
}

// ListCandidates returns one dashboard page. Pages past the end are empty,
// not errors.
func (u *candidateUsecase) ListCandidates(ctx context.Context, filter domain.CandidateFilter, page int) (*domain.CandidateListing, error) {
	total, err := u.repo.Count(ctx, filter)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to load candidates", err)
	}

	p := pagination.Calculate(page, u.cfg.PageSize, total)

	candidates := []domain.Candidate{}
	if !p.PastEnd() {
		candidates, err = u.repo.Search(ctx, filter, p.Limit, p.Offset)
		if err != nil {
			return nil, apperror.New(http.StatusInternalServerError, "Failed to load candidates", err)
		}
	}

	stats, err := u.repo.GetStats(ctx)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to load statistics", err)
	}

	categories, err := u.repo.ListCategories(ctx)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to load categories", err)
	}

	return &domain.CandidateListing{
		Result: domain.PaginatedResult[domain.Candidate]{
			Data:       candidates,
			Total:      total,
			Page:       p.Page,
			PageSize:   p.PageSize,
			TotalPages: p.TotalPages,
		},
		Pagination:       p,
		Stats:            *stats,
		Categories:       categories,
		ExperienceRanges: domain.ExperienceRanges,
		Statuses:         domain.Statuses,
		Filter:           filter,
	}, nil
}

func (u *candidateUsecase) GetDetail(ctx context.Context, id int64) (*domain.CandidateDetail, error) {
	if id <= 0 {
		return nil, apperror.BadRequest(MsgInvalidCandidateID)
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(MsgCandidateNotFound)
		}
		return nil, apperror.New(http.StatusInternalServerError, "Failed to load candidate", err)
	}

	actions := make([]domain.Status, 0, len(domain.Statuses)-1)
	for _, s := range domain.Statuses {
		if s != c.Status {
			actions = append(actions, s)
		}
	}

	return &domain.CandidateDetail{
		Candidate:     *c,
		ShowUpdatedAt: !c.UpdatedAt.Equal(c.CreatedAt),
		QuickActions:  actions,
	}, nil
}

// UpdateStatus moves a candidate to status. Any status may follow any other.
func (u *candidateUsecase) UpdateStatus(ctx context.Context, id int64, status string) error {
	const action = "update_status"

	if id <= 0 {
		return apperror.BadRequest(MsgInvalidCandidateID)
	}
	s := domain.Status(status)
	if !s.IsValid() {
		metrics.CandidateMutationsTotal.WithLabelValues(action, metrics.OutcomeRejected).Inc()
		return apperror.New(http.StatusBadRequest, MsgInvalidStatus, domain.ErrInvalidStatus)
	}

	affected, err := u.repo.UpdateStatus(ctx, id, s)
	if err != nil {
		metrics.CandidateMutationsTotal.WithLabelValues(action, metrics.OutcomeError).Inc()
		return apperror.New(http.StatusInternalServerError, MsgStatusFailed, err)
	}
	if affected == 0 {
		metrics.CandidateMutationsTotal.WithLabelValues(action, metrics.OutcomeNotFound).Inc()
		return apperror.New(http.StatusNotFound, MsgCandidateNotFound, domain.ErrNotFound)
	}

	metrics.CandidateMutationsTotal.WithLabelValues(action, metrics.OutcomeSuccess).Inc()
	u.audit.Log(ctx, withRequest(ctx, audit.Event{
		Event:       audit.EventStatusChanged,
		CandidateID: id,
		Details:     map[string]any{"status": status},
	}))
	return nil
}

// Delete removes a candidate for good. A missing id is reported as not
// found rather than as success.
func (u *candidateUsecase) Delete(ctx context.Context, id int64) error {
	const action = "delete_candidate"

	if id <= 0 {
		return apperror.BadRequest(MsgInvalidCandidateID)
	}

	affected, err := u.repo.Delete(ctx, id)
	if err != nil {
		metrics.CandidateMutationsTotal.WithLabelValues(action, metrics.OutcomeError).Inc()
		return apperror.New(http.StatusInternalServerError, MsgDeleteFailed, err)
	}
	if affected == 0 {
		metrics.CandidateMutationsTotal.WithLabelValues(action, metrics.OutcomeNotFound).Inc()
		return apperror.New(http.StatusNotFound, MsgCandidateNotFound, domain.ErrNotFound)
	}

	metrics.CandidateMutationsTotal.WithLabelValues(action, metrics.OutcomeSuccess).Inc()
	u.audit.Log(ctx, withRequest(ctx, audit.Event{
		Event:       audit.EventCandidateDeleted,
		CandidateID: id,
	}))
	return nil
}

func (u *candidateUsecase) GetStats(ctx context.Context) (*domain.CandidateStats, error) {
	stats, err := u.repo.GetStats(ctx)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to load statistics", err)
	}
	return stats, nil
}

// withRequest fills the actor and request fields of e from ctx.
func withRequest(ctx context.Context, e audit.Event) audit.Event {
	if v, ok := ctx.Value(domain.KeyUserID).(string); ok {
		e.ActorID = v
	}
	if v, ok := ctx.Value(domain.KeyUserRole).(string); ok {
		e.ActorRole = v
	}
	if v, ok := ctx.Value(domain.KeyRequestID).(string); ok {
		e.RequestID = v
	}
	if v, ok := ctx.Value(domain.KeyClientIP).(string); ok {
		e.IP = v
	}
	return e
}
