package usecase

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"go-talent-intake/internal/domain"
	"go-talent-intake/pkg/apperror"
	"go-talent-intake/pkg/audit"
	"go-talent-intake/pkg/metrics"
	"go-talent-intake/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type registrationUsecase struct {
	repo     domain.CandidateRepository
	validate *validator.Validate
	audit    *audit.Logger
}

// NewRegistrationUsecase expects validate to carry the custom registration
// tags (see validation.New).
func NewRegistrationUsecase(repo domain.CandidateRepository, validate *validator.Validate, auditLogger *audit.Logger) domain.RegistrationUsecase {
	return &registrationUsecase{repo: repo, validate: validate, audit: auditLogger}
}

// Register validates form and, when every rule passes, stores a new candidate.
// Validation failures come back as a single 422 AppError listing every message.
func (u *registrationUsecase) Register(ctx context.Context, form domain.RegistrationForm) (*domain.Candidate, error) {
	reg := NormalizeRegistration(form)

	var messages []string
	if err := u.validate.Struct(reg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, apperror.Internal(err)
		}
		messages = validation.FormatValidationErrors(err)
	}

	// Fast path only; the unique constraint is checked again on insert.
	if validation.IsIndianMobile(reg.PhoneNumber) {
		exists, err := u.repo.ExistsByPhone(ctx, reg.PhoneNumber)
		if err != nil {
			metrics.CandidateRegistrationsTotal.WithLabelValues(metrics.OutcomeError).Inc()
			return nil, apperror.New(http.StatusInternalServerError, "Registration failed. Please try again.", err)
		}
		if exists {
			messages = append(messages, validation.MsgDuplicatePhone)
		}
	}

	if len(messages) > 0 {
		u.reject(ctx, reg, messages)
		return nil, apperror.Validation(messages)
	}

	candidate := &domain.Candidate{
		FullName:        reg.FullName,
		Age:             reg.Age,
		PhoneNumber:     reg.PhoneNumber,
		Gender:          reg.Gender,
		City:            reg.City,
		JobCategory:     reg.JobCategory,
		JobRole:         reg.JobRole,
		YearsExperience: reg.YearsExperience,
		ExperienceRange: domain.ExperienceRangeFor(reg.YearsExperience),
		CurrentSalary:   reg.CurrentSalary,
		Status:          domain.StatusActive,
	}

	if err := u.repo.Create(ctx, candidate); err != nil {
		if errors.Is(err, domain.ErrDuplicatePhoneNumber) {
			messages = []string{validation.MsgDuplicatePhone}
			u.reject(ctx, reg, messages)
			return nil, apperror.Validation(messages)
		}
		metrics.CandidateRegistrationsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, apperror.New(http.StatusInternalServerError, "Registration failed. Please try again.", err)
	}

	metrics.CandidateRegistrationsTotal.WithLabelValues(metrics.OutcomeAccepted).Inc()
	u.audit.Log(ctx, withRequest(ctx, audit.Event{
		Event:       audit.EventRegistrationAccepted,
		CandidateID: candidate.ID,
		Details: map[string]any{
			"phone":        audit.MaskPhone(candidate.PhoneNumber),
			"job_category": candidate.JobCategory,
		},
	}))
	return candidate, nil
}

func (u *registrationUsecase) reject(ctx context.Context, reg domain.Registration, messages []string) {
	outcome := metrics.OutcomeRejected
	for _, m := range messages {
		if m == validation.MsgDuplicatePhone {
			outcome = metrics.OutcomeDuplicate
		}
	}
	metrics.CandidateRegistrationsTotal.WithLabelValues(outcome).Inc()
	u.audit.Log(ctx, withRequest(ctx, audit.Event{
		Event: audit.EventRegistrationRejected,
		Details: map[string]any{
			"phone":      audit.MaskPhone(reg.PhoneNumber),
			"violations": len(messages),
			"outcome":    outcome,
		},
	}))
}

// NormalizeRegistration trims strings and coerces numbers. An unparsable age
// or experience counts as 0, like a blank field; an unparsable salary is made
// negative so it fails with the salary message.
func NormalizeRegistration(form domain.RegistrationForm) domain.Registration {
	reg := domain.Registration{
		FullName:    strings.TrimSpace(form.FullName),
		PhoneNumber: strings.TrimSpace(form.PhoneNumber),
		Gender:      strings.TrimSpace(form.Gender),
		City:        strings.TrimSpace(form.City),
		JobCategory: strings.TrimSpace(form.JobCategory),
		JobRole:     strings.TrimSpace(form.JobRole),
	}

	if age, err := strconv.Atoi(strings.TrimSpace(form.Age)); err == nil {
		reg.Age = age
	}
	// Rounded to the stored precision so the bucket matches the persisted value.
	if years, ok := parseFinite(form.YearsExperience); ok {
		reg.YearsExperience = math.Round(years*10) / 10
	}

	if strings.TrimSpace(form.CurrentSalary) != "" {
		salary, ok := parseFinite(form.CurrentSalary)
		if !ok {
			salary = -1
		}
		salary = math.Round(salary*100) / 100
		reg.CurrentSalary = &salary
	}
	return reg
}

func parseFinite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
