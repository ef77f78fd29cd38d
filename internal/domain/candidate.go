package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"time"
)

// Status is the triage state of a candidate record.
type Status string

const (
	StatusActive    Status = "active"
	StatusContacted Status = "contacted"
	StatusArchived  Status = "archived"
)

// Statuses lists every status a candidate may hold, in display order.
var Statuses = []Status{StatusActive, StatusContacted, StatusArchived}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusContacted, StatusArchived:
		return true
	}
	return false
}

// Gender constants, stored verbatim
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Experience range labels used by the dashboard filter.
const (
	ExperienceFresher   = "Fresher"
	Experience1To2      = "1-2 years"
	Experience2To3      = "2-3 years"
	Experience3To4      = "3-4 years"
	Experience4To5      = "4-5 years"
	Experience5To7      = "5-7 years"
	Experience7To10     = "7-10 years"
	ExperienceTenOrMore = "10+ years"
)

// ExperienceRanges lists the bucket labels in ascending order.
var ExperienceRanges = []string{
	ExperienceFresher,
	Experience1To2,
	Experience2To3,
	Experience3To4,
	Experience4To5,
	Experience5To7,
	Experience7To10,
	ExperienceTenOrMore,
}

// ExperienceRangeFor maps raw years of experience onto its bucket label.
func ExperienceRangeFor(years float64) string {
	switch {
	case years < 1:
		return ExperienceFresher
	case years < 2:
		return Experience1To2
	case years < 3:
		return Experience2To3
	case years < 4:
		return Experience3To4
	case years < 5:
		return Experience4To5
	case years < 7:
		return Experience5To7
	case years < 10:
		return Experience7To10
	default:
		return ExperienceTenOrMore
	}
}

// Candidate is one applicant collected through the registration form.
type Candidate struct {
	ID              int64     `json:"id"`
	FullName        string    `json:"full_name"`
	Age             int       `json:"age"`
	PhoneNumber     string    `json:"phone_number"`
	Gender          string    `json:"gender"`
	City            string    `json:"city"`
	JobCategory     string    `json:"job_category"`
	JobRole         string    `json:"job_role"`
	YearsExperience float64   `json:"years_experience"`
	ExperienceRange string    `json:"experience_range"`
	CurrentSalary   *float64  `json:"current_salary"`
	Status          Status    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// RegistrationForm carries the raw submitted values. Every field is optional
// at the transport level; normalization and validation happen in the usecase.
type RegistrationForm struct {
	FullName        string `json:"full_name" form:"full_name"`
	Age             string `json:"age" form:"age"`
	PhoneNumber     string `json:"phone_number" form:"phone_number"`
	Gender          string `json:"gender" form:"gender"`
	City            string `json:"city" form:"city"`
	JobCategory     string `json:"job_category" form:"job_category"`
	JobRole         string `json:"job_role" form:"job_role"`
	YearsExperience string `json:"years_experience" form:"years_experience"`
	CurrentSalary   string `json:"current_salary" form:"current_salary"`
}

// UnmarshalJSON accepts each field as a JSON string, number or null, so API
// clients may send "age": 27 as well as "age": "27".
func (f *RegistrationForm) UnmarshalJSON(data []byte) error {
	var raw struct {
		FullName        formValue `json:"full_name"`
		Age             formValue `json:"age"`
		PhoneNumber     formValue `json:"phone_number"`
		Gender          formValue `json:"gender"`
		City            formValue `json:"city"`
		JobCategory     formValue `json:"job_category"`
		JobRole         formValue `json:"job_role"`
		YearsExperience formValue `json:"years_experience"`
		CurrentSalary   formValue `json:"current_salary"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*f = RegistrationForm{
		FullName:        string(raw.FullName),
		Age:             string(raw.Age),
		PhoneNumber:     string(raw.PhoneNumber),
		Gender:          string(raw.Gender),
		City:            string(raw.City),
		JobCategory:     string(raw.JobCategory),
		JobRole:         string(raw.JobRole),
		YearsExperience: string(raw.YearsExperience),
		CurrentSalary:   string(raw.CurrentSalary),
	}
	return nil
}

type formValue string

func (v *formValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = formValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = formValue(n.String())
	return nil
}

// Registration is the normalized form, ready to validate.
type Registration struct {
	FullName        string   `validate:"required,min=2"`
	Age             int      `validate:"gte=16,lte=80"`
	PhoneNumber     string   `validate:"required,indian_mobile"`
	Gender          string   `validate:"oneof=Male Female Other"`
	City            string   `validate:"required,min=2"`
	JobCategory     string   `validate:"required,job_category"`
	JobRole         string   `validate:"required,job_role"`
	YearsExperience float64  `validate:"gte=0,lte=50"`
	CurrentSalary   *float64 `validate:"omitempty,gte=0,lte=9999999999.99"`
}

// CandidateFilter holds the optional dashboard criteria. Zero values impose
// no constraint; everything supplied is combined with AND.
type CandidateFilter struct {
	Search          string     `json:"search,omitempty"`
	JobCategory     string     `json:"job_category,omitempty"`
	ExperienceRange string     `json:"experience_range,omitempty"`
	Status          string     `json:"status,omitempty"`
	DateFrom        *time.Time `json:"date_from,omitempty"`
	DateTo          *time.Time `json:"date_to,omitempty"`
}

// CandidateDetail is the detail view of one record plus display hints.
type CandidateDetail struct {
	Candidate     Candidate `json:"candidate"`
	ShowUpdatedAt bool      `json:"show_updated_at"`
	QuickActions  []Status  `json:"quick_actions"`
}

type CandidateRepository interface {
	Create(ctx context.Context, c *Candidate) error
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	GetByID(ctx context.Context, id int64) (*Candidate, error)
	Search(ctx context.Context, filter CandidateFilter, limit, offset int) ([]Candidate, error)
	Count(ctx context.Context, filter CandidateFilter) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status Status) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	GetStats(ctx context.Context) (*CandidateStats, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type RegistrationUsecase interface {
	Register(ctx context.Context, form RegistrationForm) (*Candidate, error)
}

type CandidateUsecase interface {
	ListCandidates(ctx context.Context, filter CandidateFilter, page int) (*CandidateListing, error)
	GetDetail(ctx context.Context, id int64) (*CandidateDetail, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
	GetStats(ctx context.Context) (*CandidateStats, error)
	ExportCandidates(ctx context.Context, req ExportRequest) (*ExportFile, error)
}
