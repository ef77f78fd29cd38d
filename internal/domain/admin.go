package domain

import (
	"go-talent-intake/pkg/pagination"
)

// CandidateStats contains the dashboard header counters. Computed on read.
type CandidateStats struct {
	TotalCandidates      int64  `json:"total_candidates"`
	TodayRegistrations   int64  `json:"today_registrations"`
	ActiveCandidates     int64  `json:"active_candidates"`
	MostCommonExperience string `json:"most_common_experience"`
	MostCommonCategory   string `json:"most_common_category"`
}

// NotAvailable is shown when an aggregate has no rows to work from.
const NotAvailable = "N/A"

// PaginatedResult for list responses
type PaginatedResult[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// CandidateListing is everything the dashboard page needs in one payload.
type CandidateListing struct {
	Result           PaginatedResult[Candidate] `json:"result"`
	Pagination       pagination.Page            `json:"pagination"`
	Stats            CandidateStats             `json:"stats"`
	Categories       []string                   `json:"categories"`
	ExperienceRanges []string                   `json:"experience_ranges"`
	Statuses         []Status                   `json:"statuses"`
	Filter           CandidateFilter            `json:"filter"`
}

// Export formats
const (
	ExportCSV  = "csv"
	ExportXLSX = "xlsx"
	ExportJSON = "json"
)

// ExportRequest represents the export configuration
type ExportRequest struct {
	Filter CandidateFilter `json:"filter"`
	Format string          `json:"format"`
}

// ExportFile is a rendered export ready to stream to the client.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportableColumns lists the columns written by every export format, in order.
var ExportableColumns = []string{
	"id",
	"full_name",
	"age",
	"phone_number",
	"gender",
	"city",
	"job_category",
	"job_role",
	"years_experience",
	"experience_range",
	"current_salary",
	"status",
	"created_at",
	"updated_at",
}
