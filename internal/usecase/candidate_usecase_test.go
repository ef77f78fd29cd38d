package usecase_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strings"
	"testing"
	"time"

	"go-talent-intake/internal/domain"
	"go-talent-intake/internal/usecase"
	"go-talent-intake/pkg/audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newCandidateUsecase(repo domain.CandidateRepository) domain.CandidateUsecase {
	return usecase.NewCandidateUsecase(repo, audit.Nop(), usecase.CandidateUsecaseConfig{PageSize: 20, ExportMaxRows: 100})
}

func sampleCandidate(id int64) domain.Candidate {
	created := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	salary := 60000.0
	return domain.Candidate{
		ID:              id,
		FullName:        "Asha Rao",
		Age:             27,
		PhoneNumber:     "9876543210",
		Gender:          "Female",
		City:            "Pune",
		JobCategory:     "Engineering",
		JobRole:         "Backend Developer",
		YearsExperience: 3,
		ExperienceRange: "3-4 years",
		CurrentSalary:   &salary,
		Status:          domain.StatusActive,
		CreatedAt:       created,
		UpdatedAt:       created,
	}
}

func emptyStats() *domain.CandidateStats {
	return &domain.CandidateStats{MostCommonExperience: domain.NotAvailable, MostCommonCategory: domain.NotAvailable}
}

func TestListCandidates(t *testing.T) {
	ctx := context.Background()
	filter := domain.CandidateFilter{JobCategory: "Engineering"}

	t.Run("Should page through the filtered set", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newCandidateUsecase(repo)

		rows := []domain.Candidate{sampleCandidate(3)}
		repo.On("Count", ctx, filter).Return(int64(45), nil)
		repo.On("Search", ctx, filter, 20, 20).Return(rows, nil)
		repo.On("GetStats", ctx).Return(&domain.CandidateStats{TotalCandidates: 50}, nil)
		repo.On("ListCategories", ctx).Return([]string{"Engineering", "Sales"}, nil)

		listing, err := uc.ListCandidates(ctx, filter, 2)
		require.NoError(t, err)
		assert.Equal(t, rows, listing.Result.Data)
		assert.Equal(t, int64(45), listing.Result.Total)
		assert.Equal(t, 3, listing.Result.TotalPages)
		assert.Equal(t, 2, listing.Pagination.Page)
		assert.Equal(t, []int{1, 2, 3}, listing.Pagination.Window)
		assert.Equal(t, int64(50), listing.Stats.TotalCandidates)
		assert.Equal(t, []string{"Engineering", "Sales"}, listing.Categories)
		assert.Equal(t, domain.ExperienceRanges, listing.ExperienceRanges)
		assert.Equal(t, filter, listing.Filter)
		repo.AssertExpectations(t)
	})

	t.Run("Should clamp the page number", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newCandidateUsecase(repo)

		repo.On("Count", ctx, filter).Return(int64(5), nil)
		repo.On("Search", ctx, filter, 20, 0).Return([]domain.Candidate{}, nil)
		repo.On("GetStats", ctx).Return(emptyStats(), nil)
		repo.On("ListCategories", ctx).Return([]string{}, nil)

		listing, err := uc.ListCandidates(ctx, filter, -4)
		require.NoError(t, err)
		assert.Equal(t, 1, listing.Pagination.Page)
		repo.AssertExpectations(t)
	})

	t.Run("Should return an empty page past the end", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newCandidateUsecase(repo)

		repo.On("Count", ctx, filter).Return(int64(45), nil)
		repo.On("GetStats", ctx).Return(emptyStats(), nil)
		repo.On("ListCategories", ctx).Return([]string{}, nil)

		listing, err := uc.ListCandidates(ctx, filter, 99)
		require.NoError(t, err)
		assert.Empty(t, listing.Result.Data)
		assert.NotNil(t, listing.Result.Data)
		assert.Equal(t, 3, listing.Result.TotalPages)
		repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should return an empty page for the largest page number", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newCandidateUsecase(repo)

		repo.On("Count", ctx, filter).Return(int64(45), nil)
		repo.On("GetStats", ctx).Return(emptyStats(), nil)
		repo.On("ListCategories", ctx).Return([]string{}, nil)

		listing, err := uc.ListCandidates(ctx, filter, math.MaxInt)
		require.NoError(t, err)
		assert.Empty(t, listing.Result.Data)
		assert.GreaterOrEqual(t, listing.Pagination.Offset, 0)
		repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should report zero pages when nothing matches", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newCandidateUsecase(repo)

		repo.On("Count", ctx, filter).Return(int64(0), nil)
		repo.On("GetStats", ctx).Return(emptyStats(), nil)
		repo.On("ListCategories", ctx).Return([]string{}, nil)

		listing, err := uc.ListCandidates(ctx, filter, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, listing.Result.TotalPages)
		assert.Empty(t, listing.Pagination.Window)
	})

	t.Run("Should fail on a storage error", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newCandidateUsecase(repo)

		repo.On("Count", ctx, filter).Return(int64(0), errors.New("db down"))

		_, err := uc.ListCandidates(ctx, filter, 1)
		requireAppError(t, err, http.StatusInternalServerError)
	})
}

func TestGetDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject a non-positive id", func(t *testing.T) {
		uc := newCandidateUsecase(new(MockCandidateRepo))
		_, err := uc.GetDetail(ctx, 0)
		appErr := requireAppError(t, err, http.StatusBadRequest)
		assert.Equal(t, "Invalid candidate ID", appErr.Message)
	})

	t.Run("Should map a miss to not found", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newCandidateUsecase(repo)
		repo.On("GetByID", ctx, int64(7)).Return(nil, domain.ErrNotFound)

		_, err := uc.GetDetail(ctx, 7)
		appErr := requireAppError(t, err, http.StatusNotFound)
		assert.Equal(t, "Candidate not found", appErr.Message)
	})

	t.Run("Should hide last updated for an untouched record", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newCandidateUsecase(repo)
		c := sampleCandidate(7)
		repo.On("GetByID", ctx, int64(7)).Return(&c, nil)

		detail, err := uc.GetDetail(ctx, 7)
		require.NoError(t, err)
		assert.False(t, detail.ShowUpdatedAt)
		assert.Equal(t, []domain.Status{domain.StatusContacted, domain.StatusArchived}, detail.QuickActions)
	})

	t.Run("Should show last updated after a change", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newCandidateUsecase(repo)
		c := sampleCandidate(7)
		c.Status = domain.StatusContacted
		c.UpdatedAt = c.CreatedAt.Add(time.Minute)
		repo.On("GetByID", ctx, int64(7)).Return(&c, nil)

		detail, err := uc.GetDetail(ctx, 7)
		require.NoError(t, err)
		assert.True(t, detail.ShowUpdatedAt)
		assert.Equal(t, []domain.Status{domain.StatusActive, domain.StatusArchived}, detail.QuickActions)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Should update a known candidate", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newCandidateUsecase(repo)
		repo.On("UpdateStatus", ctx, int64(3), domain.StatusArchived).Return(int64(1), nil)

		require.NoError(t, uc.UpdateStatus(ctx, 3, "archived"))
		repo.AssertExpectations(t)
	})

	t.Run("Should reject an unknown status before touching the store", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newCandidateUsecase(repo)

		err := uc.UpdateStatus(ctx, 3, "hired")
		appErr := requireAppError(t, err, http.StatusBadRequest)
		assert.Equal(t, "Invalid status", appErr.Message)
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should reject a non-positive id", func(t *testing.T) {
		uc := newCandidateUsecase(new(MockCandidateRepo))
		requireAppError(t, uc.UpdateStatus(ctx, -1, "active"), http.StatusBadRequest)
	})

	t.Run("Should report a missing candidate", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newCandidateUsecase(repo)
		repo.On("UpdateStatus", ctx, int64(3), domain.StatusActive).Return(int64(0), nil)

		err := uc.UpdateStatus(ctx, 3, "active")
		requireAppError(t, err, http.StatusNotFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Should report a storage failure generically", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newCandidateUsecase(repo)
		repo.On("UpdateStatus", ctx, int64(3), domain.StatusActive).Return(int64(0), errors.New("timeout"))

		appErr := requireAppError(t, uc.UpdateStatus(ctx, 3, "active"), http.StatusInternalServerError)
		assert.Equal(t, "Failed to update status", appErr.Message)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Should delete an existing candidate", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newCandidateUsecase(repo)
		repo.On("Delete", ctx, int64(4)).Return(int64(1), nil)

		require.NoError(t, uc.Delete(ctx, 4))
	})

	t.Run("Should distinguish a missing id from a storage failure", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newCandidateUsecase(repo)
		repo.On("Delete", ctx, int64(4)).Return(int64(0), nil)
		repo.On("Delete", ctx, int64(5)).Return(int64(0), errors.New("db down"))

		appErr := requireAppError(t, uc.Delete(ctx, 4), http.StatusNotFound)
		assert.Equal(t, "Candidate not found", appErr.Message)

		appErr = requireAppError(t, uc.Delete(ctx, 5), http.StatusInternalServerError)
		assert.Equal(t, "Failed to delete candidate", appErr.Message)
	})
}

func TestExportCandidates(t *testing.T) {
	ctx := context.Background()
	filter := domain.CandidateFilter{Status: "active"}
	rows := []domain.Candidate{sampleCandidate(2), sampleCandidate(1)}
	rows[1].FullName = "Ravi, Kumar"
	rows[1].CurrentSalary = nil

	t.Run("Should default to CSV and keep listing order", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newCandidateUsecase(repo)
		repo.On("Search", ctx, filter, 100, 0).Return(rows, nil)

		file, err := uc.ExportCandidates(ctx, domain.ExportRequest{Filter: filter})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(file.Filename, "candidates_"))
		assert.True(t, strings.HasSuffix(file.Filename, ".csv"))

		records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "ID", records[0][0])
		assert.Equal(t, "2", records[1][0])
		assert.Equal(t, "Ravi, Kumar", records[2][1])
		assert.Equal(t, "60000.00", records[1][10])
		assert.Equal(t, "", records[2][10])
	})

	t.Run("Should write an xlsx workbook", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newCandidateUsecase(repo)
		repo.On("Search", ctx, filter, 100, 0).Return(rows, nil)

		file, err := uc.ExportCandidates(ctx, domain.ExportRequest{Filter: filter, Format: "XLSX"})
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(file.Filename, ".xlsx"))

		wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
		require.NoError(t, err)
		defer wb.Close()

		header, err := wb.GetCellValue("Candidates", "B1")
		require.NoError(t, err)
		assert.Equal(t, "Full Name", header)
		name, err := wb.GetCellValue("Candidates", "B3")
		require.NoError(t, err)
		assert.Equal(t, "Ravi, Kumar", name)
	})

	t.Run("Should write JSON", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newCandidateUsecase(repo)
		repo.On("Search", ctx, filter, 100, 0).Return(rows, nil)

		file, err := uc.ExportCandidates(ctx, domain.ExportRequest{Filter: filter, Format: "json"})
		require.NoError(t, err)

		var decoded []domain.Candidate
		require.NoError(t, json.Unmarshal(file.Data, &decoded))
		assert.Len(t, decoded, 2)
	})

	t.Run("Should reject an unknown format", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := newCandidateUsecase(repo)

		_, err := uc.ExportCandidates(ctx, domain.ExportRequest{Format: "pdf"})
		requireAppError(t, err, http.StatusBadRequest)
		repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGetStats(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCandidateRepo)
	uc := newCandidateUsecase(repo)

	stats := &domain.CandidateStats{TotalCandidates: 3, TodayRegistrations: 1, ActiveCandidates: 2, MostCommonExperience: "1-2 years", MostCommonCategory: "Sales"}
	repo.On("GetStats", ctx).Return(stats, nil)

	got, err := uc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats, got)
}
