package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Sanyaraj24/CrimeReporting/internal/models"
)

// ErrReportNotFound is returned when no report matches the requested id.
var ErrReportNotFound = errors.New("crime report not found")

// ReportFilter narrows the feed. The zero value selects everything.
type ReportFilter struct {
	// District matches the report's district exactly.
	District string
	// Search matches title or description, case-insensitively.
	Search string
	// Days keeps reports whose incident date falls within the last
	// N days. Zero disables the window.
	Days int
}

// ReportService defines the business operations on crime reports.
type ReportService interface {
	// CreateReport inserts r and fills in its assigned id and
	// creation timestamp.
	CreateReport(ctx context.Context, r *models.CrimeReport) error
	// ListReports returns reports matching f ordered by incident
	// date, most recent first.
	ListReports(ctx context.Context, f ReportFilter) ([]models.CrimeReport, error)
	// GetReport fetches one report by id, ErrReportNotFound when
	// no row matches.
	GetReport(ctx context.Context, id int64) (*models.CrimeReport, error)
}

type reportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) ReportService {
	return &reportService{db: db}
}

func (s *reportService) CreateReport(ctx context.Context, r *models.CrimeReport) error {
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *reportService) ListReports(ctx context.Context, f ReportFilter) ([]models.CrimeReport, error) {
	q := s.db.WithContext(ctx).Order("incident_date DESC")

	if f.District != "" {
		q = q.Where("district = ?", f.District)
	}
	if f.Search != "" {
		term := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}
	if f.Days > 0 {
		// incident dates are ISO strings, so lexicographic
		// comparison is date order
		cutoff := time.Now().AddDate(0, 0, -f.Days).Format("2006-01-02")
		q = q.Where("incident_date >= ?", cutoff)
	}

	var reports []models.CrimeReport
	if err := q.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *reportService) GetReport(ctx context.Context, id int64) (*models.CrimeReport, error) {
	var report models.CrimeReport
	err := s.db.WithContext(ctx).First(&report, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}
