package services

import (
	"context"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sanyaraj24/CrimeReporting/internal/models"
)

// StatsService computes aggregate views over the report table. It runs
// raw SQL on its own pgx pool rather than going through the ORM.
type StatsService interface {
	CrimeStats(ctx context.Context) (*models.CrimeStats, error)
}

type statsService struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewStatsService(pool *pgxpool.Pool) StatsService {
	return &statsService{
		pool:   pool,
		logger: log.New(os.Stdout, "[STATS] ", log.LstdFlags|log.Lmsgprefix),
	}
}

func (s *statsService) CrimeStats(ctx context.Context) (*models.CrimeStats, error) {
	stats := &models.CrimeStats{}

	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM crime_reports`).Scan(&stats.TotalReports)
	if err != nil {
		return nil, err
	}

	stats.Districts, err = s.countBy(ctx, "district")
	if err != nil {
		return nil, err
	}

	stats.SeverityLevels, err = s.countBy(ctx, "severity_level")
	if err != nil {
		return nil, err
	}

	s.logger.Printf("computed stats over %d reports (%d districts)",
		stats.TotalReports, len(stats.Districts))
	return stats, nil
}

// countBy groups the report table by one of its label columns. The
// column name is taken from a fixed caller-supplied set, never from
// request input.
func (s *statsService) countBy(ctx context.Context, column string) ([]models.LabelCount, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+column+`, COUNT(*) FROM crime_reports GROUP BY `+column+` ORDER BY COUNT(*) DESC, `+column)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []models.LabelCount{}
	for rows.Next() {
		var lc models.LabelCount
		if err := rows.Scan(&lc.Label, &lc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, lc)
	}
	return counts, rows.Err()
}
