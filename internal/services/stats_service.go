package services

import (
	"context"
	"math"
	"strings"
	"time"

	"skylogger/dronelog/internal/common"
	"skylogger/dronelog/internal/constants"
	"skylogger/dronelog/internal/db/repositories"
	"skylogger/dronelog/internal/models/entities"
)

const statsCacheTTL = 60 * time.Second

// ComputeStats aggregates the record collection as of a reference date.
// Pure and order-independent: shuffling the input never changes the result.
func ComputeStats(records []entities.FlightRecord, asOf time.Time) entities.FlightStats {
	stats := entities.FlightStats{TotalFlights: len(records)}
	if len(records) == 0 {
		return stats
	}

	currentMonth := asOf.Format("2006-01")
	for _, record := range records {
		stats.TotalFlightMinutes += record.FlightDuration
		if strings.HasPrefix(record.FlightDate, currentMonth) {
			stats.CurrentMonthFlights++
		}
	}
	stats.AverageFlightMinutes = int(math.Round(float64(stats.TotalFlightMinutes) / float64(stats.TotalFlights)))

	return stats
}

// StatsService serves the dashboard aggregate, caching the computed value
// briefly. Mutating services drop the cache key on every write.
type StatsService struct {
	store *repositories.RecordStore
	cache common.CacheInterface
}

func NewStatsService(store *repositories.RecordStore, cache common.CacheInterface) *StatsService {
	return &StatsService{store: store, cache: cache}
}

// GetStats returns the aggregate over the stored collection as of now.
func (s *StatsService) GetStats(ctx context.Context) entities.FlightStats {
	cacheKey := string(constants.CachePrefixDashboardStats)
	if cached, found := s.cache.Get(cacheKey); found {
		if stats, ok := cached.(entities.FlightStats); ok {
			return stats
		}
	}

	stats := ComputeStats(s.store.LoadFlightRecords(ctx), time.Now())
	s.cache.Set(cacheKey, stats, statsCacheTTL)
	return stats
}

// GetDashboard returns the stats plus the five most recent records for the
// landing page.
func (s *StatsService) GetDashboard(ctx context.Context) (entities.FlightStats, []entities.FlightRecord) {
	records := s.store.LoadFlightRecords(ctx)

	recent := records
	if len(recent) > 5 {
		recent = recent[:5]
	}

	return ComputeStats(records, time.Now()), recent
}

// InvalidateStats drops the cached aggregate after a write.
func (s *StatsService) InvalidateStats() {
	s.cache.Delete(string(constants.CachePrefixDashboardStats))
}
