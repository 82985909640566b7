package services

import (
	"context"
	"fmt"
	"time"

	"skylogger/dronelog/internal/constants"
	"skylogger/dronelog/internal/db/repositories"
	"skylogger/dronelog/internal/logging"
	"skylogger/dronelog/internal/metrics"
	"skylogger/dronelog/internal/models/dtos"
	"skylogger/dronelog/internal/models/entities"
)

// createdAtLayout matches the timestamp format of the original logbook form.
const createdAtLayout = "2006/01/02 15:04:05"

// FlightLogService owns the flight record collection: validated creation,
// listing, clearing, and the CSV export. Records are immutable once stored.
type FlightLogService struct {
	store      *repositories.RecordStore
	stats      *StatsService
	metricsReg *metrics.MetricsRegistry
	now        func() time.Time
}

func NewFlightLogService(store *repositories.RecordStore, stats *StatsService, metricsReg *metrics.MetricsRegistry) *FlightLogService {
	return &FlightLogService{
		store:      store,
		stats:      stats,
		metricsReg: metricsReg,
		now:        time.Now,
	}
}

// CreateFlightRecord validates the candidate, snapshots the selected
// aircraft, and prepends the record to the stored collection.
func (s *FlightLogService) CreateFlightRecord(ctx context.Context, req *dtos.CreateFlightRecordReq) (*entities.FlightRecord, error) {
	if err := ValidateFlightRecord(req, constants.PreFlightChecklist); err != nil {
		s.countRejection(err.Code)
		return nil, err
	}

	registry := s.store.LoadAircraftRegistry(ctx)
	aircraft, ok := registry[req.SelectedAircraft]
	if !ok {
		s.countRejection(constants.ErrCodeAircraftNotFound)
		return nil, NewDomainError(constants.ErrCodeAircraftNotFound)
	}

	records := s.store.LoadFlightRecords(ctx)
	now := s.now()

	record := entities.FlightRecord{
		ID:                  monotonicID(now, records),
		FlightDate:          req.FlightDate,
		SelectedAircraft:    req.SelectedAircraft,
		AircraftInfo:        &aircraft,
		PilotName:           req.PilotName,
		LicenseNumber:       req.LicenseNumber,
		FlightPurpose:       req.FlightPurpose,
		FlightRoute:         req.FlightRoute,
		TakeoffLocation:     req.TakeoffLocation,
		TakeoffTime:         req.TakeoffTime,
		LandingLocation:     req.LandingLocation,
		LandingTime:         req.LandingTime,
		FlightDuration:      req.FlightDuration,
		TotalFlightTime:     req.TotalFlightTime,
		FlightAreas:         req.FlightAreas,
		PreFlightInspection: req.PreFlightInspection,
		SafetyIssues:        defaultIfBlank(req.SafetyIssues, constants.DefaultSafetyIssues),
		MalfunctionDetails:  defaultIfBlank(req.MalfunctionDetails, constants.DefaultMalfunctionDetails),
		CreatedAt:           now.Format(createdAtLayout),
	}
	if record.FlightAreas == nil {
		record.FlightAreas = []string{}
	}

	// Newest first, matching the stored document order.
	updated := append([]entities.FlightRecord{record}, records...)
	if err := s.store.SaveFlightRecords(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to persist flight record: %w", err)
	}

	s.stats.InvalidateStats()
	if s.metricsReg != nil {
		s.metricsReg.FlightRecordsCreatedTotal.Inc()
	}
	logging.Info("Flight record created",
		"record_id", record.ID,
		"registration", record.SelectedAircraft,
		"flight_date", record.FlightDate,
	)
	return &record, nil
}

// ListFlightRecords returns the collection, newest first.
func (s *FlightLogService) ListFlightRecords(ctx context.Context) []entities.FlightRecord {
	return s.store.LoadFlightRecords(ctx)
}

// ClearFlightRecords deletes the entire collection. Individual records
// cannot be edited or removed.
func (s *FlightLogService) ClearFlightRecords(ctx context.Context) error {
	if err := s.store.SaveFlightRecords(ctx, []entities.FlightRecord{}); err != nil {
		return fmt.Errorf("failed to clear flight records: %w", err)
	}
	s.stats.InvalidateStats()
	logging.Info("All flight records cleared")
	return nil
}

// ExportCSV serializes the collection for download. Exporting an empty
// logbook is a precondition failure, not an empty file.
func (s *FlightLogService) ExportCSV(ctx context.Context) (filename, content string, err error) {
	records := s.store.LoadFlightRecords(ctx)
	if len(records) == 0 {
		return "", "", NewDomainError(constants.ErrCodeNoRecordsToExport)
	}

	if s.metricsReg != nil {
		s.metricsReg.CSVExportsTotal.Inc()
	}
	return ExportFilename(s.now()), ExportCSV(records), nil
}

func (s *FlightLogService) countRejection(code string) {
	if s.metricsReg != nil {
		s.metricsReg.ValidationRejectionsTotal.WithLabelValues(code).Inc()
	}
}

// monotonicID assigns the creation timestamp in Unix millis, bumped past the
// newest stored record if the clock would collide with it.
func monotonicID(now time.Time, records []entities.FlightRecord) int64 {
	id := now.UnixMilli()
	if len(records) > 0 && id <= records[0].ID {
		id = records[0].ID + 1
	}
	return id
}

func defaultIfBlank(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
