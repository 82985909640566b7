package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"skylogger/dronelog/internal/constants"
	"skylogger/dronelog/internal/logging"
	"skylogger/dronelog/internal/models/entities"
)

// RecordStore persists whole JSON documents under fixed logical namespaces.
// Loads never fail the caller: absent data, unreadable rows, and corrupt
// documents all come back as an empty collection, with a diagnostic log for
// anything that isn't a plain miss.
type RecordStore struct {
	db *sqlx.DB
}

func NewRecordStore(db *sqlx.DB) *RecordStore {
	return &RecordStore{db: db}
}

// Load fetches the raw document for a namespace. found is false when the
// namespace has never been written.
func (s *RecordStore) Load(ctx context.Context, ns constants.Namespace) (json.RawMessage, bool, error) {
	var body string
	query := s.db.Rebind(`SELECT body FROM documents WHERE namespace = ?`)
	err := s.db.GetContext(ctx, &body, query, string(ns))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load namespace %s: %w", ns, err)
	}
	return json.RawMessage(body), true, nil
}

// Save marshals value and upserts it as the namespace's document. The write
// is all-or-nothing: a failed save leaves the prior document untouched.
func (s *RecordStore) Save(ctx context.Context, ns constants.Namespace, value any) error {
	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode namespace %s: %w", ns, err)
	}

	query := s.db.Rebind(`
		INSERT INTO documents (namespace, body, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (namespace) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`)
	if _, err := s.db.ExecContext(ctx, query, string(ns), string(body), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save namespace %s: %w", ns, err)
	}
	return nil
}

// LoadFlightRecords returns the stored collection, newest first. Corrupt or
// absent data both yield an empty slice.
func (s *RecordStore) LoadFlightRecords(ctx context.Context) []entities.FlightRecord {
	return loadDocument(ctx, s, constants.NamespaceFlightRecords, []entities.FlightRecord{})
}

// SaveFlightRecords overwrites the whole collection.
func (s *RecordStore) SaveFlightRecords(ctx context.Context, records []entities.FlightRecord) error {
	return s.Save(ctx, constants.NamespaceFlightRecords, records)
}

// LoadAircraftRegistry returns the registration-number keyed registry.
// Corrupt or absent data both yield an empty registry.
func (s *RecordStore) LoadAircraftRegistry(ctx context.Context) entities.AircraftRegistry {
	return loadDocument(ctx, s, constants.NamespaceAircraft, entities.AircraftRegistry{})
}

// SaveAircraftRegistry overwrites the registry document.
func (s *RecordStore) SaveAircraftRegistry(ctx context.Context, registry entities.AircraftRegistry) error {
	return s.Save(ctx, constants.NamespaceAircraft, registry)
}

// loadDocument decodes a namespace into a fresh T, falling back to the given
// empty value on miss, read failure, or a corrupt document. Partial decodes
// never leak out.
func loadDocument[T any](ctx context.Context, s *RecordStore, ns constants.Namespace, empty T) T {
	raw, found, err := s.Load(ctx, ns)
	if err != nil {
		logging.Warn("Record store load failed, treating namespace as empty",
			"namespace", string(ns), "error", err.Error())
		return empty
	}
	if !found {
		return empty
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		logging.Warn("Record store document corrupt, treating namespace as empty",
			"namespace", string(ns), "error", err.Error())
		return empty
	}
	return out
}
