package services

import (
	"context"
	"fmt"
	"sort"

	"skylogger/dronelog/internal/constants"
	"skylogger/dronelog/internal/db/repositories"
	"skylogger/dronelog/internal/models/dtos"
	"skylogger/dronelog/internal/models/entities"
)

// AircraftService manages the registration-number keyed aircraft registry.
// Registering an existing number overwrites its entry wholesale; flight
// records keep their own snapshot, so history is unaffected.
type AircraftService struct {
	store *repositories.RecordStore
}

func NewAircraftService(store *repositories.RecordStore) *AircraftService {
	return &AircraftService{store: store}
}

// RegisterAircraft validates the form fields and upserts the registry entry.
func (s *AircraftService) RegisterAircraft(ctx context.Context, req *dtos.RegisterAircraftReq) (*entities.AircraftInfo, error) {
	if req.RegistrationNumber == "" || req.AircraftType == "" || req.Manufacturer == "" || req.SerialNumber == "" {
		return nil, NewDomainError(constants.ErrCodeRequiredFieldMissing)
	}

	info := entities.AircraftInfo{
		RegistrationNumber:  req.RegistrationNumber,
		AircraftType:        req.AircraftType,
		Model:               req.Model,
		Manufacturer:        req.Manufacturer,
		SerialNumber:        req.SerialNumber,
		CertificationNumber: req.CertificationNumber,
	}

	registry := s.store.LoadAircraftRegistry(ctx)
	registry[info.RegistrationNumber] = info

	if err := s.store.SaveAircraftRegistry(ctx, registry); err != nil {
		return nil, fmt.Errorf("failed to persist aircraft registry: %w", err)
	}
	return &info, nil
}

// ListAircraft returns registry entries ordered by registration number.
func (s *AircraftService) ListAircraft(ctx context.Context) []entities.AircraftInfo {
	registry := s.store.LoadAircraftRegistry(ctx)

	list := make([]entities.AircraftInfo, 0, len(registry))
	for _, info := range registry {
		list = append(list, info)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].RegistrationNumber < list[j].RegistrationNumber
	})
	return list
}

// GetAircraft looks up one registry entry.
func (s *AircraftService) GetAircraft(ctx context.Context, registrationNumber string) (*entities.AircraftInfo, error) {
	registry := s.store.LoadAircraftRegistry(ctx)
	info, ok := registry[registrationNumber]
	if !ok {
		return nil, NewDomainError(constants.ErrCodeAircraftNotFound)
	}
	return &info, nil
}
