package service

import (
	"context"
	"errors"
	"time"

	"operations_backend/internal/addresslookup"
	"operations_backend/internal/operations/repository"
	"operations_backend/internal/operations/transport"
	"operations_backend/platform/apperr"
	"operations_backend/platform/logger"
)

const (
	msgOperationNotFound = "operation not found"
	msgEircodeNotFound   = "Eircode does not exist."
	msgLookupUnavailable = "address lookup service unavailable"
)

// AddressLookup resolves an Eircode before an operation is accepted.
type AddressLookup interface {
	Lookup(ctx context.Context, eirCode string) (addresslookup.Result, error)
}

// Clock returns the current time. Tests inject a fixed clock.
type Clock func() time.Time

// Service provides business logic for operations.
type Service struct {
	repo   repository.Repository
	lookup AddressLookup
	now    Clock
	log    *logger.Logger
}

// New creates a new operations service. A nil clock defaults to time.Now.
func New(repo repository.Repository, lookup AddressLookup, now Clock, log *logger.Logger) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, lookup: lookup, now: now, log: log}
}

// Today returns the current calendar day at local midnight.
func (s *Service) Today() transport.Date {
	return transport.NewDate(s.now())
}

// List returns every stored operation in insertion order.
func (s *Service) List(ctx context.Context) []transport.OperationResponse {
	ops := s.repo.List(ctx)
	result := make([]transport.OperationResponse, 0, len(ops))
	for _, op := range ops {
		result = append(result, toOperationResponse(op))
	}
	return result
}

// GetByID retrieves an operation by ID.
func (s *Service) GetByID(ctx context.Context, id int) (transport.OperationResponse, error) {
	op, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return transport.OperationResponse{}, apperr.Wrap(apperr.KindNotFound, msgOperationNotFound, err)
	}
	if err != nil {
		return transport.OperationResponse{}, err
	}
	return toOperationResponse(op), nil
}

// Create validates the date, resolves the Eircode and stores the operation.
func (s *Service) Create(ctx context.Context, req transport.CreateOperationRequest) (transport.OperationResponse, error) {
	// A missing date is the zero time, which always fails the year check.
	var date transport.Date
	if req.Date != nil {
		date = transport.NewDate(req.Date.Time)
	}
	if err := ValidateDate(date.Time, s.Today().Time); err != nil {
		return transport.OperationResponse{}, err
	}

	if _, err := s.lookup.Lookup(ctx, req.EirCode); err != nil {
		switch {
		case errors.Is(err, addresslookup.ErrNotFound):
			return transport.OperationResponse{}, apperr.Wrap(apperr.KindValidation, msgEircodeNotFound, err)
		default:
			return transport.OperationResponse{}, apperr.Wrap(apperr.KindUnavailable, msgLookupUnavailable, err)
		}
	}

	op := repository.Operation{
		ID:      req.ID,
		Date:    date.Time,
		EirCode: req.EirCode,
	}
	s.repo.Create(ctx, op)

	s.log.WithContext(ctx).Info("operation created", "id", op.ID, "eirCode", op.EirCode, "date", date.String())
	return toOperationResponse(op), nil
}

// Delete removes every operation with the given ID.
func (s *Service) Delete(ctx context.Context, id int) error {
	removed := s.repo.DeleteByID(ctx, id)
	if removed == 0 {
		return apperr.Wrap(apperr.KindNotFound, msgOperationNotFound, repository.ErrNotFound)
	}

	s.log.WithContext(ctx).Info("operation deleted", "id", id, "removed", removed)
	return nil
}

func toOperationResponse(op repository.Operation) transport.OperationResponse {
	return transport.OperationResponse{
		ID:      op.ID,
		Date:    transport.NewDate(op.Date),
		EirCode: op.EirCode,
	}
}
