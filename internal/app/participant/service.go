/*
Package participant contains the participant registry.

This file defines the Service, which implements the registry operations
(register, list, touch, remove) on top of a Store and announces arrivals on
the message log.
*/
package participant

import (
	"context"
	"fmt"
	"time"

	"salachat/internal/app/db"
	"salachat/internal/pkg/errs"
	"salachat/internal/pkg/logx"
	"salachat/internal/pkg/validate"
)

// Store is the persistence surface the registry needs. The production
// implementation is PGStore; tests inject fakes.
type Store interface {
	Exists(ctx context.Context, name string) (bool, error)
	Insert(ctx context.Context, p Participant) error
	List(ctx context.Context) ([]Participant, error)
	UpdateLastStatus(ctx context.Context, name string, lastStatus int64) (bool, error)
	Delete(ctx context.Context, name string) error
}

// StatusLog receives the system-generated room announcements the registry
// emits. Implemented by the message log service.
type StatusLog interface {
	AppendStatus(ctx context.Context, from, text string) *errs.CustomError
}

// Service implements the participant registry operations.
type Service struct {
	store     Store
	statusLog StatusLog
}

// NewService constructs a registry Service over the given store and status log.
func NewService(store Store, statusLog StatusLog) *Service {
	return &Service{store: store, statusLog: statusLog}
}

// Register validates the name, creates the participant record, and announces
// the arrival to the room. A name that is already registered yields a
// conflict and leaves the registry untouched.
//
// The announcement is written after the record; a failure there does not fail
// the registration, it is only logged. The two writes are not atomic.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*Participant, *errs.CustomError) {
	if customErr := validate.Struct(input); customErr != nil {
		return nil, customErr
	}

	// Conflict is keyed on the name alone; the primary key on the table backs
	// this check up against concurrent registrations.
	exists, err := s.store.Exists(ctx, input.Name)
	if err != nil {
		logx.Error(err, "Participant existence check failed", "name", input.Name)
		return nil, errs.NewError(errs.ErrUnknown)
	}
	if exists {
		return nil, errs.NewError(errs.ErrNameTaken)
	}

	p := Participant{
		Name:       input.Name,
		LastStatus: time.Now().UnixMilli(),
	}

	if err := s.store.Insert(ctx, p); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, errs.NewError(errs.ErrNameTaken)
		}
		logx.Error(err, "Participant insert failed", "name", input.Name)
		return nil, errs.NewError(errs.ErrUnknown)
	}

	text := fmt.Sprintf("%s has entered the room...", p.Name)
	if customErr := s.statusLog.AppendStatus(ctx, p.Name, text); customErr != nil {
		logx.Error(customErr, "Arrival announcement failed", "name", p.Name)
	}

	return &p, nil
}

// List returns every participant currently in the registry.
func (s *Service) List(ctx context.Context) ([]Participant, *errs.CustomError) {
	participants, err := s.store.List(ctx)
	if err != nil {
		logx.Error(err, "Participant list failed")
		return nil, errs.NewError(errs.ErrUnknown)
	}
	return participants, nil
}

// Touch renews the participant's presence lease. It is a single conditional
// update, so a removal racing with the touch cannot resurrect the record: the
// touch simply reports not-found.
func (s *Service) Touch(ctx context.Context, name string) *errs.CustomError {
	updated, err := s.store.UpdateLastStatus(ctx, name, time.Now().UnixMilli())
	if err != nil {
		logx.Error(err, "Participant touch failed", "name", name)
		return errs.NewError(errs.ErrUnknown)
	}
	if !updated {
		return errs.NewError(errs.ErrParticipantNotFound)
	}
	return nil
}

// Remove deletes the participant record unconditionally. It is used by the
// presence sweeper and is not exposed as a public mutation.
func (s *Service) Remove(ctx context.Context, name string) *errs.CustomError {
	if err := s.store.Delete(ctx, name); err != nil {
		logx.Error(err, "Participant delete failed", "name", name)
		return errs.NewError(errs.ErrUnknown)
	}
	return nil
}
