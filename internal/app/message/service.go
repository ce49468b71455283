/*
Package message contains the message log.

This file defines the Service, which implements the log operations (append,
list visible, delete) on top of a Store.
*/
package message

import (
	"context"
	"time"

	"github.com/google/uuid"

	"salachat/internal/pkg/errs"
	"salachat/internal/pkg/logx"
	"salachat/internal/pkg/validate"
)

// clockLayout is the presentation format for the Time field.
const clockLayout = "15:04:05"

// Store is the persistence surface the log needs. The production
// implementation is PGStore; tests inject fakes.
type Store interface {
	// Insert persists the message and returns its store-assigned id.
	Insert(ctx context.Context, m Message) (string, error)

	// ListAll returns the full message log in insertion order.
	ListAll(ctx context.Context) ([]Message, error)

	// GetByID looks up a message, reporting presence via the bool.
	GetByID(ctx context.Context, id string) (Message, bool, error)

	Delete(ctx context.Context, id string) error
}

// Service implements the message log operations.
type Service struct {
	store Store
}

// NewService constructs a log Service over the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Append validates and persists a client-posted message. There is no
// deduplication and no rate limiting at this layer.
func (s *Service) Append(ctx context.Context, input PostInput) (*Message, *errs.CustomError) {
	if customErr := validate.Struct(input); customErr != nil {
		return nil, customErr
	}

	m := Message{
		From: input.From,
		To:   input.To,
		Text: input.Text,
		Type: input.Type,
		Time: time.Now().Format(clockLayout),
	}

	id, err := s.store.Insert(ctx, m)
	if err != nil {
		logx.Error(err, "Message insert failed", "from", m.From, "type", m.Type)
		return nil, errs.NewError(errs.ErrUnknown)
	}
	m.ID = id

	return &m, nil
}

// AppendStatus persists a system-generated announcement broadcast to the room.
// It bypasses client validation; the status kind is never accepted from
// clients.
func (s *Service) AppendStatus(ctx context.Context, from, text string) *errs.CustomError {
	m := Message{
		From: from,
		To:   BroadcastRecipient,
		Text: text,
		Type: KindStatus,
		Time: time.Now().Format(clockLayout),
	}

	if _, err := s.store.Insert(ctx, m); err != nil {
		logx.Error(err, "Status message insert failed", "from", from)
		return errs.NewError(errs.ErrUnknown)
	}
	return nil
}

// ListFor returns the messages visible to user: broadcasts, messages sent to
// them, and messages they sent. A positive limit keeps only the last limit
// entries; zero or negative means no limit. Filtering happens before the tail
// cut, so the limit bounds visible messages, not raw stored ones.
func (s *Service) ListFor(ctx context.Context, user string, limit int) ([]Message, *errs.CustomError) {
	messages, err := s.store.ListAll(ctx)
	if err != nil {
		logx.Error(err, "Message list failed", "user", user)
		return nil, errs.NewError(errs.ErrUnknown)
	}

	visible := make([]Message, 0, len(messages))
	for _, m := range messages {
		if m.To == user || m.To == BroadcastRecipient || m.From == user {
			visible = append(visible, m)
		}
	}

	if limit > 0 && limit < len(visible) {
		visible = visible[len(visible)-limit:]
	}

	return visible, nil
}

// Delete removes a message on behalf of requester. Only the sender may delete
// a message; anyone else gets ErrNotMessageOwner and the message stays.
func (s *Service) Delete(ctx context.Context, id, requester string) *errs.CustomError {
	if _, err := uuid.Parse(id); err != nil {
		return errs.NewError(errs.ErrInvalidMessageID)
	}

	m, found, err := s.store.GetByID(ctx, id)
	if err != nil {
		logx.Error(err, "Message lookup failed", "id", id)
		return errs.NewError(errs.ErrUnknown)
	}
	if !found {
		return errs.NewError(errs.ErrMessageNotFound)
	}
	if m.From != requester {
		return errs.NewError(errs.ErrNotMessageOwner)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		logx.Error(err, "Message delete failed", "id", id)
		return errs.NewError(errs.ErrUnknown)
	}
	return nil
}
