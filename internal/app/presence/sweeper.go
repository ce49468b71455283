/*
Package presence contains the sweeper: the background task that evicts
participants whose presence lease has expired.

Presence is a lease: a participant must send a status update within the TTL
window or the sweeper removes it and announces the departure to the room. The
sweep period equals the TTL.
*/
package presence

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"salachat/internal/app/participant"
	"salachat/internal/pkg/errs"
	"salachat/internal/pkg/logx"
)

// Registry is the slice of the participant service the sweeper needs.
type Registry interface {
	List(ctx context.Context) ([]participant.Participant, *errs.CustomError)
	Remove(ctx context.Context, name string) *errs.CustomError
}

// StatusLog receives the departure announcements the sweeper emits.
type StatusLog interface {
	AppendStatus(ctx context.Context, from, text string) *errs.CustomError
}

// Sweeper periodically scans the registry and evicts stale participants.
// It runs for the process lifetime; Stop shuts it down deterministically.
type Sweeper struct {
	registry  Registry
	statusLog StatusLog
	ttl       time.Duration

	done   chan struct{}
	wg     sync.WaitGroup
	logger zerolog.Logger
}

// NewSweeper constructs a Sweeper with the given presence TTL, which is also
// the sweep period.
func NewSweeper(registry Registry, statusLog StatusLog, ttl time.Duration) *Sweeper {
	return &Sweeper{
		registry:  registry,
		statusLog: statusLog,
		ttl:       ttl,
		done:      make(chan struct{}),
		logger:    logx.Logger().With().Str("component", "Sweeper").Logger(),
	}
}

// Start launches the sweep loop in a background goroutine.
func (s *Sweeper) Start() {
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.ttl)
		defer ticker.Stop()

		s.logger.Info().Dur("ttl", s.ttl).Msg("Presence sweeper started.")

		for {
			select {
			case <-ticker.C:
				s.sweep(context.Background())
			case <-s.done:
				s.logger.Info().Msg("Presence sweeper stopped.")
				return
			}
		}
	}()
}

// Stop ends the sweep loop and waits for it to exit.
func (s *Sweeper) Stop() {
	close(s.done)
	s.wg.Wait()
}

// sweep runs one eviction pass. Each stale participant is handled in
// isolation: a failure removing or announcing one does not abort the others.
//
// The pass is list-then-delete; a participant touched between the listing and
// the delete may still be evicted in this tick. The reference behavior has the
// same window and it is bounded by one period.
func (s *Sweeper) sweep(ctx context.Context) {
	participants, customErr := s.registry.List(ctx)
	if customErr != nil {
		s.logger.Error().Err(customErr).Msg("Sweep aborted: registry list failed.")
		return
	}

	cutoff := time.Now().UnixMilli() - s.ttl.Milliseconds()

	evicted := 0
	for _, p := range participants {
		if p.LastStatus >= cutoff {
			continue
		}

		if err := s.registry.Remove(ctx, p.Name); err != nil {
			s.logger.Error().Err(err).Str("name", p.Name).Msg("Eviction failed, skipping participant.")
			continue
		}

		text := fmt.Sprintf("%s has left the room...", p.Name)
		if err := s.statusLog.AppendStatus(ctx, p.Name, text); err != nil {
			s.logger.Error().Err(err).Str("name", p.Name).Msg("Departure announcement failed.")
			continue
		}

		evicted++
	}

	if evicted > 0 {
		s.logger.Info().Int("evicted", evicted).Msg("Sweep pass completed.")
	}
}
