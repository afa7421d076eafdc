package store

import (
	"context"
	"sync"
	"time"

	"travel-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type IdempotencyStatus string

const (
	IdempotencyProcessing IdempotencyStatus = "processing"
	IdempotencyCompleted  IdempotencyStatus = "completed"
)

type IdempotencyRecord struct {
	Key           uuid.UUID
	CustomerID    int64
	RequestHash   string
	Status        IdempotencyStatus
	ReservationID int64
	ExpiresAt     time.Time
}

// IdempotencyStore guards reservation creation against duplicate submission.
// Records live in memory only: a replayed request after a restart creates a
// second reservation, which the original single-user system tolerated too.
type IdempotencyStore struct {
	mu      sync.Mutex
	records map[uuid.UUID]*IdempotencyRecord
	clock   clock.Clock
}

func NewIdempotencyStore(clk clock.Clock) *IdempotencyStore {
	return &IdempotencyStore{
		records: make(map[uuid.UUID]*IdempotencyRecord),
		clock:   clk,
	}
}

// Begin registers a key as processing and returns the existing record when
// the key has been seen before. Expired records are replaced.
func (s *IdempotencyStore) Begin(ctx context.Context, key uuid.UUID, customerID int64, requestHash string, ttl time.Duration) (*IdempotencyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if existing, ok := s.records[key]; ok && existing.ExpiresAt.After(now) {
		record := *existing
		return &record, nil
	}

	s.records[key] = &IdempotencyRecord{
		Key:         key,
		CustomerID:  customerID,
		RequestHash: requestHash,
		Status:      IdempotencyProcessing,
		ExpiresAt:   now.Add(ttl),
	}
	return nil, nil
}

func (s *IdempotencyStore) Complete(ctx context.Context, key uuid.UUID, reservationID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record, ok := s.records[key]; ok {
		record.Status = IdempotencyCompleted
		record.ReservationID = reservationID
	}
	return nil
}

// Forget drops a processing record so a failed request can be retried with
// the same key.
func (s *IdempotencyStore) Forget(ctx context.Context, key uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
}
