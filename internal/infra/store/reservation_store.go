package store

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"travel-booking/internal/domain/reservation"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/sequence"
)

const reservationIDBase = 500001

// ReservationStore persists the ledger as one comma-separated record per
// line:
//
//	id,packageId,status,dateStart,dateEnd,customerId
//
// Reservations are never deleted, only flipped to cancelled, so the file is
// also the booking history. Persistence failures on this path lose money and
// are always propagated, never absorbed.
type ReservationStore struct {
	mu     sync.Mutex
	path   string
	seq    *sequence.Sequence
	logger *slog.Logger
}

func NewReservationStore(cfg config.StoreConfig, logger *slog.Logger) *ReservationStore {
	return &ReservationStore{
		path:   cfg.Path(cfg.ReservationsFile),
		seq:    sequence.New(reservationIDBase),
		logger: logger,
	}
}

// Create allocates the next reservation id and persists the whole ledger.
// The id watermark is the running maximum across every load, so ids are
// never reused even after a restart.
func (s *ReservationStore) Create(ctx context.Context, packageID, customerID int64, startDate, endDate time.Time) (*reservation.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.load()
	if err != nil {
		return nil, err
	}

	res := reservation.NewReservation(s.seq.Next(), packageID, customerID, startDate, endDate)
	ledger[res.ID()] = res
	if err := s.persist(ledger); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ReservationStore) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.load()
	if err != nil {
		return nil, err
	}

	res, ok := ledger[id]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, fmt.Sprintf("reservation %d not found", id), nil)
	}
	return res, nil
}

// FindAll returns confirmed and cancelled reservations alike; cancelled rows
// feed the history and reporting views.
func (s *ReservationStore) FindAll(ctx context.Context) ([]*reservation.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.load()
	if err != nil {
		return nil, err
	}
	return sortedReservations(ledger), nil
}

func (s *ReservationStore) FindByCustomer(ctx context.Context, customerID int64) ([]*reservation.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.load()
	if err != nil {
		return nil, err
	}

	matched := make(map[int64]*reservation.Reservation)
	for id, res := range ledger {
		if res.CustomerID() == customerID {
			matched[id] = res
		}
	}
	return sortedReservations(matched), nil
}

// MarkCancelled flips the reservation and persists immediately. Releasing the
// consumed inventory happens after this returns: a crash in between leaves a
// correctly cancelled reservation at the cost of leaked inventory, which is
// the accepted partial-failure trade-off.
func (s *ReservationStore) MarkCancelled(ctx context.Context, id int64) (*reservation.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.load()
	if err != nil {
		return nil, err
	}

	res, ok := ledger[id]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, fmt.Sprintf("reservation %d not found", id), nil)
	}
	if err := res.Cancel(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindConflict, fmt.Sprintf("reservation %d already cancelled", id), err)
	}

	if err := s.persist(ledger); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ReservationStore) load() (map[int64]*reservation.Reservation, error) {
	lines, err := readLines(s.path)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindIOFailure, "failed to load reservation store", err)
	}

	ledger := make(map[int64]*reservation.Reservation, len(lines))
	for _, line := range lines {
		res, err := parseReservationLine(line)
		if err != nil {
			s.logger.Warn("skipping malformed reservation record", "line", line, "error", err)
			continue
		}
		ledger[res.ID()] = res
		s.seq.Observe(res.ID())
	}
	return ledger, nil
}

func (s *ReservationStore) persist(ledger map[int64]*reservation.Reservation) error {
	all := sortedReservations(ledger)
	lines := make([]string, 0, len(all))
	for _, res := range all {
		lines = append(lines, formatReservationLine(res))
	}

	if err := writeAll(s.path, lines); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindIOFailure, "failed to persist reservation store", err)
	}
	return nil
}

func sortedReservations(ledger map[int64]*reservation.Reservation) []*reservation.Reservation {
	all := make([]*reservation.Reservation, 0, len(ledger))
	for _, res := range ledger {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID() < all[j].ID() })
	return all
}

func parseReservationLine(line string) (*reservation.Reservation, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 6 {
		return nil, fmt.Errorf("expected 6 fields, got %d", len(fields))
	}

	id, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad reservation id: %w", err)
	}
	packageID, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad package id: %w", err)
	}
	status := reservation.Status(fields[2])
	if !status.IsValid() {
		return nil, fmt.Errorf("bad status %q", fields[2])
	}
	startDate, err := parseDate(fields[3])
	if err != nil {
		return nil, fmt.Errorf("bad start date: %w", err)
	}
	endDate, err := parseDate(fields[4])
	if err != nil {
		return nil, fmt.Errorf("bad end date: %w", err)
	}
	customerID, err := strconv.ParseInt(fields[5], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad customer id: %w", err)
	}

	return reservation.ReconstructReservation(id, packageID, customerID, status, startDate, endDate), nil
}

func formatReservationLine(res *reservation.Reservation) string {
	return strings.Join([]string{
		strconv.FormatInt(res.ID(), 10),
		strconv.FormatInt(res.PackageID(), 10),
		res.Status().String(),
		formatDate(res.StartDate()),
		formatDate(res.EndDate()),
		strconv.FormatInt(res.CustomerID(), 10),
	}, ",")
}
