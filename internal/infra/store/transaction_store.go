package store

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
)

type TransactionType string

const (
	TransactionPurchase TransactionType = "Purchase"
	TransactionRefund   TransactionType = "Refund"
)

// Transaction is one entry in the local audit trail of money movement. The
// amount is always a positive magnitude; the type field carries the sign.
type Transaction struct {
	Date          time.Time
	Amount        int64
	ReservationID int64
	CustomerID    int64
	Type          TransactionType
}

// TransactionStore is append-only:
//
//	date,amount,reservationId,customerId,type
//
// Entries are never rewritten or deleted. A write failure here loses a
// purchase or refund record, so it is fatal and propagated to the caller.
type TransactionStore struct {
	mu     sync.Mutex
	path   string
	clock  clock.Clock
	logger *slog.Logger
}

func NewTransactionStore(cfg config.StoreConfig, clk clock.Clock, logger *slog.Logger) *TransactionStore {
	return &TransactionStore{
		path:   cfg.Path(cfg.TransactionsFile),
		clock:  clk,
		logger: logger,
	}
}

func (s *TransactionStore) RecordPurchase(ctx context.Context, reservationID, customerID, amount int64) error {
	return s.append(Transaction{
		Date:          s.clock.Now(),
		Amount:        amount,
		ReservationID: reservationID,
		CustomerID:    customerID,
		Type:          TransactionPurchase,
	})
}

func (s *TransactionStore) RecordRefund(ctx context.Context, reservationID, customerID, amount int64) error {
	return s.append(Transaction{
		Date:          s.clock.Now(),
		Amount:        amount,
		ReservationID: reservationID,
		CustomerID:    customerID,
		Type:          TransactionRefund,
	})
}

func (s *TransactionStore) FindAll(ctx context.Context) ([]Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := readLines(s.path)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindIOFailure, "failed to load transaction store", err)
	}

	transactions := make([]Transaction, 0, len(lines))
	for _, line := range lines {
		tx, err := parseTransactionLine(line)
		if err != nil {
			s.logger.Warn("skipping malformed transaction record", "line", line, "error", err)
			continue
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

func (s *TransactionStore) append(tx Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := appendLine(s.path, formatTransactionLine(tx)); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindIOFailure, "failed to append transaction record", err)
	}
	return nil
}

func parseTransactionLine(line string) (Transaction, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 5 {
		return Transaction{}, fmt.Errorf("expected 5 fields, got %d", len(fields))
	}

	date, err := parseDate(fields[0])
	if err != nil {
		return Transaction{}, fmt.Errorf("bad date: %w", err)
	}
	amount, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return Transaction{}, fmt.Errorf("bad amount: %w", err)
	}
	reservationID, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return Transaction{}, fmt.Errorf("bad reservation id: %w", err)
	}
	customerID, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return Transaction{}, fmt.Errorf("bad customer id: %w", err)
	}
	txType := TransactionType(fields[4])
	if txType != TransactionPurchase && txType != TransactionRefund {
		return Transaction{}, fmt.Errorf("bad transaction type %q", fields[4])
	}

	return Transaction{
		Date:          date,
		Amount:        amount,
		ReservationID: reservationID,
		CustomerID:    customerID,
		Type:          txType,
	}, nil
}

func formatTransactionLine(tx Transaction) string {
	return strings.Join([]string{
		formatDate(tx.Date),
		strconv.FormatInt(tx.Amount, 10),
		strconv.FormatInt(tx.ReservationID, 10),
		strconv.FormatInt(tx.CustomerID, 10),
		string(tx.Type),
	}, ",")
}
