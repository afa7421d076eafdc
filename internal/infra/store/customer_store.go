package store

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"travel-booking/internal/domain/customer"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/config"
)

// CustomerStore reads the customer and admin directories. Both share the
// colon-separated format:
//
//	username:password:id
//
// where the password field holds a bcrypt hash. The role of an entry follows
// from which file it lives in. The directory is an external collaborator and
// read-only from the core's perspective.
type CustomerStore struct {
	mu            sync.Mutex
	customersPath string
	adminsPath    string
	logger        *slog.Logger
}

func NewCustomerStore(cfg config.StoreConfig, logger *slog.Logger) *CustomerStore {
	return &CustomerStore{
		customersPath: cfg.Path(cfg.CustomersFile),
		adminsPath:    cfg.Path(cfg.AdminsFile),
		logger:        logger,
	}
}

type directoryEntry struct {
	customer     *customer.Customer
	passwordHash string
}

func (s *CustomerStore) FindByID(ctx context.Context, id int64) (*customer.Customer, error) {
	entries, err := s.load()
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.customer.ID() == id {
			return entry.customer, nil
		}
	}
	return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, fmt.Sprintf("customer %d not found", id), nil)
}

// FindByUsername returns the matching directory entry together with its
// password hash for credential verification.
func (s *CustomerStore) FindByUsername(ctx context.Context, username customer.Username) (*customer.Customer, string, error) {
	entries, err := s.load()
	if err != nil {
		return nil, "", err
	}

	for _, entry := range entries {
		if entry.customer.Username() == username {
			return entry.customer, entry.passwordHash, nil
		}
	}
	return nil, "", infra.WrapRepoErr(s.logger, infra.KindNotFound, fmt.Sprintf("customer %q not found", username.String()), nil)
}

func (s *CustomerStore) load() ([]directoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []directoryEntry
	for _, src := range []struct {
		path string
		role customer.Role
	}{
		{path: s.customersPath, role: customer.RoleCustomer},
		{path: s.adminsPath, role: customer.RoleAdmin},
	} {
		lines, err := readLines(src.path)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindIOFailure, "failed to load customer directory", err)
		}
		for _, line := range lines {
			entry, err := parseDirectoryLine(line, src.role)
			if err != nil {
				s.logger.Warn("skipping malformed directory record", "line", line, "error", err)
				continue
			}
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func parseDirectoryLine(line string, role customer.Role) (directoryEntry, error) {
	fields := strings.Split(line, ":")
	if len(fields) != 3 {
		return directoryEntry{}, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}

	username, err := customer.NewUsername(fields[0])
	if err != nil {
		return directoryEntry{}, err
	}
	id, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return directoryEntry{}, fmt.Errorf("bad customer id: %w", err)
	}

	return directoryEntry{
		customer:     customer.NewCustomer(id, username, role),
		passwordHash: fields[1],
	}, nil
}
