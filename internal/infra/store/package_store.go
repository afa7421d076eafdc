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

	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/sequence"
)

const packageIDBase = 400001

// PackageDraft carries everything a new package needs except its identity;
// the store assigns the id under its own lock so allocation and persistence
// cannot interleave.
type PackageDraft struct {
	Kind      catalog.Kind
	HotelID   int64
	FlightID  int64
	TaxiID    int64
	StartDate time.Time
	EndDate   time.Time
	TotalCost int64
}

// PackageStore persists the catalog as one comma-separated record per line:
//
//	id,type,hotelId,flightId,taxiId,totalCost,dateStart,dateEnd
//
// Every mutation rewrites the whole file. O(n) per operation, acceptable for
// a small single-agency catalog.
type PackageStore struct {
	mu   sync.Mutex
	path string
	seq  *sequence.Sequence
	// discounts is an in-process overlay: the wire format has no discounted
	// price column, so overrides live for the life of the process and must
	// be re-applied after a restart or an edit.
	discounts map[int64]float64
	logger    *slog.Logger
}

func NewPackageStore(cfg config.StoreConfig, logger *slog.Logger) *PackageStore {
	return &PackageStore{
		path:      cfg.Path(cfg.PackagesFile),
		seq:       sequence.New(packageIDBase),
		discounts: make(map[int64]float64),
		logger:    logger,
	}
}

func (s *PackageStore) Create(ctx context.Context, draft PackageDraft) (*catalog.Package, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	packages, err := s.load()
	if err != nil {
		return nil, err
	}

	pkg, err := catalog.NewPackage(s.seq.Next(), draft.Kind, draft.HotelID, draft.FlightID, draft.TaxiID, draft.StartDate, draft.EndDate, draft.TotalCost)
	if err != nil {
		return nil, err
	}

	packages[pkg.ID()] = pkg
	if err := s.persist(packages); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (s *PackageStore) FindByID(ctx context.Context, id int64) (*catalog.Package, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	packages, err := s.load()
	if err != nil {
		return nil, err
	}

	pkg, ok := packages[id]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, fmt.Sprintf("package %d not found", id), nil)
	}
	return pkg, nil
}

func (s *PackageStore) FindAll(ctx context.Context) ([]*catalog.Package, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	packages, err := s.load()
	if err != nil {
		return nil, err
	}

	all := make([]*catalog.Package, 0, len(packages))
	for _, pkg := range packages {
		all = append(all, pkg)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID() < all[j].ID() })
	return all, nil
}

func (s *PackageStore) Update(ctx context.Context, pkg *catalog.Package) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	packages, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := packages[pkg.ID()]; !ok {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, fmt.Sprintf("package %d not found", pkg.ID()), nil)
	}

	// An edit invalidates any discount override; it has to be granted again
	// against the new price.
	delete(s.discounts, pkg.ID())
	packages[pkg.ID()] = pkg
	return s.persist(packages)
}

// ApplyDiscount overrides the charged price for one package. The override is
// not written to disk and does not survive a restart or a subsequent edit.
func (s *PackageStore) ApplyDiscount(ctx context.Context, id int64, percent float64) (*catalog.Package, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	packages, err := s.load()
	if err != nil {
		return nil, err
	}
	pkg, ok := packages[id]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, fmt.Sprintf("package %d not found", id), nil)
	}
	if err := pkg.ApplyDiscount(percent); err != nil {
		return nil, err
	}
	s.discounts[id] = percent
	return pkg, nil
}

func (s *PackageStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	packages, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := packages[id]; !ok {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, fmt.Sprintf("package %d not found", id), nil)
	}

	delete(packages, id)
	delete(s.discounts, id)
	return s.persist(packages)
}

// load reads the whole catalog fresh from disk, observing every id so the
// sequence survives restarts. Malformed lines are skipped with a diagnostic;
// a single bad record must not take the catalog down.
func (s *PackageStore) load() (map[int64]*catalog.Package, error) {
	lines, err := readLines(s.path)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindIOFailure, "failed to load package store", err)
	}

	packages := make(map[int64]*catalog.Package, len(lines))
	for _, line := range lines {
		pkg, err := parsePackageLine(line)
		if err != nil {
			s.logger.Warn("skipping malformed package record", "line", line, "error", err)
			continue
		}
		packages[pkg.ID()] = pkg
		s.seq.Observe(pkg.ID())
	}
	for id, percent := range s.discounts {
		if pkg, ok := packages[id]; ok {
			if err := pkg.ApplyDiscount(percent); err != nil {
				delete(s.discounts, id)
			}
		}
	}
	return packages, nil
}

func (s *PackageStore) persist(packages map[int64]*catalog.Package) error {
	ids := make([]int64, 0, len(packages))
	for id := range packages {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		lines = append(lines, formatPackageLine(packages[id]))
	}

	if err := writeAll(s.path, lines); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindIOFailure, "failed to persist package store", err)
	}
	return nil
}

func parsePackageLine(line string) (*catalog.Package, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 8 {
		return nil, fmt.Errorf("expected 8 fields, got %d", len(fields))
	}

	id, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad package id: %w", err)
	}
	kind, err := catalog.NewKind(fields[1])
	if err != nil {
		return nil, err
	}
	hotelID, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad hotel id: %w", err)
	}
	flightID, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad flight id: %w", err)
	}
	taxiID, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad taxi id: %w", err)
	}
	totalCost, err := strconv.ParseInt(fields[5], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad total cost: %w", err)
	}
	startDate, err := parseDate(fields[6])
	if err != nil {
		return nil, fmt.Errorf("bad start date: %w", err)
	}
	endDate, err := parseDate(fields[7])
	if err != nil {
		return nil, fmt.Errorf("bad end date: %w", err)
	}

	return catalog.ReconstructPackage(id, kind, hotelID, flightID, taxiID, startDate, endDate, totalCost), nil
}

func formatPackageLine(pkg *catalog.Package) string {
	return strings.Join([]string{
		strconv.FormatInt(pkg.ID(), 10),
		pkg.Kind().String(),
		strconv.FormatInt(pkg.HotelID(), 10),
		strconv.FormatInt(pkg.FlightID(), 10),
		strconv.FormatInt(pkg.TaxiID(), 10),
		strconv.FormatInt(pkg.TotalCost(), 10),
		formatDate(pkg.StartDate()),
		formatDate(pkg.EndDate()),
	}, ",")
}
