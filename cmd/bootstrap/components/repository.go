package components

import (
	"travel-booking/internal/infra/audit"
	"travel-booking/internal/infra/store"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/usecase"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		clock.NewRealClock,
		// Packages
		fx.Annotate(
			store.NewPackageStore,
			fx.As(new(commands.PackageRepository)),
			fx.As(new(queries.PackageViewRepo)),
		),
		// Inventory
		fx.Annotate(
			store.NewInventoryStore,
			fx.As(new(commands.InventoryRepository)),
			fx.As(new(queries.InventoryViewRepo)),
		),
		// Reservations
		fx.Annotate(
			store.NewReservationStore,
			fx.As(new(commands.ReservationRepository)),
			fx.As(new(queries.ReservationViewRepo)),
		),
		// Transactions
		fx.Annotate(
			store.NewTransactionStore,
			fx.As(new(commands.TransactionRepository)),
			fx.As(new(queries.TransactionViewRepo)),
		),
		// Customer directory
		fx.Annotate(
			store.NewCustomerStore,
			fx.As(new(usecase.CustomerRepository)),
			fx.As(new(commands.CustomerDirectory)),
		),
		// Idempotency
		fx.Annotate(
			store.NewIdempotencyStore,
			fx.As(new(commands.IdempotencyRepository)),
		),
		// Audit trail
		fx.Annotate(
			audit.NewLogger,
			fx.As(new(commands.AuditLogger)),
		),
	),
)
