package queries

import (
	"context"

	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/errs"
)

type PackageViewRepo interface {
	FindByID(ctx context.Context, id int64) (*catalog.Package, error)
	FindAll(ctx context.Context) ([]*catalog.Package, error)
}

type CatalogQueries interface {
	GetPackage(ctx context.Context, id int64) (*PackageView, error)
	ListPackages(ctx context.Context) ([]*PackageView, error)
}

type catalogQueriesImpl struct {
	repo PackageViewRepo
}

func NewCatalogQueries(repo PackageViewRepo) CatalogQueries {
	return &catalogQueriesImpl{repo: repo}
}

func (q *catalogQueriesImpl) GetPackage(ctx context.Context, id int64) (*PackageView, error) {
	pkg, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPackageNotFound
		}
		return nil, err
	}
	return NewPackageView(pkg), nil
}

func (q *catalogQueriesImpl) ListPackages(ctx context.Context) ([]*PackageView, error) {
	packages, err := q.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*PackageView, 0, len(packages))
	for _, pkg := range packages {
		views = append(views, NewPackageView(pkg))
	}
	return views, nil
}
