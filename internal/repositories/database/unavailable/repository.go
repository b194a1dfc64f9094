// Package unavailable stands in for the store when it could not be opened at
// startup. Every call fails with apperrors.ErrStoreUnavailable so services can
// degrade (demo reports) or fail cleanly (auth).
package unavailable

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/rotalivre/internal/apperrors"
	"github.com/SscSPs/rotalivre/internal/core/domain"
	portsrepo "github.com/SscSPs/rotalivre/internal/core/ports/repositories"
)

type repository struct {
	cause error
}

// NewRepositoryProvider returns repositories that always report cause as unavailable.
func NewRepositoryProvider(cause error) portsrepo.RepositoryProvider {
	r := &repository{cause: cause}
	return portsrepo.RepositoryProvider{UserRepo: r, ReportRepo: r}
}

var (
	_ portsrepo.UserRepositoryFacade   = (*repository)(nil)
	_ portsrepo.ReportRepositoryFacade = (*repository)(nil)
)

func (r *repository) err() error {
	if r.cause == nil {
		return apperrors.ErrStoreUnavailable
	}
	return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, r.cause)
}

func (r *repository) FindUserByID(context.Context, int64) (*domain.User, error) {
	return nil, r.err()
}

func (r *repository) FindUserByEmail(context.Context, string) (*domain.User, error) {
	return nil, r.err()
}

func (r *repository) SaveUser(context.Context, domain.User) (int64, error) {
	return 0, r.err()
}

func (r *repository) SaveReport(context.Context, domain.WeatherReport) (int64, error) {
	return 0, r.err()
}

func (r *repository) FindRecentReports(context.Context, domain.ReportQuery) ([]domain.WeatherReport, error) {
	return nil, r.err()
}

func (r *repository) PurgeExpiredReports(context.Context, time.Time) (int64, error) {
	return 0, r.err()
}
