//go:build integration

package repository_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"shiphub/internal/apperr"
	"shiphub/internal/domain"
	"shiphub/internal/repository"
)

func truncateCompanies(t *testing.T) {
	t.Helper()
	_, err := tcPool.Exec(context.Background(), `TRUNCATE companies`)
	require.NoError(t, err)
}

func TestCompanyRepo_CreateGetUpdate(t *testing.T) {
	truncateCompanies(t)
	ctx := context.Background()
	repo := repository.NewCompanyRepo(tcPool)

	id, err := repo.Create(ctx, &domain.Company{
		Name:   "Alpha Cargo",
		Phone:  "+77001234567",
		Status: domain.CompanyActive,
		Rate:   decimal.RequireFromString("4.50"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Alpha Cargo", got.Name)
	require.True(t, decimal.RequireFromString("4.5").Equal(got.Rate))

	status := domain.CompanySuspended
	ok, err := repo.UpdatePartial(ctx, domain.PartialCompanyUpdate{ID: id, Status: &status})
	require.NoError(t, err)
	require.True(t, ok)

	got, err = repo.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, domain.CompanySuspended, got.Status)
	require.Equal(t, "Alpha Cargo", got.Name)

	ok, err = repo.UpdatePartial(ctx, domain.PartialCompanyUpdate{ID: "missing", Status: &status})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCompanyRepo_DuplicatePhone(t *testing.T) {
	truncateCompanies(t)
	ctx := context.Background()
	repo := repository.NewCompanyRepo(tcPool)

	c := &domain.Company{Name: "A", Phone: "+77001234567", Status: domain.CompanyActive}
	_, err := repo.Create(ctx, c)
	require.NoError(t, err)

	_, err = repo.Create(ctx, c)
	require.ErrorIs(t, err, apperr.ErrConflict)
}

func TestCompanyRepo_ListAndMissing(t *testing.T) {
	truncateCompanies(t)
	ctx := context.Background()
	repo := repository.NewCompanyRepo(tcPool)

	for _, p := range []string{"+77001234561", "+77001234562", "+77001234563"} {
		_, err := repo.Create(ctx, &domain.Company{Name: "C" + p[len(p)-1:], Phone: p, Status: domain.CompanyActive})
		require.NoError(t, err)
	}

	list, err := repo.List(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "C1", list[0].Name)

	limit, offset := 1, 1
	list, err = repo.List(ctx, &limit, &offset)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "C2", list[0].Name)

	got, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, got)
}
