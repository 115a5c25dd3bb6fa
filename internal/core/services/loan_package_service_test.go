package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"finz-affiliate/internal/core/domain"
)

func TestLoanPackageService_List(t *testing.T) {
	ctx := context.Background()
	repo := newFakePackageRepo()
	repo.seed("Vay Tnex", "Thẻ Muadee", "FE Credit")
	svc := NewLoanPackageService(repo)

	t.Run("oldest first without tab", func(t *testing.T) {
		pkgs, err := svc.List(ctx, "")
		require.NoError(t, err)
		require.Len(t, pkgs, 3)
		require.Equal(t, "Vay Tnex", pkgs[0].Name)
		require.Equal(t, "FE Credit", pkgs[2].Name)
	})

	t.Run("tab filters by normalized name", func(t *testing.T) {
		pkgs, err := svc.List(ctx, "MUADEE")
		require.NoError(t, err)
		require.Len(t, pkgs, 1)
		require.Equal(t, "Thẻ Muadee", pkgs[0].Name)

		pkgs, err = svc.List(ctx, "the")
		require.NoError(t, err)
		require.Len(t, pkgs, 1)
	})

	t.Run("store error surfaces", func(t *testing.T) {
		repo.fail = true
		defer func() { repo.fail = false }()

		_, err := svc.List(ctx, "")
		require.ErrorIs(t, err, errStoreDown)
	})
}

func TestLoanPackageService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("trims and defaults links to inactive", func(t *testing.T) {
		svc := NewLoanPackageService(newFakePackageRepo())

		pkg, err := svc.Create(ctx, LoanPackageInput{Name: "  Vay CUB  ", Slug: " vay-cub "})
		require.NoError(t, err)
		require.NotEmpty(t, pkg.ID)
		require.Equal(t, "Vay CUB", pkg.Name)
		require.Equal(t, "vay-cub", pkg.Slug)
		require.Empty(t, pkg.RegisterLink)
		require.Empty(t, pkg.DetailLink)
	})

	t.Run("name required", func(t *testing.T) {
		svc := NewLoanPackageService(newFakePackageRepo())

		_, err := svc.Create(ctx, LoanPackageInput{Name: "   "})
		require.ErrorIs(t, err, ErrLoanPackageNameRequired)
	})

	t.Run("limit of eight", func(t *testing.T) {
		repo := newFakePackageRepo()
		svc := NewLoanPackageService(repo)
		for i := 0; i < domain.MaxLoanPackages; i++ {
			_, err := svc.Create(ctx, LoanPackageInput{Name: fmt.Sprintf("pkg %d", i)})
			require.NoError(t, err)
		}

		_, err := svc.Create(ctx, LoanPackageInput{Name: "ninth"})
		require.ErrorIs(t, err, domain.ErrPackageLimitReached)
		require.Len(t, repo.rows, domain.MaxLoanPackages)

		// upsert is not capped
		_, err = svc.Save(ctx, "", LoanPackageInput{Name: "ninth"})
		require.NoError(t, err)
		require.Len(t, repo.rows, domain.MaxLoanPackages+1)
	})
}

func TestLoanPackageService_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := newFakePackageRepo()
	svc := NewLoanPackageService(repo)

	created, err := svc.Create(ctx, LoanPackageInput{Name: "Vay FE"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, LoanPackageInput{Name: "Vay FE Credit", RegisterLink: "https://fe.example/reg"})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.NotEmpty(t, updated.RegisterLink)

	_, err = svc.Update(ctx, "missing", LoanPackageInput{Name: "x"})
	require.ErrorIs(t, err, domain.ErrLoanPackageNotFound)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrLoanPackageNotFound)
	require.ErrorIs(t, svc.Delete(ctx, created.ID), domain.ErrLoanPackageNotFound)
}
