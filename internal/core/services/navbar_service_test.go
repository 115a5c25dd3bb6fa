package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"finz-affiliate/internal/core/domain"
	"finz-affiliate/internal/core/navigation"
)

func TestNavbarService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("store failure falls back to defaults", func(t *testing.T) {
		repo := newFakeNavbarRepo()
		repo.fail = true
		svc := NewNavbarService(repo, nopLogger())

		require.Equal(t, navigation.Defaults(), svc.Resolve(ctx))
	})

	t.Run("stored rows resolve", func(t *testing.T) {
		repo := newFakeNavbarRepo(domain.NavbarLink{Title: "Vay Tnex", URL: "/dashboard?tab=tnex"})
		svc := NewNavbarService(repo, nopLogger())

		urls := svc.Resolve(ctx)
		require.Equal(t, "/dashboard?tab=tnex", urls.Tnex)
		require.Equal(t, "/", urls.Home)
	})
}

func TestNavbarService_EditorRows(t *testing.T) {
	ctx := context.Background()
	repo := newFakeNavbarRepo(
		domain.NavbarLink{Title: "Vay FE", URL: "https://fe.example"},
		domain.NavbarLink{Title: "Vay FE", URL: "https://shadowed.example"},
	)
	svc := NewNavbarService(repo, nopLogger())

	rows, err := svc.EditorRows(ctx, false)
	require.NoError(t, err)
	require.Len(t, rows, len(navigation.Slots))
	for i, slot := range navigation.Slots {
		require.Equal(t, slot.Title, rows[i].Title)
	}
	require.Equal(t, "https://fe.example", rows[3].URL)
	require.NotEmpty(t, rows[3].ID)
	require.Empty(t, rows[0].URL)

	rows, err = svc.EditorRows(ctx, true)
	require.NoError(t, err)
	require.Equal(t, "/", rows[0].URL)
	require.Equal(t, "https://fe.example", rows[3].URL)
}

func TestNavbarService_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("reconciles by title", func(t *testing.T) {
		repo := newFakeNavbarRepo(
			domain.NavbarLink{Title: "Trang chủ", URL: "/"},
			domain.NavbarLink{Title: "Vay CUB", URL: "/old-cub"},
			domain.NavbarLink{Title: "Vay CUB", URL: "/older-cub"},
		)
		svc := NewNavbarService(repo, nopLogger())
		homeID := repo.rows[0].ID

		rows, err := svc.Save(ctx, []EditorRow{
			{Title: "Trang chủ", URL: " /home "},
			{Title: "Thẻ Muadee", URL: "/dashboard?tab=muadee"},
			{Title: "Vay Tnex", URL: ""},
			{Title: "Vay FE", URL: "   "},
			{Title: "Vay CUB", URL: ""},
		})
		require.NoError(t, err)
		require.Len(t, rows, 5)

		require.Len(t, repo.rows, 2)
		require.Equal(t, homeID, repo.rows[0].ID)
		require.Equal(t, "/home", repo.rows[0].URL)
		require.Equal(t, "Thẻ Muadee", repo.rows[1].Title)

		urls := svc.Resolve(ctx)
		require.Equal(t, "/home", urls.Home)
		require.Equal(t, "/dashboard?tab=muadee", urls.Muadee)
		require.Equal(t, "/vay-cub", urls.CUB)
	})

	t.Run("saving twice never duplicates", func(t *testing.T) {
		repo := newFakeNavbarRepo()
		svc := NewNavbarService(repo, nopLogger())
		rows := []EditorRow{{Title: "Vay Tnex", URL: "/tnex"}}

		_, err := svc.Save(ctx, rows)
		require.NoError(t, err)
		_, err = svc.Save(ctx, rows)
		require.NoError(t, err)
		require.Len(t, repo.rows, 1)
	})

	t.Run("unknown title rejected before writing", func(t *testing.T) {
		repo := newFakeNavbarRepo()
		svc := NewNavbarService(repo, nopLogger())

		_, err := svc.Save(ctx, []EditorRow{
			{Title: "Vay Tnex", URL: "/tnex"},
			{Title: "Vay Shinhan", URL: "/shinhan"},
		})
		require.ErrorIs(t, err, ErrUnknownNavbarTitle)
		require.Empty(t, repo.rows)
	})

	t.Run("duplicate title rejected", func(t *testing.T) {
		svc := NewNavbarService(newFakeNavbarRepo(), nopLogger())

		_, err := svc.Save(ctx, []EditorRow{
			{Title: "Vay FE", URL: "/a"},
			{Title: "Vay FE", URL: "/b"},
		})
		require.ErrorIs(t, err, ErrDuplicateNavbarTitle)
	})
}
