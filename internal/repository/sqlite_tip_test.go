package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/goalpath/internal/domain"
	"github.com/alexanderramin/goalpath/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTipRepo_CreateAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTipRepo(db)
	ctx := context.Background()

	quote := testutil.NewTestTip(domain.TipKindQuote, "Stay curious")
	tip := testutil.NewTestTip(domain.TipKindTip, "Practice daily")
	require.NoError(t, repo.Create(ctx, 2, quote))
	require.NoError(t, repo.Create(ctx, 1, tip))

	tips, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tips, 2)
	assert.Equal(t, tip, tips[0])
	assert.Equal(t, quote, tips[1])
}

func TestTipRepo_Create_RejectsUnknownKind(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTipRepo(db)

	err := repo.Create(context.Background(), 1, testutil.NewTestTip("joke", "knock knock"))
	assert.Error(t, err)
}

func TestTipRepo_List_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTipRepo(db)

	tips, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tips)
}
