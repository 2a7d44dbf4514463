package category

import (
	"context"
	"testing"

	"github.com/fintrack/fintrack/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryImpl_Insert(t *testing.T) {
	// given
	ctx := context.Background()
	repo := NewRepository(test_utils.SetupTestDB(t))

	// when
	id, inserted, err := repo.Insert(ctx, "Food")

	// then
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Greater(t, id, 0)

	stored, err := repo.FindByName(ctx, "Food")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, id, stored.ID)
	assert.Equal(t, "Food", stored.Name)
}

func TestRepositoryImpl_Insert_ConflictingNameIsNotDuplicated(t *testing.T) {
	// given
	ctx := context.Background()
	repo := NewRepository(test_utils.SetupTestDB(t))
	firstId, _, err := repo.Insert(ctx, "Food")
	require.NoError(t, err)

	// when
	_, inserted, err := repo.Insert(ctx, "Food")

	// then
	require.NoError(t, err)
	assert.False(t, inserted)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, firstId, all[0].ID)
}

func TestRepositoryImpl_FindByName_IsExactMatch(t *testing.T) {
	// given
	ctx := context.Background()
	repo := NewRepository(test_utils.SetupTestDB(t))
	_, _, err := repo.Insert(ctx, "Food")
	require.NoError(t, err)

	// when
	lowercase, err := repo.FindByName(ctx, "food")
	require.NoError(t, err)
	padded, err2 := repo.FindByName(ctx, " Food")
	require.NoError(t, err2)

	// then
	assert.Nil(t, lowercase)
	assert.Nil(t, padded)
}

func TestRepositoryImpl_GetAll_OrderedByName(t *testing.T) {
	// given
	ctx := context.Background()
	repo := NewRepository(test_utils.SetupTestDB(t))
	for _, name := range []string{"Transport", "Food", "Health"} {
		_, _, err := repo.Insert(ctx, name)
		require.NoError(t, err)
	}

	// when
	all, err := repo.GetAll(ctx)

	// then
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Food", all[0].Name)
	assert.Equal(t, "Health", all[1].Name)
	assert.Equal(t, "Transport", all[2].Name)
}
