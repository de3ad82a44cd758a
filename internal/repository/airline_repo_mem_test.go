package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/avialab/aircatalog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAirline(t *testing.T, id, name, iata, icao string, active bool) domain.Airline {
	t.Helper()
	airline, err := domain.NewAirline(id, name, iata, icao, "United States", active)
	require.NoError(t, err)
	return airline
}

func TestMemoryRepo_SaveAndFindByID(t *testing.T) {
	repo := NewMemoryAirlineRepository()
	ctx := context.Background()

	airline := mustAirline(t, "id-1", "Delta", "DL", "DAL", true)
	require.NoError(t, repo.Save(ctx, airline))

	found, err := repo.FindByID(ctx, "id-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, airline, *found)
}

func TestMemoryRepo_FindByID_Missing(t *testing.T) {
	repo := NewMemoryAirlineRepository()

	found, err := repo.FindByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestMemoryRepo_FindByCodes_CaseInsensitive(t *testing.T) {
	repo := NewMemoryAirlineRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, mustAirline(t, "id-1", "Delta", "DL", "DAL", true)))

	byIATA, err := repo.FindByIATACode(ctx, "dl")
	require.NoError(t, err)
	require.NotNil(t, byIATA)
	assert.Equal(t, "id-1", byIATA.ID)

	byICAO, err := repo.FindByICAOCode(ctx, "dal")
	require.NoError(t, err)
	require.NotNil(t, byICAO)
	assert.Equal(t, "id-1", byICAO.ID)

	missing, err := repo.FindByIATACode(ctx, "AA")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryRepo_FindAllAndFindActive(t *testing.T) {
	repo := NewMemoryAirlineRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, mustAirline(t, "id-1", "Delta", "DL", "DAL", true)))
	require.NoError(t, repo.Save(ctx, mustAirline(t, "id-2", "Pan Am", "PA", "PAA", false)))
	require.NoError(t, repo.Save(ctx, mustAirline(t, "id-3", "United", "UA", "UAL", true)))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	active, err := repo.FindActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 2)
	for _, airline := range active {
		assert.True(t, airline.Active)
	}
}

func TestMemoryRepo_Save_UpsertsByID(t *testing.T) {
	repo := NewMemoryAirlineRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, mustAirline(t, "id-1", "Delta", "DL", "DAL", true)))
	require.NoError(t, repo.Save(ctx, mustAirline(t, "id-1", "Delta Air Lines", "DL", "DAL", false)))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Delta Air Lines", all[0].Name)
	assert.False(t, all[0].Active)
}

func TestMemoryRepo_Delete_ReportsRemoval(t *testing.T) {
	repo := NewMemoryAirlineRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, mustAirline(t, "id-1", "Delta", "DL", "DAL", true)))

	deleted, err := repo.Delete(ctx, "id-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "id-1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMemoryRepo_Clear(t *testing.T) {
	repo := NewMemoryAirlineRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, mustAirline(t, "id-1", "Delta", "DL", "DAL", true)))
	require.NoError(t, repo.Clear(ctx))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMemoryRepo_ReturnsCopies(t *testing.T) {
	repo := NewMemoryAirlineRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, mustAirline(t, "id-1", "Delta", "DL", "DAL", true)))

	found, err := repo.FindByID(ctx, "id-1")
	require.NoError(t, err)
	found.Name = "mutated"

	again, err := repo.FindByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "Delta", again.Name)
}

func TestMemoryRepo_ConcurrentAccess(t *testing.T) {
	repo := NewMemoryAirlineRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			airline, err := domain.NewAirline(fmt.Sprintf("id-%d", i), fmt.Sprintf("Airline %d", i), fmt.Sprintf("%c%c", 'A'+i%26, 'A'+(i+1)%26), fmt.Sprintf("X%c%c", 'A'+i%26, 'A'+(i+1)%26), "United States", i%2 == 0)
			if err != nil {
				return
			}
			_ = repo.Save(ctx, airline)
			_, _ = repo.FindAll(ctx)
			_, _ = repo.FindActive(ctx)
			_, _ = repo.Delete(ctx, fmt.Sprintf("id-%d", (i+5)%20))
		}(i)
	}
	wg.Wait()
}
