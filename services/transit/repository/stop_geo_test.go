package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/onestop/internal/pkg/models"
	"github.com/piresc/onestop/services/transit"
)

func TestGeoIndex_NearestStopIDs(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewGeoIndexRepository(client)
	ctx := context.Background()

	stops := []*models.Stop{
		{StopID: "S1", Location: models.NewLocation(12.9767, 77.5732)},
		{StopID: "S17", Location: models.NewLocation(12.9719, 77.5813)},
		{StopID: "S22", Location: models.NewLocation(12.8995, 77.5750)},
	}
	for _, s := range stops {
		require.NoError(t, repo.IndexStop(ctx, s))
	}

	ids, err := repo.NearestStopIDs(ctx, models.Coordinates{Lat: 12.9760, Lon: 77.5740}, 1500)
	require.NoError(t, err)
	assert.Equal(t, []string{"S1", "S17"}, ids)
}

func TestGeoIndex_NoneInRange(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewGeoIndexRepository(client)
	ids, err := repo.NearestStopIDs(context.Background(), models.Coordinates{Lat: 0, Lon: 0}, 1000)

	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestGeoIndex_RedisError(t *testing.T) {
	mr, client := setupMiniredis(t)
	repo := NewGeoIndexRepository(client)
	mr.Close()

	err := repo.IndexStop(context.Background(), &models.Stop{StopID: "S1", Location: models.NewLocation(1, 1)})
	assert.ErrorIs(t, err, transit.ErrCacheUnavailable)

	_, err = repo.NearestStopIDs(context.Background(), models.Coordinates{}, 1000)
	assert.ErrorIs(t, err, transit.ErrCacheUnavailable)
}
