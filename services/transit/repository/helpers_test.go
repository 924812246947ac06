package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/piresc/onestop/internal/pkg/database"
)

// setupMiniredis creates a new miniredis server and a RedisClient connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, &database.RedisClient{Client: client}
}

// setupSQLMock creates a sqlx DB backed by sqlmock using postgres bind vars
func setupSQLMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "postgres")

	cleanup := func() {
		sqlxDB.Close()
	}
	return sqlxDB, mock, cleanup
}

var stopColumns = []string{"stop_id", "name", "lat", "lon", "geohash"}
