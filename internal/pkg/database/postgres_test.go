package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/onestop/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockClient(t *testing.T) (*PostgresClient, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	client := NewPostgresClientFromDB(sqlx.NewDb(mockDB, "postgres"))
	t.Cleanup(func() { _ = client.Close() })
	return client, mock
}

func TestNewPostgresClient_InvalidURL(t *testing.T) {
	client, err := NewPostgresClient(models.DatabaseConfig{URL: "postgres://nobody@127.0.0.1:1/none?connect_timeout=1"})

	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestPostgresClient_GetDB(t *testing.T) {
	client, _ := newMockClient(t)
	assert.NotNil(t, client.GetDB())
}

func TestPostgresClient_CloseNil(t *testing.T) {
	client := &PostgresClient{}
	assert.NoError(t, client.Close())
}

func TestEnsureSchema(t *testing.T) {
	t.Run("creates every table", func(t *testing.T) {
		client, mock := newMockClient(t)
		for range schemaStatements {
			mock.ExpectExec("CREATE").WillReturnResult(sqlmock.NewResult(0, 0))
		}

		err := client.EnsureSchema(context.Background())

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stops at first failure", func(t *testing.T) {
		client, mock := newMockClient(t)
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS stops")).
			WillReturnError(errors.New("permission denied"))

		err := client.EnsureSchema(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to ensure schema")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
