package sqlstore_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/logistics-tracker/internal/store"
	"github.com/SergeyBogomolovv/logistics-tracker/internal/store/sqlstore"
	"github.com/SergeyBogomolovv/logistics-tracker/internal/store/storetest"
	"github.com/SergeyBogomolovv/logistics-tracker/pkg/trm"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	_ "github.com/lib/pq"
)

type PostgresBackendIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func TestPostgresBackendIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	suite.Run(t, new(PostgresBackendIntegrationTestSuite))
}

func (s *PostgresBackendIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresBackendIntegrationTestSuite) SetupTest() {
	_, err := s.db.Exec("DROP TABLE IF EXISTS records")
	s.Require().NoError(err)
}

func (s *PostgresBackendIntegrationTestSuite) TearDownSuite() {
	if s.db != nil {
		s.Require().NoError(s.db.Close())
	}
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *PostgresBackendIntegrationTestSuite) TestContract() {
	storetest.RunBackend(s.T(), func(t *testing.T) store.Backend {
		_, err := s.db.Exec("DROP TABLE IF EXISTS records")
		require.NoError(t, err)
		return sqlstore.New(s.db, sqlstore.Postgres)
	})
}

func (s *PostgresBackendIntegrationTestSuite) TestSerializableTransaction() {
	ctx := context.Background()
	b := sqlstore.New(s.db, sqlstore.Postgres)
	s.Require().NoError(b.Init(ctx, store.StageRequests))

	tx := trm.NewManager(s.db, trm.WithIsolation(sql.LevelSerializable))
	err := tx.Do(ctx, func(ctx context.Context) error {
		records, err := b.ReadAll(ctx, store.StageRequests)
		if err != nil {
			return err
		}
		s.Empty(records)
		return b.Append(ctx, store.StageRequests, json.RawMessage(`{"order_id":"abc"}`))
	})
	s.Require().NoError(err)

	records, err := b.ReadAll(ctx, store.StageRequests)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.JSONEq(`{"order_id":"abc"}`, string(records[0]))
}
