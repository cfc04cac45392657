//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	dbConfig "github.com/festy23/pr_reviewer/internal/database/config"
	"github.com/festy23/pr_reviewer/internal/database/database"
	"github.com/festy23/pr_reviewer/internal/database/migrate"
	"github.com/festy23/pr_reviewer/internal/database/pool"
	"github.com/festy23/pr_reviewer/internal/server"
	"github.com/festy23/pr_reviewer/pkg/retry"
)

const (
	pgDatabase = "pr_reviewer_test"
	pgUser     = "testuser"
	pgPassword = "testpass"
)

// IntegrationSuite runs the full HTTP stack against a PostgreSQL container
// with the embedded migrations applied.
type IntegrationSuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer *postgres.PostgresContainer
	db          *gorm.DB
	server      *httptest.Server
	client      *http.Client
}

func (s *IntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	gin.SetMode(gin.TestMode)

	pgContainer, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(pgDatabase),
		postgres.WithUsername(pgUser),
		postgres.WithPassword(pgPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err, "failed to start PostgreSQL container")
	s.pgContainer = pgContainer

	host, err := pgContainer.Host(s.ctx)
	s.Require().NoError(err)
	port, err := pgContainer.MappedPort(s.ctx, "5432/tcp")
	s.Require().NoError(err)

	logger := zaptest.NewLogger(s.T(), zaptest.Level(zap.WarnLevel)).Sugar()

	retryCfg := retry.PostgresConfig()
	retryCfg.MaxAttempts = 5
	retryCfg.InitialDelay = 500 * time.Millisecond

	db, err := database.NewWithConfig(dbConfig.Config{
		Host:     host,
		Port:     port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   pgDatabase,
		SSLMode:  "disable",
		TimeZone: "UTC",
	}, database.Options{Retry: retryCfg, Pool: pool.DefaultPoolConfig()}, logger)
	s.Require().NoError(err, "failed to connect to database")
	s.db = db

	s.Require().NoError(migrate.Migrate(db), "failed to apply migrations")

	s.server = httptest.NewServer(server.NewRouter(db, logger))
	s.client = s.server.Client()
	s.client.Timeout = 30 * time.Second
}

func (s *IntegrationSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.db != nil {
		_ = database.Close(s.db)
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
}

func (s *IntegrationSuite) SetupTest() {
	s.Require().NoError(s.db.Exec(
		"TRUNCATE TABLE pull_request_reviewers, pull_requests, users, teams CASCADE",
	).Error)
}

// errorBody mirrors the error envelope returned by every handler.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *IntegrationSuite) do(method, path string, body any) (int, []byte) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(s.ctx, method, s.server.URL+path, reader)
	s.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, raw
}

func (s *IntegrationSuite) decode(raw []byte, v any) {
	s.Require().NoError(json.Unmarshal(raw, v), string(raw))
}

func (s *IntegrationSuite) requireErrorCode(status int, raw []byte, wantStatus int, wantCode string) {
	s.Require().Equal(wantStatus, status, string(raw))
	var body errorBody
	s.decode(raw, &body)
	s.Equal(wantCode, body.Error.Code)
	s.NotEmpty(body.Error.Message)
}
