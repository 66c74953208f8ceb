package repository_test

import (
	"database/sql"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"droscher.com/Foodgram/pkg/repository"
)

type RepositorySuite struct {
	suite.Suite
	DB           *gorm.DB
	mock         sqlmock.Sqlmock
	observedLogs *observer.ObservedLogs
	queryLogs    *observer.ObservedLogs
	repository   repository.Repository
}

func (suite *RepositorySuite) SetupTest() {
	var (
		db              *sql.DB
		err             error
		observedZapCore zapcore.Core
		queryZapCore    zapcore.Core
	)

	observedZapCore, suite.observedLogs = observer.New(zap.InfoLevel)
	observedLogger := zap.New(observedZapCore)

	// failed statements are logged by gorm itself; keep those apart
	queryZapCore, suite.queryLogs = observer.New(zap.InfoLevel)

	db, suite.mock, err = sqlmock.New()
	suite.Require().NoError(err)

	gormLogger := zapgorm2.New(zap.New(queryZapCore))
	gormLogger.SetAsDefault()

	suite.DB, err = gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{Logger: gormLogger, TranslateError: true})
	suite.NoError(err)

	suite.repository = repository.Repository{DB: suite.DB, Logger: observedLogger}
}

func (suite *RepositorySuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
	suite.Empty(suite.observedLogs.FilterLevelExact(zapcore.ErrorLevel).All(), "unexpected error logs")
}

// takeErrorLogs drains the repository logs, returning the error entries with
// message. Any other error entry fails the test.
func (suite *RepositorySuite) takeErrorLogs(message string) []observer.LoggedEntry {
	var matched []observer.LoggedEntry

	for _, entry := range suite.observedLogs.TakeAll() {
		if entry.Level != zapcore.ErrorLevel {
			continue
		}

		if entry.Message != message {
			suite.Failf("unexpected error log", "%s: %v", entry.Message, entry.ContextMap())

			continue
		}

		matched = append(matched, entry)
	}

	return matched
}
