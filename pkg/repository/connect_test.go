package repository_test

import (
	"database/sql"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"droscher.com/BreweryDirectory/configs"
	"droscher.com/BreweryDirectory/pkg/model"
	"droscher.com/BreweryDirectory/pkg/repository"
)

// RepositorySuite checks generated SQL against a mocked postgres connection.
type RepositorySuite struct {
	suite.Suite
	DB           *gorm.DB
	mock         sqlmock.Sqlmock
	observedLogs *observer.ObservedLogs
	repository   repository.Repository
}

func (suite *RepositorySuite) SetupTest() {
	var (
		db              *sql.DB
		err             error
		observedZapCore zapcore.Core
	)

	observedZapCore, suite.observedLogs = observer.New(zap.InfoLevel)
	observedLogger := zap.New(observedZapCore)

	db, suite.mock, err = sqlmock.New()
	suite.Require().NoError(err)

	gormLogger := zapgorm2.New(observedLogger)
	gormLogger.SetAsDefault()

	suite.DB, err = gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{Logger: gormLogger})
	suite.NoError(err)

	suite.repository = repository.Repository{DB: suite.DB, Logger: observedLogger}
}

func (suite *RepositorySuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

// SqliteSuite runs the repository against a real in-memory sqlite database.
type SqliteSuite struct {
	suite.Suite
	repository *repository.Repository
}

func (suite *SqliteSuite) SetupTest() {
	conf := &configs.Config{DB: configs.DB{
		Driver:             configs.DriverSqlite,
		Path:               ":memory:",
		MaxIdleConnections: 1,
		MaxOpenConnections: 1,
	}}

	repo, err := repository.Open(conf, zaptest.NewLogger(suite.T()))
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Migrate())

	suite.repository = repo
}

func (suite *SqliteSuite) TearDownTest() {
	suite.repository.Close()
}

func (suite *SqliteSuite) insert(breweries ...model.Brewery) {
	suite.Require().NoError(suite.DB().Create(&breweries).Error)
}

func (suite *SqliteSuite) DB() *gorm.DB {
	return suite.repository.DB
}

func brewery(apiID, name string, opts ...func(*model.Brewery)) model.Brewery {
	result := model.Brewery{BreweryAPIID: apiID, Name: name}
	for _, opt := range opts {
		opt(&result)
	}

	return result
}

func withType(value string) func(*model.Brewery) {
	return func(b *model.Brewery) { b.BreweryType = pointy.String(value) }
}

func withCountry(value string) func(*model.Brewery) {
	return func(b *model.Brewery) { b.Country = pointy.String(value) }
}

func withCity(value string) func(*model.Brewery) {
	return func(b *model.Brewery) { b.City = pointy.String(value) }
}

func withState(value string) func(*model.Brewery) {
	return func(b *model.Brewery) { b.State = pointy.String(value) }
}

func favorite(b *model.Brewery) { b.IsFavorite = true }

func apiIDs(breweries []*model.Brewery) []string {
	ids := make([]string, 0, len(breweries))
	for _, b := range breweries {
		ids = append(ids, b.BreweryAPIID)
	}

	return ids
}
