package server_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/BreweryDirectory/configs"
	"droscher.com/BreweryDirectory/mocks"
	"droscher.com/BreweryDirectory/pkg/model"
	"droscher.com/BreweryDirectory/pkg/repository"
	"droscher.com/BreweryDirectory/pkg/server"
)

type BreweryTestSuite struct {
	suite.Suite
	breweryRepo  *mocks.BreweryRepository
	handler      http.Handler
	observedLogs *observer.ObservedLogs
}

func TestBreweryTestSuite(t *testing.T) {
	suite.Run(t, new(BreweryTestSuite))
}

func (suite *BreweryTestSuite) SetupTest() {
	suite.breweryRepo = mocks.NewBreweryRepository(suite.T())
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	breweryServer := server.NewBreweryServer(suite.breweryRepo, zap.New(observedZapCore))
	suite.handler = server.NewRouter(breweryServer, configs.Server{AllowedOrigins: []string{"*"}})
}

func (suite *BreweryTestSuite) do(method, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	suite.handler.ServeHTTP(recorder, httptest.NewRequest(method, target, nil))

	return recorder
}

func (suite *BreweryTestSuite) decode(recorder *httptest.ResponseRecorder, target any) {
	suite.Equal("application/json", recorder.Header().Get("Content-Type"))
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), target))
}

func (suite *BreweryTestSuite) TestFindBreweries_PassesParsedFilter() {
	expectedFilter := model.BreweryFilter{
		FavoritesOnly: true,
		ByType:        pointy.String("micro"),
		Query:         pointy.String("austin"),
	}

	suite.breweryRepo.EXPECT().FindBreweries(mock.Anything, expectedFilter).Return([]*model.Brewery{
		{ID: 10, BreweryAPIID: "ext-10", Name: "Jester King", City: pointy.String("Austin"), IsFavorite: true},
	}, nil)

	recorder := suite.do(http.MethodGet, "/api/breweries?favorites_only=True&by_type=micro&query=austin")

	suite.Equal(http.StatusOK, recorder.Code)

	var body []map[string]any
	suite.decode(recorder, &body)
	suite.Require().Len(body, 1)
	suite.Equal("ext-10", body[0]["id"])
	suite.Equal("Jester King", body[0]["name"])
	suite.Equal("Austin", body[0]["city"])
	suite.Equal(true, body[0]["is_favorite"])
}

func (suite *BreweryTestSuite) TestFindBreweries_EmptyResultIsArray() {
	suite.breweryRepo.EXPECT().FindBreweries(mock.Anything, model.BreweryFilter{}).Return(nil, nil)

	recorder := suite.do(http.MethodGet, "/api/breweries")

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`[]`, recorder.Body.String())
}

func (suite *BreweryTestSuite) TestFindBreweries_RepositoryError() {
	suite.breweryRepo.EXPECT().FindBreweries(mock.Anything, mock.Anything).Return(nil, errors.New("database is locked"))

	recorder := suite.do(http.MethodGet, "/api/breweries")

	suite.Equal(http.StatusInternalServerError, recorder.Code)
	suite.JSONEq(`{"error": "database is locked"}`, recorder.Body.String())
	suite.Equal(1, suite.observedLogs.FilterMessage("failed brewery search").Len())
}

func (suite *BreweryTestSuite) TestGetBrewery_Found() {
	suite.breweryRepo.EXPECT().GetBreweryByAPIID(mock.Anything, "ext-1").Return(&model.Brewery{
		ID: 1, BreweryAPIID: "ext-1", Name: "Fremont Brewing",
	}, nil)

	recorder := suite.do(http.MethodGet, "/api/breweries/ext-1")

	suite.Equal(http.StatusOK, recorder.Code)

	var body map[string]any
	suite.decode(recorder, &body)
	suite.Equal("ext-1", body["id"])
	suite.Equal(false, body["is_favorite"])
	suite.Nil(body["brewery_type"])
}

func (suite *BreweryTestSuite) TestGetBrewery_NotFound() {
	suite.breweryRepo.EXPECT().GetBreweryByAPIID(mock.Anything, "unknown").Return(nil, repository.ErrBreweryNotFound)

	recorder := suite.do(http.MethodGet, "/api/breweries/unknown")

	suite.Equal(http.StatusNotFound, recorder.Code)
	suite.JSONEq(`{"error": "Brewery not found"}`, recorder.Body.String())
}

func (suite *BreweryTestSuite) TestGetBrewery_RepositoryError() {
	suite.breweryRepo.EXPECT().GetBreweryByAPIID(mock.Anything, "ext-1").Return(nil, errors.New("no such table: breweries"))

	recorder := suite.do(http.MethodGet, "/api/breweries/ext-1")

	suite.Equal(http.StatusInternalServerError, recorder.Code)
	suite.JSONEq(`{"error": "no such table: breweries"}`, recorder.Body.String())
}

func (suite *BreweryTestSuite) TestToggleFavorite_ReturnsUpdatedBrewery() {
	suite.breweryRepo.EXPECT().ToggleFavorite(mock.Anything, "ext-1").Return(&model.Brewery{
		ID: 1, BreweryAPIID: "ext-1", Name: "Fremont Brewing", IsFavorite: true,
	}, nil)

	recorder := suite.do(http.MethodPost, "/api/breweries/ext-1/favorite")

	suite.Equal(http.StatusOK, recorder.Code)

	var body map[string]any
	suite.decode(recorder, &body)
	suite.Equal("ext-1", body["id"])
	suite.Equal(true, body["is_favorite"])
}

func (suite *BreweryTestSuite) TestToggleFavorite_NotFound() {
	suite.breweryRepo.EXPECT().ToggleFavorite(mock.Anything, "unknown").Return(nil, repository.ErrBreweryNotFound)

	recorder := suite.do(http.MethodPost, "/api/breweries/unknown/favorite")

	suite.Equal(http.StatusNotFound, recorder.Code)
	suite.JSONEq(`{"error": "Brewery not found"}`, recorder.Body.String())
}

func (suite *BreweryTestSuite) TestToggleFavorite_PersistenceError() {
	suite.breweryRepo.EXPECT().ToggleFavorite(mock.Anything, "ext-1").Return(nil, errors.New("disk I/O error"))

	recorder := suite.do(http.MethodPost, "/api/breweries/ext-1/favorite")

	suite.Equal(http.StatusInternalServerError, recorder.Code)
	suite.JSONEq(`{"error": "disk I/O error"}`, recorder.Body.String())
}

func (suite *BreweryTestSuite) TestToggleFavorite_GetNotAllowed() {
	recorder := suite.do(http.MethodGet, "/api/breweries/ext-1/favorite")

	suite.Equal(http.StatusMethodNotAllowed, recorder.Code)
}

func (suite *BreweryTestSuite) TestGetFavoritesAnalytics() {
	suite.breweryRepo.EXPECT().GetFavoriteBreweries(mock.Anything).Return([]*model.Brewery{
		{BreweryAPIID: "a", BreweryType: pointy.String("micro"), Country: pointy.String("United States"), State: pointy.String("Texas"), IsFavorite: true},
		{BreweryAPIID: "b", BreweryType: pointy.String("micro"), Country: pointy.String("Ireland"), State: pointy.String("Dublin"), IsFavorite: true},
	}, nil)

	recorder := suite.do(http.MethodGet, "/api/analytics/favorites")

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{
		"total_favorites": 2,
		"by_type": [{"name": "micro", "value": 2}],
		"by_country": [{"name": "United States", "value": 1}, {"name": "Ireland", "value": 1}],
		"by_state": [{"name": "Texas", "value": 1}]
	}`, recorder.Body.String())
}

func (suite *BreweryTestSuite) TestGetFavoritesAnalytics_RepositoryError() {
	suite.breweryRepo.EXPECT().GetFavoriteBreweries(mock.Anything).Return(nil, errors.New("connection refused"))

	recorder := suite.do(http.MethodGet, "/api/analytics/favorites")

	suite.Equal(http.StatusInternalServerError, recorder.Code)
	suite.JSONEq(`{"error": "connection refused"}`, recorder.Body.String())
}

func (suite *BreweryTestSuite) TestCORSPreflight() {
	request := httptest.NewRequest(http.MethodOptions, "/api/breweries/ext-1/favorite", nil)
	request.Header.Set("Origin", "http://localhost:5173")
	request.Header.Set("Access-Control-Request-Method", http.MethodPost)

	recorder := httptest.NewRecorder()
	suite.handler.ServeHTTP(recorder, request)

	suite.Equal(http.StatusNoContent, recorder.Code)
	suite.Equal("*", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func (suite *BreweryTestSuite) TestMetricsEndpoint() {
	suite.breweryRepo.EXPECT().FindBreweries(mock.Anything, mock.Anything).Return(nil, nil)
	suite.do(http.MethodGet, "/api/breweries")

	recorder := suite.do(http.MethodGet, "/metrics")

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), `brewery_http_requests_total{method="GET",route="/api/breweries`)
}

func (suite *BreweryTestSuite) TestHealthCheck() {
	request := httptest.NewRequest(http.MethodPost, "/grpc.health.v1.Health/Check", strings.NewReader(`{"service": "`+server.ServiceName+`"}`))
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	suite.handler.ServeHTTP(recorder, request)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "SERVING")
}
