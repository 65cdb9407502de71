package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"droscher.com/BreweryDirectory/pkg/model"
	"droscher.com/BreweryDirectory/pkg/repository"
)

const (
	breweryIDParam  = "breweryID"
	notFoundMessage = "Brewery not found"
)

var favoriteToggles = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "brewery_favorite_toggles_total",
	Help: "Number of successful favorite toggles, by resulting state.",
}, []string{"is_favorite"})

type BreweryServer struct {
	repository repository.BreweryRepository
	logger     *zap.Logger
}

func NewBreweryServer(repository repository.BreweryRepository, logger *zap.Logger) *BreweryServer {
	return &BreweryServer{repository: repository, logger: logger}
}

func (b *BreweryServer) FindBreweries(w http.ResponseWriter, r *http.Request) {
	filter := ParseBreweryFilter(r.URL.Query())

	breweries, err := b.repository.FindBreweries(r.Context(), filter)
	if err != nil {
		b.logger.Error("failed brewery search", zap.String("request_id", middleware.GetReqID(r.Context())), zap.Error(err))
		b.writeError(w, http.StatusInternalServerError, err.Error())

		return
	}

	b.writeJSON(w, http.StatusOK, model.BreweriesToClient(breweries))
}

func (b *BreweryServer) GetBrewery(w http.ResponseWriter, r *http.Request) {
	breweryID := chi.URLParam(r, breweryIDParam)

	brewery, err := b.repository.GetBreweryByAPIID(r.Context(), breweryID)
	if err != nil {
		b.handleLookupError(w, r, breweryID, err)

		return
	}

	b.writeJSON(w, http.StatusOK, brewery.ToClient())
}

func (b *BreweryServer) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	breweryID := chi.URLParam(r, breweryIDParam)

	brewery, err := b.repository.ToggleFavorite(r.Context(), breweryID)
	if err != nil {
		b.handleLookupError(w, r, breweryID, err)

		return
	}

	favoriteToggles.WithLabelValues(strconv.FormatBool(brewery.IsFavorite)).Inc()
	b.logger.Debug("toggled favorite", zap.String("brewery_id", breweryID), zap.Bool("is_favorite", brewery.IsFavorite))

	b.writeJSON(w, http.StatusOK, brewery.ToClient())
}

func (b *BreweryServer) GetFavoritesAnalytics(w http.ResponseWriter, r *http.Request) {
	favorites, err := b.repository.GetFavoriteBreweries(r.Context())
	if err != nil {
		b.logger.Error("failed loading favorites", zap.String("request_id", middleware.GetReqID(r.Context())), zap.Error(err))
		b.writeError(w, http.StatusInternalServerError, err.Error())

		return
	}

	b.writeJSON(w, http.StatusOK, SummarizeFavorites(favorites))
}

func (b *BreweryServer) handleLookupError(w http.ResponseWriter, r *http.Request, breweryID string, err error) {
	if errors.Is(err, repository.ErrBreweryNotFound) {
		b.logger.Warn("brewery not found", zap.String("brewery_id", breweryID))
		b.writeError(w, http.StatusNotFound, notFoundMessage)

		return
	}

	b.logger.Error("error accessing brewery",
		zap.String("brewery_id", breweryID),
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.Error(err))
	b.writeError(w, http.StatusInternalServerError, err.Error())
}
