package repository

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/BreweryDirectory/pkg/model"
)

var ErrBreweryNotFound = errors.New("brewery not found")

const seedBatchSize = 100

type BreweryRepository interface {
	CountBreweries(ctx context.Context) (int64, error)
	FindBreweries(ctx context.Context, filter model.BreweryFilter) ([]*model.Brewery, error)
	GetBreweryByAPIID(ctx context.Context, breweryAPIID string) (*model.Brewery, error)
	GetFavoriteBreweries(ctx context.Context) ([]*model.Brewery, error)
	Migrate() error
	SeedBreweries(ctx context.Context, breweries []model.Brewery) error
	ToggleFavorite(ctx context.Context, breweryAPIID string) (*model.Brewery, error)
}

func (r *Repository) CountBreweries(ctx context.Context) (int64, error) {
	var count int64

	if result := r.DB.WithContext(ctx).Model(&model.Brewery{}).Count(&count); result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// SeedBreweries inserts the whole batch in one transaction; any failure leaves the
// table as it was.
func (r *Repository) SeedBreweries(ctx context.Context, breweries []model.Brewery) error {
	if len(breweries) == 0 {
		return nil
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&breweries, seedBatchSize).Error
	})
}

func (r *Repository) FindBreweries(ctx context.Context, filter model.BreweryFilter) ([]*model.Brewery, error) {
	var breweries []*model.Brewery

	query := ApplyBreweryFilter(r.DB.WithContext(ctx).Model(&model.Brewery{}), filter)

	if result := query.Order("id").Find(&breweries); result.Error != nil {
		r.Logger.Error("error searching breweries", zap.Error(result.Error))

		return nil, result.Error
	}

	return breweries, nil
}

func (r *Repository) GetBreweryByAPIID(ctx context.Context, breweryAPIID string) (*model.Brewery, error) {
	return findByAPIID(r.DB.WithContext(ctx), breweryAPIID)
}

func (r *Repository) GetFavoriteBreweries(ctx context.Context) ([]*model.Brewery, error) {
	var breweries []*model.Brewery

	if result := r.DB.WithContext(ctx).Where("is_favorite = ?", true).Order("id").Find(&breweries); result.Error != nil {
		return nil, result.Error
	}

	return breweries, nil
}

// ToggleFavorite flips is_favorite on a single brewery. Concurrent toggles on the
// same row are last-writer-wins.
func (r *Repository) ToggleFavorite(ctx context.Context, breweryAPIID string) (*model.Brewery, error) {
	var brewery *model.Brewery

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := findByAPIID(tx, breweryAPIID)
		if err != nil {
			return err
		}

		found.IsFavorite = !found.IsFavorite

		if result := tx.Model(found).Update("is_favorite", found.IsFavorite); result.Error != nil {
			return result.Error
		}

		brewery = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return brewery, nil
}

func findByAPIID(db *gorm.DB, breweryAPIID string) (*model.Brewery, error) {
	brewery := &model.Brewery{}

	result := db.Where("brewery_api_id = ?", breweryAPIID).First(brewery)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBreweryNotFound
		}

		return nil, result.Error
	}

	return brewery, nil
}

// ApplyBreweryFilter narrows query by every present filter field. Categories are
// AND-ed; the free-text query matches name, city or state. Matching is a
// case-insensitive literal substring match.
func ApplyBreweryFilter(query *gorm.DB, filter model.BreweryFilter) *gorm.DB {
	if filter.FavoritesOnly {
		query = query.Where("is_favorite = ?", true)
	}

	if filter.ByType != nil {
		query = query.Where(`LOWER(brewery_type) LIKE LOWER(?) ESCAPE '\'`, containsPattern(*filter.ByType))
	}

	if filter.ByCountry != nil {
		query = query.Where(`LOWER(country) LIKE LOWER(?) ESCAPE '\'`, containsPattern(*filter.ByCountry))
	}

	if filter.Query != nil {
		pattern := containsPattern(*filter.Query)
		query = query.Where(`(LOWER(name) LIKE LOWER(?) ESCAPE '\' OR LOWER(city) LIKE LOWER(?) ESCAPE '\' OR LOWER(state) LIKE LOWER(?) ESCAPE '\')`,
			pattern, pattern, pattern)
	}

	return query
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}
