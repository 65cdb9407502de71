package model

import (
	"errors"
	"fmt"
)

var ErrMissingField = errors.New("missing required field")

// Brewery is a row of the local brewery cache. ID is the storage key and is never
// exposed; clients address a brewery by BreweryAPIID.
type Brewery struct {
	ID            uint    `gorm:"primaryKey;autoIncrement"`
	BreweryAPIID  string  `gorm:"column:brewery_api_id;size:255;not null;uniqueIndex"`
	Name          string  `gorm:"size:255;not null"`
	BreweryType   *string `gorm:"size:50"`
	Address1      *string `gorm:"column:address_1;size:255"`
	Address2      *string `gorm:"column:address_2;size:255"`
	Address3      *string `gorm:"column:address_3;size:255"`
	City          *string `gorm:"size:100"`
	StateProvince *string `gorm:"size:100"`
	PostalCode    *string `gorm:"size:20"`
	Country       *string `gorm:"size:100"`
	Longitude     *float64
	Latitude      *float64
	Phone         *string `gorm:"size:20"`
	WebsiteURL    *string `gorm:"column:website_url;size:255"`
	State         *string `gorm:"size:100"`
	Street        *string `gorm:"size:255"`
	IsFavorite    bool    `gorm:"not null;default:false"`
}

// ExternalBrewery is a single item of the Open Brewery DB listing.
type ExternalBrewery struct {
	ID            *string    `json:"id"`
	Name          *string    `json:"name"`
	BreweryType   *string    `json:"brewery_type"`
	Address1      *string    `json:"address_1"`
	Address2      *string    `json:"address_2"`
	Address3      *string    `json:"address_3"`
	City          *string    `json:"city"`
	StateProvince *string    `json:"state_province"`
	PostalCode    *string    `json:"postal_code"`
	Country       *string    `json:"country"`
	Longitude     Coordinate `json:"longitude"`
	Latitude      Coordinate `json:"latitude"`
	Phone         *string    `json:"phone"`
	WebsiteURL    *string    `json:"website_url"`
	State         *string    `json:"state"`
	Street        *string    `json:"street"`
}

// ClientBrewery is the client-facing shape of a brewery.
type ClientBrewery struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	BreweryType   *string  `json:"brewery_type"`
	Address1      *string  `json:"address_1"`
	Address2      *string  `json:"address_2"`
	Address3      *string  `json:"address_3"`
	City          *string  `json:"city"`
	StateProvince *string  `json:"state_province"`
	PostalCode    *string  `json:"postal_code"`
	Country       *string  `json:"country"`
	Longitude     *float64 `json:"longitude"`
	Latitude      *float64 `json:"latitude"`
	Phone         *string  `json:"phone"`
	WebsiteURL    *string  `json:"website_url"`
	State         *string  `json:"state"`
	Street        *string  `json:"street"`
	IsFavorite    bool     `json:"is_favorite"`
}

func BreweryFromExternal(external ExternalBrewery) (Brewery, error) {
	if external.ID == nil {
		return Brewery{}, fmt.Errorf("%w: id", ErrMissingField)
	}

	if external.Name == nil {
		return Brewery{}, fmt.Errorf("%w: name", ErrMissingField)
	}

	return Brewery{
		BreweryAPIID:  *external.ID,
		Name:          *external.Name,
		BreweryType:   external.BreweryType,
		Address1:      external.Address1,
		Address2:      external.Address2,
		Address3:      external.Address3,
		City:          external.City,
		StateProvince: external.StateProvince,
		PostalCode:    external.PostalCode,
		Country:       external.Country,
		Longitude:     external.Longitude.Float64(),
		Latitude:      external.Latitude.Float64(),
		Phone:         external.Phone,
		WebsiteURL:    external.WebsiteURL,
		State:         external.State,
		Street:        external.Street,
	}, nil
}

func BreweriesFromExternal(externals []ExternalBrewery) ([]Brewery, error) {
	breweries := make([]Brewery, 0, len(externals))

	for index, external := range externals {
		brewery, err := BreweryFromExternal(external)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", index, err)
		}

		breweries = append(breweries, brewery)
	}

	return breweries, nil
}

func (b *Brewery) ToClient() ClientBrewery {
	return ClientBrewery{
		ID:            b.BreweryAPIID,
		Name:          b.Name,
		BreweryType:   b.BreweryType,
		Address1:      b.Address1,
		Address2:      b.Address2,
		Address3:      b.Address3,
		City:          b.City,
		StateProvince: b.StateProvince,
		PostalCode:    b.PostalCode,
		Country:       b.Country,
		Longitude:     b.Longitude,
		Latitude:      b.Latitude,
		Phone:         b.Phone,
		WebsiteURL:    b.WebsiteURL,
		State:         b.State,
		Street:        b.Street,
		IsFavorite:    b.IsFavorite,
	}
}

func BreweriesToClient(breweries []*Brewery) []ClientBrewery {
	result := make([]ClientBrewery, 0, len(breweries))

	for _, brewery := range breweries {
		result = append(result, brewery.ToClient())
	}

	return result
}
