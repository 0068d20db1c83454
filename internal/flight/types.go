package flight

import (
	"context"
	"errors"

	"airbook/internal/amadeus"
)

var (
	// ErrCityNotFound means one of the city names could not be resolved
	// to an airport code.
	ErrCityNotFound = errors.New("city not found")

	// ErrAuthFailed means a provider access token could not be acquired.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrNoFlights means the search completed but produced no offers.
	ErrNoFlights = errors.New("no flights found")
)

// ProviderClient is the slice of the Amadeus client this package depends on.
type ProviderClient interface {
	Token(ctx context.Context) (string, error)
	SearchLocations(ctx context.Context, keyword string) ([]amadeus.Location, error)
	SearchFlightOffers(ctx context.Context, origin, destination, date string, maxResults int) ([]amadeus.RawOffer, error)
}

// Offer is a provider flight offer normalized into its display shape.
// Immutable once built; ID is the provider-assigned correlation key.
type Offer struct {
	ID            string `json:"id"`
	Airline       string `json:"airline"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	Duration      string `json:"duration"`
	Stops         int    `json:"stops"`
	Price         string `json:"price"`
}
