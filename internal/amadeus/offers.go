package amadeus

import (
	"context"
	"net/url"
	"strconv"
)

// RawOffer mirrors the provider's flight-offer schema loosely; every field
// the formatter needs may legitimately be absent in a response.
type RawOffer struct {
	ID                       string      `json:"id"`
	ValidatingAirlineCodes   []string    `json:"validatingAirlineCodes"`
	Itineraries              []Itinerary `json:"itineraries"`
	Price                    Price       `json:"price"`
	NumberOfBookableSeats    int         `json:"numberOfBookableSeats"`
	InstantTicketingRequired bool        `json:"instantTicketingRequired"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Departure SegmentPoint `json:"departure"`
	Arrival   SegmentPoint `json:"arrival"`
	Number    string       `json:"number"`
}

type SegmentPoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

type Price struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

type offersResponse struct {
	Data []RawOffer `json:"data"`
}

// SearchFlightOffers queries priced offers for the route and date.
// Results are capped at max offers for a single adult.
func (c *Client) SearchFlightOffers(ctx context.Context, origin, destination, date string, maxResults int) ([]RawOffer, error) {
	q := url.Values{}
	q.Set("originLocationCode", origin)
	q.Set("destinationLocationCode", destination)
	q.Set("departureDate", date)
	q.Set("adults", "1")
	q.Set("max", strconv.Itoa(maxResults))

	var resp offersResponse
	if err := c.get(ctx, c.baseURL+offersPath+"?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
