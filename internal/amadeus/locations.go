package amadeus

import (
	"context"
	"net/url"
)

// Location is one entry from the reference-data locations endpoint.
type Location struct {
	IataCode string `json:"iataCode"`
	Name     string `json:"name"`
	SubType  string `json:"subType"`
}

type locationsResponse struct {
	Data []Location `json:"data"`
}

// SearchLocations queries airports matching the keyword.
func (c *Client) SearchLocations(ctx context.Context, keyword string) ([]Location, error) {
	q := url.Values{}
	q.Set("keyword", keyword)
	q.Set("subType", "AIRPORT")

	var resp locationsResponse
	if err := c.get(ctx, c.baseURL+locationsPath+"?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
