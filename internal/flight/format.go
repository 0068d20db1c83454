package flight

import (
	"strings"
	"time"

	"airbook/internal/amadeus"
)

const providerTimeLayout = "2006-01-02T15:04:05"

// formatOffer normalizes one raw provider offer into its display shape.
// A missing or malformed field skips that single offer (ok=false); partial
// batches are valid output.
func formatOffer(raw amadeus.RawOffer) (Offer, bool) {
	if raw.ID == "" {
		return Offer{}, false
	}
	if len(raw.ValidatingAirlineCodes) == 0 || raw.ValidatingAirlineCodes[0] == "" {
		return Offer{}, false
	}
	if len(raw.Itineraries) == 0 {
		return Offer{}, false
	}

	itinerary := raw.Itineraries[0]
	if len(itinerary.Segments) == 0 {
		return Offer{}, false
	}

	first := itinerary.Segments[0]
	last := itinerary.Segments[len(itinerary.Segments)-1]
	if first.Departure.IataCode == "" || first.Departure.At == "" ||
		last.Arrival.IataCode == "" || last.Arrival.At == "" {
		return Offer{}, false
	}

	if raw.Price.Total == "" {
		return Offer{}, false
	}

	return Offer{
		ID:            raw.ID,
		Airline:       raw.ValidatingAirlineCodes[0],
		Origin:        first.Departure.IataCode,
		Destination:   last.Arrival.IataCode,
		DepartureTime: formatDateTime(first.Departure.At),
		ArrivalTime:   formatDateTime(last.Arrival.At),
		Duration:      formatDuration(itinerary.Duration),
		Stops:         len(itinerary.Segments) - 1,
		Price:         raw.Price.Total,
	}, true
}

// formatDateTime renders a provider local datetime as "HH:MM, DD Mon YYYY".
// Unparsable input passes through unchanged.
func formatDateTime(at string) string {
	t, err := time.Parse(providerTimeLayout, at)
	if err != nil {
		return at
	}
	return t.Format("15:04, 02 Jan 2006")
}

// formatDuration renders an ISO-8601 duration of the restricted form
// PT[n]H[n]M as "{n}h {n}m", omitting absent components.
func formatDuration(iso string) string {
	rest := strings.TrimPrefix(iso, "PT")

	var parts []string
	var num strings.Builder
	for _, r := range rest {
		if r >= '0' && r <= '9' {
			num.WriteRune(r)
			continue
		}
		switch r {
		case 'H':
			parts = append(parts, num.String()+"h")
		case 'M':
			parts = append(parts, num.String()+"m")
		}
		num.Reset()
	}
	return strings.Join(parts, " ")
}
