package flight

import (
	"testing"

	"airbook/internal/amadeus"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"PT7H45M", "7h 45m"},
		{"PT45M", "45m"},
		{"PT7H", "7h"},
		{"", ""},
		{"PT14H25M", "14h 25m"},
	}

	for _, tc := range cases {
		if got := formatDuration(tc.in); got != tc.want {
			t.Errorf("formatDuration(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDateTime(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2025-12-18T10:20:00", "10:20, 18 Dec 2025"},
		{"2025-01-02T23:05:00", "23:05, 02 Jan 2025"},
		{"not-a-date", "not-a-date"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := formatDateTime(tc.in); got != tc.want {
			t.Errorf("formatDateTime(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func validRawOffer(id string) amadeus.RawOffer {
	return amadeus.RawOffer{
		ID:                     id,
		ValidatingAirlineCodes: []string{"AF"},
		Price:                  amadeus.Price{Total: "734.20", Currency: "EUR"},
		Itineraries: []amadeus.Itinerary{{
			Duration: "PT14H25M",
			Segments: []amadeus.Segment{
				{
					Departure: amadeus.SegmentPoint{IataCode: "CDG", At: "2025-12-18T10:20:00"},
					Arrival:   amadeus.SegmentPoint{IataCode: "DXB", At: "2025-12-18T19:05:00"},
				},
				{
					Departure: amadeus.SegmentPoint{IataCode: "DXB", At: "2025-12-18T21:00:00"},
					Arrival:   amadeus.SegmentPoint{IataCode: "HND", At: "2025-12-19T07:45:00"},
				},
			},
		}},
	}
}

func TestFormatOffer(t *testing.T) {
	offer, ok := formatOffer(validRawOffer("42"))
	if !ok {
		t.Fatal("expected well-formed offer to format")
	}

	if offer.ID != "42" {
		t.Errorf("id: got %s", offer.ID)
	}
	if offer.Airline != "AF" {
		t.Errorf("airline: got %s", offer.Airline)
	}
	if offer.Origin != "CDG" || offer.Destination != "HND" {
		t.Errorf("route: got %s-%s", offer.Origin, offer.Destination)
	}
	if offer.DepartureTime != "10:20, 18 Dec 2025" {
		t.Errorf("departure: got %s", offer.DepartureTime)
	}
	if offer.ArrivalTime != "07:45, 19 Dec 2025" {
		t.Errorf("arrival: got %s", offer.ArrivalTime)
	}
	if offer.Duration != "14h 25m" {
		t.Errorf("duration: got %s", offer.Duration)
	}
	if offer.Stops != 1 {
		t.Errorf("stops: got %d", offer.Stops)
	}
	if offer.Price != "734.20" {
		t.Errorf("price: got %s", offer.Price)
	}
}

func TestFormatOffer_SkipsMalformed(t *testing.T) {
	noPrice := validRawOffer("1")
	noPrice.Price.Total = ""

	noAirline := validRawOffer("2")
	noAirline.ValidatingAirlineCodes = nil

	noSegments := validRawOffer("3")
	noSegments.Itineraries[0].Segments = nil

	noID := validRawOffer("")

	for name, raw := range map[string]amadeus.RawOffer{
		"missing price":    noPrice,
		"missing airline":  noAirline,
		"missing segments": noSegments,
		"missing id":       noID,
	} {
		if _, ok := formatOffer(raw); ok {
			t.Errorf("%s: expected skip", name)
		}
	}
}

func TestFormatOffer_UnparsableTimePassesThrough(t *testing.T) {
	raw := validRawOffer("5")
	raw.Itineraries[0].Segments[0].Departure.At = "tomorrow-ish"

	offer, ok := formatOffer(raw)
	if !ok {
		t.Fatal("unparsable datetime must not skip the offer")
	}
	if offer.DepartureTime != "tomorrow-ish" {
		t.Errorf("expected pass-through, got %s", offer.DepartureTime)
	}
}
