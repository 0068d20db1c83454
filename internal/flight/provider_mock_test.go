package flight

import (
	"context"
	"sync/atomic"

	"airbook/internal/amadeus"
	"airbook/pkg/logger"
)

// fakeProvider implements ProviderClient for service and resolver tests.
type fakeProvider struct {
	tokenErr     error
	locations    map[string][]amadeus.Location
	locationsErr error
	offers       []amadeus.RawOffer
	offersErr    error

	tokenCalls     int32
	locationCalls  int32
	offerCalls     int32
	lastOfferQuery [3]string
}

func (f *fakeProvider) Token(context.Context) (string, error) {
	atomic.AddInt32(&f.tokenCalls, 1)
	if f.tokenErr != nil {
		return "", f.tokenErr
	}
	return "tok", nil
}

func (f *fakeProvider) SearchLocations(_ context.Context, keyword string) ([]amadeus.Location, error) {
	atomic.AddInt32(&f.locationCalls, 1)
	if f.locationsErr != nil {
		return nil, f.locationsErr
	}
	return f.locations[keyword], nil
}

func (f *fakeProvider) SearchFlightOffers(_ context.Context, origin, destination, date string, _ int) ([]amadeus.RawOffer, error) {
	atomic.AddInt32(&f.offerCalls, 1)
	f.lastOfferQuery = [3]string{origin, destination, date}
	if f.offersErr != nil {
		return nil, f.offersErr
	}
	return f.offers, nil
}

func quietLogger() logger.Client {
	return logger.NewWithWriter("production", nopWriter{})
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
