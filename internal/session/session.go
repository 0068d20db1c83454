package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"sync"
	"time"

	"airbook/internal/flight"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// LegKind distinguishes the two stored offer sequences of a round trip.
type LegKind string

const (
	LegDeparture LegKind = "departure"
	LegReturn    LegKind = "return"
)

// Params are the search parameters of the current booking flow, written
// once per search submission.
type Params struct {
	OriginCity          string
	DestinationCity     string
	DepartureDate       string
	ReturnDate          string
	ResolvedOrigin      string
	ResolvedDestination string
}

// Session is one user's server-side state: the active search parameters
// and the most recent departure and return result legs.
type Session struct {
	ID           string
	CreatedAt    time.Time
	ExpiresAt    time.Time
	LastAccessed time.Time

	mu        sync.Mutex
	params    Params
	departure []flight.Offer
	ret       []flight.Offer
}

// SetParams replaces the stored search parameters.
func (s *Session) SetParams(p Params) {
	s.mu.Lock()
	s.params = p
	s.mu.Unlock()
}

// Params returns a copy of the stored search parameters.
func (s *Session) Params() Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// SetLeg overwrites the stored offer sequence for one leg kind.
func (s *Session) SetLeg(kind LegKind, offers []flight.Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch kind {
	case LegReturn:
		s.ret = offers
	default:
		s.departure = offers
	}
}

// Leg returns the stored offer sequence for one leg kind.
func (s *Session) Leg(kind LegKind) []flight.Offer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if kind == LegReturn {
		return s.ret
	}
	return s.departure
}

// FindOffer resolves an offer id against both stored legs, departure
// first. A nil result means the id is stale, from another session, or
// was superseded by a newer search.
func (s *Session) FindOffer(id string) *flight.Offer {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, legs := range [][]flight.Offer{s.departure, s.ret} {
		for i := range legs {
			if legs[i].ID == id {
				offer := legs[i]
				return &offer
			}
		}
	}
	return nil
}

func newSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
