package session

import (
	"errors"
	"testing"
	"time"

	"airbook/internal/flight"
)

func TestStore_CreateGet(t *testing.T) {
	store := NewInMemoryStore()
	defer store.Close()

	sess, err := store.Create(time.Minute)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sess.ID == "" {
		t.Fatal("expected non-empty session id")
	}

	got, err := store.Get(sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != sess.ID {
		t.Errorf("got %s, want %s", got.ID, sess.ID)
	}
}

func TestStore_UnknownID(t *testing.T) {
	store := NewInMemoryStore()
	defer store.Close()

	if _, err := store.Get("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestStore_Expiry(t *testing.T) {
	store := NewInMemoryStore()
	defer store.Close()

	sess, err := store.Create(time.Millisecond)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, err := store.Get(sess.ID); !errors.Is(err, ErrSessionExpired) {
		t.Errorf("expected ErrSessionExpired, got %v", err)
	}
}

func TestSession_LegOverwrite(t *testing.T) {
	sess := &Session{}

	sess.SetLeg(LegDeparture, []flight.Offer{{ID: "old-1"}, {ID: "old-2"}})
	sess.SetLeg(LegDeparture, []flight.Offer{{ID: "new-1"}})

	if sess.FindOffer("old-1") != nil {
		t.Error("superseded offer id must not resolve")
	}
	if sess.FindOffer("new-1") == nil {
		t.Error("current offer id must resolve")
	}
}

func TestSession_FindOfferScansBothLegs(t *testing.T) {
	sess := &Session{}
	sess.SetLeg(LegDeparture, []flight.Offer{{ID: "dep-1", Price: "120.00"}})
	sess.SetLeg(LegReturn, []flight.Offer{{ID: "ret-1", Price: "95.50"}})

	dep := sess.FindOffer("dep-1")
	if dep == nil || dep.Price != "120.00" {
		t.Errorf("departure lookup failed: %+v", dep)
	}

	ret := sess.FindOffer("ret-1")
	if ret == nil || ret.Price != "95.50" {
		t.Errorf("return lookup failed: %+v", ret)
	}

	if sess.FindOffer("ghost") != nil {
		t.Error("unknown id must yield nil, not a crash")
	}
}

func TestSession_Params(t *testing.T) {
	sess := &Session{}
	p := Params{
		OriginCity:          "Paris",
		DestinationCity:     "Tokyo",
		DepartureDate:       "2025-12-18",
		ReturnDate:          "2025-12-28",
		ResolvedOrigin:      "CDG",
		ResolvedDestination: "HND",
	}
	sess.SetParams(p)

	if got := sess.Params(); got != p {
		t.Errorf("params round trip: got %+v", got)
	}
}
