package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"strings"
)

const offersFile = "cmd/amadeusmock/files/flight_offers.json"

// Raw provider shapes, matching what the real endpoints emit.

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type Location struct {
	IataCode string `json:"iataCode"`
	Name     string `json:"name"`
	SubType  string `json:"subType"`
}

type LocationsResponse struct {
	Data []Location `json:"data"`
}

type OffersResponse struct {
	Data []json.RawMessage `json:"data"`
}

// offerEnvelope is the subset of an offer the mock filters on.
type offerEnvelope struct {
	Itineraries []struct {
		Segments []struct {
			Departure struct {
				IataCode string `json:"iataCode"`
				At       string `json:"at"`
			} `json:"departure"`
			Arrival struct {
				IataCode string `json:"iataCode"`
			} `json:"arrival"`
		} `json:"segments"`
	} `json:"itineraries"`
}

var airports = map[string]Location{
	"paris":    {IataCode: "CDG", Name: "CHARLES DE GAULLE", SubType: "AIRPORT"},
	"tokyo":    {IataCode: "HND", Name: "HANEDA", SubType: "AIRPORT"},
	"london":   {IataCode: "LHR", Name: "HEATHROW", SubType: "AIRPORT"},
	"new york": {IataCode: "JFK", Name: "JOHN F KENNEDY INTL", SubType: "AIRPORT"},
	"jakarta":  {IataCode: "CGK", Name: "SOEKARNO-HATTA INTL", SubType: "AIRPORT"},
}

func TokenHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil || r.PostForm.Get("grant_type") != "client_credentials" {
		http.Error(w, `{"error":"unsupported_grant_type"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(TokenResponse{
		AccessToken: fmt.Sprintf("mock-token-%08x", rand.Uint32()),
		TokenType:   "Bearer",
		ExpiresIn:   1799,
	})
}

func requireBearer(w http.ResponseWriter, r *http.Request) bool {
	if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		http.Error(w, `{"errors":[{"code":38191,"title":"Invalid HTTP header"}]}`, http.StatusUnauthorized)
		return false
	}
	return true
}

func LocationsHandler(w http.ResponseWriter, r *http.Request) {
	if !requireBearer(w, r) {
		return
	}

	keyword := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("keyword")))

	resp := LocationsResponse{Data: []Location{}}
	if loc, ok := airports[keyword]; ok {
		resp.Data = append(resp.Data, loc)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func FlightOffersHandler(w http.ResponseWriter, r *http.Request) {
	if !requireBearer(w, r) {
		return
	}

	data, err := os.ReadFile(offersFile)
	if err != nil {
		http.Error(w, "Failed to read offer data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var all OffersResponse
	if err := json.Unmarshal(data, &all); err != nil {
		http.Error(w, "Failed to parse offer data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	origin := q.Get("originLocationCode")
	destination := q.Get("destinationLocationCode")
	date := q.Get("departureDate")
	max := 10
	if m, err := strconv.Atoi(q.Get("max")); err == nil && m > 0 {
		max = m
	}

	filtered := make([]json.RawMessage, 0)
	for _, raw := range all.Data {
		var env offerEnvelope
		if err := json.Unmarshal(raw, &env); err != nil {
			continue
		}
		if !matches(env, origin, destination, date) {
			continue
		}
		filtered = append(filtered, raw)
		if len(filtered) == max {
			break
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(OffersResponse{Data: filtered})
}

func matches(env offerEnvelope, origin, destination, date string) bool {
	if len(env.Itineraries) == 0 || len(env.Itineraries[0].Segments) == 0 {
		// Malformed fixtures flow through so clients can exercise
		// their skip path.
		return true
	}

	segments := env.Itineraries[0].Segments
	first := segments[0]
	last := segments[len(segments)-1]

	if origin != "" && !strings.EqualFold(first.Departure.IataCode, origin) {
		return false
	}
	if destination != "" && !strings.EqualFold(last.Arrival.IataCode, destination) {
		return false
	}
	if date != "" && !strings.HasPrefix(first.Departure.At, date) {
		return false
	}
	return true
}
