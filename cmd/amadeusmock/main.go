// Command amadeusmock is a local stand-in for the Amadeus self-service
// API, serving canned flight offers so the app can run offline.
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
)

func main() {
	port := "8091"
	if len(os.Args) > 1 {
		port = os.Args[1]
	}

	http.HandleFunc("/v1/security/oauth2/token", TokenHandler)
	http.HandleFunc("/v1/reference-data/locations", LocationsHandler)
	http.HandleFunc("/v2/shopping/flight-offers", FlightOffersHandler)

	addr := fmt.Sprintf(":%s", port)
	fmt.Printf("Amadeus mock server running on port %s...\n", port)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal(err)
	}
}
