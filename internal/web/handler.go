package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"airbook/internal/booking"
	"airbook/internal/flight"
	"airbook/internal/session"
	"airbook/pkg/logger"
)

// Searcher is the slice of the flight service the handlers depend on.
type Searcher interface {
	Search(ctx context.Context, originCity, destCity, date string) ([]flight.Offer, error)
	SearchRoute(ctx context.Context, originCode, destCode, date string) ([]flight.Offer, error)
}

// Booker issues booking confirmations.
type Booker interface {
	Confirm(name, passport string, offers ...flight.Offer) booking.Confirmation
}

type Handler struct {
	search  Searcher
	booking Booker
	logger  logger.Client
}

func NewHandler(search Searcher, book Booker, log logger.Client) *Handler {
	return &Handler{search: search, booking: book, logger: log}
}

func (h *Handler) RegisterRoutes(router *gin.Engine, sessions *session.Manager) {
	router.Use(sessions.Middleware())

	router.GET("/", h.SearchForm)
	router.GET("/results", h.Results)
	router.GET("/results/return", h.ReturnResults)
	router.GET("/booking/:id", h.BookingForm)
	router.POST("/booking/:id", h.ConfirmBooking)
	router.GET("/booking/:id/return/:ret", h.RoundTripBookingForm)
	router.POST("/booking/:id/return/:ret", h.ConfirmRoundTrip)
}

func (h *Handler) SearchForm(c *gin.Context) {
	c.HTML(http.StatusOK, "search_flight.html", gin.H{})
}

// Results runs the departure-leg search and stores parameters plus the
// result leg in the session.
func (h *Handler) Results(c *gin.Context) {
	sess := session.FromContext(c)

	originCity := c.Query("origin")
	destCity := c.Query("destination")
	departureDate := c.Query("departure_date")
	returnDate := c.Query("return_date")

	params := session.Params{
		OriginCity:      originCity,
		DestinationCity: destCity,
		DepartureDate:   departureDate,
		ReturnDate:      returnDate,
	}

	offers, err := h.search.Search(c.Request.Context(), originCity, destCity, departureDate)
	if err != nil {
		h.logger.Info("search yielded no offers",
			logger.Field{Key: "origin", Value: originCity},
			logger.Field{Key: "destination", Value: destCity},
			logger.Field{Key: "err", Value: err})
	}
	if len(offers) > 0 {
		params.ResolvedOrigin = offers[0].Origin
		params.ResolvedDestination = offers[0].Destination
	}

	sess.SetParams(params)
	sess.SetLeg(session.LegDeparture, offers)
	sess.SetLeg(session.LegReturn, nil)

	c.HTML(http.StatusOK, "flight_results.html", gin.H{
		"Origin":      originCity,
		"Destination": destCity,
		"Date":        departureDate,
		"RoundTrip":   returnDate != "",
		"Offers":      offers,
		"Message":     searchErrorMessage(err),
	})
}

// ReturnResults runs the return-leg search for the route reversed, keyed
// off the parameters the departure search stored in the session. The
// chosen departure offer id rides along as a query parameter.
func (h *Handler) ReturnResults(c *gin.Context) {
	sess := session.FromContext(c)
	params := sess.Params()

	if params.ReturnDate == "" || params.OriginCity == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	departureID := c.Query("departure")

	// The departure search stored the resolved airport codes, so the
	// return leg searches the reversed route without resolving again.
	var offers []flight.Offer
	var err error
	if params.ResolvedOrigin != "" && params.ResolvedDestination != "" {
		offers, err = h.search.SearchRoute(c.Request.Context(), params.ResolvedDestination, params.ResolvedOrigin, params.ReturnDate)
	} else {
		offers, err = h.search.Search(c.Request.Context(), params.DestinationCity, params.OriginCity, params.ReturnDate)
	}
	if err != nil {
		h.logger.Info("return search yielded no offers",
			logger.Field{Key: "origin", Value: params.DestinationCity},
			logger.Field{Key: "destination", Value: params.OriginCity},
			logger.Field{Key: "err", Value: err})
	}

	sess.SetLeg(session.LegReturn, offers)

	c.HTML(http.StatusOK, "return_results.html", gin.H{
		"Origin":      params.DestinationCity,
		"Destination": params.OriginCity,
		"Date":        params.ReturnDate,
		"DepartureID": departureID,
		"Offers":      offers,
		"Message":     searchErrorMessage(err),
	})
}

// BookingForm shows the one-way booking form. When the session's search
// asked for a return date, the flow is redirected to the return-leg
// search instead so round-trip intent never degrades to one-way.
func (h *Handler) BookingForm(c *gin.Context) {
	sess := session.FromContext(c)
	id := c.Param("id")

	if sess.Params().ReturnDate != "" {
		c.Redirect(http.StatusFound, "/results/return?departure="+id)
		return
	}

	offer := sess.FindOffer(id)
	if offer == nil {
		c.HTML(http.StatusNotFound, "flight_booking.html", gin.H{"NotFound": true})
		return
	}

	c.HTML(http.StatusOK, "flight_booking.html", gin.H{"Offer": offer})
}

func (h *Handler) ConfirmBooking(c *gin.Context) {
	sess := session.FromContext(c)
	id := c.Param("id")

	// Same guard as BookingForm: a stale one-way form submitted from a
	// round-trip session must not confirm a single leg.
	if sess.Params().ReturnDate != "" {
		c.Redirect(http.StatusFound, "/results/return?departure="+id)
		return
	}

	offer := sess.FindOffer(id)
	if offer == nil {
		c.HTML(http.StatusNotFound, "flight_booking.html", gin.H{"NotFound": true})
		return
	}

	conf := h.booking.Confirm(c.PostForm("name"), c.PostForm("passport"), *offer)
	c.HTML(http.StatusOK, "booking_success.html", gin.H{"Confirmation": conf})
}

func (h *Handler) RoundTripBookingForm(c *gin.Context) {
	sess := session.FromContext(c)

	outbound := sess.FindOffer(c.Param("id"))
	inbound := sess.FindOffer(c.Param("ret"))

	data := gin.H{
		"Outbound": outbound,
		"Inbound":  inbound,
		"NotFound": outbound == nil || inbound == nil,
	}
	status := http.StatusOK
	if outbound == nil || inbound == nil {
		status = http.StatusNotFound
	} else if total, err := booking.SumPrices(outbound.Price, inbound.Price); err == nil {
		data["TotalPrice"] = total
	}

	c.HTML(status, "roundtrip_booking.html", data)
}

func (h *Handler) ConfirmRoundTrip(c *gin.Context) {
	sess := session.FromContext(c)

	outbound := sess.FindOffer(c.Param("id"))
	inbound := sess.FindOffer(c.Param("ret"))
	if outbound == nil || inbound == nil {
		c.HTML(http.StatusNotFound, "roundtrip_booking.html", gin.H{"NotFound": true})
		return
	}

	conf := h.booking.Confirm(c.PostForm("name"), c.PostForm("passport"), *outbound, *inbound)
	c.HTML(http.StatusOK, "booking_success.html", gin.H{"Confirmation": conf})
}

// searchErrorMessage maps the three search failure classes to the
// distinct texts the results pages show.
func searchErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, flight.ErrCityNotFound):
		return "City not recognized. Check the spelling and try again."
	case errors.Is(err, flight.ErrAuthFailed):
		return "Authentication with the flight provider failed. Please try again later."
	case errors.Is(err, flight.ErrNoFlights):
		return "No flights found for these criteria."
	default:
		return "Something went wrong. Please try again later."
	}
}
