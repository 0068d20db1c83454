package booking

import (
	"fmt"
	"strconv"

	"airbook/internal/flight"
	"airbook/pkg/idgen"
	"airbook/pkg/logger"
)

// Confirmation is the record rendered after a successful booking. No
// identity verification happens here; passenger details are stored as
// submitted. TotalPrice is empty when it cannot be computed.
type Confirmation struct {
	Reference      string
	PassengerName  string
	PassportNumber string
	Flights        []flight.Offer
	TotalPrice     string
}

// Service issues booking confirmations.
type Service struct {
	idgen  idgen.Generator
	logger logger.Client
}

func NewService(gen idgen.Generator, log logger.Client) *Service {
	return &Service{idgen: gen, logger: log}
}

// Confirm books one or two legs for a passenger. For a round trip the
// total is the sum of both legs' prices, computed only when both parse.
func (s *Service) Confirm(name, passport string, offers ...flight.Offer) Confirmation {
	conf := Confirmation{
		Reference:      s.idgen.Reference(),
		PassengerName:  name,
		PassportNumber: passport,
		Flights:        offers,
	}

	switch len(offers) {
	case 1:
		conf.TotalPrice = offers[0].Price
	case 2:
		total, err := SumPrices(offers[0].Price, offers[1].Price)
		if err != nil {
			s.logger.Warn("total price unavailable",
				logger.Field{Key: "reference", Value: conf.Reference},
				logger.Field{Key: "err", Value: err})
			break
		}
		conf.TotalPrice = total
	}

	s.logger.Info("booking confirmed",
		logger.Field{Key: "reference", Value: conf.Reference},
		logger.Field{Key: "legs", Value: len(offers)})
	return conf
}

// SumPrices adds two decimal price strings, rendering two decimals.
func SumPrices(a, b string) (string, error) {
	x, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return "", fmt.Errorf("parse price %q: %w", a, err)
	}
	y, err := strconv.ParseFloat(b, 64)
	if err != nil {
		return "", fmt.Errorf("parse price %q: %w", b, err)
	}
	return strconv.FormatFloat(x+y, 'f', 2, 64), nil
}
