package booking

import (
	"testing"

	"github.com/stretchr/testify/require"

	"airbook/internal/flight"
	"airbook/pkg/idgen"
	"airbook/pkg/logger"
)

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func newTestService(t *testing.T) *Service {
	t.Helper()
	gen, err := idgen.NewSnowflakeGenerator(1)
	require.NoError(t, err)
	return NewService(gen, logger.NewWithWriter("production", nopWriter{}))
}

func TestSumPrices(t *testing.T) {
	total, err := SumPrices("120.00", "95.50")
	require.NoError(t, err)
	require.Equal(t, "215.50", total)
}

func TestSumPrices_Malformed(t *testing.T) {
	_, err := SumPrices("120.00", "ninety")
	require.Error(t, err)
}

func TestConfirm_OneWay(t *testing.T) {
	svc := newTestService(t)

	conf := svc.Confirm("Ada Lovelace", "P1234567", flight.Offer{ID: "1", Price: "120.00"})

	require.NotEmpty(t, conf.Reference)
	require.Equal(t, "Ada Lovelace", conf.PassengerName)
	require.Equal(t, "P1234567", conf.PassportNumber)
	require.Len(t, conf.Flights, 1)
	require.Equal(t, "120.00", conf.TotalPrice)
}

func TestConfirm_RoundTripTotal(t *testing.T) {
	svc := newTestService(t)

	conf := svc.Confirm("Ada Lovelace", "P1234567",
		flight.Offer{ID: "1", Price: "120.00"},
		flight.Offer{ID: "2", Price: "95.50"})

	require.Equal(t, "215.50", conf.TotalPrice)
}

func TestConfirm_TotalAbsentWhenPriceMalformed(t *testing.T) {
	svc := newTestService(t)

	conf := svc.Confirm("Ada Lovelace", "P1234567",
		flight.Offer{ID: "1", Price: "120.00"},
		flight.Offer{ID: "2", Price: "n/a"})

	require.Empty(t, conf.TotalPrice)
	require.Len(t, conf.Flights, 2)
}

func TestConfirm_UniqueReferences(t *testing.T) {
	svc := newTestService(t)

	a := svc.Confirm("A", "P1", flight.Offer{ID: "1", Price: "10.00"})
	b := svc.Confirm("B", "P2", flight.Offer{ID: "1", Price: "10.00"})
	require.NotEqual(t, a.Reference, b.Reference)
}
