package reservation_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vilamar/pousada-api/internal/application/reservation"
	"github.com/vilamar/pousada-api/internal/domain"
	"github.com/vilamar/pousada-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func stayFixture(rate string, checkIn time.Time) (*entity.Reservation, *entity.Room) {
	res := &entity.Reservation{
		ID:          "res-1",
		RoomID:      "room-1",
		CheckInDate: checkIn,
		Status:      entity.ReservationStatusActive,
	}
	room := &entity.Room{
		ID:        "room-1",
		Number:    "101",
		DailyRate: dec(rate),
	}
	return res, room
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ComputeStayCharges
// ──────────────────────────────────────────────────────────────────────────────

// Vector de referencia: tarifa 100.00, check-in 01/01 14:00, cálculo al
// 03/01 11:00 (45 horas → 2 noches), consumos 25.50 + 40.00, descuento 10%.
func TestComputeStayCharges_DesgloseCompleto(t *testing.T) {
	checkIn := time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC)
	asOf := time.Date(2024, 1, 3, 11, 0, 0, 0, time.UTC)
	res, room := stayFixture("100.00", checkIn)

	productSales := []*entity.ProductSale{
		{ID: "ps-1", ReservationID: res.ID, TotalPrice: dec("15.50")},
		{ID: "ps-2", ReservationID: res.ID, TotalPrice: dec("10.00")},
	}
	serviceSales := []*entity.ServiceSale{
		{ID: "ss-1", ReservationID: res.ID, Price: dec("40.00"), Status: entity.ServiceSaleStatusPending},
	}

	charges, err := reservation.ComputeStayCharges(res, room, productSales, serviceSales, asOf, dec("10"))
	require.NoError(t, err)

	assert.Equal(t, 2, charges.Nights, "45 horas deben redondear hacia arriba a 2 noches")
	assert.True(t, charges.AccommodationTotal.Equal(dec("200.00")), "hospedaje: 2 × 100.00")
	assert.True(t, charges.ProductsTotal.Equal(dec("25.50")))
	assert.True(t, charges.ServicesTotal.Equal(dec("40.00")), "los servicios pendientes también se facturan")
	assert.True(t, charges.Subtotal.Equal(dec("265.50")))
	assert.True(t, charges.DiscountAmount.Equal(dec("26.55")), "descuento del 10 por ciento sobre 265.50")
	assert.True(t, charges.TotalAmount.Equal(dec("238.95")))
}

// Una estadía del mismo día cobra una noche: el piso es 1, nunca 0.
func TestComputeStayCharges_MismoDiaCobraUnaNoche(t *testing.T) {
	checkIn := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)
	asOf := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	res, room := stayFixture("80.00", checkIn)

	charges, err := reservation.ComputeStayCharges(res, room, nil, nil, asOf, decimal.Zero)
	require.NoError(t, err)

	assert.Equal(t, 1, charges.Nights)
	assert.True(t, charges.TotalAmount.Equal(dec("80.00")))
}

// Una fracción de día adicional suma una noche entera (ceil).
func TestComputeStayCharges_FraccionDeDiaSumaNoche(t *testing.T) {
	checkIn := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)
	asOf := checkIn.Add(24*time.Hour + time.Minute)
	res, room := stayFixture("100.00", checkIn)

	charges, err := reservation.ComputeStayCharges(res, room, nil, nil, asOf, decimal.Zero)
	require.NoError(t, err)

	assert.Equal(t, 2, charges.Nights, "24h01m debe cobrar 2 noches")
}

// Sin descuento el total es el subtotal.
func TestComputeStayCharges_SinDescuento(t *testing.T) {
	checkIn := time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC)
	asOf := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	res, room := stayFixture("120.00", checkIn)

	charges, err := reservation.ComputeStayCharges(res, room, nil, nil, asOf, decimal.Zero)
	require.NoError(t, err)

	assert.True(t, charges.DiscountAmount.Equal(decimal.Zero))
	assert.True(t, charges.TotalAmount.Equal(charges.Subtotal.Round(2)))
}

// Descuento 100% deja el total en cero.
func TestComputeStayCharges_DescuentoTotal(t *testing.T) {
	checkIn := time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC)
	asOf := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	res, room := stayFixture("120.00", checkIn)

	charges, err := reservation.ComputeStayCharges(res, room, nil, nil, asOf, dec("100"))
	require.NoError(t, err)

	assert.True(t, charges.TotalAmount.IsZero())
}

// Descuento fuera de [0, 100] se rechaza.
func TestComputeStayCharges_DescuentoInvalido(t *testing.T) {
	checkIn := time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC)
	asOf := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	res, room := stayFixture("120.00", checkIn)

	_, err := reservation.ComputeStayCharges(res, room, nil, nil, asOf, dec("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = reservation.ComputeStayCharges(res, room, nil, nil, asOf, dec("100.01"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
