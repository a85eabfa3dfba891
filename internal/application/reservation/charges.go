package reservation

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vilamar/pousada-api/internal/application/dto"
	"github.com/vilamar/pousada-api/internal/domain"
	"github.com/vilamar/pousada-api/internal/domain/entity"
)

var oneHundred = decimal.NewFromInt(100)

// ComputeStayCharges calcula el desglose de cargos de una estadía al
// instante asOf, determinista para entradas fijas:
//
//	total = noches×tarifa + productos + servicios − descuento%
//
// Noches: ceil de la duración en días; una estadía del mismo día cobra una
// noche (el piso es 1, nunca 0). La tarifa es la vigente del cuarto al
// momento del cálculo, no un histórico. Los servicios se facturan todos,
// pendientes incluidos.
func ComputeStayCharges(
	res *entity.Reservation,
	room *entity.Room,
	productSales []*entity.ProductSale,
	serviceSales []*entity.ServiceSale,
	asOf time.Time,
	discountPercent decimal.Decimal,
) (*dto.StayChargesResponse, error) {
	if discountPercent.LessThan(decimal.Zero) || discountPercent.GreaterThan(oneHundred) {
		return nil, domain.ErrInvalidInput
	}

	nights := int(math.Ceil(asOf.Sub(res.CheckInDate).Hours() / 24))
	if nights < 1 {
		nights = 1
	}

	accommodation := room.DailyRate.Mul(decimal.NewFromInt(int64(nights)))

	productsTotal := decimal.Zero
	for _, s := range productSales {
		productsTotal = productsTotal.Add(s.TotalPrice)
	}

	servicesTotal := decimal.Zero
	for _, s := range serviceSales {
		servicesTotal = servicesTotal.Add(s.Price)
	}

	subtotal := accommodation.Add(productsTotal).Add(servicesTotal)
	discountAmount := subtotal.Mul(discountPercent).Div(oneHundred).Round(2)
	total := subtotal.Sub(discountAmount).Round(2)

	return &dto.StayChargesResponse{
		Nights:             nights,
		DailyRate:          room.DailyRate,
		AccommodationTotal: accommodation,
		ProductsTotal:      productsTotal,
		ServicesTotal:      servicesTotal,
		Subtotal:           subtotal,
		DiscountPercent:    discountPercent,
		DiscountAmount:     discountAmount,
		TotalAmount:        total,
	}, nil
}
