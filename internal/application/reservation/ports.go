package reservation

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vilamar/pousada-api/internal/application/dto"
	"github.com/vilamar/pousada-api/internal/domain/entity"
	"github.com/vilamar/pousada-api/internal/domain/repository"
)

// TxRunner ejecuta los efectos compuestos del ciclo de reservas dentro de
// una transacción: el check de solapamiento + insert al crear, y el par
// reserva-completada + cuarto-liberado al hacer checkout.
type TxRunner interface {
	RunReservation(ctx context.Context, fn func(
		resRepo repository.ReservationRepository,
		roomRepo repository.RoomRepository,
	) error) error

	RunCheckout(ctx context.Context, fn func(
		resRepo repository.ReservationRepository,
		roomRepo repository.RoomRepository,
		productSaleRepo repository.ProductSaleRepository,
		serviceSaleRepo repository.ServiceSaleRepository,
	) error) error
}

// ReceiptLine línea del comprobante de checkout.
type ReceiptLine struct {
	Description string
	Quantity    int
	Amount      decimal.Decimal
}

// ReceiptData todo lo que necesita el generador para armar el comprobante.
type ReceiptData struct {
	Reservation  *entity.Reservation
	Client       *entity.Client
	Room         *entity.Room
	ProductLines []ReceiptLine
	ServiceLines []ReceiptLine
	Charges      dto.StayChargesResponse
	GeneratedAt  time.Time
	PousadaName  string
}

// ReceiptGenerator puerto de generación del comprobante PDF de la estadía.
type ReceiptGenerator interface {
	GenerateReceiptPDF(ctx context.Context, data *ReceiptData) ([]byte, error)
}
