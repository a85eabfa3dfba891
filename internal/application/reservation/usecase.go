package reservation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vilamar/pousada-api/internal/application/dto"
	"github.com/vilamar/pousada-api/internal/domain"
	"github.com/vilamar/pousada-api/internal/domain/entity"
	"github.com/vilamar/pousada-api/internal/domain/repository"
)

// UseCase implementa el ciclo de vida de la reserva: creación con
// verificación de solapamiento, cálculo de cargos, checkout y cancelación.
//
// Los efectos compuestos (check+insert; reserva completada + cuarto
// liberado) corren dentro de una transacción vía TxRunner, con bloqueo de
// la fila del cuarto (SELECT FOR UPDATE) para cerrar la ventana de carrera
// entre dos intentos concurrentes sobre el mismo cuarto.
type UseCase struct {
	txRunner        TxRunner
	resRepo         repository.ReservationRepository
	roomRepo        repository.RoomRepository
	productSaleRepo repository.ProductSaleRepository
	serviceSaleRepo repository.ServiceSaleRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	resRepo repository.ReservationRepository,
	roomRepo repository.RoomRepository,
	productSaleRepo repository.ProductSaleRepository,
	serviceSaleRepo repository.ServiceSaleRepository,
) *UseCase {
	return &UseCase{
		txRunner:        txRunner,
		resRepo:         resRepo,
		roomRepo:        roomRepo,
		productSaleRepo: productSaleRepo,
		serviceSaleRepo: serviceSaleRepo,
	}
}

// Create crea una reserva en estado active. Dentro de la transacción:
// bloquea el cuarto, verifica que ninguna reserva activa del cuarto se
// solape con [checkIn, expectedCheckOut) y recién entonces inserta. Si el
// check-in es hoy o antes (comparación solo de fecha), marca el cuarto como
// ocupado en la misma transacción; un check-in futuro deja el estado del
// cuarto intacto para no tapar la ocupación actual en el panel.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateReservationRequest) (*dto.ReservationResponse, error) {
	if in.ClientID == "" || in.RoomID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.CheckInDate.Before(in.ExpectedCheckOutDate) {
		return nil, domain.ErrInvalidInput
	}
	if in.NumberOfGuests < 1 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	res := &entity.Reservation{
		ID:                   uuid.New().String(),
		ClientID:             in.ClientID,
		RoomID:               in.RoomID,
		CheckInDate:          in.CheckInDate,
		ExpectedCheckOutDate: in.ExpectedCheckOutDate,
		NumberOfGuests:       in.NumberOfGuests,
		PaymentMethod:        in.PaymentMethod,
		Status:               entity.ReservationStatusActive,
		TotalAmount:          decimal.Zero,
		Notes:                in.Notes,
		CreatedAt:            now,
	}

	err := uc.txRunner.RunReservation(ctx, func(
		resRepo repository.ReservationRepository,
		roomRepo repository.RoomRepository,
	) error {
		room, err := roomRepo.GetForUpdate(in.RoomID)
		if err != nil {
			return err
		}
		if room == nil {
			return domain.ErrNotFound
		}

		active, err := resRepo.ListActiveByRoom(in.RoomID)
		if err != nil {
			return err
		}
		for _, existing := range active {
			if existing.OverlapsWindow(in.CheckInDate, in.ExpectedCheckOutDate) {
				return domain.ErrRoomUnavailable
			}
		}

		if err := resRepo.Create(res); err != nil {
			return err
		}

		if !dateOnly(in.CheckInDate).After(dateOnly(now)) {
			return roomRepo.UpdateStatus(room.ID, entity.RoomStatusOccupied)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toReservationResponse(res), nil
}

// Charges calcula el desglose de cargos sin tocar la reserva (vista previa
// del checkout).
func (uc *UseCase) Charges(ctx context.Context, id string, asOf time.Time, discountPercent decimal.Decimal) (*dto.StayChargesResponse, error) {
	res, err := uc.resRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, domain.ErrNotFound
	}
	room, err := uc.roomRepo.GetByID(res.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}
	productSales, err := uc.productSaleRepo.ListByReservation(id)
	if err != nil {
		return nil, err
	}
	serviceSales, err := uc.serviceSaleRepo.ListByReservation(id)
	if err != nil {
		return nil, err
	}
	return ComputeStayCharges(res, room, productSales, serviceSales, asOf, discountPercent)
}

// Checkout finaliza la estadía. El total se recalcula en el servidor dentro
// de la misma transacción (no se confía en un total enviado por el cliente)
// y los dos efectos (reserva completada y cuarto disponible) se aplican
// como unidad.
func (uc *UseCase) Checkout(ctx context.Context, id string, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if in.PaymentMethod == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var out dto.CheckoutResponse

	err := uc.txRunner.RunCheckout(ctx, func(
		resRepo repository.ReservationRepository,
		roomRepo repository.RoomRepository,
		productSaleRepo repository.ProductSaleRepository,
		serviceSaleRepo repository.ServiceSaleRepository,
	) error {
		res, err := resRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if res == nil {
			return domain.ErrNotFound
		}
		if !res.IsActive() {
			return domain.ErrInvalidReservationState
		}

		room, err := roomRepo.GetForUpdate(res.RoomID)
		if err != nil {
			return err
		}
		if room == nil {
			return domain.ErrNotFound
		}

		productSales, err := productSaleRepo.ListByReservation(id)
		if err != nil {
			return err
		}
		serviceSales, err := serviceSaleRepo.ListByReservation(id)
		if err != nil {
			return err
		}

		charges, err := ComputeStayCharges(res, room, productSales, serviceSales, now, in.DiscountPercent)
		if err != nil {
			return err
		}

		res.Status = entity.ReservationStatusCompleted
		res.ActualCheckOutDate = &now
		res.PaymentMethod = in.PaymentMethod
		res.TotalAmount = charges.TotalAmount
		if err := resRepo.Update(res); err != nil {
			return err
		}
		if err := roomRepo.UpdateStatus(room.ID, entity.RoomStatusAvailable); err != nil {
			return err
		}

		out = dto.CheckoutResponse{
			Reservation: *toReservationResponse(res),
			Charges:     *charges,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Cancel pasa una reserva activa a cancelled. El estado del cuarto no se
// toca: la operación original nunca definió ese efecto.
func (uc *UseCase) Cancel(ctx context.Context, id string) (*dto.ReservationResponse, error) {
	var out *dto.ReservationResponse
	err := uc.txRunner.RunReservation(ctx, func(
		resRepo repository.ReservationRepository,
		_ repository.RoomRepository,
	) error {
		res, err := resRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if res == nil {
			return domain.ErrNotFound
		}
		if !res.IsActive() {
			return domain.ErrInvalidReservationState
		}
		res.Status = entity.ReservationStatusCancelled
		if err := resRepo.Update(res); err != nil {
			return err
		}
		out = toReservationResponse(res)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update aplica un update parcial genérico (PUT del cliente web, campos de
// checkout incluidos). No corre reglas de negocio; las transiciones con
// efectos van por Checkout/Cancel.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateReservationRequest) (*dto.ReservationResponse, error) {
	res, err := uc.resRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, domain.ErrNotFound
	}
	if in.ClientID != nil {
		res.ClientID = *in.ClientID
	}
	if in.RoomID != nil {
		res.RoomID = *in.RoomID
	}
	if in.CheckInDate != nil {
		res.CheckInDate = *in.CheckInDate
	}
	if in.ExpectedCheckOutDate != nil {
		res.ExpectedCheckOutDate = *in.ExpectedCheckOutDate
	}
	if !res.CheckInDate.Before(res.ExpectedCheckOutDate) {
		return nil, domain.ErrInvalidInput
	}
	if in.ActualCheckOutDate != nil {
		res.ActualCheckOutDate = in.ActualCheckOutDate
	}
	if in.NumberOfGuests != nil {
		if *in.NumberOfGuests < 1 {
			return nil, domain.ErrInvalidInput
		}
		res.NumberOfGuests = *in.NumberOfGuests
	}
	if in.PaymentMethod != nil {
		res.PaymentMethod = *in.PaymentMethod
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.ReservationStatusActive, entity.ReservationStatusCompleted, entity.ReservationStatusCancelled:
			res.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.TotalAmount != nil {
		res.TotalAmount = *in.TotalAmount
	}
	if in.Notes != nil {
		res.Notes = *in.Notes
	}
	if err := uc.resRepo.Update(res); err != nil {
		return nil, err
	}
	return toReservationResponse(res), nil
}

// GetByID obtiene una reserva por ID.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.ReservationResponse, error) {
	res, err := uc.resRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	return toReservationResponse(res), nil
}

// List lista todas las reservas.
func (uc *UseCase) List(ctx context.Context) ([]dto.ReservationResponse, error) {
	list, err := uc.resRepo.List()
	if err != nil {
		return nil, err
	}
	return toReservationResponses(list), nil
}

// ListActive lista las reservas en estado active.
func (uc *UseCase) ListActive(ctx context.Context) ([]dto.ReservationResponse, error) {
	list, err := uc.resRepo.ListActive()
	if err != nil {
		return nil, err
	}
	return toReservationResponses(list), nil
}

// dateOnly trunca el instante a su fecha en la zona local del servidor.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func toReservationResponse(r *entity.Reservation) *dto.ReservationResponse {
	if r == nil {
		return nil
	}
	return &dto.ReservationResponse{
		ID:                   r.ID,
		ClientID:             r.ClientID,
		RoomID:               r.RoomID,
		CheckInDate:          r.CheckInDate,
		ExpectedCheckOutDate: r.ExpectedCheckOutDate,
		ActualCheckOutDate:   r.ActualCheckOutDate,
		NumberOfGuests:       r.NumberOfGuests,
		PaymentMethod:        r.PaymentMethod,
		Status:               r.Status,
		TotalAmount:          r.TotalAmount,
		Notes:                r.Notes,
		CreatedAt:            r.CreatedAt,
	}
}

func toReservationResponses(list []*entity.Reservation) []dto.ReservationResponse {
	items := make([]dto.ReservationResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReservationResponse(r))
	}
	return items
}
