package reservation_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vilamar/pousada-api/internal/application/dto"
	"github.com/vilamar/pousada-api/internal/application/reservation"
	"github.com/vilamar/pousada-api/internal/domain"
	"github.com/vilamar/pousada-api/internal/domain/entity"
	"github.com/vilamar/pousada-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeReservationRepo struct {
	items map[string]*entity.Reservation
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{items: make(map[string]*entity.Reservation)}
}

func (f *fakeReservationRepo) Create(r *entity.Reservation) error {
	f.items[r.ID] = r
	return nil
}

func (f *fakeReservationRepo) GetByID(id string) (*entity.Reservation, error) {
	return f.items[id], nil
}

func (f *fakeReservationRepo) GetForUpdate(id string) (*entity.Reservation, error) {
	return f.items[id], nil
}

func (f *fakeReservationRepo) List() ([]*entity.Reservation, error) {
	out := make([]*entity.Reservation, 0, len(f.items))
	for _, r := range f.items {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReservationRepo) ListActive() ([]*entity.Reservation, error) {
	var out []*entity.Reservation
	for _, r := range f.items {
		if r.IsActive() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) ListActiveByRoom(roomID string) ([]*entity.Reservation, error) {
	var out []*entity.Reservation
	for _, r := range f.items {
		if r.RoomID == roomID && r.IsActive() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) Update(r *entity.Reservation) error {
	if _, ok := f.items[r.ID]; !ok {
		return domain.ErrNotFound
	}
	f.items[r.ID] = r
	return nil
}

type fakeRoomRepo struct {
	items map[string]*entity.Room
	// statusUpdates registra cada UpdateStatus aplicado, en orden.
	statusUpdates []string
}

func newFakeRoomRepo(rooms ...*entity.Room) *fakeRoomRepo {
	f := &fakeRoomRepo{items: make(map[string]*entity.Room)}
	for _, r := range rooms {
		f.items[r.ID] = r
	}
	return f
}

func (f *fakeRoomRepo) Create(r *entity.Room) error { f.items[r.ID] = r; return nil }

func (f *fakeRoomRepo) GetByID(id string) (*entity.Room, error) { return f.items[id], nil }

func (f *fakeRoomRepo) GetForUpdate(id string) (*entity.Room, error) { return f.items[id], nil }

func (f *fakeRoomRepo) List() ([]*entity.Room, error) {
	out := make([]*entity.Room, 0, len(f.items))
	for _, r := range f.items {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRoomRepo) ListAvailable() ([]*entity.Room, error) {
	var out []*entity.Room
	for _, r := range f.items {
		if r.Status == entity.RoomStatusAvailable {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) Update(r *entity.Room) error { f.items[r.ID] = r; return nil }

func (f *fakeRoomRepo) UpdateStatus(id, status string) error {
	room, ok := f.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	room.Status = status
	f.statusUpdates = append(f.statusUpdates, id+":"+status)
	return nil
}

func (f *fakeRoomRepo) Delete(id string) error { delete(f.items, id); return nil }

type fakeProductSaleRepo struct {
	sales []*entity.ProductSale
}

func (f *fakeProductSaleRepo) Create(s *entity.ProductSale) error {
	f.sales = append(f.sales, s)
	return nil
}

func (f *fakeProductSaleRepo) GetByID(id string) (*entity.ProductSale, error) {
	for _, s := range f.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeProductSaleRepo) List() ([]*entity.ProductSale, error) { return f.sales, nil }

func (f *fakeProductSaleRepo) ListByReservation(reservationID string) ([]*entity.ProductSale, error) {
	var out []*entity.ProductSale
	for _, s := range f.sales {
		if s.ReservationID == reservationID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeProductSaleRepo) Delete(id string) error {
	for i, s := range f.sales {
		if s.ID == id {
			f.sales = append(f.sales[:i], f.sales[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeServiceSaleRepo struct {
	sales []*entity.ServiceSale
}

func (f *fakeServiceSaleRepo) Create(s *entity.ServiceSale) error {
	f.sales = append(f.sales, s)
	return nil
}

func (f *fakeServiceSaleRepo) List() ([]*entity.ServiceSale, error) { return f.sales, nil }

func (f *fakeServiceSaleRepo) ListByReservation(reservationID string) ([]*entity.ServiceSale, error) {
	var out []*entity.ServiceSale
	for _, s := range f.sales {
		if s.ReservationID == reservationID {
			out = append(out, s)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta el closure directamente contra los fakes, sin
// transacción real.
type fakeTxRunner struct {
	resRepo         *fakeReservationRepo
	roomRepo        *fakeRoomRepo
	productSaleRepo *fakeProductSaleRepo
	serviceSaleRepo *fakeServiceSaleRepo
}

func (f *fakeTxRunner) RunReservation(ctx context.Context, fn func(
	resRepo repository.ReservationRepository,
	roomRepo repository.RoomRepository,
) error) error {
	return fn(f.resRepo, f.roomRepo)
}

func (f *fakeTxRunner) RunCheckout(ctx context.Context, fn func(
	resRepo repository.ReservationRepository,
	roomRepo repository.RoomRepository,
	productSaleRepo repository.ProductSaleRepository,
	serviceSaleRepo repository.ServiceSaleRepository,
) error) error {
	return fn(f.resRepo, f.roomRepo, f.productSaleRepo, f.serviceSaleRepo)
}

var _ reservation.TxRunner = (*fakeTxRunner)(nil)

// newTestUseCase arma el caso de uso con todos los fakes compartidos.
func newTestUseCase(rooms ...*entity.Room) (*reservation.UseCase, *fakeReservationRepo, *fakeRoomRepo, *fakeProductSaleRepo, *fakeServiceSaleRepo) {
	resRepo := newFakeReservationRepo()
	roomRepo := newFakeRoomRepo(rooms...)
	psRepo := &fakeProductSaleRepo{}
	ssRepo := &fakeServiceSaleRepo{}
	tx := &fakeTxRunner{resRepo: resRepo, roomRepo: roomRepo, productSaleRepo: psRepo, serviceSaleRepo: ssRepo}
	uc := reservation.NewUseCase(tx, resRepo, roomRepo, psRepo, ssRepo)
	return uc, resRepo, roomRepo, psRepo, ssRepo
}

func availableRoom(id, rate string) *entity.Room {
	return &entity.Room{
		ID:        id,
		Number:    "101",
		Type:      entity.RoomTypeDouble,
		Capacity:  2,
		DailyRate: dec(rate),
		Status:    entity.RoomStatusAvailable,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_SinSolapamiento_CreaReservaActiva(t *testing.T) {
	uc, resRepo, _, _, _ := newTestUseCase(availableRoom("room-1", "100.00"))

	checkIn := time.Now().AddDate(0, 0, 5)
	out, err := uc.Create(context.Background(), dto.CreateReservationRequest{
		ClientID:             "client-1",
		RoomID:               "room-1",
		CheckInDate:          checkIn,
		ExpectedCheckOutDate: checkIn.AddDate(0, 0, 2),
		NumberOfGuests:       2,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, entity.ReservationStatusActive, out.Status)
	assert.True(t, out.TotalAmount.IsZero(), "el total queda en cero hasta el checkout")
	assert.Len(t, resRepo.items, 1)
}

func TestCreate_CheckInHoy_MarcaCuartoOcupado(t *testing.T) {
	uc, _, roomRepo, _, _ := newTestUseCase(availableRoom("room-1", "100.00"))

	now := time.Now()
	_, err := uc.Create(context.Background(), dto.CreateReservationRequest{
		ClientID:             "client-1",
		RoomID:               "room-1",
		CheckInDate:          now,
		ExpectedCheckOutDate: now.AddDate(0, 0, 3),
		NumberOfGuests:       1,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"room-1:occupied"}, roomRepo.statusUpdates,
		"un check-in de hoy debe ocupar el cuarto de inmediato")
}

func TestCreate_CheckInFuturo_NoTocaElCuarto(t *testing.T) {
	uc, _, roomRepo, _, _ := newTestUseCase(availableRoom("room-1", "100.00"))

	checkIn := time.Now().AddDate(0, 0, 10)
	_, err := uc.Create(context.Background(), dto.CreateReservationRequest{
		ClientID:             "client-1",
		RoomID:               "room-1",
		CheckInDate:          checkIn,
		ExpectedCheckOutDate: checkIn.AddDate(0, 0, 2),
		NumberOfGuests:       1,
	})
	require.NoError(t, err)

	assert.Empty(t, roomRepo.statusUpdates,
		"una reserva futura no debe tapar la ocupación actual del cuarto")
}

func TestCreate_VentanaSolapada_RetornaRoomUnavailable(t *testing.T) {
	uc, resRepo, _, _, _ := newTestUseCase(availableRoom("room-1", "100.00"))

	base := time.Now().AddDate(0, 0, 5)
	existing := &entity.Reservation{
		ID:                   "res-existente",
		ClientID:             "client-1",
		RoomID:               "room-1",
		CheckInDate:          base,
		ExpectedCheckOutDate: base.AddDate(0, 0, 3),
		NumberOfGuests:       2,
		Status:               entity.ReservationStatusActive,
	}
	require.NoError(t, resRepo.Create(existing))

	_, err := uc.Create(context.Background(), dto.CreateReservationRequest{
		ClientID:             "client-2",
		RoomID:               "room-1",
		CheckInDate:          base.AddDate(0, 0, 1),
		ExpectedCheckOutDate: base.AddDate(0, 0, 4),
		NumberOfGuests:       1,
	})
	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
	assert.Len(t, resRepo.items, 1, "la reserva solapada no debe insertarse")
}

// Ventanas adyacentes no solapan: los intervalos son semiabiertos, el día de
// salida de una reserva puede ser el día de entrada de la siguiente.
func TestCreate_VentanasAdyacentes_NoSolapan(t *testing.T) {
	uc, resRepo, _, _, _ := newTestUseCase(availableRoom("room-1", "100.00"))

	base := time.Now().AddDate(0, 0, 5)
	existing := &entity.Reservation{
		ID:                   "res-existente",
		RoomID:               "room-1",
		CheckInDate:          base,
		ExpectedCheckOutDate: base.AddDate(0, 0, 2),
		Status:               entity.ReservationStatusActive,
	}
	require.NoError(t, resRepo.Create(existing))

	_, err := uc.Create(context.Background(), dto.CreateReservationRequest{
		ClientID:             "client-2",
		RoomID:               "room-1",
		CheckInDate:          base.AddDate(0, 0, 2),
		ExpectedCheckOutDate: base.AddDate(0, 0, 4),
		NumberOfGuests:       1,
	})
	assert.NoError(t, err)
	assert.Len(t, resRepo.items, 2)
}

// Una reserva cancelada del mismo cuarto no bloquea la ventana.
func TestCreate_ReservaCanceladaNoBloquea(t *testing.T) {
	uc, resRepo, _, _, _ := newTestUseCase(availableRoom("room-1", "100.00"))

	base := time.Now().AddDate(0, 0, 5)
	cancelled := &entity.Reservation{
		ID:                   "res-cancelada",
		RoomID:               "room-1",
		CheckInDate:          base,
		ExpectedCheckOutDate: base.AddDate(0, 0, 3),
		Status:               entity.ReservationStatusCancelled,
	}
	require.NoError(t, resRepo.Create(cancelled))

	_, err := uc.Create(context.Background(), dto.CreateReservationRequest{
		ClientID:             "client-2",
		RoomID:               "room-1",
		CheckInDate:          base,
		ExpectedCheckOutDate: base.AddDate(0, 0, 3),
		NumberOfGuests:       1,
	})
	assert.NoError(t, err)
}

func TestCreate_CuartoInexistente_RetornaNotFound(t *testing.T) {
	uc, _, _, _, _ := newTestUseCase()

	checkIn := time.Now().AddDate(0, 0, 1)
	_, err := uc.Create(context.Background(), dto.CreateReservationRequest{
		ClientID:             "client-1",
		RoomID:               "room-fantasma",
		CheckInDate:          checkIn,
		ExpectedCheckOutDate: checkIn.AddDate(0, 0, 1),
		NumberOfGuests:       1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_EntradasInvalidas(t *testing.T) {
	uc, _, _, _, _ := newTestUseCase(availableRoom("room-1", "100.00"))
	checkIn := time.Now().AddDate(0, 0, 1)

	// check-out no posterior al check-in
	_, err := uc.Create(context.Background(), dto.CreateReservationRequest{
		ClientID:             "client-1",
		RoomID:               "room-1",
		CheckInDate:          checkIn,
		ExpectedCheckOutDate: checkIn,
		NumberOfGuests:       1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// huéspedes < 1
	_, err = uc.Create(context.Background(), dto.CreateReservationRequest{
		ClientID:             "client-1",
		RoomID:               "room-1",
		CheckInDate:          checkIn,
		ExpectedCheckOutDate: checkIn.AddDate(0, 0, 2),
		NumberOfGuests:       0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Checkout
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_RecalculaTotalYLiberaCuarto(t *testing.T) {
	room := availableRoom("room-1", "100.00")
	room.Status = entity.RoomStatusOccupied
	uc, resRepo, roomRepo, psRepo, ssRepo := newTestUseCase(room)

	// Check-in hace 45 horas → 2 noches al momento del checkout.
	checkIn := time.Now().Add(-45 * time.Hour)
	res := &entity.Reservation{
		ID:                   "res-1",
		ClientID:             "client-1",
		RoomID:               "room-1",
		CheckInDate:          checkIn,
		ExpectedCheckOutDate: checkIn.AddDate(0, 0, 2),
		NumberOfGuests:       2,
		Status:               entity.ReservationStatusActive,
		TotalAmount:          decimal.Zero,
	}
	require.NoError(t, resRepo.Create(res))
	require.NoError(t, psRepo.Create(&entity.ProductSale{
		ID: "ps-1", ReservationID: "res-1", TotalPrice: dec("25.50"),
	}))
	require.NoError(t, ssRepo.Create(&entity.ServiceSale{
		ID: "ss-1", ReservationID: "res-1", Price: dec("40.00"),
	}))

	out, err := uc.Checkout(context.Background(), "res-1", dto.CheckoutRequest{
		PaymentMethod:   "pix",
		DiscountPercent: decimal.Zero,
	})
	require.NoError(t, err)

	// 2 noches × 100.00 + 25.50 + 40.00 = 265.50
	assert.Equal(t, 2, out.Charges.Nights)
	assert.True(t, out.Reservation.TotalAmount.Equal(dec("265.50")),
		"el total debe recalcularse en el servidor, no venir del cliente")
	assert.Equal(t, entity.ReservationStatusCompleted, out.Reservation.Status)
	assert.NotNil(t, out.Reservation.ActualCheckOutDate)
	assert.Equal(t, "pix", out.Reservation.PaymentMethod)
	assert.Equal(t, []string{"room-1:available"}, roomRepo.statusUpdates,
		"el checkout debe liberar el cuarto en la misma operación")
}

func TestCheckout_ConDescuento(t *testing.T) {
	room := availableRoom("room-1", "100.00")
	uc, resRepo, _, _, _ := newTestUseCase(room)

	checkIn := time.Now().Add(-30 * time.Hour) // 2 noches
	require.NoError(t, resRepo.Create(&entity.Reservation{
		ID:                   "res-1",
		RoomID:               "room-1",
		CheckInDate:          checkIn,
		ExpectedCheckOutDate: checkIn.AddDate(0, 0, 2),
		Status:               entity.ReservationStatusActive,
	}))

	out, err := uc.Checkout(context.Background(), "res-1", dto.CheckoutRequest{
		PaymentMethod:   "cash",
		DiscountPercent: dec("50"),
	})
	require.NoError(t, err)
	assert.True(t, out.Reservation.TotalAmount.Equal(dec("100.00")),
		"200.00 con 50 por ciento de descuento")
}

func TestCheckout_ReservaNoActiva_RetornaInvalidState(t *testing.T) {
	uc, resRepo, _, _, _ := newTestUseCase(availableRoom("room-1", "100.00"))

	checkIn := time.Now().Add(-24 * time.Hour)
	require.NoError(t, resRepo.Create(&entity.Reservation{
		ID:                   "res-1",
		RoomID:               "room-1",
		CheckInDate:          checkIn,
		ExpectedCheckOutDate: checkIn.AddDate(0, 0, 1),
		Status:               entity.ReservationStatusCompleted,
	}))

	_, err := uc.Checkout(context.Background(), "res-1", dto.CheckoutRequest{PaymentMethod: "cash"})
	assert.ErrorIs(t, err, domain.ErrInvalidReservationState)
}

func TestCheckout_SinMetodoPago_RetornaInvalidInput(t *testing.T) {
	uc, _, _, _, _ := newTestUseCase()
	_, err := uc.Checkout(context.Background(), "res-1", dto.CheckoutRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCheckout_ReservaInexistente_RetornaNotFound(t *testing.T) {
	uc, _, _, _, _ := newTestUseCase(availableRoom("room-1", "100.00"))
	_, err := uc.Checkout(context.Background(), "res-fantasma", dto.CheckoutRequest{PaymentMethod: "cash"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Cancel
// ──────────────────────────────────────────────────────────────────────────────

func TestCancel_PasaACancelledSinTocarElCuarto(t *testing.T) {
	room := availableRoom("room-1", "100.00")
	room.Status = entity.RoomStatusOccupied
	uc, resRepo, roomRepo, _, _ := newTestUseCase(room)

	checkIn := time.Now().AddDate(0, 0, 2)
	require.NoError(t, resRepo.Create(&entity.Reservation{
		ID:                   "res-1",
		RoomID:               "room-1",
		CheckInDate:          checkIn,
		ExpectedCheckOutDate: checkIn.AddDate(0, 0, 2),
		Status:               entity.ReservationStatusActive,
	}))

	out, err := uc.Cancel(context.Background(), "res-1")
	require.NoError(t, err)

	assert.Equal(t, entity.ReservationStatusCancelled, out.Status)
	assert.Empty(t, roomRepo.statusUpdates, "cancelar no debe mutar el estado del cuarto")
}

func TestCancel_ReservaYaCancelada_RetornaInvalidState(t *testing.T) {
	uc, resRepo, _, _, _ := newTestUseCase()
	require.NoError(t, resRepo.Create(&entity.Reservation{
		ID:     "res-1",
		Status: entity.ReservationStatusCancelled,
	}))

	_, err := uc.Cancel(context.Background(), "res-1")
	assert.ErrorIs(t, err, domain.ErrInvalidReservationState)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_FechasResultantesInvalidas(t *testing.T) {
	uc, resRepo, _, _, _ := newTestUseCase()

	checkIn := time.Now().AddDate(0, 0, 2)
	require.NoError(t, resRepo.Create(&entity.Reservation{
		ID:                   "res-1",
		CheckInDate:          checkIn,
		ExpectedCheckOutDate: checkIn.AddDate(0, 0, 2),
		Status:               entity.ReservationStatusActive,
	}))

	// Mover el check-out por detrás del check-in debe rechazarse.
	badCheckOut := checkIn.AddDate(0, 0, -1)
	_, err := uc.Update(context.Background(), "res-1", dto.UpdateReservationRequest{
		ExpectedCheckOutDate: &badCheckOut,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_ParcialSoloNotas(t *testing.T) {
	uc, resRepo, _, _, _ := newTestUseCase()

	checkIn := time.Now().AddDate(0, 0, 2)
	require.NoError(t, resRepo.Create(&entity.Reservation{
		ID:                   "res-1",
		CheckInDate:          checkIn,
		ExpectedCheckOutDate: checkIn.AddDate(0, 0, 2),
		NumberOfGuests:       2,
		Status:               entity.ReservationStatusActive,
	}))

	notes := "llegada tardía"
	out, err := uc.Update(context.Background(), "res-1", dto.UpdateReservationRequest{Notes: &notes})
	require.NoError(t, err)

	assert.Equal(t, "llegada tardía", out.Notes)
	assert.Equal(t, 2, out.NumberOfGuests, "los campos no enviados no deben cambiar")
}
