package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vilamar/pousada-api/internal/application/inventory"
	"github.com/vilamar/pousada-api/internal/application/pos"
	"github.com/vilamar/pousada-api/internal/application/reservation"
	"github.com/vilamar/pousada-api/internal/domain"
	"github.com/vilamar/pousada-api/internal/domain/repository"
)

// TxRunner satisface los puertos transaccionales de la capa de aplicación.
var _ reservation.TxRunner = (*TxRunner)(nil)
var _ pos.TxRunner = (*TxRunner)(nil)
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunReservation inicia una transacción con repos de reservas y cuartos
// atados a la tx (crear reserva, cancelar) y hace Commit o Rollback.
func (r *TxRunner) RunReservation(ctx context.Context, fn func(
	resRepo repository.ReservationRepository,
	roomRepo repository.RoomRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", domain.ErrUnavailable, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	resRepo := NewReservationRepository(tx)
	roomRepo := NewRoomRepository(tx)

	if err := fn(resRepo, roomRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit transaction: %v", domain.ErrUnavailable, err)
	}
	return nil
}

// RunCheckout inicia una transacción con todos los repos que participan del
// checkout: la reserva, su cuarto y las ventas que componen la cuenta.
func (r *TxRunner) RunCheckout(ctx context.Context, fn func(
	resRepo repository.ReservationRepository,
	roomRepo repository.RoomRepository,
	productSaleRepo repository.ProductSaleRepository,
	serviceSaleRepo repository.ServiceSaleRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", domain.ErrUnavailable, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	resRepo := NewReservationRepository(tx)
	roomRepo := NewRoomRepository(tx)
	productSaleRepo := NewProductSaleRepository(tx)
	serviceSaleRepo := NewServiceSaleRepository(tx)

	if err := fn(resRepo, roomRepo, productSaleRepo, serviceSaleRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit transaction: %v", domain.ErrUnavailable, err)
	}
	return nil
}

// RunSale inicia una transacción para la venta de producto y su descuento
// de stock.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.ProductSaleRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", domain.ErrUnavailable, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	saleRepo := NewProductSaleRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(saleRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit transaction: %v", domain.ErrUnavailable, err)
	}
	return nil
}

// RunMovement inicia una transacción para el movimiento de estoque y su
// ajuste de stock.
func (r *TxRunner) RunMovement(ctx context.Context, fn func(
	movementRepo repository.InventoryMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", domain.ErrUnavailable, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movementRepo := NewInventoryMovementRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(movementRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit transaction: %v", domain.ErrUnavailable, err)
	}
	return nil
}
