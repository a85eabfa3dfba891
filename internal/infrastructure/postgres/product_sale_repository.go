package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vilamar/pousada-api/internal/domain"
	"github.com/vilamar/pousada-api/internal/domain/entity"
	"github.com/vilamar/pousada-api/internal/domain/repository"
)

var _ repository.ProductSaleRepository = (*ProductSaleRepo)(nil)

// ProductSaleRepo implementación del puerto ProductSaleRepository sobre PostgreSQL (usable con pool o tx).
type ProductSaleRepo struct {
	q Querier
}

// NewProductSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductSaleRepository(q Querier) *ProductSaleRepo {
	return &ProductSaleRepo{q: q}
}

const productSaleColumns = `id, reservation_id, product_id, quantity, unit_price, total_price, sale_date`

// Create persiste una venta de producto.
func (r *ProductSaleRepo) Create(sale *entity.ProductSale) error {
	query := `
		INSERT INTO product_sales (id, reservation_id, product_id, quantity, unit_price, total_price, sale_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ReservationID, sale.ProductID, sale.Quantity,
		sale.UnitPrice, sale.TotalPrice, sale.SaleDate,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert product sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta de producto por ID.
func (r *ProductSaleRepo) GetByID(id string) (*entity.ProductSale, error) {
	query := `SELECT ` + productSaleColumns + ` FROM product_sales WHERE id = $1`
	var s entity.ProductSale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ReservationID, &s.ProductID, &s.Quantity, &s.UnitPrice, &s.TotalPrice, &s.SaleDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product sale: %w", err)
	}
	return &s, nil
}

// List lista todas las ventas de productos, las más recientes primero.
func (r *ProductSaleRepo) List() ([]*entity.ProductSale, error) {
	return r.list(`SELECT ` + productSaleColumns + ` FROM product_sales ORDER BY sale_date DESC`)
}

// ListByReservation lista las ventas de productos de una reserva.
func (r *ProductSaleRepo) ListByReservation(reservationID string) ([]*entity.ProductSale, error) {
	return r.list(
		`SELECT `+productSaleColumns+` FROM product_sales WHERE reservation_id = $1 ORDER BY sale_date`,
		reservationID,
	)
}

func (r *ProductSaleRepo) list(query string, args ...any) ([]*entity.ProductSale, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list product sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductSale
	for rows.Next() {
		var s entity.ProductSale
		if err := rows.Scan(&s.ID, &s.ReservationID, &s.ProductID, &s.Quantity,
			&s.UnitPrice, &s.TotalPrice, &s.SaleDate); err != nil {
			return nil, fmt.Errorf("scan product sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina una venta de producto. No repone stock.
func (r *ProductSaleRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM product_sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
