package postgres

import (
	"context"
	"fmt"

	"github.com/vilamar/pousada-api/internal/domain"
	"github.com/vilamar/pousada-api/internal/domain/entity"
	"github.com/vilamar/pousada-api/internal/domain/repository"
)

var _ repository.ServiceSaleRepository = (*ServiceSaleRepo)(nil)

// ServiceSaleRepo implementación del puerto ServiceSaleRepository sobre PostgreSQL (usable con pool o tx).
type ServiceSaleRepo struct {
	q Querier
}

// NewServiceSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServiceSaleRepository(q Querier) *ServiceSaleRepo {
	return &ServiceSaleRepo{q: q}
}

const serviceSaleColumns = `id, reservation_id, service_id, price, scheduled_date, completed_date, status, sale_date`

// Create persiste una venta de servicio.
func (r *ServiceSaleRepo) Create(sale *entity.ServiceSale) error {
	query := `
		INSERT INTO service_sales (id, reservation_id, service_id, price, scheduled_date, completed_date, status, sale_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ReservationID, sale.ServiceID, sale.Price,
		sale.ScheduledDate, sale.CompletedDate, sale.Status, sale.SaleDate,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert service sale: %w", err)
	}
	return nil
}

// List lista todas las ventas de servicios, las más recientes primero.
func (r *ServiceSaleRepo) List() ([]*entity.ServiceSale, error) {
	return r.list(`SELECT ` + serviceSaleColumns + ` FROM service_sales ORDER BY sale_date DESC`)
}

// ListByReservation lista las ventas de servicios de una reserva.
func (r *ServiceSaleRepo) ListByReservation(reservationID string) ([]*entity.ServiceSale, error) {
	return r.list(
		`SELECT `+serviceSaleColumns+` FROM service_sales WHERE reservation_id = $1 ORDER BY sale_date`,
		reservationID,
	)
}

func (r *ServiceSaleRepo) list(query string, args ...any) ([]*entity.ServiceSale, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list service sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.ServiceSale
	for rows.Next() {
		var s entity.ServiceSale
		if err := rows.Scan(&s.ID, &s.ReservationID, &s.ServiceID, &s.Price,
			&s.ScheduledDate, &s.CompletedDate, &s.Status, &s.SaleDate); err != nil {
			return nil, fmt.Errorf("scan service sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
