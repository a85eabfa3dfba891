package postgres

import (
	"context"
	"fmt"

	"github.com/vilamar/pousada-api/internal/domain"
	"github.com/vilamar/pousada-api/internal/domain/entity"
	"github.com/vilamar/pousada-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo implementación del puerto InventoryMovementRepository sobre PostgreSQL (usable con pool o tx).
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

const movementColumns = `id, product_id, type, quantity, unit_cost, reason, date`

// Create persiste un movimiento de estoque.
func (r *InventoryMovementRepo) Create(movement *entity.InventoryMovement) error {
	query := `
		INSERT INTO inventory_movements (id, product_id, type, quantity, unit_cost, reason, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Type, movement.Quantity,
		movement.UnitCost, movement.Reason, movement.Date,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert inventory movement: %w", err)
	}
	return nil
}

// List lista todos los movimientos, los más recientes primero.
func (r *InventoryMovementRepo) List() ([]*entity.InventoryMovement, error) {
	return r.list(`SELECT ` + movementColumns + ` FROM inventory_movements ORDER BY date DESC`)
}

// ListByProduct lista los movimientos de un producto, los más recientes primero.
func (r *InventoryMovementRepo) ListByProduct(productID string) ([]*entity.InventoryMovement, error) {
	return r.list(
		`SELECT `+movementColumns+` FROM inventory_movements WHERE product_id = $1 ORDER BY date DESC`,
		productID,
	)
}

func (r *InventoryMovementRepo) list(query string, args ...any) ([]*entity.InventoryMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity,
			&m.UnitCost, &m.Reason, &m.Date); err != nil {
			return nil, fmt.Errorf("scan inventory movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
