package entity

import "github.com/shopspring/decimal"

// Service representa un servicio ofrecido a los huéspedes (lavandería,
// paseos, masajes). No tiene concepto de stock.
type Service struct {
	ID            string
	Name          string
	Description   string
	Price         decimal.Decimal
	EstimatedTime string // texto libre, ej. "2 horas"
}
