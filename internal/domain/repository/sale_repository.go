package repository

import "github.com/vilamar/pousada-api/internal/domain/entity"

// ProductSaleRepository define el puerto de persistencia para ProductSale (DIP).
type ProductSaleRepository interface {
	Create(sale *entity.ProductSale) error
	GetByID(id string) (*entity.ProductSale, error)
	List() ([]*entity.ProductSale, error)
	ListByReservation(reservationID string) ([]*entity.ProductSale, error)
	Delete(id string) error
}

// ServiceSaleRepository define el puerto de persistencia para ServiceSale (DIP).
type ServiceSaleRepository interface {
	Create(sale *entity.ServiceSale) error
	List() ([]*entity.ServiceSale, error)
	ListByReservation(reservationID string) ([]*entity.ServiceSale, error)
}
