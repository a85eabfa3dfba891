package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse métricas agregadas del día para el panel inicial.
// "Hoy" es la ventana [hoy 00:00, mañana 00:00) en hora local del servidor.
type DashboardStatsResponse struct {
	OccupiedRooms  int             `json:"occupiedRooms"`
	TotalRooms     int             `json:"totalRooms"`
	CheckInsToday  int             `json:"checkInsToday"`
	CheckOutsToday int             `json:"checkOutsToday"`
	RevenueToday   decimal.Decimal `json:"revenueToday"`
}
