package entity

import "time"

// Roles del personal.
const (
	RoleManager      = "manager"
	RoleReceptionist = "receptionist"
	RoleStaff        = "staff"
)

// Permission es una capacidad nombrada del personal. Conjunto cerrado para
// que los chequeos sean verificables en compilación, en lugar del mapa
// libre clave-valor que usaba el sistema anterior.
type Permission string

const (
	PermManageRooms   Permission = "manage_rooms"
	PermManageClients Permission = "manage_clients"
	PermCheckIn       Permission = "check_in"
	PermCheckOut      Permission = "check_out"
	PermPointOfSale   Permission = "point_of_sale"
	PermInventory     Permission = "inventory"
	PermReports       Permission = "reports"
	PermManageUsers   Permission = "manage_users"
)

// ValidPermission indica si p pertenece al conjunto conocido.
func ValidPermission(p Permission) bool {
	switch p {
	case PermManageRooms, PermManageClients, PermCheckIn, PermCheckOut,
		PermPointOfSale, PermInventory, PermReports, PermManageUsers:
		return true
	}
	return false
}

// Permissions conjunto de capacidades de un usuario.
type Permissions []Permission

// Has indica si el conjunto incluye la capacidad p.
func (ps Permissions) Has(p Permission) bool {
	for _, x := range ps {
		if x == p {
			return true
		}
	}
	return false
}

// User representa un funcionario de la pousada.
type User struct {
	ID           string
	FullName     string
	Role         string
	Phone        string
	Email        string
	Username     string // único
	PasswordHash string
	Permissions  Permissions
	CreatedAt    time.Time
}
