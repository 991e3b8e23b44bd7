package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/view/dashboard.
// Los *Label vienen formateados en pt-BR para mostrarse tal cual.
type DashboardSummaryDTO struct {
	TotalUnits      int             `json:"totalUnits"`      // Σ quantity
	ProductCount    int             `json:"productCount"`
	StockValue      decimal.Decimal `json:"stockValue"`      // Σ quantity × price
	StockValueLabel string          `json:"stockValueLabel"` // ej: "R$ 1.234,50"
	EmployeeCount   int             `json:"employeeCount"`

	Movements MovementSummaryDTO `json:"movements"`
}

// NotificationDTO aviso transitorio para la capa de presentación.
type NotificationDTO struct {
	Level   string `json:"level"` // success, error
	Message string `json:"message"`
	At      string `json:"at"`
}
