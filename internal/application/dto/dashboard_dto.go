package dto

import "github.com/shopspring/decimal"

// DashboardDTO respuesta de GET /api/dashboard/usuario. Todas las cifras son del caller.
type DashboardDTO struct {
	EstadoSolicitudes       []StatusCountDTO   `json:"estadoSolicitudes"`
	SolicitudesPorMes       []MonthCountDTO    `json:"solicitudesPorMes"` // últimos 6 meses, ascendente
	SolicitudesPorPrioridad []PriorityCountDTO `json:"solicitudesPorPrioridad"`
	ProductosMasSolicitados []TopProductDTO    `json:"productosMasSolicitados"` // top 10
	Metricas                MetricasDTO        `json:"metricas"`
}

type StatusCountDTO struct {
	Status   string `json:"status"`
	Cantidad int    `json:"cantidad"`
}

type MonthCountDTO struct {
	Mes      string `json:"mes"` // YYYY-MM
	Cantidad int    `json:"cantidad"`
}

type PriorityCountDTO struct {
	Prioridad string `json:"prioridad"`
	Cantidad  int    `json:"cantidad"`
}

// TopProductDTO suministro más solicitado.
type TopProductDTO struct {
	Nombre          string          `json:"nombre"`
	TotalSolicitado decimal.Decimal `json:"totalSolicitado"`
	VecesSolicitado int             `json:"vecesSolicitado"`
}

// MetricasDTO métricas generales. TasaAprobacion es un porcentaje entero 0-100.
type MetricasDTO struct {
	TotalSolicitudes      int   `json:"totalSolicitudes"`
	SolicitudesPendientes int   `json:"solicitudesPendientes"`
	SolicitudesDelMes     int   `json:"solicitudesDelMes"`
	TasaAprobacion        int64 `json:"tasaAprobacion"`
}
