package entity

import "time"

// Suministro línea de una solicitud. Nombre y unidad se copian por valor desde el catálogo.
type Suministro struct {
	ID          int64
	SolicitudID int64
	Cantidad    int
	Nombre      string
	Unidad      string
}

// SuministroParcial registro de una entrega parcial contra una solicitud.
type SuministroParcial struct {
	ID           int64
	SolicitudID  int64
	Cantidad     int
	Nombre       string
	Unidad       string
	FechaEntrega time.Time
}
