package entity

// Product entrada del catálogo de productos.
type Product struct {
	ID     int64
	Nombre string // único
	Unidad string
}

// UnitOfMeasure entrada del catálogo de unidades de medida.
type UnitOfMeasure struct {
	ID     int64
	Nombre string // único
}
