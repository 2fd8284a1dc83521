package dto

// ProductRequest entrada para crear o actualizar un producto.
type ProductRequest struct {
	Nombre string `json:"nombre" validate:"required,max=200"`
	Unidad string `json:"unidad" validate:"required,max=50"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Unidad string `json:"unidad"`
}

// UnitRequest entrada para crear o actualizar una unidad de medida.
type UnitRequest struct {
	Nombre string `json:"nombre" validate:"required,max=50"`
}

// UnitResponse salida de una unidad de medida.
type UnitResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Productos []ProductResponse `json:"productos"`
}

// UnitListResponse listado de unidades de medida.
type UnitListResponse struct {
	Unidades []UnitResponse `json:"unidades"`
}
