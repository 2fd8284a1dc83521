// Package pdf genera el comprobante imprimible de una solicitud de suministros.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Área + solicitante  │  Folio + Fecha + QR(folio)   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ESTADO: status / prioridad / comentarios                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Suministro | Unidad                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ENTREGAS PARCIALES (si existen)                             │
//	│  FIRMAS: Solicita / Autoriza / Recibe                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Suministros-api/internal/application/solicitud"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
)

var _ solicitud.VoucherGenerator = (*MarotoVoucherGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoVoucherGenerator implementa solicitud.VoucherGenerator usando Maroto v2.
type MarotoVoucherGenerator struct {
	loc *time.Location
}

// NewMarotoVoucherGenerator construye el generador. Las fechas se imprimen en loc (UTC si es nil).
func NewMarotoVoucherGenerator(loc *time.Location) *MarotoVoucherGenerator {
	if loc == nil {
		loc = time.UTC
	}
	return &MarotoVoucherGenerator{loc: loc}
}

// GenerateSolicitudVoucher genera el PDF y devuelve sus bytes.
func (g *MarotoVoucherGenerator) GenerateSolicitudVoucher(s *entity.Solicitud) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("pdf: solicitud nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Solicitud de suministros "+s.Folio, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(statusRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow("Suministros solicitados"))
	m.AddRows(itemRows(s.Suministros)...)

	if len(s.Parciales) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(tableHeaderRow("Entregas parciales"))
		m.AddRows(g.parcialRows(s.Parciales)...)
	}

	m.AddRows(line.NewRow(20))
	m.AddRows(signatureRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoVoucherGenerator) headerRow(s *entity.Solicitud) core.Row {
	solicitante := "—"
	if s.Owner != nil {
		solicitante = s.Owner.Username
	}
	return row.New(28).Add(
		col.New(6).Add(
			text.New("SOLICITUD DE SUMINISTROS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Área: "+nonEmpty(s.Area, "—"), props.Text{Size: 9, Top: 10, Color: colorGray}),
			text.New("Solicitante: "+solicitante, props.Text{Size: 9, Top: 15, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(s.Folio, props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+s.FechaHora.In(g.loc).Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
		col.New(2).Add(code.NewQr(s.Folio, props.Rect{Percent: 90, Center: true})),
	)
}

func statusRow(s *entity.Solicitud) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Estado: %s   |   Prioridad: %s", s.Status, s.Prioridad), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1,
			}),
			text.New("Comentario: "+deref(s.ComentarioUser), props.Text{Size: 8, Top: 6, Color: colorGray}),
			text.New("Comentario de autorización: "+deref(s.ComentarioAdmin), props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

// tableHeaderRow: título de sección + cabecera de columnas con fondo azul.
func tableHeaderRow(title string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h(title, 6, align.Left),
		h("Cant.", 2, align.Center),
		h("Unidad", 4, align.Left),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func itemRows(items []entity.Suministro) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, itemRow(it.Nombre, it.Cantidad, it.Unidad, ""))
	}
	return result
}

func (g *MarotoVoucherGenerator) parcialRows(list []entity.SuministroParcial) []core.Row {
	result := make([]core.Row, 0, len(list))
	for _, p := range list {
		result = append(result, itemRow(p.Nombre, p.Cantidad, p.Unidad, p.FechaEntrega.In(g.loc).Format("02/01/2006")))
	}
	return result
}

func itemRow(nombre string, cantidad int, unidad, fecha string) core.Row {
	if fecha != "" {
		unidad += "   (" + fecha + ")"
	}
	return row.New(7).Add(
		col.New(6).Add(text.New(nombre, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", cantidad), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(4).Add(text.New(unidad, props.Text{Size: 8, Top: 1, Left: 1})),
	)
}

func signatureRow() core.Row {
	sig := func(label string) core.Col {
		return col.New(4).Add(
			text.New("______________________", props.Text{Size: 9, Align: align.Center}),
			text.New(label, props.Text{Size: 8, Align: align.Center, Top: 5, Color: colorGray}),
		)
	}
	return row.New(14).Add(sig("Solicita"), sig("Autoriza"), sig("Recibe"))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func deref(s *string) string {
	if s == nil || *s == "" {
		return "—"
	}
	return *s
}
