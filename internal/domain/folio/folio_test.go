package folio_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Suministros-api/internal/domain"
	"github.com/jhoicas/Suministros-api/internal/domain/folio"
)

type fakeFinder map[string]string

func (f fakeFinder) LastFolioWithPrefix(_ context.Context, prefix string) (string, error) {
	return f[prefix], nil
}

var year2025 = time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)

func TestGenerate_PrimerFolioDelPrefijo(t *testing.T) {
	got, err := folio.Generate(context.Background(), fakeFinder{}, "logistica", year2025)
	require.NoError(t, err)
	assert.Equal(t, "L2500001", got)
}

func TestGenerate_IncrementaSobreElUltimo(t *testing.T) {
	got, err := folio.Generate(context.Background(), fakeFinder{"L25": "L2500001"}, "logistica", year2025)
	require.NoError(t, err)
	assert.Equal(t, "L2500002", got)
}

func TestGenerate_ContadoresIndependientesPorAreaYAnio(t *testing.T) {
	finder := fakeFinder{"L25": "L2500041"}

	ventas, err := folio.Generate(context.Background(), finder, "ventas", year2025)
	require.NoError(t, err)
	assert.Equal(t, "V2500001", ventas)

	nextYear, err := folio.Generate(context.Background(), finder, "logistica", year2025.AddDate(1, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, "L2600001", nextYear)
}

func TestNext_DesbordeSeRechaza(t *testing.T) {
	_, err := folio.Next("L25", "L2599999")
	assert.ErrorIs(t, err, domain.ErrFolioExhausted)

	got, err := folio.Next("L25", "L2599998")
	require.NoError(t, err)
	assert.Equal(t, "L2599999", got)
}

func TestNext_FolioPrevioMalformado(t *testing.T) {
	_, err := folio.Next("L25", "L25ABCDE")
	assert.Error(t, err)
	_, err = folio.Next("L25", "V2500001")
	assert.Error(t, err)
}

func TestAreaLetter(t *testing.T) {
	cases := map[string]byte{
		"logistica":        'L',
		"  compras":        'C',
		"Área de sistemas": 'A',
		"ñoño":             'N',
		"éxito":            'E',
	}
	for area, want := range cases {
		got, err := folio.AreaLetter(area)
		require.NoError(t, err, area)
		assert.Equal(t, want, got, area)
	}

	for _, bad := range []string{"", "   ", "1er piso", "#ops", "\u0301", " \u0301\u0308 "} {
		_, err := folio.AreaLetter(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, bad)
	}
}

func TestPrefix_AreaSoloDiacriticosNoEntraEnPanico(t *testing.T) {
	assert.NotPanics(t, func() {
		_, err := folio.Prefix("\u0301", year2025)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestGenerate_ErrorDelFinderSePropaga(t *testing.T) {
	boom := errors.New("db caída")
	_, err := folio.Generate(context.Background(), errFinder{boom}, "logistica", year2025)
	assert.ErrorIs(t, err, boom)
}

func TestValid(t *testing.T) {
	assert.True(t, folio.Valid("L2500001"))
	assert.False(t, folio.Valid("l2500001"))
	assert.False(t, folio.Valid("L25000001"))
	assert.False(t, folio.Valid("L25-0001"))
}

type errFinder struct{ err error }

func (f errFinder) LastFolioWithPrefix(context.Context, string) (string, error) {
	return "", f.err
}
