// Package folio genera el identificador legible de una solicitud:
// <letra de área><año YY><consecutivo de 5 dígitos>, p. ej. L2500001.
//
// El consecutivo es independiente por prefijo (área + año). La unicidad final
// la garantiza la restricción UNIQUE de la columna folio; una colisión se reporta
// como domain.ErrDuplicateFolio para que el caller regenere y reintente.
package folio

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Suministros-api/internal/domain"
)

const (
	PrefixLen  = 3
	CounterLen = 5
	MaxCounter = 99999
)

var pattern = regexp.MustCompile(`^[A-Z][0-9]{2}[0-9]{5}$`)

// LastFinder obtiene el folio más alto emitido con un prefijo ("" si no hay ninguno).
// Debe ejecutarse dentro de la misma transacción que insertará la solicitud.
type LastFinder interface {
	LastFolioWithPrefix(ctx context.Context, prefix string) (string, error)
}

// Valid indica si s tiene el formato [A-Z][0-9]{2}[0-9]{5}.
func Valid(s string) bool {
	return pattern.MatchString(s)
}

// AreaLetter devuelve la primera letra del área en mayúscula, sin diacríticos ("área" -> 'A').
func AreaLetter(area string) (byte, error) {
	area = strings.TrimSpace(area)
	if area == "" {
		return 0, fmt.Errorf("%w: el área es requerida para generar el folio", domain.ErrInvalidInput)
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, area)
	if err != nil {
		return 0, fmt.Errorf("normalizar área: %w", err)
	}
	if folded == "" {
		return 0, fmt.Errorf("%w: el área %q no inicia con una letra", domain.ErrInvalidInput, area)
	}
	r := unicode.ToUpper([]rune(folded)[0])
	if r < 'A' || r > 'Z' {
		return 0, fmt.Errorf("%w: el área %q no inicia con una letra", domain.ErrInvalidInput, area)
	}
	return byte(r), nil
}

// Prefix construye letra de área + dos últimos dígitos del año de now.
func Prefix(area string, now time.Time) (string, error) {
	letter, err := AreaLetter(area)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%c%02d", letter, now.Year()%100), nil
}

// Next calcula el folio siguiente a last dentro de prefix. last vacío inicia en 1.
// Un consecutivo mayor a 99999 se rechaza con ErrFolioExhausted; el formato nunca se ensancha.
func Next(prefix, last string) (string, error) {
	counter := 1
	if last != "" {
		if len(last) != PrefixLen+CounterLen || !strings.HasPrefix(last, prefix) {
			return "", fmt.Errorf("folio previo %q no corresponde al prefijo %s", last, prefix)
		}
		n, err := strconv.Atoi(last[PrefixLen:])
		if err != nil {
			return "", fmt.Errorf("folio previo %q con consecutivo inválido: %w", last, err)
		}
		counter = n + 1
	}
	if counter > MaxCounter {
		return "", fmt.Errorf("%w: prefijo %s", domain.ErrFolioExhausted, prefix)
	}
	return fmt.Sprintf("%s%0*d", prefix, CounterLen, counter), nil
}

// Generate consulta el último folio del prefijo y devuelve el siguiente.
func Generate(ctx context.Context, finder LastFinder, area string, now time.Time) (string, error) {
	prefix, err := Prefix(area, now)
	if err != nil {
		return "", err
	}
	last, err := finder.LastFolioWithPrefix(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("último folio %s: %w", prefix, err)
	}
	return Next(prefix, last)
}
