// Package validation contiene las tablas de reglas de entrada por recurso.
// Cada regla se evalúa en modo creación (campos obligatorios) o actualización
// (solo los campos presentes) y produce campos tipados o un *Error con los
// mensajes por campo.
package validation

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/restaurantes-api/internal/application/dto"
)

// Mode modo de validación.
type Mode int

const (
	// Create exige todos los campos obligatorios.
	Create Mode = iota
	// Update valida únicamente los campos enviados.
	Update
)

// Error resultado de validación fallida: campo -> mensajes.
type Error struct {
	Fields map[string][]string
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], ", "))
	}
	return "validación fallida: " + strings.Join(parts, "; ")
}

// Add registra un mensaje para el campo.
func (e *Error) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// Has indica si el campo tiene errores.
func (e *Error) Has(field string) bool {
	return len(e.Fields[field]) > 0
}

func (e *Error) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// References consultas de integridad referencial que necesitan las reglas.
type References interface {
	RestaurantExists(ctx context.Context, id int64) (bool, error)
	CategoryExists(ctx context.Context, id int64) (bool, error)
}

// rule describe un campo de la tabla de reglas.
// required es el mensaje cuando falta en modo Create; vacío significa opcional.
// apply devuelve un mensaje de validación o un error de infraestructura.
type rule[T any] struct {
	field    string
	required string
	nullable bool
	onNull   func(out *T)
	apply    func(ctx context.Context, raw string, out *T) (string, error)
}

func run[T any](ctx context.Context, mode Mode, in dto.FormValues, rules []rule[T], out *T, verr *Error) error {
	for _, r := range rules {
		v, present := in.Lookup(r.field)
		var raw string
		if v != nil {
			raw = strings.TrimSpace(*v)
		}
		if !present || raw == "" {
			switch {
			case present && r.nullable:
				if r.onNull != nil {
					r.onNull(out)
				}
			case mode == Create && r.required != "":
				verr.Add(r.field, r.required)
			case present && mode == Update && r.required != "":
				verr.Add(r.field, r.required)
			}
			continue
		}
		msg, err := r.apply(ctx, raw, out)
		if err != nil {
			return err
		}
		if msg != "" {
			verr.Add(r.field, msg)
		}
	}
	return nil
}

func parseID(raw string) (int64, bool) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// maxLength compara en runas sobre la forma NFC, de modo que "é" compuesta o
// descompuesta cuenta igual.
func maxLength(raw string, max int, label string) string {
	if utf8.RuneCountInString(norm.NFC.String(raw)) > max {
		return fmt.Sprintf("El campo %s no debe ser mayor que %d caracteres.", label, max)
	}
	return ""
}

func normalized(raw string) *string {
	s := norm.NFC.String(raw)
	return &s
}
