package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/restaurantes-api/internal/application/validation"
)

// menuItem fila del CSV ya validada.
type menuItem struct {
	RestauranteID int64
	CategoriaID   int64
	Nombre        string
	Descripcion   string // vacío -> NULL
	Precio        decimal.Decimal
	Disponible    bool
}

const columns = 6

// decodeText devuelve el CSV en UTF-8. En modo auto, un archivo que no es UTF-8
// válido se interpreta como ISO-8859-1 (exportaciones de hojas de cálculo en Windows).
func decodeText(raw []byte, encoding string) (string, error) {
	switch strings.ToLower(encoding) {
	case "utf8", "utf-8":
		if !utf8.Valid(raw) {
			return "", errors.New("el archivo no es UTF-8 válido")
		}
	case "latin1", "iso-8859-1":
		return latin1(raw)
	case "auto", "":
		if !utf8.Valid(raw) {
			return latin1(raw)
		}
	default:
		return "", fmt.Errorf("codificación no soportada: %s", encoding)
	}
	return strings.TrimPrefix(string(raw), "\ufeff"), nil
}

func latin1(raw []byte) (string, error) {
	out, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// parseMenu lee las filas; la primera se ignora si es la cabecera.
func parseMenu(text string) ([]menuItem, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = ';'
	r.FieldsPerRecord = columns
	r.TrimLeadingSpace = true

	var items []menuItem
	for line := 1; ; line++ {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "restaurante_id") {
			continue
		}
		item, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func parseRow(rec []string) (menuItem, error) {
	for i := range rec {
		rec[i] = norm.NFC.String(strings.TrimSpace(rec[i]))
	}
	var item menuItem
	var err error
	if item.RestauranteID, err = positiveID(rec[0], "restaurante_id"); err != nil {
		return item, err
	}
	if item.CategoriaID, err = positiveID(rec[1], "categoria_id"); err != nil {
		return item, err
	}
	item.Nombre = rec[2]
	if item.Nombre == "" {
		return item, errors.New("nombre vacío")
	}
	if utf8.RuneCountInString(item.Nombre) > 255 {
		return item, errors.New("nombre mayor a 255 caracteres")
	}
	item.Descripcion = rec[3]

	item.Precio, err = decimal.NewFromString(strings.ReplaceAll(rec[4], ",", "."))
	if err != nil {
		return item, fmt.Errorf("precio inválido %q", rec[4])
	}
	if msg := validation.CheckPrecio(item.Precio); msg != "" {
		return item, fmt.Errorf("%s: %s", msg, rec[4])
	}

	switch strings.ToLower(rec[5]) {
	case "1", "true":
		item.Disponible = true
	case "0", "false":
		item.Disponible = false
	default:
		return item, fmt.Errorf("disponible debe ser true o false, se obtuvo %q", rec[5])
	}
	return item, nil
}

func positiveID(s, field string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%s inválido %q", field, s)
	}
	return id, nil
}

// writeSQL escribe los INSERT en una sola transacción.
func writeSQL(w io.Writer, source string, items []menuItem) error {
	var b strings.Builder
	b.WriteString("-- Productos de menú\n")
	fmt.Fprintf(&b, "-- Generado desde %s\n\n", source)
	b.WriteString("BEGIN;\n\n")
	for _, it := range items {
		desc := "NULL"
		if it.Descripcion != "" {
			desc = quote(it.Descripcion)
		}
		b.WriteString("INSERT INTO productos (restaurante_id, categoria_id, nombre, descripcion, precio, disponible)\n")
		fmt.Fprintf(&b, "VALUES (%d, %d, %s, %s, %s, %t);\n",
			it.RestauranteID, it.CategoriaID, quote(it.Nombre), desc, it.Precio.StringFixed(2), it.Disponible)
	}
	b.WriteString("\nCOMMIT;\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
