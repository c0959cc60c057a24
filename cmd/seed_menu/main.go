// seed_menu genera un script SQL para poblar productos a partir de un menú en CSV.
//
// Uso: go run ./cmd/seed_menu [-encoding auto|utf8|latin1] [ruta/menu.csv]
// Por defecto busca menu.csv en el directorio actual.
// Columnas (separadas por ';'): restaurante_id;categoria_id;nombre;descripcion;precio;disponible
// Escribe: internal/infrastructure/postgres/migrations/002_seed_menu.sql
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	encoding := flag.String("encoding", "auto", "codificación del CSV: auto, utf8 o latin1")
	flag.Parse()

	csvPath := "menu.csv"
	if flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}
	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}

	text, err := decodeText(raw, *encoding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar CSV: %v\n", err)
		os.Exit(1)
	}
	items, err := parseMenu(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer menú: %v\n", err)
		os.Exit(1)
	}

	// Ruta del script de salida (relativa al módulo)
	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_menu.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, filepath.Base(csvPath), items); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d productos\n", outPath, len(items))
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
