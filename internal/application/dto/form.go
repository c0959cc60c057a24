package dto

import (
	"path/filepath"
	"strings"
)

// FormValues campos crudos recibidos (multipart, urlencoded o JSON ya normalizado a texto).
// La presencia de la clave es significativa: en modo actualización solo se validan
// y aplican los campos presentes.
type FormValues map[string]*string

// Lookup devuelve el valor del campo y si estaba presente. Un valor nil indica null explícito.
func (f FormValues) Lookup(key string) (*string, bool) {
	v, ok := f[key]
	return v, ok
}

// Set asigna un valor de texto.
func (f FormValues) Set(key, value string) {
	f[key] = &value
}

// SetNull marca el campo como presente con valor null.
func (f FormValues) SetNull(key string) {
	f[key] = nil
}

// FileUpload archivo recibido en un campo multipart.
type FileUpload struct {
	Filename string
	Size     int64
	Content  []byte // como mucho MaxImageBytes+1 bytes; el resto no se lee
}

// Extension devuelve la extensión en minúsculas y sin punto.
func (f *FileUpload) Extension() string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(f.Filename)), ".")
}
