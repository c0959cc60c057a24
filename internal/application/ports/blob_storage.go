package ports

import "context"

// BlobStorage define el puerto de salida para archivos públicos (imágenes de productos).
// Cualquier adaptador (disco local, S3, R2, mock) debe implementar esta interfaz.
type BlobStorage interface {
	// Store guarda content dentro de namespace y devuelve una ruta relativa estable
	// (p. ej. "productos/<uuid>.png"). ext va sin punto.
	Store(ctx context.Context, namespace string, content []byte, ext string) (string, error)
	// Delete elimina la ruta. Eliminar una ruta inexistente no es error.
	Delete(ctx context.Context, path string) error
	// URL deriva la URL pública absoluta de una ruta. No hace I/O.
	URL(path string) string
}
