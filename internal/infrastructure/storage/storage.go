// Package storage implementa ports.BlobStorage sobre disco local y sobre buckets S3.
package storage

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// objectKey genera una ruta única dentro del namespace: "<namespace>/<uuid>.<ext>".
func objectKey(namespace, ext string) string {
	name := uuid.New().String()
	if ext = strings.TrimPrefix(strings.ToLower(ext), "."); ext != "" {
		name += "." + ext
	}
	return path.Join(cleanKey(namespace), name)
}

// cleanKey normaliza una ruta relativa y rechaza que escape de la raíz.
func cleanKey(key string) string {
	k := path.Clean("/" + strings.ReplaceAll(key, "\\", "/"))
	return strings.TrimPrefix(k, "/")
}

func publicURL(base, key string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(base, "/"), cleanKey(key))
}
