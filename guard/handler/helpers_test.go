//go:build unit

package handler

import "path/filepath"

func baseName(file string) string {
	return filepath.Base(file)
}
