// Package lpio is the file-discovery and I/O collaborator named in
// spec.md §6: it reads an LP file off disk into the UTF-8 string the core
// lp package parses. It does no LP-aware work itself.
package lpio

import (
	"os"

	"github.com/pkg/errors"
)

// ReadFile reads the LP file at path and returns its contents as a string.
// Newline normalization is not performed; lp.Parse accepts \n, \r\n and \r.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read lp file %s", path)
	}
	return string(data), nil
}
