// Package output serializes journal databases to JSON.
package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/plasmalab/jifdb-go/pkg/jifdb/models"
)

// ToJSON serializes the database. HTML escaping is disabled so Korean
// category names and sheet names stay literal in the output.
func ToJSON(db models.Database, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(db); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile serializes the database to path, creating missing parent
// directories first. The write is not atomic; a crash can leave a partial
// file.
func WriteFile(db models.Database, path string, pretty bool) error {
	data, err := ToJSON(db, pretty)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
