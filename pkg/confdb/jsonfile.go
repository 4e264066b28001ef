package confdb

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

/* JSONFile is a simple atomic-write single-file store for a Go object
 * encoded as indented JSON, so the preferences file stays editable by
 * hand.
 *
 * Usage:
 *  jf := confdb.NewJSONFile[AppConfig]("qr_generator_config.json")
 *  err := jf.Save(cfg)
 *  cfg, err := jf.Load()
 */
type JSONFile[T any] struct {
	filename string
}

func NewJSONFile[T any](filename string) *JSONFile[T] {
	return &JSONFile[T]{filename: filename}
}

func (jf *JSONFile[T]) Save(obj T) error {
	dir := filepath.Dir(jf.filename)
	tempFile, err := os.CreateTemp(dir, "conf-*.json")
	if err != nil {
		return fmt.Errorf("cannot create temporary file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	encoder := json.NewEncoder(tempFile)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(obj); err != nil {
		tempFile.Close()
		return fmt.Errorf("cannot encode object: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("cannot close temporary file: %w", err)
	}

	if err := os.Rename(tempFile.Name(), jf.filename); err != nil {
		return fmt.Errorf("cannot rename temporary file to %q: %w", jf.filename, err)
	}

	return nil
}

func (jf *JSONFile[T]) Load() (T, error) {
	file, err := os.Open(jf.filename)
	if err != nil {
		return *new(T), fmt.Errorf("cannot open file %q: %w", jf.filename, err)
	}
	defer file.Close()

	var obj T
	if err := json.NewDecoder(file).Decode(&obj); err != nil {
		return *new(T), fmt.Errorf("cannot decode object from file %q: %w", jf.filename, err)
	}

	return obj, nil
}

// LoadOr returns the stored object, or fallback when the file does not
// exist yet or cannot be read.
func (jf *JSONFile[T]) LoadOr(fallback T) T {
	obj, err := jf.Load()
	if err != nil {
		return fallback
	}
	return obj
}
