// Package jsonfile persiste la tabla de stock como un objeto JSON { "<item>": <cantidad>, ... }.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/inventory"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

const (
	filePerm = 0o644
	indent   = "    "
)

// StockRepo implementación de StockRepository sobre un archivo JSON.
type StockRepo struct {
	fs   afero.Fs
	path string
}

// NewStockRepository construye el adaptador. fs nil usa el sistema de archivos del SO.
func NewStockRepository(fs afero.Fs, path string) *StockRepo {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &StockRepo{fs: fs, path: path}
}

// Location ruta del archivo.
func (r *StockRepo) Location() string { return r.path }

// Load lee el archivo completo y devuelve las entradas en el orden del documento.
func (r *StockRepo) Load(ctx context.Context) ([]entity.StockEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", r.path, domain.ErrStorageNotFound)
		}
		return nil, fmt.Errorf("load %s: %w", r.path, err)
	}
	entries, err := decodeEntries(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w: %v", r.path, domain.ErrMalformedData, err)
	}
	return entries, nil
}

// Save escribe en un archivo temporal del mismo directorio y lo renombra sobre el destino,
// de modo que el destino queda con el contenido anterior o con el nuevo completo.
func (r *StockRepo) Save(ctx context.Context, entries []entity.StockEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encodeEntries(entries)
	if err != nil {
		return fmt.Errorf("save %s: encode: %w", r.path, err)
	}

	dir, base := filepath.Split(r.path)
	if dir == "" {
		dir = "."
	}
	tmp, err := afero.TempFile(r.fs, dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("save %s: create temp: %w", r.path, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = r.fs.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("save %s: write: %w", r.path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("save %s: sync: %w", r.path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("save %s: close: %w", r.path, err)
	}
	if err := r.fs.Chmod(tmpName, filePerm); err != nil {
		cleanup()
		return fmt.Errorf("save %s: chmod: %w", r.path, err)
	}
	if err := r.fs.Rename(tmpName, r.path); err != nil {
		cleanup()
		return fmt.Errorf("save %s: rename: %w", r.path, err)
	}
	return nil
}

// decodeEntries recorre el objeto con el tokenizer para conservar el orden de las claves.
// Los valores deben ser números enteros; cadenas, decimales o null se consideran malformados.
func decodeEntries(data []byte) ([]entity.StockEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("se esperaba un objeto JSON, se obtuvo %v", tok)
	}

	var entries []entity.StockEntry
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("clave inválida %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		if len(raw) == 0 || !(raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9')) {
			return nil, fmt.Errorf("item %q: valor no numérico %s", key, raw)
		}
		qty, err := inventory.ParseQuantity(string(raw))
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", key, err)
		}
		// Claves duplicadas: gana la última, como encoding/json.
		if i, dup := index[key]; dup {
			entries[i].Quantity = qty
			continue
		}
		index[key] = len(entries)
		entries = append(entries, entity.StockEntry{Item: key, Quantity: qty})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("contenido adicional después del objeto")
	}
	if entries == nil {
		entries = []entity.StockEntry{}
	}
	return entries, nil
}

// encodeEntries genera el objeto JSON indentado con 4 espacios, respetando el orden recibido.
func encodeEntries(entries []entity.StockEntry) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			compact.WriteByte(',')
		}
		key, err := json.Marshal(e.Item)
		if err != nil {
			return nil, err
		}
		compact.Write(key)
		compact.WriteByte(':')
		fmt.Fprintf(&compact, "%d", e.Quantity)
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", indent); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}
