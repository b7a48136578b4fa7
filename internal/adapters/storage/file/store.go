package file

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store persiste cada colección como un archivo JSON bajo una clave fija
// ("patients", "appointments"), reemplazando el archivo completo en cada
// escritura. Es el análogo del localStorage del front original: load()
// devuelve la colección entera, save() la pisa entera (last writer wins).
//
// Sin índices ni updates parciales: el costo es lineal, suficiente para
// un consultorio unipersonal.
type Store struct {
	mu  sync.Mutex
	dir string
}

func NewStore(dir string) (*Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("file store: dir required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// load deserializa la colección completa. Devuelve false si la clave
// todavía no existe (primer arranque).
func (s *Store) load(key string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(key, v)
}

func (s *Store) loadLocked(key string, v any) (bool, error) {
	b, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false, err
	}
	return true, nil
}

// save reemplaza la colección completa. Escribe a un archivo temporal y
// renombra para no dejar un JSON cortado si el proceso muere a mitad.
func (s *Store) save(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(key, v)
}

func (s *Store) saveLocked(key string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}
