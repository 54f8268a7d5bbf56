// Package jsonfile implements the DocumentStore over a single JSON file.
// Every load reads and decodes the whole file; every save rewrites it in
// full, via a temp file rename so a failed write never truncates the
// previous document.
package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"boutique/config"
	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"

	"github.com/pkg/errors"
)

// requiredFields are the five top-level keys a well-formed document has.
var requiredFields = []string{"admin", "company", "categories", "products", "availability"}

type store struct {
	path           string
	defaultCompany string
}

// New creates the store and seeds the data file when it does not exist yet.
func New(cfg *config.Config) (repository.DocumentStore, error) {
	s := &store{
		path:           cfg.Storage.DataPath,
		defaultCompany: cfg.Company.DefaultName,
	}

	if err := s.ensureDataFile(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *store) ensureDataFile() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(domainerrors.ErrStorageWrite, err.Error())
		}
	}

	return s.write(entity.NewDocument(s.defaultCompany))
}

// Load reads the full document from disk. A file that is not well-formed
// JSON, or that lacks any of the five top-level fields, fails with the
// storage-corrupt error.
func (s *store) Load(ctx context.Context) (*entity.Document, error) {
	if err := s.ensureDataFile(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrStorageCorrupt, err.Error())
	}

	var shape map[string]json.RawMessage
	if err := json.Unmarshal(content, &shape); err != nil {
		return nil, errors.Wrap(domainerrors.ErrStorageCorrupt, err.Error())
	}
	for _, field := range requiredFields {
		if _, ok := shape[field]; !ok {
			return nil, errors.Wrapf(domainerrors.ErrStorageCorrupt, "missing top-level field %q", field)
		}
	}

	doc := new(entity.Document)
	if err := json.Unmarshal(content, doc); err != nil {
		return nil, errors.Wrap(domainerrors.ErrStorageCorrupt, err.Error())
	}

	// Guard against JSON nulls in otherwise well-formed documents.
	if doc.Categories == nil {
		doc.Categories = []entity.Category{}
	}
	if doc.Products == nil {
		doc.Products = []entity.Product{}
	}
	if doc.Availability == nil {
		doc.Availability = map[string]entity.AvailabilityMap{}
	}

	return doc, nil
}

// Save serializes and overwrites durable storage in full.
func (s *store) Save(ctx context.Context, doc *entity.Document) error {
	return s.write(doc)
}

func (s *store) write(doc *entity.Document) error {
	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(domainerrors.ErrStorageWrite, err.Error())
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".db-*.json")
	if err != nil {
		return errors.Wrap(domainerrors.ErrStorageWrite, err.Error())
	}

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(domainerrors.ErrStorageWrite, err.Error())
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(domainerrors.ErrStorageWrite, err.Error())
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(domainerrors.ErrStorageWrite, err.Error())
	}

	return nil
}
