package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memStore is an in-memory DocumentStore. Load returns a deep copy so
// each operation works on a fresh snapshot, like the file-backed store.
type memStore struct {
	doc     *entity.Document
	loadErr error
	saveErr error
	saves   int
}

func newMemStore() *memStore {
	return &memStore{doc: entity.NewDocument("Test Co.")}
}

func (s *memStore) Load(ctx context.Context) (*entity.Document, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}

	return deepCopy(s.doc), nil
}

func (s *memStore) Save(ctx context.Context, doc *entity.Document) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.doc = deepCopy(doc)
	s.saves++

	return nil
}

func deepCopy(doc *entity.Document) *entity.Document {
	content, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	out := new(entity.Document)
	if err := json.Unmarshal(content, out); err != nil {
		panic(err)
	}

	return out
}

// fakeHasher is a transparent PasswordHasher for tests.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeTokenService issues reversible tokens without any signing.
type fakeTokenService struct{}

func (fakeTokenService) IssueToken(username string) (string, error) {
	return "token-for-" + username, nil
}

func (fakeTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	username, ok := strings.CutPrefix(tokenString, "token-for-")
	if !ok {
		return nil, domainerrors.ErrUnauthorized
	}

	return &service.Claims{Username: username}, nil
}

// fakeMediaStore records saved uploads in order.
type fakeMediaStore struct {
	saved []string
}

func (m *fakeMediaStore) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	path := "/uploads/" + strings.ReplaceAll(filename, " ", "-")
	m.saved = append(m.saved, path)

	return path, nil
}
