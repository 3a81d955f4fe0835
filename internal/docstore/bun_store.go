package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-sections/pkg/interfaces"
)

// BunStore persists documents using a Bun-backed database. Each document
// row carries the full JSON payload so reads need no joins.
type BunStore struct {
	db *bun.DB
}

// NewBunStore constructs a Bun-backed document store.
func NewBunStore(db *bun.DB) *BunStore {
	return &BunStore{db: db}
}

// Migrate creates the backing table when it does not exist yet.
func (s *BunStore) Migrate(ctx context.Context) error {
	if s.db == nil {
		return errors.New("docstore: bun store requires a database")
	}
	_, err := s.db.NewCreateTable().Model((*documentModel)(nil)).IfNotExists().Exec(ctx)
	return err
}

// Get returns the stored document for key. A missing row yields a
// Document with Exists false and a nil error.
func (s *BunStore) Get(ctx context.Context, key string) (interfaces.Document, error) {
	if s.db == nil {
		return interfaces.Document{}, errors.New("docstore: bun store requires a database")
	}
	var model documentModel
	if err := s.db.NewSelect().Model(&model).Where("key = ?", key).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return interfaces.Document{}, nil
		}
		return interfaces.Document{}, err
	}
	var data map[string]any
	if err := json.Unmarshal([]byte(model.Payload), &data); err != nil {
		return interfaces.Document{}, err
	}
	return interfaces.Document{Exists: true, Data: data}, nil
}

// Set writes value under key, merging over the existing document when
// opts.MergeExistingFields is set.
func (s *BunStore) Set(ctx context.Context, key string, value map[string]any, opts interfaces.SetOptions) error {
	if s.db == nil {
		return errors.New("docstore: bun store requires a database")
	}

	existing, err := s.Get(ctx, key)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(resolvePayload(existing, value, opts))
	if err != nil {
		return err
	}

	model := documentModel{
		Key:       key,
		Payload:   string(payload),
		UpdatedAt: time.Now().UTC(),
	}

	if existing.Exists {
		_, err = s.db.NewUpdate().
			Model(&model).
			Column("payload", "updated_at").
			WherePK().
			Exec(ctx)
	} else {
		model.ID = uuid.New()
		_, err = s.db.NewInsert().Model(&model).Exec(ctx)
	}
	return err
}

type documentModel struct {
	bun.BaseModel `bun:"table:section_documents"`

	ID        uuid.UUID `bun:"id,notnull"`
	Key       string    `bun:"key,pk"`
	Payload   string    `bun:"payload"`
	UpdatedAt time.Time `bun:"updated_at"`
}
