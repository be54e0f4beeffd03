package claim_repo

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"scratch_backend/internal/model"

	"github.com/dgraph-io/badger/v4"
)

const keyPrefix = "claim/"

// Repo история заявок на спецпризы в badger.
// Ключ содержит инвертированное время создания, поэтому прямой обход отдает новые заявки первыми
type Repo struct {
	db *badger.DB
}

// Open открывает хранилище в каталоге dir. Пустой dir - хранилище в памяти
func Open(dir string) (*Repo, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Repo{db: db}, nil
}

func claimKey(claim model.FulfillmentClaim) []byte {
	inverted := math.MaxInt64 - claim.CreatedAt.UnixNano()
	return []byte(fmt.Sprintf("%s%020d/%s", keyPrefix, inverted, claim.ID))
}

// Save - сохраняет заявку
func (r *Repo) Save(ctx context.Context, claim model.FulfillmentClaim) error {
	if claim.ID == "" {
		return fmt.Errorf("%w: claim id is required", model.ErrInvalidInput)
	}
	data, err := json.Marshal(claim)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(claimKey(claim), data)
	})
}

// List - заявки от новых к старым
func (r *Repo) List(ctx context.Context, limit int) ([]model.FulfillmentClaim, error) {
	result := make([]model.FulfillmentClaim, 0)
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		p := []byte(keyPrefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			if limit > 0 && len(result) >= limit {
				break
			}

			v, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			var claim model.FulfillmentClaim
			if err = json.Unmarshal(v, &claim); err != nil {
				return fmt.Errorf("decode claim %s: %w", it.Item().Key(), err)
			}
			result = append(result, claim)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Repo) Close() error {
	return r.db.Close()
}
