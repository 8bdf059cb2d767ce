package cart

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
)

// BadgerKV keeps cart state in an embedded BadgerDB so carts survive
// restarts. An empty path opens the database in memory, which is what the
// tests use.
type BadgerKV struct {
	db *badger.DB
}

func OpenBadger(path string) (*BadgerKV, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithSyncWrites(true)

	if path == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerKV{db: db}, nil
}

func (s *BadgerKV) Get(key string) ([]byte, bool, error) {
	var val []byte

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (s *BadgerKV) Set(key string, value []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

func (s *BadgerKV) Ping(ctx context.Context) error {
	if s.db.IsClosed() {
		return errors.New("badger closed")
	}
	return nil
}

func (s *BadgerKV) Close() error {
	return s.db.Close()
}
