// Copyright © 2018 One Concern

package core

import (
	"fmt"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dgraph-io/badger/v3"
	"github.com/oneconcern/nasadap/pkg/errors"
	"gopkg.in/yaml.v2"
)

// ledgerBadger provides a Ledger implementation based on dgraph-io/badger/v3
type ledgerBadger struct {
	db *badger.DB
}

// NewBadgerLedger opens (or creates) a download ledger at a path, typically
// a dot-directory next to the cache.
func NewBadgerLedger(pth string) (Ledger, error) {
	if err := os.MkdirAll(pth, 0700); err != nil {
		return nil, fmt.Errorf("ledger: mkdir: %w", err)
	}
	db, err := badger.Open(badger.LSMOnlyOptions(pth).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, fmt.Errorf("ledger: open: %w", err)
	}
	return &ledgerBadger{db: db}, nil
}

func (l *ledgerBadger) Record(record Record) error {
	value, err := yaml.Marshal(record)
	if err != nil {
		return err
	}
	key := []byte(record.CacheKey)
	return backoff.Retry(func() error {
		err := l.db.Update(func(txn *badger.Txn) error {
			e := txn.Set(key, value)
			if e != nil {
				if errors.Is(e, badger.ErrConflict) {
					return e // retry
				}
				return backoff.Permanent(e)
			}
			return nil
		})
		return err
	},
		backoff.NewConstantBackOff(10*time.Millisecond),
	)
}

func (l *ledgerBadger) Get(cacheKey string) (Record, bool, error) {
	var record Record
	var value []byte
	err := l.db.View(func(txn *badger.Txn) error {
		item, e := txn.Get([]byte(cacheKey))
		if e != nil {
			return e
		}
		value, e = item.ValueCopy(nil)
		return e
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return record, false, nil
		}
		return record, false, err
	}
	if err = yaml.Unmarshal(value, &record); err != nil {
		return record, false, err
	}
	return record, true, nil
}

func (l *ledgerBadger) Apply(apply func(Record) error) error {
	return l.db.View(func(txn *badger.Txn) error {
		iterator := txn.NewIterator(badger.IteratorOptions{
			PrefetchSize:   1024,
			PrefetchValues: true,
		})
		defer iterator.Close()

		for iterator.Rewind(); iterator.Valid(); iterator.Next() {
			value, err := iterator.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			var record Record
			if err = yaml.Unmarshal(value, &record); err != nil {
				return err
			}
			if err = apply(record); err != nil {
				return err
			}
		}
		return nil
	})
}

func (l *ledgerBadger) Close() error {
	return l.db.Close()
}
