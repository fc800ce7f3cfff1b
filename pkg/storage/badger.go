package storage

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/MrSolution07/SquidGame/pkg/domain"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

type BadgerStorage struct {
	entityPrefix []byte
	db           *badger.DB
}

func NewStorage(entityType string, db *badger.DB) *BadgerStorage {
	return &BadgerStorage{
		entityPrefix: []byte(entityType),
		db:           db,
	}
}

func (b *BadgerStorage) buildKey(key string) []byte {
	return []byte(fmt.Sprintf("%s/%s", string(b.entityPrefix), key))
}

func (b *BadgerStorage) buildValue(value interface{}) ([]byte, error) {
	buf, err := msgpack.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return buf, nil
}

func (b *BadgerStorage) Create(key string, value interface{}) error {
	buf, err := b.buildValue(value)
	if err != nil {
		return err
	}

	return b.db.Update(func(txn *badger.Txn) error {
		err = txn.Set(b.buildKey(key), buf)
		if err != nil {
			return err
		}
		return nil
	})
}

// GetReport loads one stored game report by id.
func (b *BadgerStorage) GetReport(id string) (domain.Report, error) {
	var report domain.Report
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(b.buildKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return msgpack.Unmarshal(val, &report)
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.Report{}, fmt.Errorf("report %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return domain.Report{}, fmt.Errorf("failed to get report %s: %w", id, err)
	}

	return report, nil
}

// ListReports walks every stored report, keeping the ones filterFunc
// accepts. A nil filterFunc keeps everything.
func (b *BadgerStorage) ListReports(filterFunc func(report domain.Report) bool) ([]domain.Report, error) {
	var reportList []domain.Report
	if string(b.entityPrefix) != domain.ReportEntity {
		return nil, fmt.Errorf("need entity: %s, has entity: %s", domain.ReportEntity, b.entityPrefix)
	}

	err := b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(b.entityPrefix); it.ValidForPrefix(b.entityPrefix); it.Next() {
			var r domain.Report
			if err := it.Item().Value(func(val []byte) error {
				return msgpack.Unmarshal(val, &r)
			}); err != nil {
				return err
			}
			if filterFunc != nil {
				if !filterFunc(r) {
					continue
				}
			}

			reportList = append(reportList, r)
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get reports list: %w", err)
	}

	return reportList, nil
}
