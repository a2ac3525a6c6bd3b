package localdb

import (
	"encoding/json"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
)

const prefPrefix = "pref:"

// SetPreference stores a user preference alongside the database blob so
// settings survive a reinstall the same way the data does.
func (s *Store) SetPreference(key, value string) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "encoding preference")
	}
	err = s.kv.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(prefPrefix+key), encoded)
	})
	return errors.Wrapf(err, "saving preference %q", key)
}

// GetPreference reads a stored preference. Values written by older builds may
// be raw strings rather than JSON, those are returned as-is.
func (s *Store) GetPreference(key string) (string, bool, error) {
	var raw []byte
	err := s.kv.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefPrefix + key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "reading preference %q", key)
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return string(raw), true, nil
	}
	return value, true, nil
}

// DeletePreference removes a stored preference if present.
func (s *Store) DeletePreference(key string) error {
	err := s.kv.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(prefPrefix + key))
	})
	return errors.Wrapf(err, "deleting preference %q", key)
}
