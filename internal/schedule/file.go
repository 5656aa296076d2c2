package schedule

import (
	"encoding/json"
	"io"
	"os"

	"github.com/cyphera/cyphera-fees/pkg/fees"
	"github.com/pkg/errors"
)

// File is the on-disk layout of a schedule file
type File struct {
	Networks []FileNetwork `json:"networks"`
}

// FileNetwork is one network of a schedule file
type FileNetwork struct {
	Name             string                  `json:"name"`
	BaseCurrencyCode string                  `json:"base_currency_code,omitempty"`
	Decimals         int32                   `json:"decimals,omitempty"`
	Fees             fees.NetworkFeeSchedule `json:"fees"`
}

// Decode reads a schedule file
func Decode(r io.Reader) (*File, error) {
	var file File
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return nil, errors.Wrap(err, "decode schedule file")
	}
	if len(file.Networks) == 0 {
		return nil, errors.New("schedule file has no networks")
	}
	return &file, nil
}

// Load stores every network of the file in the store
func (s *Store) Load(file *File) error {
	for _, network := range file.Networks {
		_, err := s.Put(Network{
			Name:             network.Name,
			BaseCurrencyCode: network.BaseCurrencyCode,
			Decimals:         network.Decimals,
		}, network.Fees)
		if err != nil {
			return err
		}
	}
	return nil
}

// LoadFile reads the schedule file at path into a new store
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open schedule file")
	}
	defer f.Close()

	file, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	store := NewStore()
	if err := store.Load(file); err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return store, nil
}
