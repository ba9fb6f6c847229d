package funding

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OpenLedger loads a ledger file. Files ending in ".csv" are read with
// DecodeCSV, any other file is read as JSONL with DecodeLedger.
func OpenLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	decode := DecodeLedger
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		decode = DecodeCSV
	}
	l, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	return l, nil
}

// SaveLedger writes a ledger to path in JSONL format.
func SaveLedger(path string, l *Ledger) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", path, err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", path, err)
	}
	if err := EncodeLedger(file, l); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
