package ingest

import (
	"fmt"
	"os"

	"github.com/ohler55/ojg/oj"
)

// LoadFile reads a json snapshot file into its raw form.
func LoadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read snapshot: %w", err)
	}
	return LoadBytes(data)
}

func LoadBytes(data []byte) (*Snapshot, error) {
	ret := &Snapshot{}
	if err := oj.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("could not parse snapshot: %w", err)
	}
	return ret, nil
}

// WriteFile dumps a raw snapshot in the format LoadFile accepts.
func WriteFile(path string, snap *Snapshot) error {
	data := oj.JSON(snap, &oj.Options{Indent: 2, OmitNil: true, UseTags: true})
	//nolint:gosec // snapshot files are not sensitive
	return os.WriteFile(path, []byte(data), 0o644)
}
