package preset

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"gitlab.com/tinyland/lab/gridpaint/pkg/layout"
)

// prTomlPreset is the TOML-friendly representation used for serialization.
type prTomlPreset struct {
	Name          string `toml:"name"`
	Description   string `toml:"description,omitempty"`
	Columns       int    `toml:"columns"`
	Rows          int    `toml:"rows"`
	BorderWidth   int    `toml:"border_width"`
	GridLineWidth int    `toml:"grid_line_width"`
	Uniform       bool   `toml:"uniform"`
}

// LoadFromTOML parses a custom grid preset from TOML data.
func LoadFromTOML(data []byte) (GridPreset, error) {
	var raw prTomlPreset
	if err := toml.Unmarshal(data, &raw); err != nil {
		return GridPreset{}, fmt.Errorf("preset: parse TOML: %w", err)
	}
	p := GridPreset(raw)
	if err := prValidate(p); err != nil {
		return GridPreset{}, err
	}
	return p, nil
}

// SaveToTOML serializes a preset to TOML format.
func SaveToTOML(p GridPreset) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(prTomlPreset(p)); err != nil {
		return nil, fmt.Errorf("preset: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

func prValidate(p GridPreset) error {
	if p.Name == "" {
		return errors.New("preset: missing required field 'name'")
	}
	if !p.Apply(layout.DefaultConfig()).Valid() {
		return fmt.Errorf("preset %q: columns and rows must be positive, widths non-negative", p.Name)
	}
	return nil
}
