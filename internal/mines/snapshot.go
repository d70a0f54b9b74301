package mines

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// Snapshot is the YAML export of a generated board.
type Snapshot struct {
	Seed  string `yaml:"seed"`
	Board string `yaml:"board,flow"`
}

func NewSnapshot(layout Layout) *Snapshot {
	return &Snapshot{
		Seed:  layout.Params().Seed(),
		Board: layout.String(),
	}
}

func (s *Snapshot) Serialize() ([]byte, error) {
	return yaml.Marshal(s)
}

func LoadSnapshot(in []byte) (*Snapshot, error) {
	var snapshot Snapshot
	if err := yaml.Unmarshal(in, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Layout parses the stored board and checks it against the seed.
func (s *Snapshot) Layout() (Layout, error) {
	layout, err := ParseLayout(s.Board)
	if err != nil {
		return nil, err
	}
	if s.Seed == "" {
		return layout, nil
	}
	params, err := ParseSeed(s.Seed)
	if err != nil {
		return nil, err
	}
	if *params != layout.Params() {
		return nil, fmt.Errorf(
			"%w: snapshot seed %s does not match board %s",
			ErrInvalidConfiguration, s.Seed, layout.Params().Seed(),
		)
	}
	return layout, nil
}
