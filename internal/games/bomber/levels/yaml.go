package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID      string     `yaml:"id"`
	Name    string     `yaml:"name"`
	Kind    string     `yaml:"kind,omitempty"`
	Map     string     `yaml:"map"`
	Player  YAMLCell   `yaml:"player"`
	Enemies []YAMLCell `yaml:"enemies,omitempty"`
	Spawns  []YAMLCell `yaml:"spawns,omitempty"`
}

// YAMLCell is a [col, row] pair.
type YAMLCell []int

func (c YAMLCell) cell() (Cell, error) {
	if len(c) != 2 {
		return Cell{}, fmt.Errorf("cell must be [col, row], got %v", []int(c))
	}
	return Cell{Col: c[0], Row: c[1]}, nil
}

// ParseYAML parses and validates a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("levels: yaml unmarshal: %w", err)
	}

	kind := Kind(yl.Kind)
	if kind == "" {
		kind = KindCampaign
	}

	lvl := Level{
		ID:   yl.ID,
		Name: yl.Name,
		Kind: kind,
		Grid: ParseGrid(yl.Map),
	}

	player, err := yl.Player.cell()
	if err != nil {
		return Level{}, fmt.Errorf("%w %s: player: %v", ErrInvalid, yl.ID, err)
	}
	lvl.Player = player

	for i, yc := range yl.Enemies {
		c, err := yc.cell()
		if err != nil {
			return Level{}, fmt.Errorf("%w %s: enemies[%d]: %v", ErrInvalid, yl.ID, i, err)
		}
		lvl.Enemies = append(lvl.Enemies, c)
	}
	for i, yc := range yl.Spawns {
		c, err := yc.cell()
		if err != nil {
			return Level{}, fmt.Errorf("%w %s: spawns[%d]: %v", ErrInvalid, yl.ID, i, err)
		}
		lvl.Spawns = append(lvl.Spawns, c)
	}

	if err := lvl.Validate(); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
