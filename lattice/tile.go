package lattice

import (
	"errors"
	"fmt"
)

// ErrUnknownTile is returned when a tile name matches no tiling.
var ErrUnknownTile = errors.New("lattice: unknown tile type")

// Tile identifies one of the planar tilings a capsid face can be meshed with.
type Tile int

const (
	Hex Tile = iota
	TriHex
	SnubHex
	RhombiTriHex
	DualHex
	DualTriHex
	DualSnubHex
	DualRhombiTriHex
	numTiles
)

var tileNames = [numTiles]string{
	Hex:              "hex",
	TriHex:           "trihex",
	SnubHex:          "snubhex",
	RhombiTriHex:     "rhombitrihex",
	DualHex:          "dualhex",
	DualTriHex:       "dualtrihex",
	DualSnubHex:      "dualsnubhex",
	DualRhombiTriHex: "dualrhombitrihex",
}

// Tiles returns every supported tiling.
func Tiles() []Tile {
	t := make([]Tile, numTiles)
	for i := range t {
		t[i] = Tile(i)
	}
	return t
}

func (t Tile) String() string {
	if !t.valid() {
		return fmt.Sprintf("Tile(%d)", int(t))
	}
	return tileNames[t]
}

func (t Tile) valid() bool { return t >= 0 && t < numTiles }

// ParseTile returns the Tile named s.
func ParseTile(s string) (Tile, error) {
	for i, name := range tileNames {
		if name == s {
			return Tile(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTile, s)
}

// Set implements flag.Value.
func (t *Tile) Set(s string) error {
	v, err := ParseTile(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}
