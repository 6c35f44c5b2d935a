package levels

import (
	"bytes"
	_ "embed"
	"math/rand"

	"github.com/pmelo/snaze/internal/maze"
)

//go:embed defaults/classic.snaze
var defaultLevelSet []byte

// Default loads the embedded classic level set, used when no level
// file is given on the command line.
func Default(rng *rand.Rand) ([]*maze.Grid, error) {
	return Load(bytes.NewReader(defaultLevelSet), rng)
}
