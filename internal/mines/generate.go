package mines

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Generator struct {
	rnd *rand.Rand
}

// NewGenerator returns a Generator drawing from r. A nil r is replaced with
// a PCG source seeded from the runtime's hash seed.
func NewGenerator(r *rand.Rand) *Generator {
	if r == nil {
		r = NewRand()
	}
	return &Generator{rnd: r}
}

func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Generate places exactly p.MineCount mines, chosen uniformly without
// replacement from the linear positions of the grid.
func (g *Generator) Generate(p GameParams) (Layout, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	width, height, mineCount := p.Unpack()

	layout := NewLayout(width, height)

	candidates := make([]int, width*height)
	for i := range candidates {
		candidates[i] = i
	}

	/*
	 * Pick n off the list at random, swapping each pick with the
	 * last live candidate so it can't be drawn again.
	 */
	k := len(candidates)
	for range mineCount {
		i := g.rnd.IntN(k)
		pos := candidates[i]
		layout[pos/width][pos%width].Mine = true
		k--
		candidates[i] = candidates[k]
	}

	Log.WithFields(logrus.Fields{
		"seed":  p.Seed(),
		"mines": mineCount,
	}).Debug("generated layout")

	return layout, nil
}
