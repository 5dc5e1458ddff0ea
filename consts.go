package natural

import (
	"math/big"

	"github.com/shabbyrobe/go-natural/internal/limbs"
)

const (
	// MaxLimb is the largest value a single Limb can hold.
	MaxLimb = limbs.Max
)

var (
	Zero = Natural{}
	One  = Natural{small: 1}

	big0 = new(big.Int)
	big1 = new(big.Int).SetInt64(1)
)
