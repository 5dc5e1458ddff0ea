package natural

import "math/big"

const maxUint64 = 1<<64 - 1

var maxBigUint64 = new(big.Int).SetUint64(maxUint64)
