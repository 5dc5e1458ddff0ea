package limbs

// MulModBnm1NextSize returns the smallest wrap length >= n that
// MulModBnm1 accepts.
func MulModBnm1NextSize(n int) int {
	if n < 4 {
		return n
	}
	return (n + 1) &^ 1
}

// MulModBnm1ScratchLen is the scratch MulModBnm1 needs for the given lengths.
func MulModBnm1ScratchLen(rn, xn, yn int) int {
	return xn + yn
}

// MulModBnm1 sets z[:rn] = x*y mod (B^rn - 1). It requires
// 0 < len(y) <= len(x) <= rn and len(z) >= rn. The residue zero may come
// back as B^rn - 1.
func MulModBnm1(z []Limb, rn int, x, y, scratch []Limb) {
	xn, yn := len(x), len(y)
	if yn == 0 || yn > xn || xn > rn {
		panic("limbs: MulModBnm1: operand lengths out of range")
	}
	if len(z) < rn || len(scratch) < MulModBnm1ScratchLen(rn, xn, yn) {
		panic("limbs: MulModBnm1: output or scratch too short")
	}
	MustBeDisjoint(z, scratch, "MulModBnm1 result and scratch")

	p := scratch[:xn+yn]
	MulToOut(p, x, y)

	// B^rn == 1, so every rn-limb block of the product folds onto the bottom.
	r := z[:rn]
	if len(p) <= rn {
		copy(r, p)
		Clear(r[len(p):])
		return
	}
	copy(r, p[:rn])
	var c Limb
	for off := rn; off < len(p); off += rn {
		hi := p[off:]
		if len(hi) > rn {
			hi = hi[:rn]
		}
		c += AddInPlace(r, hi)
	}
	for c != 0 {
		c = AddVW(r, r, c)
	}
}
