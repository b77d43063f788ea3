package cubecodec

// +8 for every dimensionality, per the reference source; not 2*dims+2.
const precisionBias = 8

func maxPrecision(precision uint, emax, minExp int) uint {
	v := emax - minExp + precisionBias
	if v < 0 {
		v = 0
	}
	if uint(v) > precision {
		return precision
	}
	return uint(v)
}

func EncodeFloat32Block(block []float32, dim BlockDim, maxbits uint, blockIdx uint64, words []uint64) {
	w := NewBlockWriter(words, maxbits, blockIdx)
	traits := Float32Traits

	emax := maxExponentF32(block, traits.Ebias)
	maxprec := maxPrecision(traits.Precision, emax, traits.MinExp)

	e := 0
	if maxprec > 0 {
		e = emax + traits.Ebias
	}
	if e == 0 {
		return
	}
	w.WriteBits(uint64(2*e+1), traits.Ebits+1)

	iblock := fwdCastF32(block, emax, traits.Precision)
	forwardLift(iblock, dim)
	ublock := reorderInt32(iblock, dim)
	encodeBitPlanes(w, ublock, traits.Precision, maxprec)
}

func Float32BlockHeader(block []float32) (biasedExp int, ok bool) {
	traits := Float32Traits
	emax := maxExponentF32(block, traits.Ebias)
	maxprec := maxPrecision(traits.Precision, emax, traits.MinExp)
	e := 0
	if maxprec > 0 {
		e = emax + traits.Ebias
	}
	if e == 0 {
		return 0, false
	}
	return e, true
}

func Float64BlockHeader(block []float64) (biasedExp int, ok bool) {
	traits := Float64Traits
	emax := maxExponentF64(block, traits.Ebias)
	maxprec := maxPrecision(traits.Precision, emax, traits.MinExp)
	e := 0
	if maxprec > 0 {
		e = emax + traits.Ebias
	}
	if e == 0 {
		return 0, false
	}
	return e, true
}

func EncodeFloat64Block(block []float64, dim BlockDim, maxbits uint, blockIdx uint64, words []uint64) {
	w := NewBlockWriter(words, maxbits, blockIdx)
	traits := Float64Traits

	emax := maxExponentF64(block, traits.Ebias)
	maxprec := maxPrecision(traits.Precision, emax, traits.MinExp)

	e := 0
	if maxprec > 0 {
		e = emax + traits.Ebias
	}
	if e == 0 {
		return
	}
	w.WriteBits(uint64(2*e+1), traits.Ebits+1)

	iblock := fwdCastF64(block, emax, traits.Precision)
	forwardLift(iblock, dim)
	ublock := reorderInt64(iblock, dim)
	encodeBitPlanes(w, ublock, traits.Precision, maxprec)
}

func EncodeInt32Block(block []int32, dim BlockDim, maxbits uint, blockIdx uint64, words []uint64) {
	w := NewBlockWriter(words, maxbits, blockIdx)
	iblock := make([]int32, len(block))
	copy(iblock, block)
	forwardLift(iblock, dim)
	ublock := reorderInt32(iblock, dim)
	encodeBitPlanes(w, ublock, Int32Traits.Precision, Int32Traits.Precision)
}

func EncodeInt64Block(block []int64, dim BlockDim, maxbits uint, blockIdx uint64, words []uint64) {
	w := NewBlockWriter(words, maxbits, blockIdx)
	iblock := make([]int64, len(block))
	copy(iblock, block)
	forwardLift(iblock, dim)
	ublock := reorderInt64(iblock, dim)
	encodeBitPlanes(w, ublock, Int64Traits.Precision, Int64Traits.Precision)
}
