package cubecodec

import "math"

func exponentF32(x float32, ebias int) int {
	return exponentF64(float64(x), ebias)
}

func exponentF64(x float64, ebias int) int {
	if x <= 0 {
		return -ebias
	}
	_, exp := math.Frexp(x)
	e := exp - 1
	if e < 1-ebias {
		return 1 - ebias
	}
	return e
}

func maxExponentF32(block []float32, ebias int) int {
	max := float32(0)
	for _, v := range block {
		a := v
		if a < 0 {
			a = -a
		}
		if max < a {
			max = a
		}
	}
	return exponentF32(max, ebias)
}

func maxExponentF64(block []float64, ebias int) int {
	max := 0.0
	for _, v := range block {
		a := v
		if a < 0 {
			a = -a
		}
		if max < a {
			max = a
		}
	}
	return exponentF64(max, ebias)
}

func quantizeFactor(precision uint, emax int) float64 {
	return math.Ldexp(1, int(precision)-2-emax)
}

func fwdCastF32(block []float32, emax int, precision uint) []int32 {
	factor := quantizeFactor(precision, emax)
	out := make([]int32, len(block))
	for i, v := range block {
		out[i] = int32(float64(v) * factor)
	}
	return out
}

func fwdCastF64(block []float64, emax int, precision uint) []int64 {
	factor := quantizeFactor(precision, emax)
	out := make([]int64, len(block))
	for i, v := range block {
		out[i] = int64(v * factor)
	}
	return out
}
