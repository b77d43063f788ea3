package cubecodec

import "math"

type SignedInt interface {
	~int32 | ~int64
}

type Unsigned interface {
	~uint32 | ~uint64
}

type FloatTraits struct {
	Ebits     uint
	Ebias     int
	Precision uint
	MinExp    int
}

var (
	Float32Traits = FloatTraits{Ebits: 8, Ebias: 127, Precision: 32, MinExp: 1 - 127}
	Float64Traits = FloatTraits{Ebits: 11, Ebias: 1023, Precision: 64, MinExp: 1 - 1023}
	Int32Traits   = FloatTraits{Precision: 32}
	Int64Traits   = FloatTraits{Precision: 64}
)

type ScalarKind uint8

const (
	KindFloat32 ScalarKind = iota
	KindFloat64
	KindInt32
	KindInt64
)

func (k ScalarKind) String() string {
	switch k {
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	default:
		return "unknown"
	}
}

func (k ScalarKind) Traits() FloatTraits {
	switch k {
	case KindFloat32:
		return Float32Traits
	case KindFloat64:
		return Float64Traits
	case KindInt32:
		return Int32Traits
	case KindInt64:
		return Int64Traits
	default:
		return FloatTraits{}
	}
}

type BlockDim uint8

const (
	Dim1 BlockDim = 1
	Dim2 BlockDim = 2
	Dim3 BlockDim = 3
	Dim4 BlockDim = 4
)

func (d BlockDim) BlockSize() int {
	n := 1
	for i := BlockDim(0); i < d; i++ {
		n *= 4
	}
	return n
}

func (d BlockDim) Strides() []int {
	strides := make([]int, d)
	s := 1
	for i := range strides {
		strides[i] = s
		s *= 4
	}
	return strides
}

func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
