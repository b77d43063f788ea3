package cubecodec

import "fmt"

// block must be a []float32, []float64, []int32 or []int64 matching kind.
func EncodeBlock(kind ScalarKind, dim BlockDim, block any, maxbits uint, blockIdx uint64, words []uint64) {
	switch kind {
	case KindFloat32:
		EncodeFloat32Block(block.([]float32), dim, maxbits, blockIdx, words)
	case KindFloat64:
		EncodeFloat64Block(block.([]float64), dim, maxbits, blockIdx, words)
	case KindInt32:
		EncodeInt32Block(block.([]int32), dim, maxbits, blockIdx, words)
	case KindInt64:
		EncodeInt64Block(block.([]int64), dim, maxbits, blockIdx, words)
	default:
		panic(fmt.Sprintf("cubecodec: unknown scalar kind %v", kind))
	}
}

func WordsNeeded(numBlocks int, maxbits uint) int {
	totalBits := uint64(numBlocks) * uint64(maxbits)
	return int((totalBits+wordBits-1)/wordBits) + 1
}
