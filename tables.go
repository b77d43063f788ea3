package cubecodec

import "sync"

var (
	permOnce  sync.Once
	permCache map[BlockDim][]int
)

func coordSum(idx int, strides []int) int {
	sum := 0
	for _, s := range strides {
		sum += (idx / s) % 4
	}
	return sum
}

func buildPerm(dim BlockDim) []int {
	n := dim.BlockSize()
	strides := dim.Strides()
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sums := make([]int, n)
	for i := range idx {
		sums[i] = coordSum(i, strides)
	}
	for i := 1; i < n; i++ {
		j := i
		for j > 0 && (sums[idx[j-1]] > sums[idx[j]] ||
			(sums[idx[j-1]] == sums[idx[j]] && idx[j-1] > idx[j])) {
			idx[j-1], idx[j] = idx[j], idx[j-1]
			j--
		}
	}
	return idx
}

func permFor(dim BlockDim) []int {
	permOnce.Do(func() {
		permCache = make(map[BlockDim][]int, 4)
		for _, d := range []BlockDim{Dim1, Dim2, Dim3, Dim4} {
			permCache[d] = buildPerm(d)
		}
	})
	return permCache[dim]
}
