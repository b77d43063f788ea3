package cubecodec

// reorderInt32 permutes a transformed integer block into frequency
// order and maps each coefficient through the negabinary bijection:
// ublock[i] = int_to_uint(iblock[perm[i]]).
func reorderInt32(iblock []int32, dim BlockDim) []uint32 {
	perm := permFor(dim)
	out := make([]uint32, len(iblock))
	for i, p := range perm {
		out[i] = intToUint32(iblock[p])
	}
	return out
}

func reorderInt64(iblock []int64, dim BlockDim) []uint64 {
	perm := permFor(dim)
	out := make([]uint64, len(iblock))
	for i, p := range perm {
		out[i] = intToUint64(iblock[p])
	}
	return out
}
