package cubecodec

func encodeBitPlanes[U Unsigned](w *BlockWriter, u []U, intprec, maxprec uint) {
	if maxprec == 0 {
		return
	}
	size := len(u)
	kmin := uint(0)
	if intprec > maxprec {
		kmin = intprec - maxprec
	}

	bit := func(i int, k uint) uint64 {
		return uint64((u[i] >> k) & 1)
	}

	n := 0
	for k := int(intprec) - 1; k >= int(kmin) && !w.Exhausted(); k-- {
		kk := uint(k)

		m := n
		if r := int(w.remaining()); m > r {
			m = r
		}
		for i := 0; i < m; i++ {
			w.WriteBit(bit(i, kk))
		}

		for n < size && !w.Exhausted() {
			significant := uint64(0)
			for i := n; i < size; i++ {
				if bit(i, kk) != 0 {
					significant = 1
					break
				}
			}
			w.WriteBit(significant)
			if significant == 0 {
				break
			}

			found := false
			for n < size-1 && !w.Exhausted() {
				b := bit(n, kk)
				w.WriteBit(b)
				n++
				if b != 0 {
					found = true
					break
				}
			}
			if !found && n == size-1 {
				// last survivor is implied significant, no bit spent naming it
				n++
			}
		}
	}
}
