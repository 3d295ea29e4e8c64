package parallel

// bandsPerWorker oversubscribes the pool so that stealing can even out
// bands whose rows cost different amounts (search depth varies with how
// close a row runs to the coverage boundary).
const bandsPerWorker = 4

// ForEachBand splits [0, n) into contiguous bands and calls fn(lo, hi) for
// each band on the pool, returning when all bands are done.
//
// A nil pool runs fn(0, n) on the calling goroutine.
func ForEachBand(p *WorkerPool, n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if p == nil || p.Workers() == 1 || n == 1 {
		fn(0, n)
		return
	}

	bands := min(n, p.Workers()*bandsPerWorker)
	size := (n + bands - 1) / bands

	work := make([]func(), 0, bands)
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		work = append(work, func() { fn(lo, hi) })
	}

	p.ExecuteAll(work)
}
