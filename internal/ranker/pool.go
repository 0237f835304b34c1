package ranker

import "sync"

// runIndexed fans fn out over a bounded worker pool. Each index is handled
// exactly once; result ordering is the caller's problem (the ranker restores
// it with the final sort). A pool of one runs inline.
func runIndexed(workers, total int, fn func(int)) {
	if workers <= 1 || total <= 1 {
		for i := 0; i < total; i++ {
			fn(i)
		}
		return
	}
	if workers > total {
		workers = total
	}

	indices := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				fn(i)
			}
		}()
	}

	for i := 0; i < total; i++ {
		indices <- i
	}
	close(indices)
	wg.Wait()
}
