// Package batch partitions a work list into fixed-size batches for staged
// progress reporting.
package batch

// Split partitions items into ordered batches of at most size elements,
// preserving input order. The last batch may be short. Zero items yields
// zero batches. A non-positive size yields zero batches; callers validate
// size before reaching this point.
func Split[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return nil
	}

	batches := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[start:end:end])
	}
	return batches
}
