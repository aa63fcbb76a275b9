package pool

import "sync"

// Slice pools for efficient reuse of typed scratch slices.
// Suffix sorting, LCP construction and the Markov chain DP all need
// sample-length working slices that would otherwise be reallocated on
// every estimator run.
var (
	int32SlicePool = sync.Pool{
		New: func() any { return &[]int32{} },
	}
	float64SlicePool = sync.Pool{
		New: func() any { return &[]float64{} },
	}
)

// GetInt32Slice retrieves and resizes an int32 slice from the pool.
//
// The returned slice has exactly the requested length; its contents are
// unspecified and callers that depend on zeroed memory must clear it.
// The caller must call the returned cleanup function to return the slice
// to the pool.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []int32: A slice with length equal to size
//   - func(): Cleanup function that must be called (typically with defer) to return the slice to the pool
//
// Example:
//
//	rank, cleanup := pool.GetInt32Slice(len(samples))
//	defer cleanup()
//	// Use rank slice...
func GetInt32Slice(size int) ([]int32, func()) {
	ptr, _ := int32SlicePool.Get().(*[]int32)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int32, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { int32SlicePool.Put(ptr) }
}

// GetFloat64Slice retrieves and resizes a float64 slice from the pool.
//
// The returned slice has exactly the requested length; its contents are
// unspecified and callers that depend on zeroed memory must clear it.
// The caller must call the returned cleanup function to return the slice
// to the pool.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []float64: A slice with length equal to size
//   - func(): Cleanup function that must be called (typically with defer) to return the slice to the pool
//
// Example:
//
//	logProbs, cleanup := pool.GetFloat64Slice(k * k)
//	defer cleanup()
//	// Use logProbs slice...
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]float64, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { float64SlicePool.Put(ptr) }
}
