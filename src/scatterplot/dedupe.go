package scatterplot

// hasDuplicates reports whether the sorted xs contain repeated values.
func hasDuplicates(xs []float64) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] == xs[i-1] {
			return true
		}
	}
	return false
}

// dedupe collapses runs of equal x in the sorted input into a single point
// whose y is the arithmetic mean of the run. When collapse is not wanted or
// there is nothing to collapse, the input slices are returned unchanged, so
// the operation is idempotent.
func dedupe(xs, ys []float64, want bool) (fx, fy []float64, collapsed bool) {
	if !want || !hasDuplicates(xs) {
		return xs, ys, false
	}
	fx = make([]float64, 0, len(xs))
	fy = make([]float64, 0, len(ys))
	for i := 0; i < len(xs); {
		j := i + 1
		sum := ys[i]
		for j < len(xs) && xs[j] == xs[i] {
			sum += ys[j]
			j++
		}
		fx = append(fx, xs[i])
		fy = append(fy, sum/float64(j-i))
		i = j
	}
	return fx, fy, true
}
