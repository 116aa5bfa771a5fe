// Neighborhood aggregation strategies
package core

import "sort"

// WeightedSum convolves n with k: the kernel is applied flipped, and the
// sum is divided by the kernel weight total when that total is positive.
// Alpha is taken from the center pixel.
func WeightedSum(n Neighborhood, k Kernel) Pixel {
	if len(k) == 0 {
		return n.Center()
	}
	a, b := len(k), len(k[0])
	var out Pixel
	for i := 0; i < a; i++ {
		for j := 0; j < b; j++ {
			w := k[a-1-i][b-1-j]
			p := n[i][j]
			out[R] += p[R] * w
			out[G] += p[G] * w
			out[B] += p[B] * w
		}
	}

	if sum := k.Sum(); sum > 0 {
		out[R] /= sum
		out[G] /= sum
		out[B] /= sum
	}
	out[A] = n.Center()[A]
	return out
}

// MedianAggregate takes the per-channel median of R, G and B over the
// whole neighborhood. Alpha is taken from the center pixel.
func MedianAggregate(n Neighborhood, _ Kernel) Pixel {
	count := len(n) * len(n[0])
	values := make([][]float64, 3)
	for c := range values {
		values[c] = make([]float64, 0, count)
	}
	for _, r := range n {
		for _, p := range r {
			values[R] = append(values[R], p[R])
			values[G] = append(values[G], p[G])
			values[B] = append(values[B], p[B])
		}
	}
	return Pixel{Median(values[R]), Median(values[G]), Median(values[B]), n.Center()[A]}
}

// Median returns the middle value of values, or the mean of the two middle
// values for an even count. values is sorted in place.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 0 {
		return (values[mid-1] + values[mid]) / 2
	}
	return values[mid]
}
