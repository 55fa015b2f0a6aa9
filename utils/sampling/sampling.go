// Package sampling implements shuffle and sampling helpers on top of a
// bounded-integer function, typically a generator's Uint32Range method.
//
// The theoretical output space of a permutation grows with n!, so the
// population size should be chosen carefully to make sure the function
// output space covers a big chunk of the theoretical outputs.
package sampling

import "fmt"

// BoundedUint32Fn returns a uniform integer in [min, max). It matches
// the Uint32Range method of random.Rand.
type BoundedUint32Fn func(min, max uint64) (uint32, error)

// Shuffle permutes an ordered data structure of size n in place through
// the provided swap function.
//
// It implements Fisher-Yates Shuffle. O(1) space and O(n) time.
func Shuffle(n int, intn BoundedUint32Fn, swap func(i, j int)) error {
	if n < 0 {
		return fmt.Errorf("population size cannot be negative")
	}
	for i := n - 1; i > 0; i-- {
		j, err := intn(0, uint64(i+1))
		if err != nil {
			return err
		}
		swap(i, int(j))
	}
	return nil
}

// Permutation returns a permutation of the set [0,n-1].
//
// It implements the inside-out variant of Fisher-Yates Shuffle.
// O(n) space and O(n) time.
func Permutation(n int, intn BoundedUint32Fn) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("population size cannot be negative")
	}
	items := make([]int, n)
	for i := 0; i < n; i++ {
		j, err := intn(0, uint64(i+1))
		if err != nil {
			return nil, err
		}
		items[i] = items[j]
		items[j] = i
	}
	return items, nil
}

// SubPermutation returns the m first elements of a permutation of
// [0,n-1].
func SubPermutation(n int, m int, intn BoundedUint32Fn) ([]int, error) {
	if m < 0 {
		return nil, fmt.Errorf("sample size cannot be negative")
	}
	if n < m {
		return nil, fmt.Errorf("sample size (%d) cannot be larger than entire population (%d)", m, n)
	}
	// condition n >= 0 is enforced by Permutation
	items, err := Permutation(n, intn)
	if err != nil {
		return nil, err
	}
	return items[:m], nil
}

// Samples picks m random ordered elements of a data structure of size n
// and places them at indices 0 to m-1 with in-place swapping. The data
// structure ends up being a permutation of the initial n elements; only
// the first m are a uniform sample.
//
// It implements the first m elements of Fisher-Yates Shuffle.
// O(1) space and O(m) time.
func Samples(n int, m int, intn BoundedUint32Fn, swap func(i, j int)) error {
	if m < 0 {
		return fmt.Errorf("sample size cannot be negative")
	}
	if n < m {
		return fmt.Errorf("sample size (%d) cannot be larger than entire population (%d)", m, n)
	}
	for i := 0; i < m; i++ {
		j, err := intn(0, uint64(n-i))
		if err != nil {
			return err
		}
		swap(i, i+int(j))
	}
	return nil
}

// ShuffleString returns a permutation of the characters of s.
func ShuffleString(s string, intn BoundedUint32Fn) (string, error) {
	runes := []rune(s)
	err := Shuffle(len(runes), intn, func(i, j int) {
		runes[i], runes[j] = runes[j], runes[i]
	})
	if err != nil {
		return "", err
	}
	return string(runes), nil
}
