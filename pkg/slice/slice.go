// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice compliments the standard [slices] package by providing functional
programming utilities (Map, Unique) leveraging generics.
*/
package slice

// Map maps a slice of type T to a slice of type U using the provided transformation function.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// MapErr is [Map] for transformations that can fail; it stops at the first error.
func MapErr[T any, U any](input []T, transform func(T) (U, error)) ([]U, error) {
	result := make([]U, 0, len(input))
	for _, v := range input {
		u, err := transform(v)
		if err != nil {
			return nil, err
		}
		result = append(result, u)
	}

	return result, nil
}

// Unique returns the distinct elements of input in first-seen order.
func Unique[T comparable](input []T) []T {
	if input == nil {
		return nil
	}

	seen := make(map[T]struct{}, len(input))
	result := make([]T, 0, len(input))
	for _, v := range input {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}
