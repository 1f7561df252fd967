package utils

import (
	"io"

	"tipovacka/logger"
)

func Map[A any, B any](input []A, mapper func(A) B) []B {
	output := make([]B, len(input))
	for i, item := range input {
		output[i] = mapper(item)
	}
	return output
}

func Filter[A any](input []A, filter func(A) bool) []A {
	output := make([]A, 0)
	for _, item := range input {
		if filter(item) {
			output = append(output, item)
		}
	}
	return output
}

// Uniques keeps the first occurrence of every item, in input order.
func Uniques[A comparable](input []A) []A {
	seen := make(map[A]bool, len(input))
	output := make([]A, 0, len(input))
	for _, item := range input {
		if !seen[item] {
			seen[item] = true
			output = append(output, item)
		}
	}
	return output
}

func ToLookup[A any, K comparable](input []A, key func(A) K) map[K]A {
	lookup := make(map[K]A, len(input))
	for _, item := range input {
		lookup[key(item)] = item
	}
	return lookup
}

func Ptr[A any](value A) *A {
	return &value
}

func Closer(c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			logger.GetLogger().WithError(err).Warn("close failed")
		}
	}
}
