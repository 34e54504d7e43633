package utils

// Map array of T to array of U with the provided function
func Map[T, U any](ts []T, f func(T) U) []U {
	result := make([]U, len(ts))
	for i, t := range ts {
		result[i] = f(t)
	}
	return result
}

// Create a map from array with kf providing keys, values are array elements
func ArrayToMap[T any, K comparable](ts []T, kf func(T) K) map[K]T {
	result := make(map[K]T)
	for _, t := range ts {
		result[kf(t)] = t
	}
	return result
}

func Keys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// Distinct elements of ts, first occurrence order preserved
func Distinct[T comparable](ts []T) []T {
	seen := make(map[T]struct{}, len(ts))
	result := make([]T, 0, len(ts))
	for _, t := range ts {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
	}
	return result
}
