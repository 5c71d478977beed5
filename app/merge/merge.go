package merge

import (
	"fmt"
	"sort"
	"strings"
)

// Policy picks which of several rows sharing a key survives.
type Policy string

const (
	KeepFirst Policy = "keep-first"
	KeepLast  Policy = "keep-last"
)

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return KeepFirst, nil
	case KeepFirst, KeepLast:
		return p, nil
	default:
		return "", fmt.Errorf("unknown dedup policy %q (want %q or %q)", s, KeepFirst, KeepLast)
	}
}

// Concat appends tables in argument order.
func Concat[T any](tables ...[]T) []T {
	total := 0
	for _, table := range tables {
		total += len(table)
	}

	out := make([]T, 0, total)
	for _, table := range tables {
		out = append(out, table...)
	}
	return out
}

// Dedup keeps one row per key. Survivors stay at their original positions.
// Rows whose key is absent are never collapsed.
func Dedup[T any](rows []T, key func(T) (string, bool), policy Policy) []T {
	if len(rows) == 0 {
		return rows
	}

	winners := make(map[string]int, len(rows))
	keep := make([]int, 0, len(rows))

	for i, row := range rows {
		k, ok := key(row)
		if !ok {
			keep = append(keep, i)
			continue
		}

		switch policy {
		case KeepLast:
			winners[k] = i
		default:
			if _, exists := winners[k]; !exists {
				winners[k] = i
			}
		}
	}

	for _, i := range winners {
		keep = append(keep, i)
	}
	sort.Ints(keep)

	out := make([]T, 0, len(keep))
	for _, i := range keep {
		out = append(out, rows[i])
	}
	return out
}

// Run concatenates the tables and dedups the result.
func Run[T any](key func(T) (string, bool), policy Policy, tables ...[]T) []T {
	return Dedup(Concat(tables...), key, policy)
}
