// Package aggregate provides the generic grouped reduction primitive used by
// the analytical queries. Grouping keys and value extraction are caller
// supplied; the engine itself knows nothing about the data model.
package aggregate

import "sort"

// Value is a computed aggregate. Valid is false when no row contributed,
// which is distinct from a value of 0.
type Value struct {
	Val   float64
	Valid bool
}

// Extractor yields the numeric contribution of a row to one aggregate.
// ok=false excludes the row from this aggregate only. A non-nil error marks
// the row's field as malformed: the row is excluded from this aggregate and
// counted in Result.Skipped, other aggregates of the same pass are not
// affected.
type Extractor[R any] func(row R) (val float64, ok bool, err error)

type aggKind int

const (
	kindMean aggKind = iota
	kindSum
	kindCount
	kindMin
	kindMax
)

// Aggregation is one value computation carried out per group.
type Aggregation[R any] struct {
	kind    aggKind
	extract Extractor[R]
}

// Mean computes the arithmetic mean of the extracted values.
func Mean[R any](ex Extractor[R]) Aggregation[R] {
	return Aggregation[R]{kind: kindMean, extract: ex}
}

// Sum computes the sum of the extracted values.
func Sum[R any](ex Extractor[R]) Aggregation[R] {
	return Aggregation[R]{kind: kindSum, extract: ex}
}

// Min keeps the smallest extracted value.
func Min[R any](ex Extractor[R]) Aggregation[R] {
	return Aggregation[R]{kind: kindMin, extract: ex}
}

// Max keeps the largest extracted value.
func Max[R any](ex Extractor[R]) Aggregation[R] {
	return Aggregation[R]{kind: kindMax, extract: ex}
}

// Count counts the rows for which pred is true.
func Count[R any](pred func(R) bool) Aggregation[R] {
	return Aggregation[R]{kind: kindCount, extract: func(row R) (float64, bool, error) {
		if pred(row) {
			return 1, true, nil
		}
		return 0, false, nil
	}}
}

type Group[K comparable] struct {
	Key    K
	Values []Value
}

type Result[K comparable] struct {
	Groups []Group[K]
	// number of rows whose extractor reported a malformed field
	Skipped int
}

type sortDir int

const (
	sortNone sortDir = iota
	sortAsc
	sortDesc
)

type settings[R any] struct {
	filter  func(R) bool
	sortBy  sortDir
	sortIdx int
}

type Option[R any] func(*settings[R])

// WithFilter drops rows for which f is false before grouping.
func WithFilter[R any](f func(R) bool) Option[R] {
	return func(s *settings[R]) { s.filter = f }
}

// SortAsc orders groups ascending by the aggregate at valueIdx.
// Groups without a value for that aggregate sort last. The sort is stable,
// ties keep first-seen order.
func SortAsc[R any](valueIdx int) Option[R] {
	return func(s *settings[R]) { s.sortBy, s.sortIdx = sortAsc, valueIdx }
}

// SortDesc orders groups descending by the aggregate at valueIdx.
func SortDesc[R any](valueIdx int) Option[R] {
	return func(s *settings[R]) { s.sortBy, s.sortIdx = sortDesc, valueIdx }
}

type accu struct {
	sum float64
	cnt int
	min float64
	max float64
}

// Aggregate groups rows by key and computes the given aggregations per
// group. Groups appear in first-seen order unless a sort option is given.
func Aggregate[R any, K comparable](
	rows []R,
	key func(R) K,
	aggs []Aggregation[R],
	opts ...Option[R],
) Result[K] {
	cfg := settings[R]{}
	for _, opt := range opts {
		opt(&cfg)
	}

	groupIdx := make(map[K]int)
	order := make([]K, 0)
	accus := make(map[K][]accu)

	skipped := 0
	for i := range rows {
		row := rows[i]
		if cfg.filter != nil && !cfg.filter(row) {
			continue
		}
		k := key(row)
		if _, ok := groupIdx[k]; !ok {
			groupIdx[k] = len(order)
			order = append(order, k)
			accus[k] = make([]accu, len(aggs))
		}
		acc := accus[k]
		rowSkipped := false
		for j := range aggs {
			val, ok, err := aggs[j].extract(row)
			if err != nil {
				rowSkipped = true
				continue
			}
			if !ok {
				continue
			}
			if acc[j].cnt == 0 || val < acc[j].min {
				acc[j].min = val
			}
			if acc[j].cnt == 0 || val > acc[j].max {
				acc[j].max = val
			}
			acc[j].sum += val
			acc[j].cnt++
		}
		if rowSkipped {
			skipped++
		}
	}

	ret := Result[K]{Groups: make([]Group[K], 0, len(order)), Skipped: skipped}
	for _, k := range order {
		values := make([]Value, len(aggs))
		for j := range aggs {
			values[j] = finalize(aggs[j].kind, accus[k][j])
		}
		ret.Groups = append(ret.Groups, Group[K]{Key: k, Values: values})
	}

	if cfg.sortBy != sortNone {
		idx := cfg.sortIdx
		sort.SliceStable(ret.Groups, func(a, b int) bool {
			va, vb := ret.Groups[a].Values[idx], ret.Groups[b].Values[idx]
			if va.Valid != vb.Valid {
				return va.Valid // groups without a value go last
			}
			if !va.Valid {
				return false
			}
			if cfg.sortBy == sortAsc {
				return va.Val < vb.Val
			}
			return va.Val > vb.Val
		})
	}
	return ret
}

func finalize(kind aggKind, acc accu) Value {
	switch kind {
	case kindCount:
		return Value{Val: float64(acc.cnt), Valid: true}
	case kindMean:
		if acc.cnt == 0 {
			return Value{}
		}
		return Value{Val: acc.sum / float64(acc.cnt), Valid: true}
	case kindSum:
		if acc.cnt == 0 {
			return Value{}
		}
		return Value{Val: acc.sum, Valid: true}
	case kindMin:
		if acc.cnt == 0 {
			return Value{}
		}
		return Value{Val: acc.min, Valid: true}
	case kindMax:
		if acc.cnt == 0 {
			return Value{}
		}
		return Value{Val: acc.max, Valid: true}
	}
	return Value{}
}
