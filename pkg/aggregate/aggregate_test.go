//nolint:funlen // ok for tests
package aggregate

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type row struct {
	key  string
	val  float64
	ok   bool
	fail bool
}

func extractVal(r row) (float64, bool, error) {
	if r.fail {
		return 0, false, errors.New("malformed")
	}
	return r.val, r.ok, nil
}

func TestAggregateFirstSeenOrder(t *testing.T) {
	rows := []row{
		{key: "b", val: 1, ok: true},
		{key: "a", val: 2, ok: true},
		{key: "b", val: 3, ok: true},
		{key: "c", val: 4, ok: true},
	}
	res := Aggregate(rows,
		func(r row) string { return r.key },
		[]Aggregation[row]{Mean(extractVal)},
	)
	want := []Group[string]{
		{Key: "b", Values: []Value{{Val: 2, Valid: true}}},
		{Key: "a", Values: []Value{{Val: 2, Valid: true}}},
		{Key: "c", Values: []Value{{Val: 4, Valid: true}}},
	}
	if diff := cmp.Diff(want, res.Groups); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}
	if res.Skipped != 0 {
		t.Errorf("Skipped = %d, want 0", res.Skipped)
	}
}

func TestAggregateKinds(t *testing.T) {
	rows := []row{
		{key: "a", val: 10, ok: true},
		{key: "a", val: 2, ok: true},
		{key: "a", val: 6, ok: true},
	}
	res := Aggregate(rows,
		func(r row) string { return r.key },
		[]Aggregation[row]{
			Mean(extractVal),
			Sum(extractVal),
			Min(extractVal),
			Max(extractVal),
			Count(func(r row) bool { return r.val > 5 }),
		},
	)
	want := []Value{
		{Val: 6, Valid: true},
		{Val: 18, Valid: true},
		{Val: 2, Valid: true},
		{Val: 10, Valid: true},
		{Val: 2, Valid: true},
	}
	if diff := cmp.Diff(want, res.Groups[0].Values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateNoContribution(t *testing.T) {
	// all rows excluded from the mean: the group still exists, the mean
	// carries no value, the count is a valid 0
	rows := []row{
		{key: "a", val: 1, ok: false},
		{key: "a", val: 2, ok: false},
	}
	res := Aggregate(rows,
		func(r row) string { return r.key },
		[]Aggregation[row]{
			Mean(extractVal),
			Count(func(r row) bool { return false }),
		},
	)
	if len(res.Groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(res.Groups))
	}
	if res.Groups[0].Values[0].Valid {
		t.Errorf("mean of excluded rows must carry no value")
	}
	if got := res.Groups[0].Values[1]; !got.Valid || got.Val != 0 {
		t.Errorf("count = %+v, want valid 0", got)
	}
	if res.Skipped != 0 {
		t.Errorf("Skipped = %d, want 0 (exclusion is not an error)", res.Skipped)
	}
}

func TestAggregateSkippedCounting(t *testing.T) {
	rows := []row{
		{key: "a", val: 1, ok: true},
		{key: "a", fail: true},
		{key: "b", fail: true},
	}
	// two aggregations over the same failing field: the row is still
	// counted once
	res := Aggregate(rows,
		func(r row) string { return r.key },
		[]Aggregation[row]{Mean(extractVal), Sum(extractVal)},
	)
	if res.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", res.Skipped)
	}
	// group b exists even though its only row was malformed
	if len(res.Groups) != 2 {
		t.Errorf("groups = %d, want 2", len(res.Groups))
	}
}

func TestAggregateSort(t *testing.T) {
	rows := []row{
		{key: "a", val: 3, ok: true},
		{key: "b", val: 1, ok: true},
		{key: "c", ok: false},
		{key: "d", val: 2, ok: true},
	}
	keyOrder := func(res Result[string]) []string {
		ret := make([]string, 0, len(res.Groups))
		for _, g := range res.Groups {
			ret = append(ret, g.Key)
		}
		return ret
	}

	asc := Aggregate(rows,
		func(r row) string { return r.key },
		[]Aggregation[row]{Mean(extractVal)},
		SortAsc[row](0),
	)
	if diff := cmp.Diff([]string{"b", "d", "a", "c"}, keyOrder(asc)); diff != "" {
		t.Errorf("asc order mismatch (-want +got):\n%s", diff)
	}

	desc := Aggregate(rows,
		func(r row) string { return r.key },
		[]Aggregation[row]{Mean(extractVal)},
		SortDesc[row](0),
	)
	if diff := cmp.Diff([]string{"a", "d", "b", "c"}, keyOrder(desc)); diff != "" {
		t.Errorf("desc order mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateSortStableTies(t *testing.T) {
	rows := []row{
		{key: "z", val: 1, ok: true},
		{key: "m", val: 1, ok: true},
		{key: "a", val: 1, ok: true},
	}
	res := Aggregate(rows,
		func(r row) string { return r.key },
		[]Aggregation[row]{Mean(extractVal)},
		SortAsc[row](0),
	)
	got := []string{res.Groups[0].Key, res.Groups[1].Key, res.Groups[2].Key}
	if diff := cmp.Diff([]string{"z", "m", "a"}, got); diff != "" {
		t.Errorf("ties must keep first-seen order (-want +got):\n%s", diff)
	}
}

func TestAggregateWithFilter(t *testing.T) {
	rows := []row{
		{key: "a", val: 1, ok: true},
		{key: "b", val: 2, ok: true},
	}
	res := Aggregate(rows,
		func(r row) string { return r.key },
		[]Aggregation[row]{Mean(extractVal)},
		WithFilter(func(r row) bool { return r.key == "b" }),
	)
	if len(res.Groups) != 1 || res.Groups[0].Key != "b" {
		t.Errorf("filtered groups = %+v, want only b", res.Groups)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	res := Aggregate([]row{},
		func(r row) string { return r.key },
		[]Aggregation[row]{Mean(extractVal)},
	)
	if len(res.Groups) != 0 || res.Skipped != 0 {
		t.Errorf("empty input: %+v", res)
	}
}
