package analysis

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mpapenbr/f1-analysis-go/testsupport/basedata"
)

// repeated runs over the same store must yield identical results
func TestQueriesAreDeterministic(t *testing.T) {
	a := New(basedata.SampleStore())
	first, _ := a.AvgSectorTimes()
	for i := 0; i < 5; i++ {
		again, _ := a.AvgSectorTimes()
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("run %d differs:\n%s", i, diff)
		}
	}
}

func TestConcurrentQueries(t *testing.T) {
	a := New(basedata.SampleStore())
	wantStandings := a.SeasonStandings(2023)
	wantSectors, _ := a.AvgSectorTimes()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if diff := cmp.Diff(wantStandings, a.SeasonStandings(2023), decimalCmp); diff != "" {
				t.Errorf("standings differ:\n%s", diff)
			}
			sectors, _ := a.AvgSectorTimes()
			if diff := cmp.Diff(wantSectors, sectors); diff != "" {
				t.Errorf("sectors differ:\n%s", diff)
			}
			a.AvgPositionsGained()
			a.BestTeamRanks()
			a.LapProfile("MAX")
		}()
	}
	wg.Wait()
}
