// Package snapshot composes the per-entity repositories into one full
// snapshot load.
package snapshot

import (
	"context"

	"github.com/mpapenbr/f1-analysis-go/pkg/ingest"
	"github.com/mpapenbr/f1-analysis-go/pkg/repository"
	"github.com/mpapenbr/f1-analysis-go/pkg/repository/circuit"
	"github.com/mpapenbr/f1-analysis-go/pkg/repository/driver"
	"github.com/mpapenbr/f1-analysis-go/pkg/repository/lap"
	"github.com/mpapenbr/f1-analysis-go/pkg/repository/result"
	"github.com/mpapenbr/f1-analysis-go/pkg/repository/session"
	"github.com/mpapenbr/f1-analysis-go/pkg/repository/team"
	"github.com/mpapenbr/f1-analysis-go/pkg/repository/telemetry"
	"github.com/mpapenbr/f1-analysis-go/pkg/repository/weather"
)

// LoadAll reads the complete schema content into its raw snapshot form.
func LoadAll(ctx context.Context, conn repository.Querier) (
	*ingest.Snapshot, error,
) {
	ret := &ingest.Snapshot{}
	var err error
	if ret.Circuits, err = circuit.LoadAll(ctx, conn); err != nil {
		return nil, err
	}
	if ret.Drivers, err = driver.LoadAll(ctx, conn); err != nil {
		return nil, err
	}
	if ret.Teams, err = team.LoadAll(ctx, conn); err != nil {
		return nil, err
	}
	if ret.Sessions, err = session.LoadAll(ctx, conn); err != nil {
		return nil, err
	}
	if ret.Results, err = result.LoadAll(ctx, conn); err != nil {
		return nil, err
	}
	if ret.Laps, err = lap.LoadAll(ctx, conn); err != nil {
		return nil, err
	}
	if ret.Weather, err = weather.LoadAll(ctx, conn); err != nil {
		return nil, err
	}
	if ret.Telemetry, err = telemetry.LoadAll(ctx, conn); err != nil {
		return nil, err
	}
	return ret, nil
}
