//nolint:whitespace // can't make both editor and linter happy
package telemetry

import (
	"context"
	"fmt"

	"github.com/mpapenbr/f1-analysis-go/pkg/ingest"
	"github.com/mpapenbr/f1-analysis-go/pkg/repository"
)

var selector = `select id, lap_id, coalesce(time,''), coalesce(date,''),
	rpm, speed, ngear, throttle, brake, drs, distance,
	driver_ahead, dist_to_driver_ahead, rel_dist, coalesce(status,''),
	x, y, z from telemetry`

func LoadAll(ctx context.Context, conn repository.Querier) (
	[]*ingest.RawTelemetry, error,
) {
	rows, err := conn.Query(ctx, fmt.Sprintf("%s order by id", selector))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*ingest.RawTelemetry, 0)
	for rows.Next() {
		item := &ingest.RawTelemetry{}
		if err := rows.Scan(&item.ID, &item.LapID, &item.Time, &item.Date,
			&item.RPM, &item.Speed, &item.Gear, &item.Throttle, &item.Brake,
			&item.DRS, &item.Distance,
			&item.DriverAhead, &item.DistToDriverAhead, &item.RelDistance,
			&item.Status, &item.X, &item.Y, &item.Z); err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	return ret, rows.Err()
}
