//nolint:whitespace // can't make both editor and linter happy
package lap

import (
	"context"
	"fmt"

	"github.com/mpapenbr/f1-analysis-go/pkg/ingest"
	"github.com/mpapenbr/f1-analysis-go/pkg/repository"
)

var selector = `select id, coalesce(timestamp,''), session_id, driver_id,
	lap_number, coalesce(lap_time,''), stint,
	coalesce(sector1_time,''), coalesce(sector2_time,''),
	coalesce(sector3_time,''),
	coalesce(sector1_session_time,''), coalesce(sector2_session_time,''),
	coalesce(sector3_session_time,''),
	speed1, speed2, speedFL, speedST,
	personal_best, coalesce(compound,''), tyre_life, fresh_tyre,
	coalesce(lap_start_time,''), coalesce(lap_start_date,''),
	coalesce(track_status,''), position,
	coalesce(pit_in_time,''), coalesce(pit_out_time,'') from laps`

//nolint:funlen // wide row
func LoadAll(ctx context.Context, conn repository.Querier) (
	[]*ingest.RawLap, error,
) {
	rows, err := conn.Query(ctx, fmt.Sprintf("%s order by id", selector))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*ingest.RawLap, 0)
	for rows.Next() {
		item := &ingest.RawLap{}
		if err := rows.Scan(
			&item.ID, &item.Timestamp, &item.SessionID, &item.DriverID,
			&item.LapNumber, &item.LapTime, &item.Stint,
			&item.Sector1Time, &item.Sector2Time, &item.Sector3Time,
			&item.Sector1SessionTime, &item.Sector2SessionTime,
			&item.Sector3SessionTime,
			&item.Speed1, &item.Speed2, &item.SpeedFL, &item.SpeedST,
			&item.PersonalBest, &item.Compound, &item.TyreLife, &item.FreshTyre,
			&item.LapStartTime, &item.LapStartDate,
			&item.TrackStatus, &item.Position,
			&item.PitInTime, &item.PitOutTime); err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	return ret, rows.Err()
}
