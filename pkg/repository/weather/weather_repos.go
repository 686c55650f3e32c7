//nolint:whitespace // can't make both editor and linter happy
package weather

import (
	"context"
	"fmt"

	"github.com/mpapenbr/f1-analysis-go/pkg/ingest"
	"github.com/mpapenbr/f1-analysis-go/pkg/repository"
)

var selector = `select id, session_id, coalesce(timestamp,''), air_temp,
	humidity, pressure, rainfall, track_temp, wind_direction, wind_speed
	from weather`

func LoadAll(ctx context.Context, conn repository.Querier) (
	[]*ingest.RawWeather, error,
) {
	rows, err := conn.Query(ctx, fmt.Sprintf("%s order by id", selector))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*ingest.RawWeather, 0)
	for rows.Next() {
		item := &ingest.RawWeather{}
		if err := rows.Scan(&item.ID, &item.SessionID, &item.Timestamp,
			&item.AirTemp, &item.Humidity, &item.Pressure, &item.Rainfall,
			&item.TrackTemp, &item.WindDirection, &item.WindSpeed); err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	return ret, rows.Err()
}
