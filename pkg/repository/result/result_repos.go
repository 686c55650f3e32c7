//nolint:whitespace // can't make both editor and linter happy
package result

import (
	"context"
	"fmt"

	"github.com/mpapenbr/f1-analysis-go/pkg/ingest"
	"github.com/mpapenbr/f1-analysis-go/pkg/repository"
)

var selector = `select id, driver_id, team_id, session_id, position,
	coalesce(classified_position,''), grid_position,
	coalesce(q1,''), coalesce(q2,''), coalesce(q3,''), coalesce(time,''),
	coalesce(status,''), points, laps from results`

func LoadAll(ctx context.Context, conn repository.Querier) (
	[]*ingest.RawResult, error,
) {
	rows, err := conn.Query(ctx, fmt.Sprintf("%s order by id", selector))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*ingest.RawResult, 0)
	for rows.Next() {
		item := &ingest.RawResult{}
		if err := rows.Scan(&item.ID, &item.DriverID, &item.TeamID,
			&item.SessionID, &item.Position, &item.ClassifiedPosition,
			&item.GridPosition, &item.Q1, &item.Q2, &item.Q3, &item.Time,
			&item.Status, &item.Points, &item.Laps); err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	return ret, rows.Err()
}
