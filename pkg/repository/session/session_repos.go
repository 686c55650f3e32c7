//nolint:whitespace // can't make both editor and linter happy
package session

import (
	"context"
	"fmt"

	"github.com/mpapenbr/f1-analysis-go/pkg/ingest"
	"github.com/mpapenbr/f1-analysis-go/pkg/repository"
)

var selector = `select id, event_name, session_name, coalesce(date,''),
	circuit_id from sessions`

func LoadAll(ctx context.Context, conn repository.Querier) (
	[]*ingest.RawSession, error,
) {
	rows, err := conn.Query(ctx, fmt.Sprintf("%s order by id", selector))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*ingest.RawSession, 0)
	for rows.Next() {
		item := &ingest.RawSession{}
		if err := rows.Scan(&item.ID, &item.EventName, &item.SessionName,
			&item.Date, &item.CircuitID); err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	return ret, rows.Err()
}
