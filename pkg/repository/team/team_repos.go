package team

import (
	"context"

	"github.com/mpapenbr/f1-analysis-go/pkg/ingest"
	"github.com/mpapenbr/f1-analysis-go/pkg/repository"
)

func LoadAll(ctx context.Context, conn repository.Querier) (
	[]*ingest.RawTeam, error,
) {
	rows, err := conn.Query(ctx,
		`select id, name, coalesce(color,'') from teams order by id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*ingest.RawTeam, 0)
	for rows.Next() {
		item := &ingest.RawTeam{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Color); err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	return ret, rows.Err()
}
