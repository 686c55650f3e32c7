//nolint:whitespace // can't make both editor and linter happy
package driver

import (
	"context"
	"fmt"

	"github.com/mpapenbr/f1-analysis-go/pkg/ingest"
	"github.com/mpapenbr/f1-analysis-go/pkg/repository"
)

var selector = `select id, name, coalesce(broadcast_name,''), driver_number,
	abbrevation, coalesce(country,''), coalesce(first_name,''),
	coalesce(last_name,'') from drivers`

func LoadAll(ctx context.Context, conn repository.Querier) (
	[]*ingest.RawDriver, error,
) {
	rows, err := conn.Query(ctx, fmt.Sprintf("%s order by id", selector))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*ingest.RawDriver, 0)
	for rows.Next() {
		item := &ingest.RawDriver{}
		if err := rows.Scan(&item.ID, &item.Name, &item.BroadcastName,
			&item.Number, &item.Abbrev, &item.Country, &item.FirstName,
			&item.LastName); err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	return ret, rows.Err()
}
