//nolint:whitespace // can't make both editor and linter happy
package circuit

import (
	"context"
	"fmt"

	"github.com/mpapenbr/f1-analysis-go/pkg/ingest"
	"github.com/mpapenbr/f1-analysis-go/pkg/repository"
)

var selector = `select id, name, rotation from circuits`

func LoadAll(ctx context.Context, conn repository.Querier) (
	[]*ingest.RawCircuit, error,
) {
	rows, err := conn.Query(ctx, fmt.Sprintf("%s order by id", selector))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*ingest.RawCircuit, 0)
	for rows.Next() {
		item := &ingest.RawCircuit{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Rotation); err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, c := range ret {
		if c.Corners, err = loadMarkers(ctx, conn, "corners", c.ID); err != nil {
			return nil, err
		}
		if c.MarshalLights, err = loadMarkers(
			ctx, conn, "marshal_lights", c.ID); err != nil {
			return nil, err
		}
		if c.MarshalSectors, err = loadMarkers(
			ctx, conn, "marshal_sectors", c.ID); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func loadMarkers(
	ctx context.Context, conn repository.Querier, table string, circuitID int,
) ([]ingest.RawMarker, error) {
	rows, err := conn.Query(ctx, fmt.Sprintf(`
	select x, y, number, coalesce(letter,''), angle, distance
	from %s where circuit_id=$1 order by distance`, table),
		circuitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]ingest.RawMarker, 0)
	for rows.Next() {
		item := ingest.RawMarker{}
		if err := rows.Scan(&item.X, &item.Y, &item.Number, &item.Letter,
			&item.Angle, &item.Distance); err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	return ret, rows.Err()
}
