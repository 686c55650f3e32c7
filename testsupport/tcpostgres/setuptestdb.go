//nolint:errcheck // testsetup
package tcpostgres

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go/wait"

	database "github.com/mpapenbr/f1-analysis-go/pkg/db/postgres"
)

// create a pg connection pool for the session test database
func SetupTestDB() *pgxpool.Pool {
	ctx := context.Background()
	port, err := nat.NewPort("tcp", "5432")
	if err != nil {
		log.Fatal(err)
	}
	container, err := SetupPostgres(ctx,
		WithPort(port.Port()),
		WithInitialDatabase("postgres", "password", "postgres"),
		WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
		WithName("f1-analysis-test"),
	)
	if err != nil {
		log.Fatal(err)
	}
	containerPort, _ := container.MappedPort(ctx, port)
	host, _ := container.Host(ctx)
	dbURL := fmt.Sprintf("postgresql://postgres:password@%s:%s/postgres",
		host, containerPort.Port())

	pool, err := database.InitWithURL(dbURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := createSchema(ctx, pool); err != nil {
		log.Fatal(err)
	}
	return pool
}

func ClearTelemetryTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from telemetry")
}

func ClearLapTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from laps")
}

func ClearWeatherTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from weather")
}

func ClearResultTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from results")
}

func ClearSessionTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from sessions")
}

func ClearDriverTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from drivers")
}

func ClearTeamTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from teams")
}

func ClearCircuitTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from corners")
	pool.Exec(context.Background(), "delete from marshal_lights")
	pool.Exec(context.Background(), "delete from marshal_sectors")
	pool.Exec(context.Background(), "delete from circuits")
}

func ClearAllTables(pool *pgxpool.Pool) {
	ClearTelemetryTable(pool)
	ClearLapTable(pool)
	ClearWeatherTable(pool)
	ClearResultTable(pool)
	ClearSessionTable(pool)
	ClearDriverTable(pool)
	ClearTeamTable(pool)
	ClearCircuitTable(pool)
}
