package snapshot

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1-analysis-go/log"
	"github.com/mpapenbr/f1-analysis-go/pkg/config"
	"github.com/mpapenbr/f1-analysis-go/pkg/db/postgres"
	"github.com/mpapenbr/f1-analysis-go/pkg/ingest"
	snapshotRepo "github.com/mpapenbr/f1-analysis-go/pkg/repository/snapshot"
	"github.com/mpapenbr/f1-analysis-go/pkg/utils"
)

var outFile string

func NewSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "manage json snapshots of the database",
	}

	cmd.AddCommand(NewDumpCmd())

	return cmd
}

func NewDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "dump the database content to a json snapshot file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return dumpSnapshot(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&outFile, "out", "o", "snapshot.json", "output file")
	return cmd
}

func parseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

func dumpSnapshot(ctx context.Context) error {
	logger := log.New(
		os.Stderr,
		parseLogLevel(config.LogLevel, log.InfoLevel),
		log.WithCaller(true),
		log.AddCallerSkip(1))
	log.ResetDefault(logger)

	timeout, err := time.ParseDuration(config.WaitForServices)
	if err != nil {
		logger.Warn("Invalid duration value. Setting default 60s", log.ErrorField(err))
		timeout = 60 * time.Second
	}
	postgresAddr := utils.ExtractFromDBURL(config.DB)
	if err := utils.WaitForTCP(postgresAddr, timeout); err != nil {
		return err
	}
	pool, err := postgres.InitWithURL(
		config.DB,
		postgres.WithTracer(logger, parseLogLevel(config.SQLLogLevel, log.DebugLevel)))
	if err != nil {
		return err
	}
	defer pool.Close()

	snap, err := snapshotRepo.LoadAll(ctx, pool)
	if err != nil {
		return err
	}
	if err := ingest.WriteFile(outFile, snap); err != nil {
		return err
	}
	log.Info("snapshot written",
		log.String("file", outFile),
		log.Int("sessions", len(snap.Sessions)),
		log.Int("laps", len(snap.Laps)),
		log.Int("telemetry", len(snap.Telemetry)))
	return nil
}
