package query

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/mpapenbr/f1-analysis-go/log"
	"github.com/mpapenbr/f1-analysis-go/pkg/aggregate"
	"github.com/mpapenbr/f1-analysis-go/pkg/analysis"
	"github.com/mpapenbr/f1-analysis-go/pkg/config"
	"github.com/mpapenbr/f1-analysis-go/pkg/db/postgres"
	"github.com/mpapenbr/f1-analysis-go/pkg/ingest"
	"github.com/mpapenbr/f1-analysis-go/pkg/repository/snapshot"
	"github.com/mpapenbr/f1-analysis-go/pkg/store"
	"github.com/mpapenbr/f1-analysis-go/pkg/timespan"
	"github.com/mpapenbr/f1-analysis-go/pkg/utils"
)

var ErrNoSource = errors.New("neither --db nor --snapshot provided")

func parseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

func setupLogger() *log.Logger {
	if config.LogConfig != "" {
		logger, err := loggerFromConfigFile()
		if err == nil {
			log.ResetDefault(logger)
			return logger
		}
		log.Warn("could not init logger from config file", log.ErrorField(err))
	}
	var logger *log.Logger
	switch config.LogFormat {
	case "json":
		logger = log.New(
			os.Stderr,
			parseLogLevel(config.LogLevel, log.InfoLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1))
	default:
		logger = log.DevLogger(
			os.Stderr,
			parseLogLevel(config.LogLevel, log.InfoLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1))
	}
	log.ResetDefault(logger)
	return logger
}

func loggerFromConfigFile() (*log.Logger, error) {
	cfg, err := log.LoadConfig(config.LogConfig)
	if err != nil {
		return nil, err
	}
	return log.NewWithConfig(os.Stderr, cfg)
}

// loadStore reads the session data either from the database or from a json
// snapshot file, depending on which source is configured. The database takes
// precedence when both are given.
func loadStore(ctx context.Context) (*store.Store, error) {
	switch {
	case config.DB != "":
		return loadFromDB(ctx)
	case config.SnapshotFile != "":
		snap, err := ingest.LoadFile(config.SnapshotFile)
		if err != nil {
			return nil, err
		}
		return snap.Normalize()
	default:
		return nil, ErrNoSource
	}
}

func loadFromDB(ctx context.Context) (*store.Store, error) {
	logger := log.GetFromContext(ctx).Named("loader")
	timeout, err := time.ParseDuration(config.WaitForServices)
	if err != nil {
		logger.Warn("Invalid duration value. Setting default 60s", log.ErrorField(err))
		timeout = 60 * time.Second
	}
	postgresAddr := utils.ExtractFromDBURL(config.DB)
	if err := utils.WaitForTCP(postgresAddr, timeout); err != nil {
		return nil, err
	}
	pool, err := postgres.InitWithURL(
		config.DB,
		postgres.WithTracer(
			log.Default(),
			parseLogLevel(config.SQLLogLevel, log.DebugLevel)))
	if err != nil {
		return nil, err
	}
	defer pool.Close()
	snap, err := snapshot.LoadAll(ctx, pool)
	if err != nil {
		return nil, err
	}
	return snap.Normalize()
}

func newAnalyzer(ctx context.Context) (*analysis.Analyzer, error) {
	st, err := loadStore(ctx)
	if err != nil {
		return nil, err
	}
	return analysis.New(st), nil
}

func renderTable(headers []string, rows [][]string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(headers)
	table.AppendBulk(rows)
	table.Render()
}

// fmtValue renders an aggregate value with the given precision, "-" when
// there is no value.
func fmtValue(v aggregate.Value, prec int) string {
	if !v.Valid {
		return "-"
	}
	return strconv.FormatFloat(v.Val, 'f', prec, 64)
}

func fmtSpan(sp timespan.Span) string {
	if !sp.Valid() {
		return "-"
	}
	return strconv.FormatFloat(sp.Seconds(), 'f', 3, 64)
}
