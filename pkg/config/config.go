package config

// this holds the resolved configuration values from CLI
var (
	DB              string // connection string for the database
	SnapshotFile    string // path to a json snapshot file (alternative to --db)
	WaitForServices string // duration to wait for other services to be ready
	LogLevel        string // sets the log level (zap log level values)
	SQLLogLevel     string // sets the log level for sql subsystem
	LogFormat       string // text vs json
	LogConfig       string // path to log config file
)
