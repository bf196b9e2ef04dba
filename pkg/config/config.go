package config

// this holds the resolved configuration values from CLI
var (
	DatasetFile       string // path to the lap time dataset (CSV)
	ServerAddr        string // listen addr for the HTTP API
	LogLevel          string // sets the log level (zap log level values)
	LogFormat         string // text vs json
	LogConfig         string // path to log config file
	EnableTelemetry   bool   // enable telemetry
	TelemetryEndpoint string // endpoint for telemetry
	ProfilingPort     int    // port for profiling
	AllowedOrigins    string // comma separated list of allowed CORS origins
)
