package cfg

type Cfg struct {
	// Input and output
	DataDir    string
	ConfigPath string
	Selected   []string

	// Optional sinks
	SQLitePath  string
	MetricsFile string

	// Application metadata
	Debug   bool
	Version string
}
