// Package configuration holds the fixed settings of a sort run.
package configuration

const (
	// DefaultInputPath is the log read by logsort, relative to the working directory.
	DefaultInputPath = "log.csv"
	// DefaultOutputPath is where the sorted log is written.
	DefaultOutputPath = "sorted_log.csv"
	// DefaultDelimiter separates the fields of a row in both files.
	DefaultDelimiter = ','
)

// Configuration provides the files and field delimiter of a sort run.
type Configuration struct {
	InputPath  string
	OutputPath string
	Delimiter  rune
}

// Default returns the configuration logsort always runs with.
func Default() Configuration {
	return Configuration{
		InputPath:  DefaultInputPath,
		OutputPath: DefaultOutputPath,
		Delimiter:  DefaultDelimiter,
	}
}
