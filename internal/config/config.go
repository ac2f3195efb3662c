// Package config provides support for reading a JSON configuration file
// in a standard format for the nmeadecode command.
//
// An example config file:
//
//	{
//		"input": ["/dev/ttyUSB0", "/dev/ttyACM0"],
//		"stop_on_eof": true,
//		"display_messages": false,
//		"log_directory": ".",
//		"health_report_cron": "0 */5 * * * *"
//	}
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
)

// Config holds the values read from the JSON control file.
type Config struct {
	// Filenames is a list of input files, all of which are opened and
	// read in turn. An empty list means read from standard input.
	Filenames []string `json:"input"`

	// StopOnEOF controls whether the decoder stops at end of file. When
	// reading from a serial device it should be false.
	StopOnEOF bool `json:"stop_on_eof"`

	// DisplayMessages turns on a verbose per-line decode trace, written
	// to a daily display log under LogDirectory.
	DisplayMessages bool `json:"display_messages"`

	// LogDirectory is the directory for the daily event log.
	LogDirectory string `json:"log_directory"`

	// HealthReportCron is a cron schedule (robfig/cron format) on which
	// the assembler's pending-fragment count is logged.
	HealthReportCron string `json:"health_report_cron"`
}

// GetConfigFromFile reads and parses a JSON config file. It logs and
// returns an error if the file can't be opened or parsed; eventLog may
// be nil, in which case errors are only returned, not logged.
func GetConfigFromFile(filename string, eventLog *log.Logger) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		if eventLog != nil {
			eventLog.Printf("cannot open config file %s: %v", filename, err)
		}
		return nil, fmt.Errorf("opening config file %s: %w", filename, err)
	}
	defer file.Close()

	return GetConfigFromReader(file, eventLog)
}

// GetConfigFromReader parses a JSON config document from r.
func GetConfigFromReader(r io.Reader, eventLog *log.Logger) (*Config, error) {
	var c Config
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&c); err != nil {
		if eventLog != nil {
			eventLog.Printf("cannot parse config: %v", err)
		}
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if c.LogDirectory == "" {
		c.LogDirectory = "."
	}
	if c.HealthReportCron == "" {
		c.HealthReportCron = "0 */5 * * * *"
	}
	return &c, nil
}
