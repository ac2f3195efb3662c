// nmeadecode reads NMEA 0183 GNSS sentences and AIS VDM/VDO messages,
// one per line, from one or more input files (or stdin if none are
// configured), decodes each line and tallies counts by message kind.
//
// The input files are named in a JSON control file, "nmeadecode.json"
// in the current directory by default, or given as the first argument.
// For example:
//
//	{
//		"input": ["/dev/ttyUSB0"],
//		"stop_on_eof": false,
//		"display_messages": true,
//		"log_directory": "logs",
//		"health_report_cron": "0 */5 * * * *"
//	}
//
// An event log is written to a daily, datestamped file under
// log_directory. When display_messages is true, a second daily log
// receives one line per decoded message in a readable form - this is
// very verbose, so leave it off for routine running. A background job
// periodically logs the AIS fragment assembler's pending-group count,
// which should stay near zero on a healthy feed; a growing count means
// fragments are arriving damaged or out of order.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	nmea "github.com/goblimey/go-nmea-ais"
	"github.com/goblimey/go-nmea-ais/ais"
	"github.com/goblimey/go-nmea-ais/internal/config"
	"github.com/goblimey/go-tools/dailylogger"
	"github.com/goblimey/go-tools/switchWriter"
	"github.com/robfig/cron"
)

const defaultControlFileName = "./nmeadecode.json"

func main() {
	controlFileName := defaultControlFileName
	if len(os.Args) > 1 {
		controlFileName = os.Args[1]
	}

	eventLogger := getDailyLogger("logs", "nmeadecode.")

	cfg, err := config.GetConfigFromFile(controlFileName, eventLogger)
	if err != nil {
		eventLogger.Fatalf("cannot find config %s: %v", controlFileName, err)
	}
	eventLogger = getDailyLogger(cfg.LogDirectory, "nmeadecode.")

	displayWriter := switchWriter.New()
	if cfg.DisplayMessages {
		displayLog := dailylogger.New(cfg.LogDirectory, "nmeadecode.display.", ".log")
		displayWriter.SwitchTo(displayLog)
	}

	assembler := ais.NewAssembler()
	startHealthReport(cfg.HealthReportCron, assembler, eventLogger)

	// A plain file hits EOF once and StopOnEOF should be set so the
	// program reports its tally and exits. A live device such as a
	// serial USB connection produces EOF between bursts of data, so
	// StopOnEOF should be false there and the read loop runs forever,
	// re-opening the configured inputs each time they run dry.
	if cfg.StopOnEOF {
		run(cfg, assembler, displayWriter, eventLogger)
	} else {
		for {
			run(cfg, assembler, displayWriter, eventLogger)
		}
	}
}

// run opens the configured inputs, decodes every line from each in
// turn and prints the tally of message kinds seen.
func run(cfg *config.Config, assembler *ais.Assembler, display io.Writer, eventLogger *log.Logger) {
	readers, err := openInputs(cfg.Filenames)
	if err != nil {
		eventLogger.Fatalf("cannot open input: %v", err)
	}

	counts := make(map[string]int)
	for _, r := range readers {
		processStream(r, assembler, display, counts, eventLogger)
	}

	for kind, n := range counts {
		fmt.Printf("%-24s %8d\n", kind, n)
	}
}

// openInputs opens the configured input files, or falls back to
// standard input when none are configured.
func openInputs(filenames []string) ([]io.Reader, error) {
	if len(filenames) == 0 {
		return []io.Reader{os.Stdin}, nil
	}
	readers := make([]io.Reader, 0, len(filenames))
	for _, name := range filenames {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", name, err)
		}
		readers = append(readers, f)
	}
	return readers, nil
}

// processStream decodes every line in r and tallies the result kind.
func processStream(r io.Reader, assembler *ais.Assembler, display io.Writer, counts map[string]int, eventLogger *log.Logger) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		msg, err := nmea.Parse(line, assembler)
		if err != nil {
			eventLogger.Printf("%s: %v", line, err)
			counts["error"]++
			continue
		}
		kind := kindOf(msg)
		counts[kind]++
		fmt.Fprintf(display, "%s -> %s\n", line, kind)
	}
}

// kindOf names the variant of a decoded message for tallying purposes.
func kindOf(msg *nmea.ParsedMessage) string {
	switch {
	case msg.Incomplete:
		return "ais-incomplete"
	case msg.Unsupported:
		return "unsupported"
	case msg.GNSS != nil:
		return "gnss-" + string(msg.GNSS.ID)
	case msg.AIS != nil:
		return fmt.Sprintf("ais-type-%d", msg.AIS.Type)
	default:
		return "unknown"
	}
}

// startHealthReport schedules a recurring job that logs the
// assembler's pending-group count, the one piece of runtime state
// worth watching on a live feed.
func startHealthReport(spec string, assembler *ais.Assembler, eventLogger *log.Logger) {
	cr := cron.New()
	err := cr.AddFunc(spec, func() {
		eventLogger.Printf("assembler health: %d pending fragment group(s)", assembler.Pending())
	})
	if err != nil {
		eventLogger.Printf("cannot schedule health report %q: %v", spec, err)
		return
	}
	cr.Start()
}

// getDailyLogger builds a logger that writes to a rolling daily file
// with the given directory and filename prefix.
func getDailyLogger(dir, prefix string) *log.Logger {
	dailyLog := dailylogger.New(dir, prefix, ".log")
	logFlags := log.LstdFlags | log.Lshortfile | log.Lmicroseconds
	return log.New(dailyLog, "nmeadecode ", logFlags)
}
