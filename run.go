package oneloop

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/kolkov/oneloop/internal/analyze"
	"github.com/kolkov/oneloop/internal/normalize"
	"github.com/kolkov/oneloop/internal/report"
)

// Status describes how a Run ended. Every status is a normal termination.
type Status int

const (
	// StatusReported means the report was printed.
	StatusReported Status = iota
	// StatusNoInput means the input line was empty.
	StatusNoInput
	// StatusNoValidText means the input normalized to the empty string.
	StatusNoValidText
)

func (s Status) String() string {
	switch s {
	case StatusReported:
		return "reported"
	case StatusNoInput:
		return "no input"
	case StatusNoValidText:
		return "no valid text"
	default:
		return "unknown"
	}
}

// Result describes a completed Run.
type Result struct {
	Status     Status
	Raw        string  // the line as read, without its terminator
	Normalized string  // empty when Status is StatusNoInput
	Report     *Report // nil unless Status is StatusReported
}

// Run executes one interactive session: it prints the welcome banner and
// prompt, reads one line from config.Input, and then either prints an
// early-exit message or the report.
//
// If config is nil, default configuration is used. The returned error is
// non-nil only for I/O failures.
func Run(config *Config) (*Result, error) {
	if config == nil {
		config = &Config{}
	}
	config.applyDefaults()
	log := config.Logger
	out := config.Output

	if err := report.WriteWelcome(out); err != nil {
		return nil, &OutputError{Err: err}
	}

	raw, err := ReadLine(config.Input)
	if err != nil {
		return nil, err
	}
	log.Debug("read input", "bytes", len(raw))

	res := &Result{Raw: raw}
	if raw == "" {
		res.Status = StatusNoInput
		log.Debug("early exit", "status", res.Status)
		if err := report.WriteNoInput(out); err != nil {
			return nil, &OutputError{Err: err}
		}
		return res, nil
	}

	res.Normalized = normalize.String(raw)
	log.Debug("normalized", "length", len(res.Normalized))
	if res.Normalized == "" {
		res.Status = StatusNoValidText
		log.Debug("early exit", "status", res.Status)
		if err := report.WriteNoValidText(out); err != nil {
			return nil, &OutputError{Err: err}
		}
		return res, nil
	}

	res.Report = analyze.Analyze(res.Normalized, config.TopN)
	log.Debug("analyzed",
		"words", res.Report.TotalWords,
		"unique", res.Report.UniqueWords,
		"avg_length", res.Report.AverageLength,
	)

	if err := report.Write(out, res.Report); err != nil {
		return nil, &OutputError{Err: err}
	}
	res.Status = StatusReported
	return res, nil
}

// ReadLine reads the first line of r without its "\n" or "\r\n" terminator.
// End of input before a terminator ends the line; end of input with nothing
// read yields the empty string.
func ReadLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", &InputError{Err: err}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
