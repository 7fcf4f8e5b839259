package oneloop

import (
	"io"
	"log/slog"
	"os"

	"github.com/kolkov/oneloop/internal/analyze"
	"github.com/kolkov/oneloop/internal/logging"
)

// Config holds configuration options for a Run.
type Config struct {
	// Input supplies the line of text (default: os.Stdin).
	// Only the first line is read.
	Input io.Reader

	// Output receives the banners, prompt, messages and report
	// (default: os.Stdout).
	Output io.Writer

	// Logger receives debug records for each pipeline stage.
	// If nil, records are discarded.
	Logger *slog.Logger

	// TopN is the number of most frequent words in the report (default: 5).
	TopN int
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.Input == nil {
		c.Input = os.Stdin
	}
	if c.Output == nil {
		c.Output = os.Stdout
	}
	if c.Logger == nil {
		c.Logger = logging.Discard()
	}
	if c.TopN <= 0 {
		c.TopN = analyze.DefaultTopN
	}
}
