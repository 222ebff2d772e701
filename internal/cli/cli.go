package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/Utility-Gods/uwuify/pkg/types"
)

// Prompt is written before every read
const Prompt = "Enter a sentence to uwuify: "

// Option configures RunLoop
type Option func(*loopConfig)

type loopConfig struct {
	prompt   string
	theme    Theme
	themeSet bool
}

// WithPrompt replaces the default prompt text
func WithPrompt(prompt string) Option {
	return func(c *loopConfig) {
		c.prompt = prompt
	}
}

// WithTheme sets the styles used for the prompt
func WithTheme(theme Theme) Option {
	return func(c *loopConfig) {
		c.theme = theme
		c.themeSet = true
	}
}

// RunLoop prompts, reads one line from in, writes its transformation to out
// and starts over. It only returns when reading or writing fails; end of
// input is reported as an error wrapping io.EOF and the caller is expected
// to treat every returned error as fatal.
func RunLoop(in io.Reader, out io.Writer, t types.Transformer, opts ...Option) error {
	cfg := loopConfig{prompt: Prompt}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.themeSet {
		cfg.theme = DefaultTheme(out)
	}

	reader := bufio.NewReader(in)

	for {
		if _, err := fmt.Fprintln(out, cfg.theme.prompt(cfg.prompt)); err != nil {
			return fmt.Errorf("writing prompt: %w", err)
		}

		// The trailing newline stays on the line handed to the transformer.
		line, err := reader.ReadString('\n')
		if line == "" && err != nil {
			return fmt.Errorf("reading standard input: %w", err)
		}

		if _, werr := fmt.Fprintln(out, t.Transform(line)); werr != nil {
			return fmt.Errorf("writing output: %w", werr)
		}

		// A last line without a newline is printed first; EOF surfaces on the next read.
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading standard input: %w", err)
		}
	}
}
