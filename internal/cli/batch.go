package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/Utility-Gods/uwuify/pkg/types"
	"github.com/briandowns/spinner"
)

// RunBatch transforms every line of in and writes the results to out without
// prompting. Line endings are kept as they are. End of input is the normal
// way out; it returns the number of lines transformed.
func RunBatch(in io.Reader, out io.Writer, t types.Transformer) (int, error) {
	reader := bufio.NewReader(in)
	count := 0

	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			if _, werr := io.WriteString(out, t.Transform(line)); werr != nil {
				return count, fmt.Errorf("writing output: %w", werr)
			}
			count++
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return count, nil
			}
			return count, fmt.Errorf("reading input: %w", err)
		}
	}
}

// TransformFile runs RunBatch over the file at path, showing a spinner on
// stderr while it works.
func TransformFile(path string, out io.Writer, t types.Transformer) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer f.Close()

	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " Uwuifying " + path + "..."
	s.Start()

	count, err := RunBatch(f, out, t)
	s.Stop()
	if err != nil {
		return count, fmt.Errorf("error transforming %s: %w", path, err)
	}

	log.Printf("Transformed %d lines from %s", count, path)
	return count, nil
}
