// This tool prints the header fields of the passed wav file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/wtesler/wav"
)

const missingPathMessage = "You must pass the path of the file to inspect"

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(2)
	}

	slog.Error("wavheader failed", "error", err)
	os.Exit(1)
}

var errMissingPath = errors.New("missing path argument")

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errMissingPath
	}

	for _, path := range args {
		c, err := wav.DecodeFile(path)
		if err != nil {
			if code, ok := wav.Code(err); ok {
				fmt.Fprintf(out, "%s: error %d: %v\n", path, code, err)
			}

			return fmt.Errorf("decoding %s: %w", path, err)
		}

		if len(args) > 1 {
			fmt.Fprintf(out, "%s\n", path)
		}

		fmt.Fprint(out, wav.Describe(c))
		slog.Debug("decoded", "path", path, "summary", c.String())
	}

	return nil
}
