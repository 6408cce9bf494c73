// This tool converts a wav file into an identical aiff file and stores
// it in the same folder as the source.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
	"github.com/orcaman/writerseeker"
	"github.com/wtesler/wav"
)

var errMissingPath = errors.New("you must set the -path flag")

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	err := run(os.Args[1:])
	if err != nil {
		slog.Error("wavtoaiff failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("wavtoaiff", flag.ContinueOnError)

	path := flagSet.String("path", "", "The path to the wav file to convert to aiff")
	output := flagSet.String("output", "", "The aiff file to write, defaults to the source path with an .aif extension")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *path == "" {
		return errMissingPath
	}

	sourcePath, err := expandHome(*path)
	if err != nil {
		return err
	}

	outPath := *output
	if outPath == "" {
		outPath = strings.TrimSuffix(sourcePath, filepath.Ext(sourcePath)) + ".aif"
	}

	c, err := wav.DecodeFile(sourcePath)
	if err != nil {
		return fmt.Errorf("invalid WAV file %s: %w", sourcePath, err)
	}

	slog.Info("decoded", "path", sourcePath, "summary", c.String())

	ws := &writerseeker.WriterSeeker{}

	err = convert(c, ws)
	if err != nil {
		return err
	}

	data, err := io.ReadAll(ws.Reader())
	if err != nil {
		return err
	}

	err = os.WriteFile(outPath, data, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	slog.Info("wav file converted", "path", outPath, "bytes", len(data))

	return nil
}

// convert writes c as an aiff stream to out.
func convert(c *wav.Container, out io.WriteSeeker) error {
	buf := aiffBuffer(c)
	if buf == nil {
		return wav.ErrNilContainer
	}

	encoder := aiff.NewEncoder(out, buf.Format.SampleRate, buf.SourceBitDepth, buf.Format.NumChannels)

	err := encoder.Write(buf)
	if err != nil {
		return fmt.Errorf("failed to write audio buffer: %w", err)
	}

	return encoder.Close()
}

// aiffBuffer returns the samples of c as aiff expects them. AIFF stores 8-bit
// samples signed while wav stores them unsigned.
func aiffBuffer(c *wav.Container) *audio.IntBuffer {
	buf := c.IntBuffer()
	if buf == nil {
		return nil
	}

	if buf.SourceBitDepth == 8 {
		for i, v := range buf.Data {
			buf.Data[i] = v - 128
		}
	}

	return buf
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get the user home directory: %w", err)
	}

	return filepath.Join(home, path[2:]), nil
}
