// This tool writes a mono sine wave to a PCM wav file.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/wtesler/wav"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	err := run(os.Args[1:])
	if err != nil {
		slog.Error("gen-sine failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-sine", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	length := flagSet.Float64("length", 5, "length in seconds of output file")
	rate := flagSet.Int("rate", 48000, "sample rate in hertz")
	bits := flagSet.Int("bits", 16, "bits per sample: 8, 16 or 32")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *rate <= 0 {
		return fmt.Errorf("invalid sample rate %d", *rate)
	}

	if *length < 0 {
		return fmt.Errorf("invalid length %f", *length)
	}

	slog.Info("generating sine", "seconds", *length, "hz", *frequency, "rate", *rate, "bits", *bits)

	buf := &audio.Float32Buffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: *rate},
		Data:   sine(*frequency, *rate, int(float64(*rate)**length)),
	}

	c, err := wav.NewFromFloat32Buffer(buf, *bits)
	if err != nil {
		return err
	}

	err = wav.EncodeFile(*output, c)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", *output, err)
	}

	slog.Info("wrote file", "path", *output, "bytes", c.Riff.ChunkSize+8, "duration", c.Duration())

	return nil
}

func sine(frequency float64, rate, numSamples int) []float32 {
	out := make([]float32, numSamples)
	for i := range out {
		out[i] = float32(math.Sin(float64(i) / float64(rate) * frequency * 2 * math.Pi))
	}

	return out
}
