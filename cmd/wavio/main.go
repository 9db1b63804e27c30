// SPDX-License-Identifier: EPL-2.0

// Command wavio inspects WAV files and converts decoded audio into PCM WAV
// files of a chosen sample width.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/ik5/wavio"
	"github.com/ik5/wavio/audio"
	"github.com/ik5/wavio/formats/aiff"
	"github.com/ik5/wavio/formats/mp3"
	"github.com/ik5/wavio/formats/vorbis"
	"github.com/ik5/wavio/formats/wav"
	"github.com/ik5/wavio/pcm"
)

const (
	QuietFlag = "quiet"
	WidthFlag = "width"
	ScaleFlag = "scale"
	ClipFlag  = "clip"

	readBufSize = 4096
)

type runner struct {
	logger    *zap.Logger
	registry  *audio.Registry
	newLogger func(quiet bool) (*zap.Logger, error)
}

func newRunner() *runner {
	return &runner{
		registry:  newRegistry(),
		newLogger: buildLogger,
	}
}

func newRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	return r
}

func buildLogger(quiet bool) (*zap.Logger, error) {
	if quiet {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

func (r *runner) app(stdout io.Writer) *cli.App {
	return &cli.App{
		Name:      "wavio",
		Usage:     "read, inspect and write PCM WAV files",
		Writer:    stdout,
		ErrWriter: stdout,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    QuietFlag,
				Aliases: []string{"q"},
				Usage:   "Disable logging",
			},
		},
		Before: func(cCtx *cli.Context) error {
			logger, err := r.newLogger(cCtx.Bool(QuietFlag))
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			r.logger = logger
			return nil
		},
		After: func(*cli.Context) error {
			if r.logger != nil {
				_ = r.logger.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "info",
				Usage:     "Print the layout and sample range of a WAV file",
				ArgsUsage: "FILE",
				Action:    r.info,
			},
			{
				Name:      "convert",
				Usage:     "Decode an audio file and write it as PCM WAV",
				ArgsUsage: "IN OUT.wav",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  WidthFlag,
						Value: int(pcm.Width16),
						Usage: "Output sample width in bytes (1, 2, 3 or 4)",
					},
					&cli.StringFlag{
						Name:  ScaleFlag,
						Value: "none",
						Usage: `Amplitude scale: "none", "auto" or a positive number`,
					},
					&cli.StringFlag{
						Name:  ClipFlag,
						Value: pcm.ClipWarn.String(),
						Usage: `Clip policy: "ignore", "warn" or "raise"`,
					},
				},
				Action: r.convert,
			},
			{
				Name:  "formats",
				Usage: "List the input formats convert accepts",
				Action: func(cCtx *cli.Context) error {
					for _, f := range r.registry.Formats() {
						fmt.Fprintln(cCtx.App.Writer, f)
					}
					return nil
				},
			},
		},
	}
}

func (r *runner) info(cCtx *cli.Context) error {
	if cCtx.Args().Len() != 1 {
		return fmt.Errorf("info: expected 1 argument, got %d", cCtx.Args().Len())
	}
	path := cCtx.Args().First()

	w, err := wavio.ReadFile(path)
	if err != nil {
		return err
	}

	out := cCtx.App.Writer
	h := w.Header()
	fmt.Fprintln(out, w)
	fmt.Fprintf(out, "channels:  %d\n", h.Channels)
	fmt.Fprintf(out, "width:     %s\n", h.SampleWidth)
	fmt.Fprintf(out, "rate:      %d Hz\n", h.FrameRate)
	fmt.Fprintf(out, "frames:    %d\n", h.FrameCount)
	fmt.Fprintf(out, "duration:  %s\n", h.Duration())

	if h.FrameCount == 0 {
		return nil
	}

	data := pcm.Convert[float64](w.Data)
	for ch := range h.Channels {
		col := data.Column(ch)
		fmt.Fprintf(out, "channel %d: min %d max %d\n", ch, int64(floats.Min(col)), int64(floats.Max(col)))
	}

	r.logger.Debug("read wav file", zap.String("path", path), zap.Stringer("header", h))

	return nil
}

func (r *runner) convert(cCtx *cli.Context) error {
	if cCtx.Args().Len() != 2 {
		return fmt.Errorf("convert: expected 2 arguments, got %d", cCtx.Args().Len())
	}
	in, outPath := cCtx.Args().Get(0), cCtx.Args().Get(1)

	scale, err := pcm.ParseScale(cCtx.String(ScaleFlag))
	if err != nil {
		return err
	}

	clip, err := pcm.ParseClipPolicy(cCtx.String(ClipFlag))
	if err != nil {
		return err
	}

	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(in), "."))
	if format == "" {
		return fmt.Errorf("%w: %s has no extension", audio.ErrUnknownFormat, in)
	}

	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	src, err := r.registry.Decode(format, f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", in, err)
	}
	defer src.Close()

	samples, err := audio.ReadAll(src, readBufSize)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", in, err)
	}

	opts := wavio.Options{
		Scale:       scale,
		SampleWidth: pcm.Width(cCtx.Int(WidthFlag)),
		Clip:        clip,
		Logger:      r.logger.With(zap.String("input", in)),
	}
	if err := wavio.WriteFile(outPath, samples, src.SampleRate(), opts); err != nil {
		return err
	}

	r.logger.Info("converted",
		zap.String("input", in),
		zap.String("output", outPath),
		zap.Int("frames", samples.Frames()),
		zap.Int("channels", samples.Channels()),
		zap.Int("rate", src.SampleRate()),
		zap.Stringer("width", opts.SampleWidth),
		zap.Stringer("scale", scale),
	)

	return nil
}

func main() {
	r := newRunner()
	if err := r.app(os.Stdout).Run(os.Args); err != nil {
		if r.logger != nil {
			r.logger.Error("wavio failed", zap.Error(err))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
