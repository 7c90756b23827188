package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/peterbourgon/ff/v3/ffyaml"

	"code.selman.me/macocr/internal/imagefile"
	"code.selman.me/macocr/internal/ocr"
	"code.selman.me/macocr/internal/output"
)

var errorPrefix = color.New(color.FgRed, color.Bold)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := realMain(
		ctx,
		os.Args,
		os.Stdout,
		os.Stderr,
		ocr.New,
	); err != nil {
		errorPrefix.Fprint(os.Stderr, "Error: ")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type recognizerFunc func(*slog.Logger) (ocr.Recognizer, error)

func realMain(
	ctx context.Context,
	args []string,
	stdout io.Writer,
	stderr io.Writer,
	newRecognizer recognizerFunc,
) error {
	exec := args[0]

	fs := flag.NewFlagSet(exec, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		flagJSON          bool
		flagVersion       bool
		flagFast          bool
		flagFix           bool
		flagDebug         bool
		flagMinTextHeight fractionFlag
		flagCustomWords   wordFileFlag
	)

	fs.BoolVar(&flagJSON, "j", false, "output in JSON format (shorthand)")
	fs.BoolVar(&flagJSON, "json", false, "output in JSON format")
	fs.BoolVar(&flagVersion, "version", false, "print the recognizer revision and exit")
	fs.BoolVar(&flagFast, "fast", false, "use fast recognition (default: accurate)")
	fs.BoolVar(&flagFix, "fix", false, "enable language correction (default: off)")
	fs.Var(&flagMinTextHeight, "min-text-height", "minimum text height relative to the image height (0-1)")
	fs.Var(&flagCustomWords, "custom-word-file", "load custom words from `file`, one per line")
	fs.BoolVar(&flagDebug, "debug", false, "log debug information to stderr")
	_ = fs.String("config", "", "read flag values from a YAML `file`")

	rootCmd := &ffcli.Command{
		Name:       exec,
		ShortUsage: fmt.Sprintf("%v [flags] <image> [dst]", exec),
		ShortHelp:  "Recognize text in an image",
		LongHelp: "Prints the recognized text, one observation per line, or writes it to dst.\n" +
			"Every flag can also be set with a MACOCR_ prefixed environment variable.",
		FlagSet: fs,
		Options: []ff.Option{
			ff.WithEnvVarPrefix("MACOCR"),
			ff.WithConfigFileFlag("config"),
			ff.WithConfigFileParser(ffyaml.Parser),
		},
		Exec: func(ctx context.Context, args []string) error {
			level := slog.LevelWarn
			if flagDebug {
				level = slog.LevelDebug
			}
			logger := slog.New(
				slog.NewTextHandler(
					stderr,
					&slog.HandlerOptions{Level: level},
				),
			)

			if flagVersion {
				rec, err := newRecognizer(logger)
				if err != nil {
					return err
				}

				fmt.Fprintln(stdout, rec.Revision())
				return nil
			}

			if len(args) < 1 || len(args) > 2 {
				fs.Usage()
				return errors.New("expected an image path and an optional destination path")
			}

			src := args[0]
			var target output.Target
			if len(args) == 2 {
				target.Path = args[1]
			}

			opts := ocr.Options{
				Level:              ocr.LevelAccurate,
				LanguageCorrection: flagFix,
				MinTextHeight:      flagMinTextHeight.Fraction(),
				CustomWords:        flagCustomWords.words,
			}
			if flagFast {
				opts.Level = ocr.LevelFast
			}

			format := output.FormatPlain
			if flagJSON {
				format = output.FormatJSON
			}

			logger.Debug("resolved options",
				"level", opts.Level,
				"language_correction", opts.LanguageCorrection,
				"min_text_height", flagMinTextHeight.String(),
				"custom_words", len(opts.CustomWords),
				"format", format,
				"target", target,
			)

			img, err := imagefile.Load(src)
			if err != nil {
				return err
			}

			logger.Debug("loaded image",
				"path", img.Path,
				"format", img.Format,
				"width", img.Width(),
				"height", img.Height(),
				"size", humanize.Bytes(uint64(img.Size)),
			)

			rec, err := newRecognizer(logger)
			if err != nil {
				return err
			}

			observations, err := rec.Recognize(ctx, img.Pixels, opts)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}

				logger.Warn("text recognition failed, no text reported",
					"revision", rec.Revision(),
					"err", err,
				)
				observations = nil
			}

			logger.Debug("recognized text", "observations", len(observations))

			text := output.Render(format, observations, img.Width(), img.Height())
			if err := target.Write(stdout, text); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}

			return nil
		},
	}

	err := rootCmd.ParseAndRun(ctx, args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}

	return err
}
