// Command strata is the command-line wrapper around the strata core:
// compile textual source to SCB, decode and pretty-print SCB, hash either
// form, and format source.
//
// Exit codes: 0 success, 1 parse/decode/encode error, 2 I/O error,
// 100 internal error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	pkgerrors "github.com/pkg/errors"

	"github.com/emagjby/strata"
	"github.com/emagjby/strata/encoding"
	"github.com/emagjby/strata/errs"
	"github.com/emagjby/strata/hash"
	"github.com/emagjby/strata/wire"
)

const (
	exitOK       = 0
	exitFormat   = 1
	exitIO       = 2
	exitInternal = 100
)

// errUsage marks subcommand misuse (wrong argument count); it maps to the
// I/O exit code.
var errUsage = errors.New("usage error")

func usageErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{errUsage}, args...)...)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var (
		rootFlags = flag.NewFlagSet("strata", flag.ContinueOnError)
		debug     = rootFlags.Bool("debug", false, "enable debug logging")
	)

	var logger log.Logger
	logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

	app := &ffcli.Command{
		Name:       "strata",
		ShortUsage: "strata <subcommand> [flags] <args...>",
		ShortHelp:  "Deterministic data-interchange format tooling.",
		FlagSet:    rootFlags,
		Options:    []ff.Option{ff.WithEnvVarPrefix("STRATA")},
		Subcommands: []*ffcli.Command{
			compileCommand(),
			decodeCommand(),
			hashCommand(),
			fmtCommand(),
		},
		Exec: func(context.Context, []string) error {
			return flag.ErrHelp
		},
	}

	err := app.ParseAndRun(context.Background(), args)
	if err == nil {
		return exitOK
	}
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}

	if *debug {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}
	level.Error(logger).Log("err", err)

	return exitCodeFor(err)
}

// exitCodeFor maps the error taxonomy onto the CLI exit codes: format-level
// failures (parse, encode, decode, framing) are 1, I/O failures are 2, and
// anything unclassified is an internal error.
func exitCodeFor(err error) int {
	var parseErr *errs.ParseError
	var decodeErr *errs.DecodeError
	var encodeErr *errs.EncodeError

	switch {
	case errors.As(err, &parseErr),
		errors.As(err, &decodeErr),
		errors.As(err, &encodeErr),
		errors.Is(err, errs.ErrBadMagic),
		errors.Is(err, errs.ErrUnsupportedVersion),
		errors.Is(err, errs.ErrZeroLengthFrame),
		errors.Is(err, errs.ErrFrameTooLarge),
		errors.Is(err, errs.ErrShortFrame):
		return exitFormat
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) || errors.Is(err, errUsage) {
		return exitIO
	}

	return exitInternal
}

func compileCommand() *ffcli.Command {
	return &ffcli.Command{
		Name:       "compile",
		ShortUsage: "strata compile <input.st> <output.scb>",
		ShortHelp:  "Parse textual source and write its canonical encoding.",
		Exec: func(_ context.Context, args []string) error {
			if len(args) != 2 {
				return usageErrorf("compile wants <input.st> <output.scb>, got %d args", len(args))
			}

			src, err := os.ReadFile(args[0])
			if err != nil {
				return pkgerrors.Wrap(err, "read input")
			}

			scb, err := strata.Compile(string(src))
			if err != nil {
				return err
			}

			if err := os.WriteFile(args[1], scb, 0o644); err != nil {
				return pkgerrors.Wrap(err, "write output")
			}

			return nil
		},
	}
}

func decodeCommand() *ffcli.Command {
	var (
		flagset = flag.NewFlagSet("strata decode", flag.ContinueOnError)
		lenient = flagset.Bool("lenient", false, "accept SCB with unsorted map keys")
	)

	return &ffcli.Command{
		Name:       "decode",
		ShortUsage: "strata decode [-lenient] <input.scb>",
		ShortHelp:  "Decode SCB (framed or bare) and print the pretty form.",
		FlagSet:    flagset,
		Exec: func(_ context.Context, args []string) error {
			if len(args) != 1 {
				return usageErrorf("decode wants <input.scb>, got %d args", len(args))
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return pkgerrors.Wrap(err, "read input")
			}

			if wire.IsFramed(data) {
				data, err = wire.StripFrame(data)
				if err != nil {
					return err
				}
			}

			var opts []encoding.DecoderOption
			if *lenient {
				opts = append(opts, encoding.WithLenientKeyOrder())
			}

			v, err := encoding.Decode(data, opts...)
			if err != nil {
				return err
			}

			fmt.Println(strata.Format(v))

			return nil
		},
	}
}

func hashCommand() *ffcli.Command {
	return &ffcli.Command{
		Name:       "hash",
		ShortUsage: "strata hash <input>",
		ShortHelp:  "Print the BLAKE3 content hash as 64 hex chars. .st inputs are parsed and canonically encoded; anything else is hashed as SCB, with a STRATA1 envelope stripped first.",
		Exec: func(_ context.Context, args []string) error {
			if len(args) != 1 {
				return usageErrorf("hash wants <input>, got %d args", len(args))
			}

			input := args[0]

			if strings.HasSuffix(input, ".st") {
				src, err := os.ReadFile(input)
				if err != nil {
					return pkgerrors.Wrap(err, "read input")
				}

				v, err := strata.Parse(string(src))
				if err != nil {
					return err
				}

				hexDigest, err := strata.HashHex(v)
				if err != nil {
					return err
				}
				fmt.Println(hexDigest)

				return nil
			}

			data, err := os.ReadFile(input)
			if err != nil {
				return pkgerrors.Wrap(err, "read input")
			}

			if wire.IsFramed(data) {
				data, err = wire.StripFrame(data)
				if err != nil {
					return err
				}
			}

			digest := hash.Sum(data)
			fmt.Printf("%x\n", digest[:])

			return nil
		},
	}
}

func fmtCommand() *ffcli.Command {
	return &ffcli.Command{
		Name:       "fmt",
		ShortUsage: "strata fmt <input.st>",
		ShortHelp:  "Parse textual source and print the canonical pretty form.",
		Exec: func(_ context.Context, args []string) error {
			if len(args) != 1 {
				return usageErrorf("fmt wants <input.st>, got %d args", len(args))
			}

			src, err := os.ReadFile(args[0])
			if err != nil {
				return pkgerrors.Wrap(err, "read input")
			}

			v, err := strata.Parse(string(src))
			if err != nil {
				return err
			}

			fmt.Println(strata.Format(v))

			return nil
		},
	}
}
