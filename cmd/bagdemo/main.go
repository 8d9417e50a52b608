package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/rdeusser/bag/bag"
	"github.com/rdeusser/bag/config"
	"github.com/rdeusser/bag/zappretty"
)

func main() {
	fs := pflag.NewFlagSet("bagdemo", pflag.ContinueOnError)
	config.RegisterFlags(fs)

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := zappretty.New(cfg.LoggerOptions())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(os.Stdout, cfg, logger); err != nil {
		logger.Error("bagdemo failed", zap.Error(err))
		os.Exit(1)
	}
}

type operation struct {
	heading string
	name    string
	fn      func(a, b bag.Interface[string]) bag.Interface[string]
}

var operations = []operation{
	{
		heading: "Creating a union...",
		name:    "union",
		fn: func(a, b bag.Interface[string]) bag.Interface[string] {
			return a.Union(b)
		},
	},
	{
		heading: "Creating an intersection...",
		name:    "intersection",
		fn: func(a, b bag.Interface[string]) bag.Interface[string] {
			return a.Intersection(b)
		},
	},
	{
		heading: "Creating a difference...",
		name:    "difference",
		fn: func(a, b bag.Interface[string]) bag.Interface[string] {
			return a.Difference(b)
		},
	},
}

func run(w io.Writer, cfg *config.Config, logger *zap.Logger) error {
	left, err := cfg.Left.Build()
	if err != nil {
		return fmt.Errorf("building left bag: %w", err)
	}

	right, err := cfg.Right.Build()
	if err != nil {
		return fmt.Errorf("building right bag: %w", err)
	}

	logger.Debug("bags built",
		zap.Stringer("leftKind", cfg.Left.Kind),
		zap.Array("left", bag.Entries(left)),
		zap.Stringer("rightKind", cfg.Right.Kind),
		zap.Array("right", bag.Entries(right)),
	)

	heading := color.New(color.FgCyan, color.Bold)

	for _, op := range operations {
		result := op.fn(left, right)

		if _, err := heading.Fprintln(w, op.heading); err != nil {
			return err
		}

		if _, err := fmt.Fprintln(w, bag.Format(result.ToSlice())); err != nil {
			return err
		}

		logger.Info(op.name,
			zap.Int("length", result.Length()),
			zap.Array("entries", bag.Entries(result)),
		)
	}

	return nil
}
