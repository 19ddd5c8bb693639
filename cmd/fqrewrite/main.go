package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iamNilotpal/fqrewrite/config"
	"github.com/iamNilotpal/fqrewrite/internal/core/domain"
	"github.com/iamNilotpal/fqrewrite/internal/core/services/rewriter"
	"github.com/iamNilotpal/fqrewrite/pkg/errors"
	"github.com/iamNilotpal/fqrewrite/pkg/fs"
	"github.com/iamNilotpal/fqrewrite/pkg/logger"
)

const version = "0.1.0"

const usage = `Usage:
  fqrewrite [flags] <input> <output>
  fqrewrite [flags] -out-dir <dir> <input>...

Rewrites newline-delimited (FASTQ) files into gzip-compressed copies.
`

type filePair struct {
	in  string
	out string
}

func main() {
	var (
		configPath  string
		level       int
		keepPartial bool
		outDir      string
		showVersion bool
	)

	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.StringVar(&configPath, "config", "", "path to a YAML config file")
	flag.IntVar(&level, "level", 0, "gzip compression level 1-9 (0 uses config/default)")
	flag.BoolVar(&keepPartial, "keep-partial", false, "keep partial output files after a failure")
	flag.StringVar(&outDir, "out-dir", "", "rewrite every input into this directory as <name>.gz")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("fqrewrite version " + version)
		return
	}

	logger := logger.New("fqrewrite")
	defer logger.Sync()

	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			logger.Errorw("load config error", "error", err)
			os.Exit(2)
		}
		cfg = loaded
	}
	if level != 0 {
		cfg.CompressionLevel = level
	}
	if keepPartial {
		cfg.KeepPartial = true
	}

	pairs, err := filePairs(flag.Args(), outDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	rw, err := rewriter.New(&domain.RewriteOptions{
		Compression: &domain.CompressionOptions{Level: cfg.CompressionLevel},
		BufferSize:  cfg.BufferSize,
		MaxLineSize: cfg.MaxLineSize,
		KeepPartial: cfg.KeepPartial,
	})
	if err != nil {
		if errors.IsValidationError(err) {
			ve := errors.AsValidationError(err)
			logger.Errorw("create rewriter error", "field", ve.Field, "value", ve.Value, "error", ve.Err)
		} else {
			logger.Errorw("create rewriter error", "error", err)
		}
		os.Exit(2)
	}

	// Inputs are processed one after another; the first failure stops
	// the run.
	for _, pair := range pairs {
		stats, err := rw.Rewrite(context.Background(), pair.in, pair.out)
		if err != nil {
			if re := errors.AsRewriteError(err); re != nil {
				logger.Errorw("rewrite error",
					"category", re.Category.String(),
					"operation", re.Operation,
					"path", re.Path,
					"error", re.Err,
				)
			} else {
				logger.Errorw("rewrite error", "error", err)
			}
			os.Exit(1)
		}

		logger.Infow("rewrote file",
			"input", pair.in,
			"output", pair.out,
			"lines", stats.Lines,
			"bytes_read", stats.BytesRead,
			"bytes_written", stats.BytesWritten,
			"duration", stats.Duration,
		)
	}
}

// filePairs maps the positional arguments onto input/output pairs:
// either a single explicit pair, or any number of inputs rewritten
// into outDir under their own base name with a .gz suffix.
func filePairs(args []string, outDir string) ([]filePair, error) {
	if outDir == "" {
		if len(args) != 2 {
			return nil, fmt.Errorf("expected exactly 2 arguments (input, output), got %d", len(args))
		}
		return []filePair{{in: args[0], out: args[1]}}, nil
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("expected at least 1 input file with -out-dir")
	}

	if ok, err := fs.Exists(outDir); err != nil {
		return nil, fmt.Errorf("checking output directory: %w", err)
	} else if !ok {
		return nil, fmt.Errorf("output directory does not exist: %s", outDir)
	}

	pairs := make([]filePair, 0, len(args))
	for _, in := range args {
		base := strings.TrimSuffix(filepath.Base(in), ".gz")
		pairs = append(pairs, filePair{in: in, out: filepath.Join(outDir, base+".gz")})
	}
	return pairs, nil
}
