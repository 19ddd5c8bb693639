// Package rewriter implements the FASTQ file transcoder: it streams a
// newline-delimited input file into a gzip-compressed copy, line by
// line, and surfaces every I/O failure as a typed error naming the
// boundary that failed.
package rewriter

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"time"

	"go.uber.org/multierr"

	"github.com/iamNilotpal/fqrewrite/internal/adapters/compression"
	localfs "github.com/iamNilotpal/fqrewrite/internal/adapters/fs"
	"github.com/iamNilotpal/fqrewrite/internal/core/domain"
	"github.com/iamNilotpal/fqrewrite/internal/core/ports"
	"github.com/iamNilotpal/fqrewrite/pkg/errors"
	"github.com/iamNilotpal/fqrewrite/pkg/pool"
)

// Gzip container magic bytes (RFC 1952), used to detect already
// compressed input.
var gzipMagic = []byte{0x1f, 0x8b}

var newline = []byte{'\n'}

// Rewriter copies newline-delimited files into gzip-compressed copies.
// A single instance holds no per-operation state, so one Rewriter may
// serve concurrent Rewrite calls on disjoint file pairs. Concurrent
// calls targeting the same output path race with last-writer-wins
// semantics and are the caller's responsibility to avoid.
type Rewriter struct {
	options    *domain.RewriteOptions
	fs         ports.FileSystemPort  // Handles file open/create/remove.
	compressor ports.CompressionPort // Handles the gzip encoding/decoding.
	bufferPool *pool.BufferPool      // Reusable scanner buffers across calls.
}

// New creates a Rewriter with the provided options. Zero-valued or nil
// option fields take defaults; invalid values yield a ValidationError.
func New(opts *domain.RewriteOptions) (*Rewriter, error) {
	opts = prepareDefaults(opts)
	if err := Validate(opts); err != nil {
		return nil, err
	}

	compressor, err := compression.NewGzipCompression(opts.Compression)
	if err != nil {
		return nil, err
	}

	return &Rewriter{
		options:    opts,
		compressor: compressor,
		fs:         localfs.NewLocalFileSystem(),
		bufferPool: pool.NewBufferPool(int(opts.BufferSize)),
	}, nil
}

// Rewrite reads the file at inputPath and writes a gzip-compressed
// copy of it to outputPath, one line at a time. Each input line is
// emitted followed by a single '\n'; a trailing line without a final
// newline is still terminated in the output, and a CR preceding the
// newline is stripped. Input that is itself gzip-compressed is
// transparently decompressed first.
//
// The output file is created only after the input has been opened, so
// a missing input never leaves a stray empty output behind. On any
// failure the partially written output is invalid and is removed
// unless KeepPartial is set. The context is checked between lines;
// cancellation aborts like any other failure.
func (r *Rewriter) Rewrite(ctx context.Context, inputPath, outputPath string) (*domain.RewriteStats, error) {
	start := time.Now()

	in, err := r.fs.Open(inputPath)
	if err != nil {
		return nil, errors.NewRewriteError(domain.ErrorOpenInput, "open", inputPath, err)
	}

	src, closeIn, err := r.openSource(in, inputPath)
	if err != nil {
		_ = in.Close()
		return nil, err
	}
	defer func() { _ = closeIn() }()

	out, err := r.fs.Create(outputPath)
	if err != nil {
		return nil, errors.NewRewriteError(domain.ErrorOpenOutput, "create", outputPath, err)
	}

	bw := bufio.NewWriterSize(out, int(r.options.BufferSize))
	cw := &countingWriter{w: bw}

	zw, err := r.compressor.NewWriter(cw)
	if err != nil {
		r.discard(out, outputPath)
		return nil, errors.NewRewriteError(domain.ErrorOpenOutput, "encoder", outputPath, err)
	}

	reads := &countingReader{r: src}
	sc := bufio.NewScanner(reads)

	buf := r.bufferPool.Get()
	defer r.bufferPool.Put(buf)
	sc.Buffer(buf, int(r.options.MaxLineSize))

	var lines uint64
	for sc.Scan() {
		select {
		case <-ctx.Done():
			_ = zw.Close()
			r.discard(out, outputPath)
			return nil, errors.NewRewriteError(domain.ErrorReadLine, "cancelled", inputPath, ctx.Err())
		default:
		}

		if _, err := zw.Write(sc.Bytes()); err != nil {
			_ = zw.Close()
			r.discard(out, outputPath)
			return nil, errors.NewRewriteError(domain.ErrorWriteLine, "write", outputPath, err)
		}
		if _, err := zw.Write(newline); err != nil {
			_ = zw.Close()
			r.discard(out, outputPath)
			return nil, errors.NewRewriteError(domain.ErrorWriteLine, "write", outputPath, err)
		}
		lines++
	}

	if err := sc.Err(); err != nil {
		_ = zw.Close()
		r.discard(out, outputPath)
		return nil, errors.NewRewriteError(domain.ErrorReadLine, "scan", inputPath, err)
	}

	// Finalize: flush the encoder and write the gzip trailer, then
	// drain the buffered writer down to the file.
	if err := multierr.Combine(zw.Close(), bw.Flush(), out.Close()); err != nil {
		if !r.options.KeepPartial {
			_ = r.fs.Remove(outputPath)
		}
		return nil, errors.NewRewriteError(domain.ErrorWriteLine, "finalize", outputPath, err)
	}

	return &domain.RewriteStats{
		Lines:        lines,
		BytesRead:    reads.n,
		BytesWritten: cw.n,
		Duration:     time.Since(start),
	}, nil
}

// openSource wraps the input file in a buffered reader and, when the
// file starts with the gzip magic bytes, in a gzip decoder as well.
// The returned closer releases the decoder and the file.
func (r *Rewriter) openSource(in *os.File, inputPath string) (io.Reader, func() error, error) {
	br := bufio.NewReaderSize(in, int(r.options.BufferSize))

	sig, err := br.Peek(2)
	if err != nil || !bytes.Equal(sig, gzipMagic) {
		// Too short to carry a gzip header, or plain text: copy as is.
		return br, in.Close, nil
	}

	zr, err := r.compressor.NewReader(br)
	if err != nil {
		return nil, nil, errors.NewRewriteError(domain.ErrorReadLine, "decode", inputPath, err)
	}
	return zr, func() error { return multierr.Append(zr.Close(), in.Close()) }, nil
}

// discard closes and removes a partial output file after a failure.
// Removal is best effort and skipped when KeepPartial is set.
func (r *Rewriter) discard(out *os.File, path string) {
	_ = out.Close()
	if !r.options.KeepPartial {
		_ = r.fs.Remove(path)
	}
}

// countingWriter tracks compressed bytes handed to the underlying
// writer, including the gzip header and trailer.
type countingWriter struct {
	w io.Writer
	n uint64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += uint64(n)
	return n, err
}

// countingReader tracks uncompressed bytes consumed from the input.
type countingReader struct {
	r io.Reader
	n uint64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += uint64(n)
	return n, err
}
