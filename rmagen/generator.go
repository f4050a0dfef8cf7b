// Package rmagen generates the rocSHMEM typed RMA device header.
package rmagen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/rocshmem/shmemgen/rmagen/cpp"
	"github.com/rocshmem/shmemgen/rmagen/ir"
	"github.com/rocshmem/shmemgen/rmagen/sink"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrStale is returned by Check when the header on disk differs from a fresh
// generation, or does not exist.
var ErrStale = errors.New("generated header is stale")

var errOutDirRequired = errors.New("OutDir is required")

// Config holds the configuration for header generation.
type Config struct {
	// OutDir is the directory the header is written to. It must already exist.
	// Empty means generate in memory only.
	// e.g. "./library/include/rocshmem"
	OutDir string `validate:"omitempty,max=4096"`

	// Banner is copied verbatim to the top of the header, typically a
	// license comment. It may be empty.
	Banner string `validate:"max=65536"`

	// EmitManifest also writes a YAML list of every generated symbol.
	EmitManifest bool

	// Logger receives progress events. Defaults to slog.Default().
	Logger *slog.Logger `validate:"-"`
}

// GenerateResult contains the generated files and declaration metadata.
type GenerateResult struct {
	// Files holds every generated file, header first.
	Files []File

	// Declarations lists every declaration unit in header order.
	Declarations []cpp.Declaration
}

// File is a generated file with its content.
type File struct {
	Path    string
	Content []byte
}

// Header returns the generated header content.
func (r *GenerateResult) Header() []byte {
	for _, f := range r.Files {
		if f.Path == cpp.HeaderFileName {
			return f.Content
		}
	}
	return nil
}

// Generate renders the header (and optional manifest). When cfg.OutDir is set,
// the files are written there; otherwise they are only returned.
func Generate(ctx context.Context, cfg *Config) (*GenerateResult, error) {
	cfg = applyConfigDefaults(cfg)
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if errs := ir.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("axis tables: %w", errors.Join(errs...))
	}

	cfg.Logger.DebugContext(ctx, "generation started",
		slog.String("out_dir", cfg.OutDir),
		slog.Int("banner_bytes", len(cfg.Banner)),
	)

	mem := sink.NewMemorySink()
	gen := &cpp.HeaderGenerator{}
	out, err := gen.Generate(ctx, cpp.GenerateOptions{Sink: mem, Banner: cfg.Banner})
	if err != nil {
		return nil, fmt.Errorf("failed to generate header: %w", err)
	}

	result := &GenerateResult{
		Files:        []File{{Path: cpp.HeaderFileName, Content: mem.Get(cpp.HeaderFileName)}},
		Declarations: out.Declarations,
	}

	if cfg.EmitManifest {
		content, err := BuildManifest(out.Declarations).Marshal()
		if err != nil {
			return nil, fmt.Errorf("failed to build manifest: %w", err)
		}
		result.Files = append(result.Files, File{Path: ManifestFileName, Content: content})
	}

	if cfg.OutDir == "" {
		return result, nil
	}

	fsSink := sink.NewFilesystemSink(cfg.OutDir)
	for _, f := range result.Files {
		if err := fsSink.WriteFile(ctx, f.Path, f.Content); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", f.Path, err)
		}
		cfg.Logger.InfoContext(ctx, "file written",
			slog.String("path", f.Path),
			slog.Int("bytes", len(f.Content)),
		)
	}
	cfg.Logger.InfoContext(ctx, "header generated",
		slog.String("out_dir", cfg.OutDir),
		slog.Int("prototypes", 2*len(result.Declarations)),
	)

	return result, nil
}

// Check regenerates the header in memory and compares it byte-for-byte with
// the file in cfg.OutDir. It returns ErrStale when they differ or the file is missing.
func Check(ctx context.Context, cfg *Config) error {
	if cfg.OutDir == "" {
		return errOutDirRequired
	}

	mem := *cfg
	mem.OutDir = ""
	mem.EmitManifest = false
	result, err := Generate(ctx, &mem)
	if err != nil {
		return err
	}

	logger := applyConfigDefaults(cfg).Logger
	current, err := sink.NewFilesystemSink(cfg.OutDir).ReadFile(cpp.HeaderFileName)
	if errors.Is(err, fs.ErrNotExist) {
		logger.WarnContext(ctx, "header missing", slog.String("out_dir", cfg.OutDir))
		return fmt.Errorf("%w: %s does not exist", ErrStale, cpp.HeaderFileName)
	}
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	if !bytes.Equal(current, result.Header()) {
		logger.WarnContext(ctx, "header is stale", slog.String("out_dir", cfg.OutDir))
		return fmt.Errorf("%w: %s differs from generated output", ErrStale, cpp.HeaderFileName)
	}

	logger.InfoContext(ctx, "header up to date", slog.String("out_dir", cfg.OutDir))
	return nil
}

// applyConfigDefaults applies default values to Config.
func applyConfigDefaults(cfg *Config) *Config {
	// Make a copy to avoid mutating the input
	result := *cfg

	if result.Logger == nil {
		result.Logger = slog.Default()
	}

	return &result
}
