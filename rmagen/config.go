package rmagen

import (
	"context"
	_ "embed"
	"log/slog"
)

// DefaultBanner is the license block placed at the top of the header when the
// caller does not supply one.
//
//go:embed banner.txt
var DefaultBanner string

// Generator provides a fluent API for header generation.
//
// Example:
//
//	rmagen.New().
//	    Banner(license).
//	    WithManifest().
//	    ToDir(ctx, "./library/include/rocshmem")
type Generator struct {
	cfg Config
}

// New creates a Generator that uses DefaultBanner.
func New() *Generator {
	return &Generator{cfg: Config{Banner: DefaultBanner}}
}

// Banner replaces the banner. An empty string emits no banner.
func (g *Generator) Banner(banner string) *Generator {
	g.cfg.Banner = banner
	return g
}

// WithManifest enables the YAML symbol manifest.
func (g *Generator) WithManifest() *Generator {
	g.cfg.EmitManifest = true
	return g
}

// WithLogger sets the logger used for progress events.
func (g *Generator) WithLogger(logger *slog.Logger) *Generator {
	g.cfg.Logger = logger
	return g
}

// ToDir generates files into dir, replacing any existing header.
// This is a terminal operation that writes files to disk.
func (g *Generator) ToDir(ctx context.Context, dir string) (*GenerateResult, error) {
	cfg := g.cfg
	cfg.OutDir = dir
	if dir == "" {
		return nil, errOutDirRequired
	}
	return Generate(ctx, &cfg)
}

// Generate returns generated files in memory without writing to disk.
// Use ToDir() to write files to disk instead.
func (g *Generator) Generate(ctx context.Context) (*GenerateResult, error) {
	cfg := g.cfg
	cfg.OutDir = ""
	return Generate(ctx, &cfg)
}

// Check reports whether the header in dir matches a fresh generation.
// It returns an error wrapping ErrStale when it does not.
func (g *Generator) Check(ctx context.Context, dir string) error {
	cfg := g.cfg
	cfg.OutDir = dir
	if dir == "" {
		return errOutDirRequired
	}
	return Check(ctx, &cfg)
}
