package gen

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/rocshmem/shmemgen/cmd/rmagen/internal/banner"
	"github.com/rocshmem/shmemgen/rmagen"
)

type Cmd struct {
	Out      string `arg:"" help:"Existing output directory for the generated header." type:"path"`
	Manifest bool   `help:"Also write a YAML manifest of the generated symbols." short:"m"`

	banner.Flags `embed:""`
}

func (c *Cmd) Run(logger *slog.Logger) error {
	text, err := c.Flags.Resolve()
	if err != nil {
		return err
	}

	outDir, err := filepath.Abs(c.Out)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	g := rmagen.New().Banner(text).WithLogger(logger)
	if c.Manifest {
		g = g.WithManifest()
	}

	result, err := g.ToDir(context.Background(), outDir)
	if err != nil {
		return err
	}

	for _, f := range result.Files {
		fmt.Println(filepath.Join(outDir, f.Path))
	}
	return nil
}
