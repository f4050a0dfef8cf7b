package check

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/rocshmem/shmemgen/cmd/rmagen/internal/banner"
	"github.com/rocshmem/shmemgen/rmagen"
)

type Cmd struct {
	Out string `arg:"" help:"Directory containing the generated header." type:"path"`

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

	err = rmagen.New().Banner(text).WithLogger(logger).Check(context.Background(), outDir)
	if errors.Is(err, rmagen.ErrStale) {
		return fmt.Errorf("%w\n\nRegenerate with:\n\n    rmagen gen %s", err, c.Out)
	}
	if err != nil {
		return err
	}

	fmt.Println("✓ Header is up to date")
	return nil
}
