package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/rocshmem/shmemgen/cmd/rmagen/internal/check"
	"github.com/rocshmem/shmemgen/cmd/rmagen/internal/gen"
)

type CLI struct {
	Verbose bool `help:"Log generation details to stderr." short:"v"`

	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     gen.Cmd    `cmd:"" help:"Generate the rocSHMEM RMA_X header."`
	Check   check.Cmd  `cmd:"" help:"Verify a generated header is up to date without writing files."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("rmagen"),
		kong.Description("Generator for the rocSHMEM typed RMA device header."),
		kong.UsageOnError(),
	)
	err := ctx.Run(newLogger(cli.Verbose))
	ctx.FatalIfErrorf(err)
}
