package cpp

import (
	"context"
	"errors"
	"fmt"
)

// HeaderGenerator emits the typed RMA header.
type HeaderGenerator struct{}

// Name returns the generator's identifier.
func (g *HeaderGenerator) Name() string {
	return "cpp"
}

// Render builds the header in memory.
func (g *HeaderGenerator) Render(banner string) ([]byte, []Declaration, error) {
	decls, err := Declarations()
	if err != nil {
		return nil, nil, fmt.Errorf("enumerate declarations: %w", err)
	}
	content, err := NewEmitter(banner).EmitDocument(decls)
	if err != nil {
		return nil, nil, fmt.Errorf("emit header: %w", err)
	}
	return content, decls, nil
}

// Generate renders the header and writes it to opts.Sink.
func (g *HeaderGenerator) Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	if opts.Sink == nil {
		return nil, errors.New("sink is required")
	}

	content, decls, err := g.Render(opts.Banner)
	if err != nil {
		return nil, err
	}

	if err := opts.Sink.WriteFile(ctx, HeaderFileName, content); err != nil {
		return nil, fmt.Errorf("write %s: %w", HeaderFileName, err)
	}

	return &GenerateResult{
		Files:        []OutputFile{{Path: HeaderFileName, Size: int64(len(content))}},
		Declarations: decls,
	}, nil
}
