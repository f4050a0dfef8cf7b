// Package banner resolves the header banner from command-line flags.
package banner

import (
	"errors"
	"fmt"
	"os"

	"github.com/rocshmem/shmemgen/rmagen"
)

// Flags selects the banner placed at the top of the header.
// Embed it in a kong command with `embed:""`.
type Flags struct {
	BannerFile string `help:"File whose content is copied verbatim above the include guard." type:"existingfile" name:"banner-file" short:"b"`
	NoBanner   bool   `help:"Emit no banner." name:"no-banner"`
}

// Resolve returns the banner text: the file's content, nothing, or the
// built-in license block.
func (f *Flags) Resolve() (string, error) {
	if f.NoBanner && f.BannerFile != "" {
		return "", errors.New("--banner-file and --no-banner are mutually exclusive")
	}
	if f.NoBanner {
		return "", nil
	}
	if f.BannerFile == "" {
		return rmagen.DefaultBanner, nil
	}
	data, err := os.ReadFile(f.BannerFile)
	if err != nil {
		return "", fmt.Errorf("read banner: %w", err)
	}
	return string(data), nil
}
