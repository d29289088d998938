package interconnect

import (
	"os"

	"github.com/OpenTraceLab/switchgen/pkg/topology"
	"github.com/pkg/errors"
)

// Generate reads the topology at configPath and writes the interconnect
// module to outputPath. The output file is only created once the
// configuration has loaded.
func Generate(configPath, outputPath string, opts ...Option) error {
	cfg, err := topology.LoadFile(configPath)
	if err != nil {
		return err
	}
	return WriteFile(outputPath, cfg, opts...)
}

// WriteFile renders cfg into the file at path, replacing its contents. A
// failure while writing can leave the file truncated.
func WriteFile(path string, cfg *topology.Config, opts ...Option) error {
	gc, err := newConfig(opts)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "interconnect: create output")
	}

	if err := render(f, cfg, gc); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "interconnect: close output")
}
