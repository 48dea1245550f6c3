package factory

import (
	"fmt"
	"github.com/allape/spritecut/config"
	"github.com/allape/spritecut/preview"
	"path/filepath"
)

// PreviewFromConfig returns nil when the preview is disabled.
// The preview may not share the frames directory, that one holds the frames only.
func PreviewFromConfig(conf config.Config) (*preview.Options, error) {
	if !conf.Preview.Enabled {
		return nil, nil
	}

	if filepath.Clean(conf.Preview.Dir) == filepath.Clean(conf.Output.Dir) {
		return nil, fmt.Errorf("preview dir must differ from output dir: %s", conf.Output.Dir)
	}

	return &preview.Options{
		Dir:    conf.Preview.Dir,
		Prefix: conf.Sprite.Prefix,
		Speed:  conf.Preview.Speed,
		Scale:  conf.Preview.Scale,
	}, nil
}
