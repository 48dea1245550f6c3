package factory

import (
	"github.com/allape/spritecut/config"
	"github.com/allape/spritecut/sprite"
)

func ExtractorFromConfig(conf config.Config) (*sprite.Extractor, error) {
	encoder, err := EncoderFromConfig(conf)
	if err != nil {
		return nil, err
	}

	return sprite.New(&sprite.Options{
		Src:        conf.Sprite.Src,
		OutputDir:  conf.Output.Dir,
		Prefix:     conf.Sprite.Prefix,
		Concurrent: conf.Output.Concurrent,
		Encoder:    encoder,
	}), nil
}
