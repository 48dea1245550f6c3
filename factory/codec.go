package factory

import (
	"fmt"
	"github.com/allape/spritecut/config"
	"github.com/allape/spritecut/sprite/codec"
	"image/png"
)

func EncoderFromConfig(conf config.Config) (codec.Encoder, error) {
	var level png.CompressionLevel
	switch conf.Output.Compression {
	case config.CompressionDefault, "":
		level = png.DefaultCompression
	case config.CompressionNone:
		level = png.NoCompression
	case config.CompressionSpeed:
		level = png.BestSpeed
	case config.CompressionBest:
		level = png.BestCompression
	default:
		return nil, fmt.Errorf("unknown compression: %s", conf.Output.Compression)
	}
	return &codec.PNGEncoder{CompressionLevel: level}, nil
}
