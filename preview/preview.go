package preview

import (
	"errors"
	"fmt"
	"github.com/allape/gogger"
	"github.com/allape/spritecut/logger"
	"github.com/allape/spritecut/sprite"
	"github.com/disintegration/imaging"
	"image"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

var l = gogger.New("preview")

var log = logger.NewVerboseLogger("[preview]")

const (
	DefaultDir   = "fox_preview"
	DefaultSpeed = 0.8
)

type Options struct {
	Dir    string
	Prefix string
	Speed  float64
	Scale  int
}

// Render writes {prefix}-idle.gif, {prefix}-walk.gif and {prefix}-sheet.png
// into Options.Dir and returns their paths in that order.
func Render(frames []sprite.Frame, options *Options) ([]string, error) {
	opts := Options{}
	if options != nil {
		opts = *options
	}
	options = &opts

	if options.Dir == "" {
		options.Dir = DefaultDir
	}
	if options.Prefix == "" {
		options.Prefix = sprite.DefaultPrefix
	}
	if options.Speed <= 0 {
		options.Speed = DefaultSpeed
	}
	if options.Scale < 1 {
		options.Scale = 1
	}

	err := sprite.EnsureDir(options.Dir)
	if err != nil {
		return nil, err
	}

	scaled := make([]sprite.Frame, len(frames))
	for i, frame := range frames {
		scaled[i] = frame
		scaled[i].Image = Scale(frame.Image, options.Scale)
	}

	paths := make([]string, 0, sprite.Rows+1)

	delay := Delay(options.Speed)
	for row, label := range sprite.Labels {
		var images []image.Image
		for _, frame := range scaled {
			if frame.Row == row {
				images = append(images, frame.Image)
			}
		}

		path := filepath.Join(options.Dir, fmt.Sprintf("%s-%s.gif", options.Prefix, label))
		err = writeFile(path, func(w io.Writer) error {
			return gif.EncodeAll(w, Animation(images, delay))
		})
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	sheet, err := Sheet(scaled, options.Prefix, ".png")
	if err != nil {
		return paths, err
	}

	path := filepath.Join(options.Dir, options.Prefix+"-sheet.png")
	err = writeFile(path, func(w io.Writer) error {
		return png.Encode(w, sheet)
	})
	if err != nil {
		return paths, err
	}
	paths = append(paths, path)

	return paths, nil
}

// Scale upscales img by factor with nearest neighbour sampling, pixel art
// stays crisp
func Scale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	size := img.Bounds().Size()
	return imaging.Resize(img, size.X*factor, size.Y*factor, imaging.NearestNeighbor)
}

func writeFile(path string, encode func(w io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return &sprite.ImageWriteError{Path: path, Err: err}
	}

	err = errors.Join(encode(file), file.Close())
	if err != nil {
		l.Error().Println("encode", path, err)
		return &sprite.ImageWriteError{Path: path, Err: err}
	}

	log.Println("written:", path)

	return nil
}
