package sprite

import (
	"context"
	"errors"
	"github.com/allape/gogger"
	"github.com/allape/spritecut/logger"
	"github.com/allape/spritecut/sprite/codec"
	"golang.org/x/sync/errgroup"
	"image"
	"os"
	"path/filepath"
)

var l = gogger.New("sprite.extractor")

var log = logger.New("[sprite]")

const (
	DefaultSrc       = "fox-sprite.png"
	DefaultOutputDir = "fox_frames"
	DefaultPrefix    = "fox"
)

type Options struct {
	Src       string
	OutputDir string
	Prefix    string

	// Concurrent writes all frames in parallel, the run still fails as a whole
	Concurrent bool
	Encoder    codec.Encoder
}

type Result struct {
	SourceSize image.Point
	FrameSize  image.Point
	Frames     []Frame
	// Paths of the written files, in Specs order
	Paths []string
}

type Extractor struct {
	Options Options
}

func New(options *Options) *Extractor {
	if options == nil {
		options = &Options{}
	}

	if options.Src == "" {
		options.Src = DefaultSrc
	}
	if options.OutputDir == "" {
		options.OutputDir = DefaultOutputDir
	}
	if options.Prefix == "" {
		options.Prefix = DefaultPrefix
	}
	if options.Encoder == nil {
		options.Encoder = &codec.PNGEncoder{}
	}

	return &Extractor{
		Options: *options,
	}
}

// Extract
// slices the sheet at Options.Src and writes one file per frame into
// Options.OutputDir. The sheet is decoded before the directory is touched,
// so an unreadable sheet leaves the filesystem as it was.
// Frames written before a failure are left on disk.
func (e *Extractor) Extract(ctx context.Context) (*Result, error) {
	sheet, format, err := Load(e.Options.Src)
	if err != nil {
		return nil, err
	}

	l.Verbose().Println("decoded", e.Options.Src, "as", format)

	result := &Result{
		SourceSize: sheet.Bounds().Size(),
		FrameSize:  FrameSize(sheet.Bounds()),
	}

	log.Printf("source image: %dx%dpx", result.SourceSize.X, result.SourceSize.Y)
	log.Printf("each frame: %dx%dpx", result.FrameSize.X, result.FrameSize.Y)

	err = EnsureDir(e.Options.OutputDir)
	if err != nil {
		return nil, err
	}

	frames, err := Slice(sheet)
	if err != nil {
		return nil, &ImageLoadError{Path: e.Options.Src, Err: err}
	}
	result.Frames = frames
	result.Paths = make([]string, len(frames))

	if e.Options.Concurrent {
		err = e.saveAll(ctx, frames, result.Paths)
	} else {
		for i, frame := range frames {
			if err = ctx.Err(); err != nil {
				break
			}
			result.Paths[i], err = e.Save(frame)
			if err != nil {
				break
			}
		}
	}
	if err != nil {
		return result, err
	}

	log.Printf("%d frames saved in %s", len(frames), e.Options.OutputDir)

	return result, nil
}

func (e *Extractor) saveAll(ctx context.Context, frames []Frame, paths []string) error {
	group, ctx := errgroup.WithContext(ctx)
	for i, frame := range frames {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path, err := e.Save(frame)
			if err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	return group.Wait()
}

// Save encodes frame into the output directory and returns the written path.
func (e *Extractor) Save(frame Frame) (string, error) {
	name := frame.FileName(e.Options.Prefix, e.Options.Encoder.Ext())
	path := filepath.Join(e.Options.OutputDir, name)

	file, err := os.Create(path)
	if err != nil {
		return path, &ImageWriteError{Path: path, Err: err}
	}

	err = e.Options.Encoder.Encode(file, frame.Image)
	closeErr := file.Close()
	if err = errors.Join(err, closeErr); err != nil {
		l.Error().Println("write", path, err)
		return path, &ImageWriteError{Path: path, Err: err}
	}

	log.Println("saved:", name)

	return path, nil
}

// EnsureDir creates dir and its parents, existing directories are fine.
func EnsureDir(dir string) error {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return &DirectoryCreateError{Path: dir, Err: err}
	}
	return nil
}

// Extract runs an Extractor with default encoding for src and outputDir.
func Extract(ctx context.Context, src, outputDir string) (*Result, error) {
	return New(&Options{Src: src, OutputDir: outputDir}).Extract(ctx)
}
