package sprite

import (
	"errors"
	"fmt"
)

var (
	ErrImageLoad       = errors.New("image load failed")
	ErrDirectoryCreate = errors.New("directory create failed")
	ErrImageWrite      = errors.New("image write failed")
)

type ImageLoadError struct {
	Path string
	Err  error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("load image %s: %v", e.Path, e.Err)
}

func (e *ImageLoadError) Unwrap() []error {
	return []error{ErrImageLoad, e.Err}
}

type DirectoryCreateError struct {
	Path string
	Err  error
}

func (e *DirectoryCreateError) Error() string {
	return fmt.Sprintf("create directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryCreateError) Unwrap() []error {
	return []error{ErrDirectoryCreate, e.Err}
}

type ImageWriteError struct {
	Path string
	Err  error
}

func (e *ImageWriteError) Error() string {
	return fmt.Sprintf("write image %s: %v", e.Path, e.Err)
}

func (e *ImageWriteError) Unwrap() []error {
	return []error{ErrImageWrite, e.Err}
}
