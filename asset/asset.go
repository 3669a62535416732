// Package asset loads images, fonts and raw files from an ofs.FileSystem.
//
// Images are decoded in the background by a bounded number of goroutines.
// Completion callbacks registered on the returned Future run on the goroutine
// that calls Loader.Dispatch, normally the one that owns the GL context.
//
package asset

import (
	"path"
	"runtime"
	"strings"
)

// Type designates the type of an asset.
//
type Type int

const (
	TypeImage Type = iota
	TypeFile
	TypeFont
)

// Asset uniquely describes an asset.
//
type Asset struct {
	Type
	Name string
}

// Image returns the Asset for the named image.
//
func Image(name string) Asset { return Asset{TypeImage, name} }

// File returns the Asset for the named raw file.
//
func File(name string) Asset { return Asset{TypeFile, name} }

// Font returns the Asset for the named TrueType font.
//
func Font(name string) Asset { return Asset{TypeFont, name} }

func (a Asset) String() string {
	switch a.Type {
	case TypeImage:
		return "image asset " + a.Name
	case TypeFile:
		return "file asset " + a.Name
	case TypeFont:
		return "font asset " + a.Name
	}
	return "unknown asset " + a.Name
}

type errorList []error

func (e errorList) Error() string {
	var sb strings.Builder
	for i, err := range e {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Unwrap returns the individual errors.
//
func (e errorList) Unwrap() []error {
	return e
}

type config struct {
	imagePath string
	filePath  string
	fontPath  string
	workers   int
	notify    func(a Asset, err error)
}

func (cfg *config) assetPath(a Asset) string {
	switch a.Type {
	case TypeImage:
		return path.Join(cfg.imagePath, a.Name)
	case TypeFile:
		return path.Join(cfg.filePath, a.Name)
	case TypeFont:
		return path.Join(cfg.fontPath, a.Name)
	}
	return a.Name
}

// Option is implemented by option functions passed as arguments to NewLoader.
//
type Option interface {
	set(*config)
}

type cfn func(*config)

func (f cfn) set(cfg *config) {
	f(cfg)
}

// ImagePath returns an Option that sets the default path for images.
//
func ImagePath(name string) Option {
	return cfn(func(cfg *config) {
		cfg.imagePath = name
	})
}

// FilePath returns an Option that sets the default path for raw files.
//
func FilePath(name string) Option {
	return cfn(func(cfg *config) {
		cfg.filePath = name
	})
}

// Workers sets the maximum number of images decoded concurrently. The default
// is 2*runtime.NumCPU(). This is to prevent excessive simultaneous disk access
// on mechanical hard drives.
//
func Workers(n int) Option {
	return cfn(func(cfg *config) {
		cfg.workers = n
	})
}

// Notify sets a function called every time an asset has been loaded or has
// failed to load. It may be called concurrently from the loader's background
// goroutines.
//
func Notify(f func(a Asset, err error)) Option {
	return cfn(func(cfg *config) {
		cfg.notify = f
	})
}

func defaultWorkers() int {
	return 2 * runtime.NumCPU()
}
