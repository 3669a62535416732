package asset

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/db47h/ofs"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// A Future is an image being loaded by a Loader.
//
type Future struct {
	asset Asset

	// set by the decoding goroutine, read by Dispatch under Loader.m
	img image.Image
	err error

	// render thread only
	resolved  bool
	callbacks []func(image.Image, error)
}

// Asset returns the image asset.
//
func (f *Future) Asset() Asset {
	return f.asset
}

// OnComplete registers fn to be called with the decoded image or the load
// error. If the image has already been dispatched, fn is called immediately.
// Otherwise it is called by the next Loader.Dispatch following completion.
//
// OnComplete must be called from the goroutine that calls Dispatch.
//
func (f *Future) OnComplete(fn func(img image.Image, err error)) {
	if f.resolved {
		fn(f.img, f.err)
		return
	}
	f.callbacks = append(f.callbacks, fn)
}

// Done returns true once the future has been dispatched.
//
func (f *Future) Done() bool {
	return f.resolved
}

func (f *Future) resolve() {
	f.resolved = true
	cbs := f.callbacks
	f.callbacks = nil
	for _, fn := range cbs {
		fn(f.img, f.err)
	}
}

func loadImage(fs ofs.FileSystem, name string) (image.Image, error) {
	r, err := fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return img, nil
}
