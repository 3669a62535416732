package asset

import (
	"context"
	"image"
	"sync"

	"github.com/db47h/glsprite"
	"github.com/db47h/ofs"
	"github.com/golang/freetype/truetype"
	"golang.org/x/sync/semaphore"
	"golang.org/x/xerrors"
)

var errClosed = xerrors.New("loader closed")

// A Loader manages asynchronous loading of images and caching of images, fonts
// and raw files.
//
// Image and File may be called from any goroutine. Dispatch must be called
// regularly from the goroutine that owns the GL context.
//
type Loader struct {
	fs     ofs.FileSystem
	cfg    config
	sem    *semaphore.Weighted
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	m      sync.Mutex
	images map[string]*Future
	files  map[string][]byte
	fonts  map[string]*truetype.Font
	ready  []*Future
	errs   errorList
	closed bool
}

// NewLoader returns a new Loader reading assets from fs.
//
func NewLoader(fs ofs.FileSystem, options ...Option) *Loader {
	cfg := config{workers: defaultWorkers()}
	for _, o := range options {
		o.set(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Loader{
		fs:     fs,
		cfg:    cfg,
		sem:    semaphore.NewWeighted(int64(cfg.workers)),
		ctx:    ctx,
		cancel: cancel,
		images: make(map[string]*Future),
		files:  make(map[string][]byte),
		fonts:  make(map[string]*truetype.Font),
	}
}

// Image returns a Future for the named image and starts decoding it in the
// background if it is not already cached or being loaded. Requesting the same
// name twice returns the same Future.
//
func (l *Loader) Image(name string) *Future {
	l.m.Lock()
	defer l.m.Unlock()
	if f, ok := l.images[name]; ok {
		return f
	}
	f := &Future{asset: Image(name)}
	l.images[name] = f
	if l.closed {
		f.err = xerrors.Errorf("load %s: %w", f.asset, errClosed)
		l.ready = append(l.ready, f)
		return f
	}
	l.wg.Add(1)
	go l.decode(f)
	return f
}

func (l *Loader) decode(f *Future) {
	defer l.wg.Done()
	var (
		img image.Image
		err = l.sem.Acquire(l.ctx, 1)
	)
	if err == nil {
		img, err = loadImage(l.fs, l.cfg.assetPath(f.asset))
		l.sem.Release(1)
	}
	if err != nil {
		err = xerrors.Errorf("load %s: %w", f.asset, err)
	}
	l.m.Lock()
	f.img, f.err = img, err
	l.ready = append(l.ready, f)
	if err != nil {
		l.errs = append(l.errs, err)
	}
	l.m.Unlock()
	if l.cfg.notify != nil {
		l.cfg.notify(f.asset, err)
	}
}

// Dispatch runs the completion callbacks of all images decoded since the last
// call and returns the number of images completed. It must be called from the
// goroutine that owns the GL context.
//
func (l *Loader) Dispatch() int {
	l.m.Lock()
	ready := l.ready
	l.ready = nil
	l.m.Unlock()
	for _, f := range ready {
		f.resolve()
	}
	return len(ready)
}

// Wait waits until all pending images have been decoded and returns any load
// errors that occurred since the previous call to Wait. Completion callbacks
// still need to be run with Dispatch.
//
func (l *Loader) Wait() error {
	l.wg.Wait()
	l.m.Lock()
	errs := l.errs
	l.errs = nil
	l.m.Unlock()
	if errs != nil {
		return errs
	}
	return nil
}

// File returns the contents of the named raw file. Files are read
// synchronously and cached.
//
func (l *Loader) File(name string) ([]byte, error) {
	l.m.Lock()
	data, ok := l.files[name]
	closed := l.closed
	l.m.Unlock()
	a := File(name)
	if closed {
		return nil, xerrors.Errorf("load %s: %w", a, errClosed)
	}
	if ok {
		return data, nil
	}
	data, err := loadFile(l.fs, l.cfg.assetPath(a))
	if l.cfg.notify != nil {
		l.cfg.notify(a, err)
	}
	if err != nil {
		return nil, xerrors.Errorf("load %s: %w", a, err)
	}
	l.m.Lock()
	l.files[name] = data
	l.m.Unlock()
	return data, nil
}

// Discard removes the given asset from the cache. Futures already handed out
// for a discarded image are not affected.
//
func (l *Loader) Discard(a Asset) {
	l.m.Lock()
	defer l.m.Unlock()
	switch a.Type {
	case TypeImage:
		delete(l.images, a.Name)
	case TypeFile:
		delete(l.files, a.Name)
	case TypeFont:
		delete(l.fonts, a.Name)
	}
}

// Close cancels loads waiting for a worker, waits for running ones to finish
// and empties the cache. Pending futures complete with an error on the next
// call to Dispatch.
//
func (l *Loader) Close() error {
	l.m.Lock()
	l.closed = true
	l.m.Unlock()
	l.cancel()
	l.wg.Wait()
	l.m.Lock()
	l.images = make(map[string]*Future)
	l.files = make(map[string][]byte)
	l.fonts = make(map[string]*truetype.Font)
	l.m.Unlock()
	glsprite.Logger().Debug("asset loader closed")
	return nil
}
