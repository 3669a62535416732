package asset

import (
	"github.com/db47h/ofs"
	"github.com/golang/freetype/truetype"
	"golang.org/x/xerrors"
)

// FontPath returns an Option that sets the default path for fonts.
//
func FontPath(name string) Option {
	return cfn(func(cfg *config) {
		cfg.fontPath = name
	})
}

func loadFont(fs ofs.FileSystem, name string) (*truetype.Font, error) {
	data, err := loadFile(fs, name)
	if err != nil {
		return nil, err
	}
	return truetype.Parse(data)
}

// Font returns the named TrueType font. Fonts are loaded synchronously and
// cached. Use text.NewFace to get a font.Face at a given size.
//
func (l *Loader) Font(name string) (*truetype.Font, error) {
	l.m.Lock()
	f, ok := l.fonts[name]
	closed := l.closed
	l.m.Unlock()
	a := Font(name)
	if closed {
		return nil, xerrors.Errorf("load %s: %w", a, errClosed)
	}
	if ok {
		return f, nil
	}
	f, err := loadFont(l.fs, l.cfg.assetPath(a))
	if l.cfg.notify != nil {
		l.cfg.notify(a, err)
	}
	if err != nil {
		return nil, xerrors.Errorf("load %s: %w", a, err)
	}
	l.m.Lock()
	l.fonts[name] = f
	l.m.Unlock()
	return f, nil
}
