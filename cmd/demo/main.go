package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/db47h/glsprite"
	"github.com/db47h/glsprite/app"
	"github.com/db47h/glsprite/asset"
	"github.com/db47h/ofs"
	"github.com/schollz/progressbar/v3"
)

var (
	scene = flag.String("scene", "cmd/demo/scene.toml", "scene file (.toml or .yaml)")
)

func main() {
	flag.Parse()
	if err := run(*scene); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(name string) error {
	cfg, err := LoadConfig(name)
	if err != nil {
		return err
	}
	lvl, _ := cfg.Level()
	glsprite.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))

	var ovl ofs.Overlay
	if err := ovl.Add(false, cfg.Assets.Roots...); err != nil {
		return err
	}
	// two shader files, the info box font and one image per distinct sprite
	// sheet
	images := make(map[string]struct{})
	for _, s := range cfg.Sprites {
		images[s.Image] = struct{}{}
	}
	n := 2 + len(images)
	if cfg.Info.Show {
		n++
	}
	bar := progressbar.Default(int64(n), "loading assets")
	ldr := asset.NewLoader(&ovl,
		asset.ImagePath(cfg.Assets.Images),
		asset.FilePath(cfg.Assets.Shaders),
		asset.FontPath(cfg.Assets.Fonts),
		asset.Notify(func(asset.Asset, error) { bar.Add(1) }))
	// start decoding while the window opens
	for img := range images {
		ldr.Image(img)
	}

	opts := []app.WindowOption{
		app.Title(cfg.Window.Title),
		app.Size(cfg.Window.Width, cfg.Window.Height),
		app.SwapInterval(cfg.Window.VSync),
	}
	if cfg.Window.FullScreen {
		opts = append(opts, app.FullScreen())
	}
	return app.Main(&game{cfg: cfg, ldr: ldr, bar: bar}, opts...)
}
