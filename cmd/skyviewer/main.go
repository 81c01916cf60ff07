package main

import (
	"GopherSky/internal/editor"
	"GopherSky/internal/engine"
	"GopherSky/internal/logger"
	"GopherSky/internal/renderer"
	"GopherSky/internal/sky"
	"flag"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"
)

type options struct {
	preset    string
	edit      bool
	width     int
	height    int
	stars     string
	clouds    string
	sunSpeed  float64
	ui        bool
	statePath string
	savePath  string
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("skyviewer", flag.ContinueOnError)
	fs.StringVar(&opts.preset, "preset", "day", "built-in preset ("+fmt.Sprint(sky.PresetNames())+") or preset JSON file")
	fs.BoolVar(&opts.edit, "edit", false, "edit mode: push uniforms only when something changed")
	fs.IntVar(&opts.width, "width", 1280, "window width")
	fs.IntVar(&opts.height, "height", 720, "window height")
	fs.StringVar(&opts.stars, "stars", "", "star field cubemap directory (px nx py ny pz nz images)")
	fs.StringVar(&opts.clouds, "clouds", renderer.BuiltinCloudNoise, "cloud noise texture, or "+renderer.BuiltinCloudNoise)
	fs.Float64Var(&opts.sunSpeed, "sun-speed", 6, "sun rotation in degrees per second, 0 to hold still")
	fs.BoolVar(&opts.ui, "ui", true, "show the sky inspector")
	fs.StringVar(&opts.statePath, "state", editor.DefaultStatePath, "inspector state file")
	fs.StringVar(&opts.savePath, "save", "", "write the final configuration to this preset file on exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.width <= 0 || opts.height <= 0 {
		return opts, fmt.Errorf("invalid window size %dx%d", opts.width, opts.height)
	}
	return opts, nil
}

// loadConfiguration resolves the preset and applies texture overrides.
func loadConfiguration(opts options) (*sky.SkyConfiguration, error) {
	cfg, err := sky.LoadPreset(opts.preset)
	if err != nil {
		return nil, err
	}
	if opts.stars != "" {
		cfg.SetStarFieldTexture(opts.stars)
	}
	if opts.clouds != "" {
		cfg.SetCloudTexture(opts.clouds)
	}
	return cfg, nil
}

func main() {
	runtime.LockOSThread()
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseFlags(args)
	if err != nil {
		return 2
	}

	eng := engine.NewGopher()
	defer logger.Sync()
	eng.Width = int32(opts.width)
	eng.Height = int32(opts.height)

	cfg, err := loadConfiguration(opts)
	if err != nil {
		logger.Log.Error("Failed to load sky preset", zap.String("preset", opts.preset), zap.Error(err))
		return 1
	}

	state, err := editor.LoadEditorState(opts.statePath)
	if err != nil {
		logger.Log.Warn("Ignoring editor state", zap.Error(err))
	}

	v := newViewer(opts, cfg, state)
	eng.SetOnSetupCallback(v.setup)
	eng.SetOnRenderCallback(v.frame)

	err = eng.Render(-1, -1)
	v.shutdown()
	if err != nil {
		logger.Log.Error("Viewer stopped", zap.Error(err))
		return 1
	}
	return 0
}
