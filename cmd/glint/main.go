package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/jfehr/glint/engine/app"
	"github.com/jfehr/glint/engine/config"
	glbackend "github.com/jfehr/glint/engine/gfx/gl"
	"github.com/jfehr/glint/engine/logger"
	"github.com/jfehr/glint/engine/platform"
)

const configPath = "glint.yaml"

func init() {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.Load(configPath)
	lg := logger.New(cfg.LogFile)
	if err != nil {
		fail(lg, err)
	}
	lg.Log(logger.Info, "glint starting")

	win, err := platform.NewWindow(cfg)
	if err != nil {
		fail(lg, err)
	}
	defer win.Destroy()

	adapter := glbackend.NewAdapter(lg, cfg.ShaderDir)
	a := app.New(cfg, lg, win, adapter)
	if err := a.Init(); err != nil {
		fail(lg, err)
	}
	defer a.Shutdown()

	a.Run()
}

// fail reports an unrecoverable startup error to the log and to the user,
// then exits. The exit status is 0 for failures as well as clean exits.
func fail(lg *logger.Logger, err error) {
	lg.Errorf("startup failed: %v", err)
	fmt.Fprintf(os.Stderr, "glint: startup failed: %v\n", err)
	os.Exit(0)
}
