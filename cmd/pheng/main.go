package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mbernat/pheng/internal/debug"
	"github.com/mbernat/pheng/internal/engineconfig"
	"github.com/mbernat/pheng/internal/env"
	"github.com/mbernat/pheng/internal/graphics"
	"github.com/mbernat/pheng/internal/logger"
	"github.com/mbernat/pheng/internal/scene"
)

func main() {
	log := logger.New()
	if err := env.Load(".env"); err != nil {
		log.Logf("env: %v", err)
	}
	prefs, _ := engineconfig.Load()

	scenePath := flag.String("scene", "", "scene YAML file (default: saved prefs, then built-in demo)")
	gen := flag.Bool("gen", false, "generate a random scene instead of loading one")
	genSeed := flag.Int64("seed", 0, "seed for -gen (0 = time-based)")
	flag.Parse()

	// Scene choice: flag beats PHENG_SCENE beats saved prefs.
	path := *scenePath
	if path == "" {
		path = env.Get("PHENG_SCENE", prefs.ScenePath)
	}

	var def scene.Def
	if *gen {
		opts := scene.DefaultGenOptions()
		opts.Seed = *genSeed
		def = scene.Generate(opts)
	} else {
		var err error
		def, err = scene.Load(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	scn, err := scene.New(def)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scene %q: %v\n", def.Name, err)
		os.Exit(1)
	}
	log.Logf("starting scene %q: %d bodies, %d geometry, target %d fps",
		scn.Name, len(scn.State.Bodies), len(scn.State.Geometry), prefs.TargetFPS)

	dbg := debug.New()
	dbg.SetShowFPS(prefs.ShowFPS)
	dbg.SetShowMemAlloc(prefs.ShowMemAlloc)
	dbg.SetShowSimStats(true)

	var paused bool
	cv := graphics.ScreenCanvas{}

	update := func(dt float32) {
		in := graphics.PollInput()
		if in.TogglePause {
			paused = !paused
			log.Logf("paused: %t", paused)
		}
		if in.ResetScene {
			if err := scn.Reset(); err != nil {
				log.Logf("reset: %v", err)
			} else {
				log.Log("scene reset")
			}
		}
		if in.SpawnAt {
			if err := scn.Spawn(in.Mouse); err != nil {
				log.Logf("spawn: %v", err)
			} else {
				log.Logf("spawned body at %v", in.Mouse)
			}
		}
		if in.ToggleFPS {
			prefs.ShowFPS = !prefs.ShowFPS
			dbg.SetShowFPS(prefs.ShowFPS)
			savePrefs(log, prefs)
		}
		if in.ToggleMem {
			prefs.ShowMemAlloc = !prefs.ShowMemAlloc
			dbg.SetShowMemAlloc(prefs.ShowMemAlloc)
			savePrefs(log, prefs)
		}
		if in.ToggleGrid {
			prefs.GridVisible = !prefs.GridVisible
			savePrefs(log, prefs)
		}

		if !paused {
			scn.Tick(dt)
		}
		dbg.SetSimStats(len(scn.State.Bodies), len(scn.State.Geometry), paused)
	}

	draw := func() {
		if prefs.GridVisible {
			graphics.DrawGrid()
		}
		scn.State.Draw(cv)
		dbg.Draw()
	}

	graphics.Run(prefs.TargetFPS, update, draw)
}

// savePrefs persists toggled preferences; failures are logged, not fatal.
func savePrefs(log *logger.Logger, p engineconfig.EnginePrefs) {
	if err := engineconfig.Save(p); err != nil {
		log.Logf("save prefs: %v", err)
	}
}
