// Demoncoin runs the Notcoin vs Little Demons game in a window.
//
// Drag the demons up into the coin before the countdown runs out. Fill the
// counter or let the clock expire and the coin goes ultra; three playthroughs
// unlock the achievement screen.
//
// Configuration is read from DEMONCOIN_* environment variables (see
// demoncoin.Config). DEMONCOIN_TUNING names an optional YAML file of
// gameplay overrides.
package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/demoncoin"
	"github.com/phanxgames/demoncoin/ecs"
	"github.com/phanxgames/demoncoin/stage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "demoncoin:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := demoncoin.ParseConfig()
	if err != nil {
		return err
	}
	logger := cfg.NewLogger(os.Stderr)

	tuning, err := demoncoin.LoadTuningFile(cfg.TuningFile)
	if err != nil {
		return err
	}

	queue := ecs.NewQueue(donburi.NewWorld())
	scene := stage.NewScene(queue)
	scene.SetInput(&stage.EbitenInput{})
	scene.SetDebugMode(cfg.Debug)

	font, err := stage.DefaultFont()
	if err != nil {
		return err
	}
	assets, err := stage.LoadAssets(os.DirFS(cfg.AssetDir), demoncoin.Assets, stage.SampleRate, queue)
	if err != nil {
		logger.Warn("continuing with missing assets", "dir", cfg.AssetDir, "err", err)
	}
	mixer := stage.NewMixer(audio.NewContext(stage.SampleRate), assets, cfg.Volume)

	st := stage.NewStage(scene, stage.StageConfig{
		Font:    font,
		Assets:  assets,
		Mixer:   mixer,
		Gravity: tuning.Gravity,
	})

	ctrl := demoncoin.NewController(st,
		demoncoin.WithTuning(tuning),
		demoncoin.WithLogger(logger),
	)
	queue.Subscribe(ctrl)
	ctrl.Start()

	game := &stage.Game{
		Stage:  st,
		Width:  int(tuning.WorldWidth),
		Height: int(tuning.WorldHeight),
		OnFrame: func(dt float64) error {
			queue.Post(demoncoin.Event{Kind: demoncoin.EventFrame, DT: dt})
			queue.Flush()
			return nil
		},
	}

	logger.Info("starting", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height, "debug", cfg.Debug)
	return stage.Run(stage.RunConfig{Title: cfg.Title, Width: cfg.Width, Height: cfg.Height}, game)
}
