// Package main provides a headless verification tool for the factory tutorial.
//
// It builds the tutorial from the repository assets, drives every stage with
// scripted player actions and reports how each stage progressed.
//
// Usage:
//
//	go run ./cmd/verify_tutorial [flags]
//
// Flags:
//
//	--root <dir>      Repository root containing assets/ and data/ (default: ".")
//	--config <path>   External tutorial config (default: embedded data/tutorial.yaml)
//	--mobile          Use mobile text and the mobile placement flow
//	--dt <seconds>    Simulation step (default: 1/60)
//	--persist         Store the completion flag through gdata instead of memory
//	--verbose         Enable verbose logging
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/decker502/factorytutor/pkg/app"
	"github.com/decker502/factorytutor/pkg/embedded"
	"github.com/decker502/factorytutor/pkg/game"
	"github.com/decker502/factorytutor/pkg/scenes"
	"github.com/decker502/factorytutor/pkg/tutorial"
	"github.com/decker502/factorytutor/pkg/types"
)

var (
	rootFlag    = flag.String("root", ".", "Repository root containing assets/ and data/")
	configFlag  = flag.String("config", "", "External tutorial config path")
	mobileFlag  = flag.Bool("mobile", false, "Use mobile text and placement flow")
	dtFlag      = flag.Float64("dt", 1.0/60.0, "Simulation step in seconds")
	persistFlag = flag.Bool("persist", false, "Persist the completion flag with gdata")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	root := os.DirFS(*rootFlag)
	embedded.Init(root, root)

	res, err := app.LoadResources(*configFlag, *mobileFlag)
	if err != nil {
		return err
	}

	var settings *game.SettingsManager
	if *persistFlag {
		settings = app.OpenSettings()
	} else {
		settings, _ = game.NewSettingsManager(nil)
	}

	registry := prometheus.NewRegistry()
	metrics, err := tutorial.NewMetrics(registry)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	scene, err := scenes.NewTutorialScene(scenes.TutorialSceneConfig{
		Stages:   res.Stages,
		Tutorial: res.Config,
		Settings: settings,
		Metrics:  metrics,
		Mobile:   *mobileFlag,
	})
	if err != nil {
		return err
	}
	defer scene.Close()

	fmt.Printf("Session %s: %d stages (mobile=%v)\n", scene.Engine().SessionID(), len(res.Stages), *mobileFlag)
	for _, st := range res.Stages {
		fmt.Printf("  %2d. %-12s %d sentence(s)\n", st.Ordinal(), st.Name(), st.SentenceCount())
	}

	if err := scenes.Walkthrough(scene, *dtFlag); err != nil {
		return fmt.Errorf("walkthrough failed at stage %q: %w", scene.Engine().CurrentStage().Name(), err)
	}

	w := scene.World()
	fmt.Printf("✅ Tutorial completed: wave=%d copper=%d playedtutorial=%v\n",
		w.Wave(), w.Items(types.DefaultTeam, types.ItemCopper), settings.GetBool(tutorial.PlayedTutorialKey, false))

	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			value := m.GetCounter().GetValue() + m.GetGauge().GetValue()
			fmt.Printf("  %s%v = %g\n", mf.GetName(), labels(m.GetLabel()), value)
		}
	}
	return nil
}

func labels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	out := "{"
	for i, p := range pairs {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%s=%q", p.GetName(), p.GetValue())
	}
	return out + "}"
}
