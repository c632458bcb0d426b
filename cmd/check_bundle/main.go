// Package main checks the tutorial text bundle against the default stages.
//
// Every stage needs a "tutorial.<name>" entry; ".mobile" variants are
// optional. Exits non-zero when a stage has no usable text.
//
// Usage:
//
//	go run ./cmd/check_bundle [--root .] [--bundle assets/bundles/bundle.properties]
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/decker502/factorytutor/pkg/config"
	"github.com/decker502/factorytutor/pkg/embedded"
	"github.com/decker502/factorytutor/pkg/game"
	"github.com/decker502/factorytutor/pkg/tutorial"
)

var (
	rootFlag   = flag.String("root", ".", "Repository root containing assets/")
	bundleFlag = flag.String("bundle", "assets/bundles/bundle.properties", "Bundle path relative to root")
)

func main() {
	flag.Parse()

	root := os.DirFS(*rootFlag)
	embedded.Init(root, root)

	bundle, err := game.NewBundle(*bundleFlag)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Bundle %s: %d entries\n", *bundleFlag, bundle.Len())

	defs := tutorial.DefaultStages(config.DefaultTutorialConfig().Stages)
	missing := 0
	for _, def := range defs {
		key := "tutorial." + def.Name
		value, ok := bundle.Get(key)
		if !ok {
			fmt.Printf("  ✗ %-12s missing %s\n", def.Name, key)
			missing++
			continue
		}
		mobile := "-"
		if bundle.Has(key + ".mobile") {
			mobile = "mobile"
		}
		fmt.Printf("  ✓ %-12s %d sentence(s) %s\n", def.Name, len(strings.Split(value, "\n")), mobile)
	}

	// 文本与阶段必须能组合成完整的教学
	for _, m := range []bool{false, true} {
		if _, err := tutorial.BuildStages(defs, bundle, m); err != nil {
			fmt.Printf("BuildStages(mobile=%v): %v\n", m, err)
			missing++
		}
	}

	if missing > 0 {
		os.Exit(1)
	}
}
