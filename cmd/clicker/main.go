// Command clicker runs a world definition through a fixed-step simulation
// loop and reports production along the way. It is a demonstration host
// for the engine; real games embed the packages directly.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/manabreak/libclicker2/internal/config"
	"github.com/manabreak/libclicker2/internal/format"
)

func main() {
	var (
		definitionPath = flag.String("config", "", "path to a YAML world definition (optional)")
		offline        = flag.Float64("offline", 0, "extra offline seconds to replay before the loop")
	)
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "clicker",
	})

	def := config.Default()
	if *definitionPath != "" {
		loaded, err := config.Load(*definitionPath)
		if err != nil {
			logger.Fatal("load definition", "err", err)
		}
		def = loaded
	}
	def = config.FromEnv(def)

	asm, err := def.Build()
	if err != nil {
		logger.Fatal("build world", "err", err)
	}

	logger.Info("world assembled",
		"currencies", len(asm.Currencies),
		"generators", len(asm.Generators),
		"automators", len(asm.Automators),
		"speed", asm.World.SpeedMultiplier(),
	)

	if *offline > 0 {
		asm.World.Update(*offline)
		logger.Info("offline time replayed", "seconds", *offline)
	}

	opts := format.DefaultOptions()
	opts.ShowDecimals = true
	opts.Abbreviations = []string{"K", "M", "B", "T", "Qa", "Qi"}

	step := def.Simulation.StepSeconds
	if step <= 0 {
		step = 1.0
	}
	duration := def.Simulation.DurationSeconds
	if duration <= 0 {
		duration = 60.0
	}

	ticker := time.NewTicker(time.Duration(step * float64(time.Second)))
	defer ticker.Stop()

	for elapsed := 0.0; elapsed < duration; elapsed += step {
		<-ticker.C
		asm.World.Update(step)

		for name, c := range asm.Currencies {
			logger.Info("balance", "currency", name, "amount", format.ForCurrency(c, opts).String())
		}
	}

	logger.Info("simulation finished", "seconds", duration)
	for name, g := range asm.Generators {
		logger.Info("generator report",
			"generator", name,
			"level", g.Level(),
			"processed", g.TimesProcessed(),
			"next_price", format.ForItemPrice(g, opts).String(),
		)
	}
}
