// Command lensdemo exercises the optics library: it renders a bokeh
// kernel and its false-color heatmap, writes an ST map for the built-in
// Cooke Anamorphic/i preset, and prints the derived exposure numbers.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/cinekit/optics"
	"github.com/cinekit/optics/preset"
)

func main() {
	var (
		size     = flag.Int("size", 512, "kernel size in pixels")
		blades   = flag.Int("blades", 11, "iris blade count (>= 3)")
		rotation = flag.Float64("rotation", 0, "iris rotation in degrees")
		focus    = flag.Float64("focus", 1.2, "focus distance in meters")
		tStop    = flag.Float64("tstop", 2.8, "T-stop")
		mapW     = flag.Int("stmap-width", 960, "ST map width")
		mapH     = flag.Int("stmap-height", 540, "ST map height")
		outDir   = flag.String("out", ".", "output directory")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *blades < 3 {
		log.Fatalf("blades must be >= 3, got %d", *blades)
	}
	if *verbose {
		optics.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	lens := preset.CookeAnamorphicS35()
	squeeze := lens.EffectiveSqueeze(*focus)

	// Bokeh kernel at the focus-dependent squeeze.
	k := optics.RenderKernel(*size,
		optics.WithBlades(*blades),
		optics.WithSqueeze(squeeze),
		optics.WithRotation(*rotation),
	)
	kernelPath := *outDir + "/kernel.png"
	if err := k.SavePNG(kernelPath); err != nil {
		log.Fatalf("Failed to save kernel: %v", err)
	}

	heatPath := *outDir + "/kernel_heat.png"
	if err := savePNG(heatPath, k); err != nil {
		log.Fatalf("Failed to save heatmap: %v", err)
	}

	// Forward ST map with the same effective squeeze.
	m := optics.RenderSTMap(*mapW, *mapH, lens.Distortion, optics.STMapUndistort, squeeze, 0)
	stmapPath := *outDir + "/stmap.tiff"
	f, err := os.Create(stmapPath)
	if err != nil {
		log.Fatalf("Failed to create ST map file: %v", err)
	}
	if err := m.EncodeTIFF(f); err != nil {
		log.Fatalf("Failed to encode ST map: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to close ST map file: %v", err)
	}

	// Derived optics for a Super 35 4-perf sensor (24.89 x 18.66 mm).
	const sensorW, sensorH, sensorDiag = 24.89, 18.66, 31.1
	coc := optics.CircleOfConfusion(sensorDiag)
	shift := lens.BreathingShiftPct(*focus)
	hfov := optics.FOV(lens.FocalLengthMM, sensorW, shift)
	near, far := optics.DOF(lens.FocalLengthMM, *tStop, *focus, coc)

	fmt.Printf("%s %s %.0fmm @ T%.1f, focus %.2fm\n",
		lens.Manufacturer, lens.Series, lens.FocalLengthMM, *tStop, *focus)
	fmt.Printf("  effective squeeze: %.3fx (nominal %.1fx)\n", squeeze, lens.SqueezeRatio)
	fmt.Printf("  horizontal FOV:    %.2f deg (breathing %+.2f%%)\n", hfov, shift)
	fmt.Printf("  depth of field:    %.3fm - %.3fm\n", near, far)
	fmt.Printf("  wrote %s, %s, %s\n", kernelPath, heatPath, stmapPath)
}

func savePNG(path string, k *optics.Kernel) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, k.Heatmap())
}
