// Command ledcanvas renders an animated, audio-reactive demo scene and
// writes the last frame as PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/gogpu/ledcanvas"
	"github.com/gogpu/ledcanvas/audio"
	"github.com/gogpu/ledcanvas/config"
	"github.com/gogpu/ledcanvas/frame"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "YAML or TOML config file")
		width   = flag.Int("width", 0, "canvas width (overrides config)")
		height  = flag.Int("height", 0, "canvas height (overrides config)")
		frames  = flag.Int("frames", 0, "number of frames (overrides config)")
		output  = flag.String("output", "ledcanvas.png", "output file for the last frame")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *width > 0 {
		cfg.Canvas.Width = *width
	}
	if *height > 0 {
		cfg.Canvas.Height = *height
	}
	if *frames > 0 {
		cfg.Frame.Count = *frames
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	ledcanvas.SetLogger(cfg.Logger(os.Stderr))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, *output); err != nil {
		log.Fatalf("Render failed: %v", err)
	}
	log.Printf("Last frame saved to %s (%dx%d)\n", *output, cfg.Canvas.Width, cfg.Canvas.Height)
}

func run(ctx context.Context, cfg *config.Config, output string) error {
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	pool := frame.NewPool(opts...)
	clock := frame.NewClock()
	clock.SetSpeed(cfg.Frame.Speed)

	features := &audio.Features{}
	audioCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go synthesize(audioCtx, features, clock)

	dt := time.Duration(float64(time.Second) / cfg.Frame.FPS)
	sc := scene{cfg: cfg, audio: features}
	for i := 0; i < cfg.Frame.Count; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		now := clock.Advance(dt)
		last := i == cfg.Frame.Count-1
		err := pool.Render(cfg.Canvas.Width, cfg.Canvas.Height,
			func(c *ledcanvas.Context) error {
				sc.draw(c, now)
				return nil
			},
			func(s *ledcanvas.Surface) error {
				ledcanvas.Logger().Debug("frame", "index", i, "t", now, "led0", s.Pixel(0, 0).String())
				if last {
					return s.SavePNG(output)
				}
				return nil
			})
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	created, reused := pool.Stats()
	ledcanvas.Logger().Info("done", "frames", cfg.Frame.Count, "surfaces", created, "reused", reused)
	return nil
}

// synthesize publishes a fake spectrum until ctx is done.
func synthesize(ctx context.Context, f *audio.Features, clock *frame.Clock) {
	tick := time.NewTicker(10 * time.Millisecond)
	defer tick.Stop()
	bands := make([]float64, audio.BandCount)
	for {
		t := clock.Current()
		for i := range bands {
			phase := t*3 + float64(i)*0.4
			bands[i] = 0.5 + 0.5*math.Sin(phase)*math.Exp(-float64(i)/24)
		}
		f.Update(bands)
		select {
		case <-ctx.Done():
			f.Disable()
			return
		case <-tick.C:
		}
	}
}

type scene struct {
	cfg   *config.Config
	audio *audio.Features
}

func (s scene) draw(c *ledcanvas.Context, t float64) {
	w, h := float64(c.Width()), float64(c.Height())
	bg := s.cfg.Background()
	c.Clear(float64(bg.R), float64(bg.G), float64(bg.B))

	// Sweeping rainbow gradient scaled by bass.
	g := c.CreateLinearGradient(0, 0, w, 0)
	for i := 0; i <= 6; i++ {
		hue := math.Mod(t*0.1+float64(i)/6, 1)
		rgb := c.HSLToRGB(hue, 1, 0.5)
		g.AddColorStop(float64(i)/6, ledcanvas.RGB(float64(rgb.R), float64(rgb.G), float64(rgb.B)))
	}
	c.Save()
	c.SetFillGradient(g)
	c.SetGlobalAlpha(0.3 + 0.7*s.audio.Bass())
	c.FillRect(0, 0, w, h)
	c.Restore()

	// Spectrum bars.
	n := s.audio.BandCount()
	if n > 0 {
		bw := w / float64(n)
		c.SetFillStyle(ledcanvas.RGBA(255, 255, 255, 180))
		for i := 0; i < n; i++ {
			bh := s.audio.Band(i) * h
			c.FillRect(float64(i)*bw, h-bh, bw*0.8, bh)
		}
	}

	// Orbiting dot with a glow.
	c.Save()
	c.SetShadowColor(ledcanvas.RGB(255, 200, 0))
	c.SetShadowBlur(4 + 8*s.audio.Treble())
	c.SetFillStyle(ledcanvas.RGB(255, 255, 0))
	c.Translate(w/2, h/2)
	c.Rotate(t * 2)
	c.FillCircle(h/3, 0, 1+h/8)
	c.Restore()

	// Clock readout.
	c.SetFont(s.cfg.Text.Font)
	c.SetTextBaseline("top")
	c.SetTextAlign("right")
	c.SetStrokeStyle(ledcanvas.Black)
	c.SetLineWidth(2)
	label := fmt.Sprintf("%.1f", t)
	c.StrokeText(label, w-1, 1)
	c.SetFillStyle(ledcanvas.White)
	c.FillText(label, w-1, 1)
}
