package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gogpu/glrr/replay"
)

// imager is implemented by host canvases that can show their contents.
type imager interface {
	Image() image.Image
}

func runReplay(args []string) error {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	cfgPath, verbose := commonFlags(fs)
	var (
		output  = fs.String("o", "replay.png", "output image; extra canvases get a numeric suffix")
		frames  = fs.Int("frames", 0, "stop after n frames (0 replays everything)")
		host    = fs.String("host", "", "replay host (overrides the configuration)")
		relaxed = fs.Bool("relaxed", false, "skip calls on unknown objects instead of failing")
	)
	fs.Parse(args)
	if fs.NArg() != 1 {
		return errors.New("replay: expected one trace file")
	}
	cfg, err := loadConfig(*cfgPath, *verbose)
	if err != nil {
		return err
	}
	if *host != "" {
		cfg.Replay.Host = *host
	}
	if *relaxed {
		cfg.Replay.Relaxed = true
	}

	b, err := readTrace(fs.Arg(0))
	if err != nil {
		return err
	}
	r, err := replay.Load(b.Pages)
	if err != nil {
		return err
	}
	h, err := replay.NewHost(cfg.Replay.Host)
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(replay.Hosts(), ", "))
	}
	s, err := r.NewSession(h, cfg.ReplayOptions()...)
	if err != nil {
		return err
	}

	start := time.Now()
	n := 0
	for *frames == 0 || n < *frames {
		more, err := s.NextFrame()
		if err != nil {
			return fmt.Errorf("replay: frame %d: %w", n, err)
		}
		if !more {
			break
		}
		n++
	}
	log.Printf("replayed %d of %d frames in %s", n, r.FrameCount(), time.Since(start).Round(time.Microsecond))

	for i, c := range s.Canvases() {
		im, ok := c.(imager)
		if !ok {
			continue
		}
		path := canvasPath(*output, i)
		if err := writePNG(path, im.Image()); err != nil {
			return err
		}
		log.Printf("canvas %d written to %s", i, path)
	}
	return nil
}

// canvasPath names the output of canvas i: out itself for the first one,
// out with an index before the extension for the rest.
func canvasPath(out string, i int) string {
	if i == 0 {
		return out
	}
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(out, ext), i, ext)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
