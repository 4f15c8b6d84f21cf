package main

import (
	"cmp"
	"errors"
	"flag"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/glrr/recording"
	"github.com/gogpu/glrr/trace"
)

func runInspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	cfgPath, verbose := commonFlags(fs)
	var (
		methods = fs.Bool("methods", false, "list call counts per method")
		calls   = fs.Bool("calls", false, "print every call")
	)
	fs.Parse(args)
	if fs.NArg() != 1 {
		return errors.New("inspect: expected one trace file")
	}
	if _, err := loadConfig(*cfgPath, *verbose); err != nil {
		return err
	}

	b, err := readTrace(fs.Arg(0))
	if err != nil {
		return err
	}
	rec, err := trace.Decode(b.Pages)
	if err != nil {
		return err
	}
	return summarize(os.Stdout, b, rec, *methods, *calls)
}

type methodCount struct {
	name string
	n    int
}

// summarize prints a human-readable report of a decoded trace.
func summarize(w io.Writer, b *trace.Bundle, rec *recording.Recording, methods, calls bool) error {
	p := message.NewPrinter(language.English)

	p.Fprintf(w, "trace     %s\n", b.Meta.ID)
	if b.Meta.Source != "" {
		p.Fprintf(w, "source    %s\n", b.Meta.Source)
	}
	if !b.Meta.Created.IsZero() {
		p.Fprintf(w, "created   %s (%s)\n", b.Meta.Created.Format("2006-01-02 15:04:05"), humanize.Time(b.Meta.Created))
	}
	size := trace.Len(b.Pages)
	p.Fprintf(w, "size      %d chars in %d pages (%s)\n", size, len(b.Pages), humanize.IBytes(uint64(size)))
	p.Fprintf(w, "frames    %d\n", rec.FrameCount())
	p.Fprintf(w, "calls     %d\n", rec.CallCount())

	for _, c := range rec.Canvases {
		p.Fprintf(w, "canvas    %s %dx%d\n", c.ID, c.Width, c.Height)
	}
	for _, id := range rec.SnapshotIDs() {
		s := rec.Snapshots[id]
		p.Fprintf(w, "snapshot  %s %s\n", s.ID, humanize.IBytes(uint64(len(s.Data))))
	}
	for i, f := range rec.Frames {
		p.Fprintf(w, "frame %-3d %d calls\n", i, len(f))
		if calls {
			for _, c := range f {
				p.Fprintf(w, "          %s\n", c)
			}
		}
	}

	if methods {
		counts := map[string]int{}
		for _, f := range rec.Frames {
			for _, c := range f {
				counts[c.Method]++
			}
		}
		list := make([]methodCount, 0, len(counts))
		for _, name := range slices.Sorted(maps.Keys(counts)) {
			list = append(list, methodCount{name, counts[name]})
		}
		slices.SortStableFunc(list, func(a, b methodCount) int { return cmp.Compare(b.n, a.n) })
		for _, m := range list {
			p.Fprintf(w, "%10d  %s\n", m.n, m.name)
		}
	}
	return nil
}
