package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gogpu/glrr/store"
)

func runArchive(args []string) error {
	fs := flag.NewFlagSet("archive", flag.ExitOnError)
	cfgPath, verbose := commonFlags(fs)
	db := fs.String("db", "", "archive database (overrides the configuration)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: glrr archive [flags] list | save FILE | load ID FILE | rm ID")
		fs.PrintDefaults()
	}
	fs.Parse(args)
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("archive: missing action")
	}
	cfg, err := loadConfig(*cfgPath, *verbose)
	if err != nil {
		return err
	}
	if *db != "" {
		cfg.Archive = *db
	}

	s, err := store.Open(cfg.Archive, store.WithMkdirAll())
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := context.Background()
	action, rest := fs.Arg(0), fs.Args()[1:]
	switch {
	case action == "list" && len(rest) == 0:
		entries, err := s.List(ctx)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Println(e)
		}
		return nil

	case action == "save" && len(rest) == 1:
		b, err := readTrace(rest[0])
		if err != nil {
			return err
		}
		id, err := s.Save(ctx, b)
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil

	case action == "load" && len(rest) == 2:
		b, err := s.Load(ctx, rest[0])
		if err != nil {
			return err
		}
		if err := writeTrace(rest[1], b); err != nil {
			return err
		}
		log.Printf("trace %s written to %s", b.Meta.ID, rest[1])
		return nil

	case action == "rm" && len(rest) == 1:
		return s.Delete(ctx, rest[0])
	}
	fs.Usage()
	return fmt.Errorf("archive: bad action %q", action)
}
