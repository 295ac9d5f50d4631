package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/milk9111/gamepresets/prefabs"
)

// setFlags collects repeated -set key=value pairs.
type setFlags []string

func (s *setFlags) String() string { return strings.Join(*s, ",") }

func (s *setFlags) Set(v string) error {
	if !strings.Contains(v, "=") {
		return fmt.Errorf("expected key=value, got %q", v)
	}
	*s = append(*s, v)
	return nil
}

func main() {
	var sets setFlags
	opts := options{}
	dataDir := flag.String("data", "", "directory of table overrides layered over the built-in tables")
	watch := flag.Bool("watch", false, "re-run the command whenever a table in -data changes")
	flag.Var(&sets, "set", "override a field, key=value (repeatable, dotted keys for nested fields)")
	flag.StringVar(&opts.hazard, "hazard", "moderate", "obstacle hazard level")
	flag.StringVar(&opts.rarity, "rarity", "common", "collectible rarity")
	flag.StringVar(&opts.theme, "theme", "", "creature colour theme id for prompts")
	flag.StringVar(&opts.species, "species", "", "species name for prompts (defaults to the form)")
	flag.StringVar(&opts.material, "material", "", "material name for vehicle prompts")
	flag.StringVar(&opts.blend, "blend", "", "second weather preset to blend towards")
	flag.Float64Var(&opts.t, "t", 0.5, "blend factor")
	flag.Uint64Var(&opts.seed, "seed", 1, "random seed for flock spawning")
	flag.BoolVar(&opts.prompt, "prompt", false, "print a generation prompt instead of the composed values")
	flag.BoolVar(&opts.stats, "stats", false, "print gameplay stats for creatures")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}
	opts.category = flag.Arg(0)
	opts.name = flag.Arg(1)

	patch, err := parseSets(sets)
	if err != nil {
		log.Fatalf("presetctl: %v", err)
	}
	opts.patch = patch

	var fsys fs.FS
	if *dataDir != "" {
		fsys = prefabs.Overlay(*dataDir)
	}

	cat, err := loadCatalog(fsys)
	if err != nil {
		log.Fatalf("presetctl: %v", err)
	}
	st := &store{cat: cat}

	if err := run(os.Stdout, st.get(), opts); err != nil {
		log.Fatalf("presetctl: %v", err)
	}

	if !*watch {
		return
	}
	if *dataDir == "" {
		log.Fatal("presetctl: -watch needs -data")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := watchAndRun(ctx, *dataDir, st, opts); err != nil {
		log.Fatalf("presetctl: %v", err)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "usage: presetctl [flags] <category> [name]\n\ncategories:\n")
	for _, c := range commandNames() {
		fmt.Fprintf(out, "  %s\n", c)
	}
	fmt.Fprintf(out, "  forms <category>\n\nflags:\n")
	flag.PrintDefaults()
}
