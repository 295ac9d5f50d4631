package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/milk9111/gamepresets/prefabs"
)

// watchAndRun reloads the catalog from dir on every table or script change
// and re-runs the command. A catalog that fails to load is reported and the
// previous one is kept.
func watchAndRun(ctx context.Context, dir string, st *store, o options) error {
	dirs := []string{dir}
	if info, err := os.Stat(filepath.Join(dir, "scripts")); err == nil && info.IsDir() {
		dirs = append(dirs, filepath.Join(dir, "scripts"))
	}

	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		return err
	}
	defer w.Close()

	log.Printf("watching %s", dir)
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v", err)
		case name, ok := <-w.Changed:
			if !ok {
				return nil
			}
			cat, err := loadCatalog(prefabs.Overlay(dir))
			if err != nil {
				log.Printf("reload after %s: %v", filepath.Base(name), err)
				continue
			}
			st.swap(cat)
			log.Printf("reloaded %s", filepath.Base(name))
			if err := run(os.Stdout, st.get(), o); err != nil {
				log.Printf("%v", err)
			}
		}
	}
}
