// Package ignore writes the .gitignore for a fresh repository.
package ignore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/poonai/ginit/internal/errors"
	"github.com/poonai/ginit/internal/logging"
	"github.com/poonai/ginit/internal/prompt"
)

const (
	// FileName is the ignore file written into the directory.
	FileName = ".gitignore"
	gitDir   = ".git"
)

// SuggestedDefaults are preselected when present in the listing.
var SuggestedDefaults = []string{"node_modules", "bower_components"}

// Generator builds the ignore file from the user's selection.
type Generator struct {
	dir      string
	prompter prompt.Prompter
	log      *logrus.Entry
}

// NewGenerator creates a Generator for dir.
func NewGenerator(dir string, p prompt.Prompter) *Generator {
	return &Generator{
		dir:      dir,
		prompter: p,
		log:      logging.NewLogger("ignore"),
	}
}

// Candidates lists the directory entries that may be ignored.
func (g *Generator) Candidates() ([]string, error) {
	entries, err := os.ReadDir(g.dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.Name() == gitDir || e.Name() == FileName {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// Generate asks which entries to ignore and writes them. With nothing to
// choose from, or nothing chosen, the file is touched instead.
func (g *Generator) Generate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	candidates, err := g.Candidates()
	if err != nil {
		return errors.IO(g.dir, err)
	}

	path := filepath.Join(g.dir, FileName)
	if len(candidates) == 0 {
		g.log.Debug("nothing to ignore")
		return touch(path)
	}

	selected, err := g.prompter.MultiSelect("Select the files and/or folders you wish to ignore:",
		candidates, presentDefaults(candidates))
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		return touch(path)
	}

	g.log.WithField("entries", selected).Debug("writing ignore file")
	if err := os.WriteFile(path, []byte(strings.Join(selected, "\n")), 0644); err != nil {
		return errors.IO(path, err)
	}
	return nil
}

func presentDefaults(candidates []string) []string {
	var out []string
	for _, d := range SuggestedDefaults {
		for _, c := range candidates {
			if c == d {
				out = append(out, d)
			}
		}
	}
	return out
}

// touch creates path if absent, otherwise updates its timestamps.
func touch(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.IO(path, err)
	}
	if err := f.Close(); err != nil {
		return errors.IO(path, err)
	}
	now := time.Now()
	if err := os.Chtimes(path, now, now); err != nil {
		return errors.IO(path, err)
	}
	return nil
}
