package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/appengine-ltd/planet-aqua/internal/content"
	"github.com/appengine-ltd/planet-aqua/internal/diary"
	"github.com/appengine-ltd/planet-aqua/internal/game"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	contentDir := flag.String("content-dir", "", "document this content directory instead of the built-in set")
	flag.Parse()

	var fsys fs.FS = content.Default()
	source := "built-in content (`internal/content/data`)"
	if *contentDir != "" {
		fsys = os.DirFS(*contentDir)
		source = fmt.Sprintf("`%s`", *contentDir)
	}
	bundle, err := content.Load(fsys)
	if err != nil {
		fatal(err)
	}

	root := filepath.Join("docs", "reference", "catalogs")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	files := []docFile{
		generateDecreesDoc(bundle.Catalog, bundle.Config),
		generateEventsDoc(bundle.Catalog),
		generateLoreDoc(bundle.Catalog, bundle.Config),
		generateEraDoc(bundle.Config),
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateCatalogIndex(files, source)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateCatalogIndex(files []docFile, source string) string {
	var b strings.Builder
	b.WriteString("# Content Catalogs\n\n")
	b.WriteString(fmt.Sprintf("Generated from the %s using `go run ./cmd/docsgen`.\n\n", source))
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateDecreesDoc(c *game.Catalog, cfg game.Config) docFile {
	items := append([]game.Action(nil), c.Actions...)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Unlock.MinYear != items[j].Unlock.MinYear {
			return items[i].Unlock.MinYear < items[j].Unlock.MinYear
		}
		return items[i].Name < items[j].Name
	})

	var b strings.Builder
	b.WriteString("# Decrees\n\n")
	b.WriteString("Source: `actions.csv`.\n\n")
	b.WriteString(fmt.Sprintf("Total decrees: **%d**.\n\n", len(items)))
	b.WriteString("| ID | Name | Era | Cost | Available | Requires | Effects |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- |\n")
	for _, a := range items {
		era := cfg.EraFor(cfg.GenerationOf(a.Unlock.MinYear))
		b.WriteString("| ")
		b.WriteString(escape(string(a.ID)))
		b.WriteString(" | ")
		b.WriteString(escape(a.Name))
		b.WriteString(" | ")
		b.WriteString(escape(era.Name))
		b.WriteString(" | ")
		b.WriteString(diary.Money(a.Cost))
		b.WriteString(" | ")
		b.WriteString(escape(formatUnlock(a.Unlock)))
		b.WriteString(" | ")
		b.WriteString(escape(formatRequires(c, a.Unlock.Requires)))
		b.WriteString(" | ")
		b.WriteString(escape(a.Effects.String()))
		b.WriteString(" |\n")
	}

	return docFile{Name: "decrees.md", Title: "Decrees", Content: b.String()}
}

func generateEventsDoc(c *game.Catalog) docFile {
	items := append([]game.Event(nil), c.Events...)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Kind != items[j].Kind {
			return items[i].Kind < items[j].Kind
		}
		if items[i].YearMin != items[j].YearMin {
			return items[i].YearMin < items[j].YearMin
		}
		return items[i].ID < items[j].ID
	})

	var b strings.Builder
	b.WriteString("# Events\n\n")
	b.WriteString("Source: `events.csv`. Years are half-open: an event in `[20,25)` can fire in year 20 but not 25. ")
	b.WriteString("Interactive events take precedence over automatic ones in the same year.\n\n")
	b.WriteString(fmt.Sprintf("Total events: **%d**.\n\n", len(items)))
	b.WriteString("| ID | Name | Kind | Years | Weight | Effects |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
	for _, e := range items {
		b.WriteString("| ")
		b.WriteString(escape(string(e.ID)))
		b.WriteString(" | ")
		b.WriteString(escape(e.Name))
		b.WriteString(" | ")
		b.WriteString(escape(string(e.Kind)))
		b.WriteString(" | ")
		b.WriteString(fmt.Sprintf("[%d,%d)", e.YearMin, e.YearMax))
		b.WriteString(" | ")
		b.WriteString(fmt.Sprintf("%d", e.Weight))
		b.WriteString(" | ")
		b.WriteString(escape(formatEventEffects(e)))
		b.WriteString(" |\n")
	}

	return docFile{Name: "events.md", Title: "Events", Content: b.String()}
}

func generateLoreDoc(c *game.Catalog, cfg game.Config) docFile {
	rank := make(map[game.Era]int, len(cfg.Eras))
	for i, band := range cfg.Eras {
		rank[band.Era] = i
	}
	items := append([]game.LoreDrop(nil), c.Lore...)
	sort.SliceStable(items, func(i, j int) bool {
		if rank[items[i].Era] != rank[items[j].Era] {
			return rank[items[i].Era] < rank[items[j].Era]
		}
		return items[i].ID < items[j].ID
	})

	var b strings.Builder
	b.WriteString("# Lore Drops\n\n")
	b.WriteString("Source: `lore_drops.csv`.\n\n")
	b.WriteString(fmt.Sprintf("Total lore drops: **%d**.\n\n", len(items)))
	b.WriteString("| ID | Era | Weight | Title | Text |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, l := range items {
		b.WriteString("| ")
		b.WriteString(escape(l.ID))
		b.WriteString(" | ")
		b.WriteString(escape(string(l.Era)))
		b.WriteString(" | ")
		b.WriteString(fmt.Sprintf("%d", l.Weight))
		b.WriteString(" | ")
		b.WriteString(escape(l.Title))
		b.WriteString(" | ")
		b.WriteString(escape(l.Text))
		b.WriteString(" |\n")
	}

	return docFile{Name: "lore.md", Title: "Lore Drops", Content: b.String()}
}

func generateEraDoc(cfg game.Config) docFile {
	var b strings.Builder
	b.WriteString("# Eras and Generations\n\n")
	b.WriteString("Source: `config.yaml`.\n\n")
	b.WriteString("| Generation | Name | Years | Era |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for g := 0; g < cfg.Generations; g++ {
		h := diary.NewHeading(cfg, g)
		b.WriteString(fmt.Sprintf("| %d | %s | %d-%d | %s |\n", g+1, escape(h.Name), h.FromYear, h.ToYear, escape(h.Era)))
	}
	return docFile{Name: "eras.md", Title: "Eras and Generations", Content: b.String()}
}

func formatUnlock(u game.Unlock) string {
	parts := []string{fmt.Sprintf("from year %d", u.MinYear)}
	if u.MaxYear > 0 {
		parts = append(parts, fmt.Sprintf("until year %d", u.MaxYear))
	}
	if u.MinSupport > 0 {
		parts = append(parts, fmt.Sprintf("trust ≥ %.0f", u.MinSupport))
	}
	return strings.Join(parts, ", ")
}

func formatRequires(c *game.Catalog, ids []game.ActionID) string {
	if len(ids) == 0 {
		return "-"
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if a, ok := c.Action(id); ok {
			names = append(names, a.Name)
			continue
		}
		names = append(names, string(id))
	}
	return strings.Join(names, ", ")
}

func formatEventEffects(e game.Event) string {
	if !e.Interactive() {
		return e.Effects.String()
	}
	parts := make([]string, 0, len(e.Choices))
	for i, ch := range e.Choices {
		parts = append(parts, fmt.Sprintf("%c) %s: %s", 'A'+rune(i), ch.Label, ch.Effects))
	}
	return strings.Join(parts, "\n")
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
