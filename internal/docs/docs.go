// Package docs generates a static markdown reference of a coercion catalog:
// an index page plus one page per target type.
package docs

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/leapstack-labs/convcat/pkg/catalog"
	"github.com/leapstack-labs/convcat/pkg/core"
	"github.com/leapstack-labs/convcat/pkg/render"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IndexPage is the file name of the generated index.
const IndexPage = "index.md"

// DefaultTitle is used when no site title is configured.
const DefaultTitle = "coercion rules"

// Result summarizes a generation run.
type Result struct {
	Pages      int
	Rules      int
	Violations int
	Pruned     int
}

// Generator writes documentation pages for a catalog.
type Generator struct {
	title  string
	logger *slog.Logger
}

// NewGenerator creates a generator. The title is title-cased for headings.
func NewGenerator(title string, logger *slog.Logger) *Generator {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Generator{
		title:  cases.Title(language.English).String(title),
		logger: logger,
	}
}

// Title returns the site title as rendered in headings.
func (g *Generator) Title() string {
	return g.title
}

// PageName returns the file name of the page documenting target t.
func PageName(t core.TypeRef) string {
	return strings.ToLower(t.Name()) + ".md"
}

// Generate writes the index and all target pages into outDir. Pages are
// rendered concurrently; previously generated pages for targets that no
// longer exist are removed.
func (g *Generator) Generate(ctx context.Context, c *catalog.Catalog, outDir string) (Result, error) {
	var res Result
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return res, fmt.Errorf("failed to create output directory: %w", err)
	}

	groups := c.GroupByTarget().Groups()
	violations := catalog.ValidateConsistency(c)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for _, grp := range groups {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			path := filepath.Join(outDir, PageName(grp.Target))
			if err := writePage(path, g.targetPage(grp)); err != nil {
				return err
			}
			g.logger.Debug("wrote target page", "target", grp.Target.Name(), "path", path, "rules", len(grp.Entries))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return res, err
	}

	if err := writePage(filepath.Join(outDir, IndexPage), g.indexPage(c, groups, violations)); err != nil {
		return res, err
	}

	keep := map[string]bool{IndexPage: true}
	for _, grp := range groups {
		keep[PageName(grp.Target)] = true
	}
	pruned, err := pruneStale(outDir, keep)
	if err != nil {
		return res, err
	}

	res = Result{
		Pages:      len(groups) + 1,
		Rules:      c.Len(),
		Violations: len(violations),
		Pruned:     pruned,
	}
	g.logger.Info("generated docs", "dir", outDir, "pages", res.Pages, "rules", res.Rules, "pruned", res.Pruned)
	return res, nil
}

func (g *Generator) indexPage(c *catalog.Catalog, groups []catalog.Group, violations []catalog.Violation) []byte {
	w := render.NewMarkdownWriter()
	w.Frontmatter(g.title, "Index of documented coercion rules")
	w.GeneratedMarker()
	w.Header(1, g.title)
	w.Paragraph(fmt.Sprintf("%d rules across %d target types.", c.Len(), len(groups)))

	rows := make([][]string, 0, len(groups))
	for _, grp := range groups {
		var strict, lax int
		for _, e := range grp.Entries {
			if e.Mode == core.Strict {
				strict++
			} else {
				lax++
			}
		}
		rows = append(rows, []string{
			fmt.Sprintf("[%s](%s)", grp.Target.Name(), PageName(grp.Target)),
			grp.Target.Kind().String(),
			fmt.Sprint(len(grp.Entries)),
			fmt.Sprint(strict),
			fmt.Sprint(lax),
		})
	}
	w.Table([]string{"Target", "Kind", "Rules", "Strict", "Lax"}, rows)

	w.Header(2, "Consistency")
	if len(violations) == 0 {
		w.Paragraph("No inconsistencies found.")
		return w.Bytes()
	}
	items := make([]string, len(violations))
	for i, v := range violations {
		items[i] = fmt.Sprintf("%s %s: %s", render.Bold(v.Severity.String()), render.InlineCode(v.Code), v.Message)
	}
	w.BulletList(items)
	return w.Bytes()
}

func (g *Generator) targetPage(grp catalog.Group) []byte {
	name := grp.Target.Name()
	w := render.NewMarkdownWriter()
	w.Frontmatter(name, fmt.Sprintf("How values are coerced into %s", name))
	w.GeneratedMarker()
	w.Header(1, name)
	w.Paragraph(fmt.Sprintf("[%s](%s) / %s", g.title, IndexPage, name))

	for _, mode := range core.Modes() {
		var entries []core.Entry
		for _, e := range grp.Entries {
			if e.Mode == mode {
				entries = append(entries, e)
			}
		}
		if len(entries) == 0 {
			continue
		}
		w.Header(2, mode.String())
		w.CatalogTable(render.RenderTable(entries))
	}
	return w.Bytes()
}

func writePage(path string, content []byte) error {
	if err := os.WriteFile(path, content, 0o644); err != nil { //nolint:gosec // G306: generated docs are public
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// pruneStale removes generated markdown pages not listed in keep.
// Hand-written files are never touched.
func pruneStale(dir string, keep map[string]bool) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read output directory: %w", err)
	}

	pruned := 0
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".md" || keep[e.Name()] {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path) //nolint:gosec // G304: path is inside the output directory
		if err != nil {
			return pruned, err
		}
		if !bytes.Contains(data, []byte(render.GeneratedMarker)) {
			continue
		}
		if err := os.Remove(path); err != nil {
			return pruned, err
		}
		pruned++
	}
	return pruned, nil
}
