package main

import (
	"bytes"
	"flag"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sss/roster/internal/cli"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// NavItem is a single sidebar link.
type NavItem struct {
	Title  string
	Anchor string
}

// PageData is the template data for the reference page.
type PageData struct {
	Title   string
	Nav     []NavItem
	Content template.HTML
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<nav class="sidebar-nav">
{{- range .Nav}}
  <a href="#{{.Anchor}}" class="nav-link">{{.Title}}</a>
{{- end}}
</nav>
<main>
{{.Content}}
</main>
</body>
</html>
`))

func main() {
	outPath := flag.String("out", "docs/commands.html", "output HTML file")
	mdOnly := flag.Bool("markdown", false, "write the Markdown source instead of HTML")
	flag.Parse()

	cmds := visibleCommands(cli.Root())
	src := referenceMarkdown(cli.Root(), cmds)

	var out []byte
	if *mdOnly {
		out = []byte(src)
	} else {
		page, err := renderPage(src, cmds)
		if err != nil {
			fatal("rendering: %v", err)
		}
		out = page
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fatal("creating directory for %s: %v", *outPath, err)
	}
	if err := os.WriteFile(*outPath, out, 0o644); err != nil {
		fatal("writing %s: %v", *outPath, err)
	}

	fmt.Printf("  generated %s (%d commands)\n", *outPath, len(cmds))
}

// visibleCommands lists every runnable, non-hidden command below root in
// depth-first order.
func visibleCommands(root *cobra.Command) []*cobra.Command {
	var out []*cobra.Command
	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		for _, sub := range c.Commands() {
			if sub.Hidden || sub.Name() == "help" {
				continue
			}
			if sub.Runnable() {
				out = append(out, sub)
			}
			walk(sub)
		}
	}
	walk(root)
	return out
}

// anchor is the heading ID goldmark generates for a command heading.
func anchor(c *cobra.Command) string {
	return strings.ReplaceAll(c.CommandPath(), " ", "-")
}

// referenceMarkdown renders the command tree as one Markdown document.
func referenceMarkdown(root *cobra.Command, cmds []*cobra.Command) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s command reference\n\n", root.Name())
	if root.Long != "" {
		b.WriteString(root.Long + "\n\n")
	}

	b.WriteString("| Command | Description |\n|---|---|\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "| [`%s`](#%s) | %s |\n", c.CommandPath(), anchor(c), c.Short)
	}
	b.WriteString("\n")

	for _, c := range cmds {
		b.WriteString(commandMarkdown(c))
	}
	return b.String()
}

// commandMarkdown documents one command: usage, description and flags.
func commandMarkdown(c *cobra.Command) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s\n\n", c.CommandPath())
	if c.Short != "" {
		b.WriteString(c.Short + "\n\n")
	}

	fmt.Fprintf(&b, "```sh\n%s\n```\n\n", c.UseLine())

	if c.Long != "" {
		b.WriteString(longMarkdown(c.Long))
	}

	if flags := c.NonInheritedFlags().FlagUsages(); strings.TrimSpace(flags) != "" {
		b.WriteString("**Flags**\n\n```text\n")
		b.WriteString(flags)
		b.WriteString("```\n\n")
	}
	return b.String()
}

// longMarkdown fences indented example lines of a Long description.
func longMarkdown(long string) string {
	var b strings.Builder
	inExample := false
	for _, line := range strings.Split(strings.TrimRight(long, "\n"), "\n") {
		isExample := strings.HasPrefix(line, "  ")
		switch {
		case isExample && !inExample:
			b.WriteString("```sh\n")
		case !isExample && inExample:
			b.WriteString("```\n")
		}
		inExample = isExample
		if isExample {
			line = strings.TrimSpace(line)
		}
		b.WriteString(line + "\n")
	}
	if inExample {
		b.WriteString("```\n")
	}
	return b.String() + "\n"
}

func renderPage(src string, cmds []*cobra.Command) ([]byte, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Linkify,
			highlighting.NewHighlighting(
				highlighting.WithStyle("monokai"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	var content bytes.Buffer
	if err := md.Convert([]byte(src), &content); err != nil {
		return nil, err
	}

	data := PageData{
		Title:   cli.Root().Name() + " command reference",
		Content: template.HTML(content.String()),
	}
	for _, c := range cmds {
		data.Nav = append(data.Nav, NavItem{Title: c.CommandPath(), Anchor: anchor(c)})
	}

	var page bytes.Buffer
	if err := pageTmpl.Execute(&page, data); err != nil {
		return nil, err
	}
	return page.Bytes(), nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "docgen: "+format+"\n", args...)
	os.Exit(1)
}
