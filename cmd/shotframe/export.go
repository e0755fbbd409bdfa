package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/shotframe/pkg/adapters/ggrenderer"
	"github.com/user/shotframe/pkg/adapters/nullsink"
	"github.com/user/shotframe/pkg/catalog"
	"github.com/user/shotframe/pkg/entitlement"
	"github.com/user/shotframe/pkg/orchestrator"
	"github.com/user/shotframe/pkg/pipeline"
)

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     l10n.T("Convert an image to another format without styling"),
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "png", Usage: l10n.T("Output format (png, jpg, webp)")},
			&cli.Float64Flag{Name: "quality", Aliases: []string{"q"}, Value: pipeline.ExportQuality, Usage: l10n.T("Lossy quality (0-1]")},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: l10n.T("Output file name, or - for stdout")},
			&cli.StringFlag{Name: "output-dir", Usage: l10n.T("Directory for saved images")},
		},
		Action: runExport,
	}
}

func runExport(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("%s", l10n.T("Exactly one input file is required"))
	}
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.Close()

	source, err := e.fs.ReadFile(c.Args().First())
	if err != nil {
		return err
	}
	format, err := pipeline.ParseFormat(strings.ToLower(strings.TrimSpace(c.String("format"))))
	if err != nil {
		return err
	}

	svc, err := e.entitlement()
	if err != nil {
		return err
	}
	s := pipeline.DefaultSettings()
	s.Format = format
	format = entitlement.NewGate(svc, e.log).Apply(e.ctx, s).Format

	orch := orchestrator.NewDefault(ggrenderer.New(), nullsink.New(), e.log)
	out, err := orch.Export(e.ctx, source, format, c.Float64("quality"))
	if err != nil {
		return err
	}
	_, err = deliver(e, c, out)
	return err
}

func presetsCommand() *cli.Command {
	return &cli.Command{
		Name:  "presets",
		Usage: l10n.T("List presets, backgrounds and frames"),
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "all", Aliases: []string{"a"}, Usage: l10n.T("Also list backgrounds, frames and formats")},
		},
		Action: func(c *cli.Context) error {
			return listCatalog(c.App.Writer, c.Bool("all"))
		},
	}
}

func proMark(pro bool) string {
	if pro {
		return "Pro"
	}
	return ""
}

// listCatalog prints the catalog as aligned columns.
func listCatalog(out io.Writer, all bool) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\n", l10n.T("Presets"))
	for _, p := range catalog.Presets {
		fmt.Fprintf(w, "  %s\t%s %s\t%s\t%s\n", p.ID, p.Icon, p.Name, p.Background, proMark(p.Pro()))
	}
	if !all {
		return w.Flush()
	}

	fmt.Fprintf(w, "\n%s\n", l10n.T("Gradients"))
	for _, g := range catalog.Gradients {
		fmt.Fprintf(w, "  gradient:%d\t%s\t%s\n", g.ID, g.Name, proMark(g.Pro))
	}
	fmt.Fprintf(w, "\n%s\n", l10n.T("Solid colors"))
	for _, s := range catalog.Solids {
		fmt.Fprintf(w, "  solid:%s\t%s\t%s\n", s.ID, s.Hex, proMark(s.Pro))
	}
	fmt.Fprintf(w, "\n%s\n", l10n.T("Mesh gradients"))
	for _, m := range catalog.Meshes {
		fmt.Fprintf(w, "  mesh:%d\t%s\t%s\n", m.ID, m.Name, proMark(m.Pro))
	}
	fmt.Fprintf(w, "\n%s\n", l10n.T("Frames"))
	for _, m := range catalog.Mockups {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", m.Type, m.Name, proMark(m.Pro))
	}
	fmt.Fprintf(w, "\n%s\n", l10n.T("Shadows"))
	for _, s := range catalog.Shadows {
		fmt.Fprintf(w, "  %s\t%s\t\n", s.Kind, s.Name)
	}
	fmt.Fprintf(w, "\n%s\n", l10n.T("Formats"))
	for _, f := range catalog.Formats {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", f.Format, f.Name, proMark(f.Pro))
	}
	return w.Flush()
}
