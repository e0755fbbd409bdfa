package summarizer

import (
	"fmt"
	"strings"
	"time"
)

// MarkdownFormatter renders a Summary as a Markdown report.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	var b strings.Builder

	b.WriteString("# Render Summary\n\n")
	fmt.Fprintf(&b, "Generated at %s\n\n", s.GeneratedAt.Format(time.RFC3339))

	b.WriteString("## Source\n\n")
	b.WriteString("| Item | Value |\n|------|-------|\n")
	row(&b, "Name", orDash(s.Source.Name))
	row(&b, "Format", orDash(s.Source.Format))
	row(&b, "Size", fmt.Sprintf("%dx%d", s.Source.Width, s.Source.Height))
	row(&b, "Bytes", formatBytes(s.Source.Bytes))

	b.WriteString("\n## Settings\n\n")
	b.WriteString("| Item | Value |\n|------|-------|\n")
	if s.Settings.Preset != "" {
		row(&b, "Preset", s.Settings.Preset)
	}
	row(&b, "Background", "`"+s.Settings.Background+"`")
	row(&b, "Padding", fmt.Sprintf("%d px", s.Settings.Padding))
	row(&b, "Corner radius", fmt.Sprintf("%d px", s.Settings.Radius))
	row(&b, "Shadow", s.Settings.Shadow)
	row(&b, "Mockup", s.Settings.Mockup)
	row(&b, "Tilt", s.Settings.Tilt)
	row(&b, "Annotations", fmt.Sprintf("%d", s.Settings.Annotations))
	row(&b, "Watermark", yesNo(s.Settings.Watermark))
	row(&b, "Pro", yesNo(s.Settings.Pro))

	b.WriteString("\n## Output\n\n")
	b.WriteString("| Item | Value |\n|------|-------|\n")
	row(&b, "Format", s.Output.Format)
	row(&b, "Size", fmt.Sprintf("%dx%d", s.Output.Width, s.Output.Height))
	row(&b, "Bytes", formatBytes(s.Output.Bytes))
	row(&b, "Location", orDash(s.Output.Location))
	row(&b, "Render time", fmt.Sprintf("%d ms", s.Output.DurationMs))

	return b.String()
}

func row(b *strings.Builder, k, v string) {
	fmt.Fprintf(b, "| %s | %s |\n", k, v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func formatTilt(x, y float64) string {
	return fmt.Sprintf("%.1f° / %.1f°", x, y)
}

// formatBytes uses binary units.
func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.2f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
