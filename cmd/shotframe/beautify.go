package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/shotframe/pkg/adapters/filesink"
	"github.com/user/shotframe/pkg/adapters/ggrenderer"
	"github.com/user/shotframe/pkg/adapters/nullsink"
	"github.com/user/shotframe/pkg/config"
	"github.com/user/shotframe/pkg/entitlement"
	"github.com/user/shotframe/pkg/orchestrator"
	"github.com/user/shotframe/pkg/pipeline"
	"github.com/user/shotframe/pkg/ports"
	"github.com/user/shotframe/pkg/shotframe"
	"github.com/user/shotframe/pkg/stages/background"
	"github.com/user/shotframe/pkg/summarizer"
)

func beautifyCommand() *cli.Command {
	input := l10n.T("Input")
	style := l10n.T("Style")
	annotations := l10n.T("Annotations")
	output := l10n.T("Output")
	browser := l10n.T("Browser")
	debug := l10n.T("Debug")

	return &cli.Command{
		Name:      "beautify",
		Usage:     l10n.T("Frame a screenshot on a background"),
		ArgsUsage: "[FILE | - | DATA-URL]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "clipboard", Usage: l10n.T("Read the screenshot from the clipboard"), Category: input},
			&cli.StringFlag{Name: "url", Usage: l10n.T("Capture this URL instead of reading a file"), Category: input},
			&cli.BoolFlag{Name: "full-page", Usage: l10n.T("Capture the whole page, not just the viewport"), Category: input},

			&cli.StringFlag{Name: "preset", Aliases: []string{"p"}, Usage: l10n.T("Preset id (see the presets command)"), Category: style},
			&cli.StringFlag{Name: "background", Aliases: []string{"b"}, Usage: l10n.T("Background: gradient:<id>, solid:<id>, mesh:<id>, a color or a linear-gradient"), Category: style},
			&cli.IntFlag{Name: "padding", Usage: l10n.T("Padding around the screenshot (0-128)"), Category: style},
			&cli.IntFlag{Name: "radius", Usage: l10n.T("Corner radius (0-64)"), Category: style},
			&cli.StringFlag{Name: "shadow", Usage: l10n.T("Shadow (none, soft, medium, hard)"), Category: style},
			&cli.BoolFlag{Name: "shadow-on-mockup", Usage: l10n.T("Cast the shadow under device frames"), Category: style},
			&cli.StringFlag{Name: "mockup", Aliases: []string{"m"}, Usage: l10n.T("Device frame"), Category: style},
			&cli.StringFlag{Name: "tilt", Usage: l10n.T("Rotation in degrees as x,y (up to 15)"), Category: style},
			&cli.StringFlag{Name: "watermark", Usage: l10n.T("Watermark text"), Category: style},
			&cli.BoolFlag{Name: "no-watermark", Usage: l10n.T("Disable the watermark (Pro)"), Category: style},
			&cli.Uint64Flag{Name: "seed", Usage: l10n.T("Seed for mesh background noise"), Category: style},

			&cli.StringFlag{Name: "annotations", Usage: l10n.T("YAML or JSON file with annotations"), Category: annotations},
			&cli.StringSliceFlag{Name: "blur", Usage: l10n.T("Blur region x,y,w,h"), Category: annotations},
			&cli.StringSliceFlag{Name: "rect", Usage: l10n.T("Rectangle x,y,w,h"), Category: annotations},
			&cli.StringSliceFlag{Name: "arrow", Usage: l10n.T("Arrow x1,y1,x2,y2"), Category: annotations},
			&cli.StringSliceFlag{Name: "text", Usage: l10n.T("Text label x,y,text"), Category: annotations},
			&cli.StringFlag{Name: "color", Usage: l10n.T("Annotation color"), Category: annotations},
			&cli.Float64Flag{Name: "font-size", Usage: l10n.T("Annotation font size"), Category: annotations},

			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: l10n.T("Output file name, or - for stdout"), Category: output},
			&cli.StringFlag{Name: "output-dir", Usage: l10n.T("Directory for saved images"), Category: output},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: l10n.T("Output format (png, jpg, webp)"), Category: output},
			&cli.Float64Flag{Name: "quality", Aliases: []string{"q"}, Usage: l10n.T("Lossy quality (0-1]"), Category: output},
			&cli.BoolFlag{Name: "data-url", Usage: l10n.T("Print the result as a data URL"), Category: output},
			&cli.BoolFlag{Name: "copy", Usage: l10n.T("Copy the result to the clipboard"), Category: output},
			&cli.StringFlag{Name: "summary", Usage: l10n.T("Write an execution summary (Markdown, or JSON/YAML by extension)"), Category: output},

			&cli.StringFlag{Name: "chrome-path", Usage: l10n.T("Path to Chrome executable"), Category: browser},
			&cli.BoolFlag{Name: "no-headless", Usage: l10n.T("Run browser in non-headless mode"), Category: browser},
			&cli.IntFlag{Name: "viewport-width", Usage: l10n.T("Browser viewport width"), Category: browser},
			&cli.IntFlag{Name: "viewport-height", Usage: l10n.T("Browser viewport height"), Category: browser},
			&cli.IntFlag{Name: "delay", Usage: l10n.T("Wait after load in milliseconds"), Category: browser},
			&cli.BoolFlag{Name: "ignore-https-errors", Usage: l10n.T("Ignore HTTPS certificate errors"), Category: browser},
			&cli.StringFlag{Name: "proxy-server", Usage: l10n.T("HTTP proxy server (e.g., http://proxy:8080)"), Category: browser},

			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: l10n.T("Enable debug output"), Category: debug},
			&cli.StringFlag{Name: "debug-dir", Usage: l10n.T("Directory for debug output"), Category: debug},
		},
		Action: runBeautify,
	}
}

func runBeautify(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.Close()
	started := time.Now()

	source, name, err := readSource(e, c)
	if err != nil {
		return err
	}

	settings, err := beautifySettings(e.cfg, c)
	if err != nil {
		return err
	}
	if p := presetID(e.cfg, c); p != "" {
		e.log.Info("Applied preset %s", p)
	}

	svc, err := e.entitlement()
	if err != nil {
		return err
	}
	pro := svc.IsEntitled(e.ctx)
	settings = entitlement.NewGate(svc, e.log).Apply(e.ctx, settings)

	renderer := ggrenderer.New()
	debugSink, err := debugSink(e, c, renderer)
	if err != nil {
		return err
	}
	orch := orchestrator.NewDefault(renderer, debugSink, e.log)

	kind := pipeline.KindBuffer
	if c.Bool("data-url") {
		kind = pipeline.KindDataURL
	}
	in := pipeline.RenderInput{Source: source, Settings: settings, Kind: kind}
	if c.IsSet("seed") {
		in.Rand = background.NewRand(c.Uint64("seed"))
	}
	out, err := orch.Render(e.ctx, in)
	if err != nil {
		return err
	}

	location, err := deliver(e, c, out)
	if err != nil {
		return err
	}

	if c.Bool("copy") {
		if err := newClipboard().Write(e.ctx, out.Data, out.MIME); err != nil {
			e.log.Warn("Failed to copy to clipboard: %s", err)
		} else {
			e.log.Info("Copied to clipboard")
		}
	}

	if path := c.String("summary"); path != "" {
		writeSummary(e, path, renderer, summaryInput{
			name: name, source: source, preset: presetID(e.cfg, c), settings: settings,
			pro: pro, out: out, location: location, elapsed: time.Since(started),
		})
	}
	return nil
}

// readSource returns the encoded screenshot and a name describing where
// it came from.
func readSource(e *env, c *cli.Context) ([]byte, string, error) {
	switch {
	case c.String("url") != "":
		return captureURL(e, c)
	case c.Bool("clipboard"):
		data, err := newClipboard().Read(e.ctx)
		return data, "clipboard", err
	}

	arg := c.Args().First()
	switch {
	case arg == "" || arg == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		if bytes.HasPrefix(bytes.TrimSpace(data), []byte("data:")) {
			data, _, err = pipeline.DecodeDataURL(string(data))
		}
		return data, "stdin", err
	case strings.HasPrefix(arg, "data:"):
		data, _, err := pipeline.DecodeDataURL(arg)
		return data, "data URL", err
	}
	data, err := e.fs.ReadFile(arg)
	if err != nil {
		return nil, "", err
	}
	return data, filepath.Base(arg), nil
}

func captureURL(e *env, c *cli.Context) ([]byte, string, error) {
	url := c.String("url")
	cc := e.cfg.Capture
	opts := ports.CaptureOptions{
		URL:               url,
		ViewportWidth:     cc.ViewportWidth,
		ViewportHeight:    cc.ViewportHeight,
		DeviceScaleFactor: cc.DeviceScaleFactor,
		FullPage:          c.Bool("full-page"),
		DelayMs:           cc.DelayMs,
		ChromePath:        cc.ChromePath,
		Headless:          cc.Headless && !c.Bool("no-headless"),
		IgnoreHTTPSErrors: c.Bool("ignore-https-errors"),
		ProxyServer:       c.String("proxy-server"),
	}
	if c.IsSet("chrome-path") {
		opts.ChromePath = c.String("chrome-path")
	}
	if c.IsSet("viewport-width") {
		opts.ViewportWidth = c.Int("viewport-width")
	}
	if c.IsSet("viewport-height") {
		opts.ViewportHeight = c.Int("viewport-height")
	}
	if c.IsSet("delay") {
		opts.DelayMs = c.Int("delay")
	}

	ctx := e.ctx
	if cc.TimeoutSec > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cc.TimeoutSec)*time.Second)
		defer cancel()
	}
	e.log.Info("Capturing %s", url)
	data, err := newCapturer(e.log).Capture(ctx, opts)
	return data, url, err
}

func presetID(cfg config.Config, c *cli.Context) string {
	if c.IsSet("preset") {
		return c.String("preset")
	}
	return cfg.Preset
}

// beautifySettings layers the flags over the configured settings. A
// preset flag is applied first so the other flags refine it.
func beautifySettings(cfg config.Config, c *cli.Context) (pipeline.Settings, error) {
	base, err := cfg.Settings()
	if err != nil {
		return pipeline.Settings{}, err
	}
	b := shotframe.NewSettingsBuilderFrom(base)

	if c.IsSet("preset") {
		b.WithPreset(c.String("preset"))
	}
	if c.IsSet("background") {
		b.WithBackground(c.String("background"))
	}
	if c.IsSet("padding") {
		b.WithPadding(c.Int("padding"))
	}
	if c.IsSet("radius") {
		b.WithBorderRadius(c.Int("radius"))
	}
	if c.IsSet("shadow") {
		b.WithShadow(pipeline.ShadowKind(c.String("shadow")))
	}
	if c.IsSet("shadow-on-mockup") {
		b.WithShadowOnMockup(c.Bool("shadow-on-mockup"))
	}
	if c.IsSet("mockup") {
		b.WithMockup(pipeline.MockupType(c.String("mockup")))
	}
	if c.IsSet("format") {
		f, err := pipeline.ParseFormat(strings.ToLower(c.String("format")))
		if err != nil {
			return pipeline.Settings{}, err
		}
		b.WithFormat(f)
	}
	if c.IsSet("quality") {
		b.WithQuality(c.Float64("quality"))
	}
	if c.IsSet("tilt") {
		t, err := parseTilt(c.String("tilt"))
		if err != nil {
			return pipeline.Settings{}, err
		}
		b.WithTilt(t.X, t.Y)
	}
	switch {
	case c.Bool("no-watermark"):
		b.WithoutWatermark()
	case c.IsSet("watermark"):
		b.WithWatermark(c.String("watermark"))
	}

	af := annotationFlags{
		Blur:     c.StringSlice("blur"),
		Rect:     c.StringSlice("rect"),
		Arrow:    c.StringSlice("arrow"),
		Text:     c.StringSlice("text"),
		Color:    c.String("color"),
		FontSize: c.Float64("font-size"),
	}
	if path := c.String("annotations"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return pipeline.Settings{}, err
		}
		af.File = data
	}
	list, err := buildAnnotations(af)
	if err != nil {
		return pipeline.Settings{}, err
	}
	if len(list) > 0 {
		b.WithAnnotations(list)
	}

	return b.Build()
}

func debugSink(e *env, c *cli.Context, renderer ports.Renderer) (ports.DebugSink, error) {
	if !c.Bool("debug") && !e.cfg.Debug {
		return nullsink.New(), nil
	}
	dir := e.cfg.DebugDir
	if c.IsSet("debug-dir") {
		dir = c.String("debug-dir")
	}
	if err := e.fs.MkdirAll(dir); err != nil {
		return nil, fmt.Errorf("create debug directory: %w", err)
	}
	return filesink.NewDebug(dir, e.fs, renderer), nil
}

// deliver writes the output to stdout or the configured sink and returns
// where it went.
func deliver(e *env, c *cli.Context, out pipeline.Output) (string, error) {
	if c.Bool("data-url") {
		_, err := fmt.Fprintln(c.App.Writer, out.Value())
		return "stdout", err
	}
	if c.String("output") == "-" {
		_, err := c.App.Writer.Write(out.Data)
		return "stdout", err
	}

	sink, err := e.imageSink(c.String("output-dir"))
	if err != nil {
		return "", err
	}
	location, err := orchestrator.Save(e.ctx, sink, out, c.String("output"))
	if err != nil {
		e.log.Error("Failed to write output: %s", err)
		return "", err
	}
	e.log.Info("Output saved to %s", location)
	return location, nil
}

type summaryInput struct {
	name     string
	source   []byte
	preset   string
	settings pipeline.Settings
	pro      bool
	out      pipeline.Output
	location string
	elapsed  time.Duration
}

func writeSummary(e *env, path string, renderer ports.Renderer, in summaryInput) {
	b := summarizer.NewBuilder()
	if img, format, err := renderer.DecodeImage(in.source); err == nil {
		bounds := img.Bounds()
		b.WithSource(in.name, format.String(), bounds.Dx(), bounds.Dy(), len(in.source))
	}
	summary := b.WithSettings(in.preset, in.settings, in.pro).
		WithOutput(in.out, in.location, in.elapsed).
		Build()

	w := summarizer.NewWriter(summarizer.FormatterFor(path), e.fs)
	if err := w.Write(path, summary); err != nil {
		e.log.Warn("Failed to write summary: %s", err)
		return
	}
	e.log.Info("Summary saved to %s", path)
}
