package main

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/shotframe/pkg/pipeline"
	"github.com/user/shotframe/pkg/ports"
	"github.com/user/shotframe/pkg/stages/annotate"
)

// annotationFlags collects the annotation flags of one invocation.
type annotationFlags struct {
	File     []byte
	Blur     []string
	Rect     []string
	Text     []string
	Arrow    []string
	Color    string
	FontSize float64
}

// buildAnnotations returns the annotations of a file followed by the ones
// given as flags, in flag order per type: blur, rect, arrow, text.
func buildAnnotations(f annotationFlags) ([]pipeline.Annotation, error) {
	var saved []pipeline.Annotation
	if len(f.File) > 0 {
		if err := yaml.Unmarshal(f.File, &saved); err != nil {
			return nil, fmt.Errorf("parse annotations: %w", err)
		}
	}
	layer := annotate.NewLayerFrom(saved)
	style := annotate.Style{Color: f.Color, FontSize: f.FontSize}

	drag := func(t pipeline.AnnotationType, arg string) error {
		v, err := numbers(arg, 4)
		if err != nil {
			return fmt.Errorf("%s %q: %w", t, arg, err)
		}
		if _, err := layer.Begin(t, v[0], v[1], style); err != nil {
			return err
		}
		x, y := v[0]+v[2], v[1]+v[3]
		if t == pipeline.AnnotationArrow {
			x, y = v[2], v[3]
		}
		if err := layer.Move(x, y); err != nil {
			return err
		}
		_, err = layer.End()
		return err
	}

	for _, arg := range f.Blur {
		if err := drag(pipeline.AnnotationBlur, arg); err != nil {
			return nil, err
		}
	}
	for _, arg := range f.Rect {
		if err := drag(pipeline.AnnotationRect, arg); err != nil {
			return nil, err
		}
	}
	for _, arg := range f.Arrow {
		if err := drag(pipeline.AnnotationArrow, arg); err != nil {
			return nil, err
		}
	}
	for _, arg := range f.Text {
		parts := strings.SplitN(arg, ",", 3)
		if len(parts) != 3 || parts[2] == "" {
			return nil, fmt.Errorf("text %q: want x,y,text", arg)
		}
		v, err := numbers(parts[0]+","+parts[1], 2)
		if err != nil {
			return nil, fmt.Errorf("text %q: %w", arg, err)
		}
		ts := style
		ts.Text = parts[2]
		if _, err := layer.Begin(pipeline.AnnotationText, v[0], v[1], ts); err != nil {
			return nil, err
		}
		if _, err := layer.End(); err != nil {
			return nil, err
		}
	}
	return layer.Annotations(), nil
}

// numbers parses exactly n comma-separated floats.
func numbers(arg string, n int) ([]float64, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers", n)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// parseTilt parses "x,y" rotation degrees.
func parseTilt(arg string) (ports.Point, error) {
	v, err := numbers(arg, 2)
	if err != nil {
		return ports.Point{}, fmt.Errorf("tilt %q: %w", arg, err)
	}
	return ports.Point{X: v[0], Y: v[1]}, nil
}
