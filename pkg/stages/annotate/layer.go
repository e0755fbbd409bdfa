package annotate

import (
	"errors"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/user/shotframe/pkg/pipeline"
	"github.com/user/shotframe/pkg/ports"
)

var (
	// ErrInProgress is returned by Begin while another annotation is open.
	ErrInProgress = errors.New("annotate: annotation already in progress")

	// ErrNotInProgress is returned by Move and End without a Begin.
	ErrNotInProgress = errors.New("annotate: no annotation in progress")
)

// Style holds the per-annotation options chosen before drawing starts.
type Style struct {
	Color    string
	Text     string
	FontSize float64
}

// Layer is the editing model of an annotation list. An annotation is
// opened by Begin, reshaped by Move and committed by End; committed
// annotations never change. Undo and Clear are the only removals.
//
// Layer is safe for concurrent use.
type Layer struct {
	mu      sync.Mutex
	items   []pipeline.Annotation
	current *pipeline.Annotation
	newID   func() string
}

// NewLayer creates an empty layer.
func NewLayer() *Layer {
	return &Layer{newID: func() string { return ulid.Make().String() }}
}

// NewLayerFrom creates a layer holding committed annotations, for
// example the list of a saved configuration.
func NewLayerFrom(items []pipeline.Annotation) *Layer {
	l := NewLayer()
	for _, a := range items {
		l.items = append(l.items, clone(a))
	}
	return l
}

// Begin opens a new annotation at (x, y) and returns its id.
func (l *Layer) Begin(t pipeline.AnnotationType, x, y float64, style Style) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current != nil {
		return "", ErrInProgress
	}
	a := pipeline.Annotation{
		ID:       l.newID(),
		Type:     t,
		X:        x,
		Y:        y,
		Color:    style.Color,
		Text:     style.Text,
		FontSize: style.FontSize,
	}
	if t == pipeline.AnnotationArrow {
		a.Points = []ports.Point{{}, {}}
	}
	l.current = &a
	return a.ID, nil
}

// Move reshapes the open annotation so it spans from its anchor to
// (x, y). Regions may grow in any direction; text follows the pointer.
func (l *Layer) Move(x, y float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	a := l.current
	if a == nil {
		return ErrNotInProgress
	}
	switch a.Type {
	case pipeline.AnnotationText:
		a.X, a.Y = x, y
	case pipeline.AnnotationArrow:
		a.Points[1] = ports.Point{X: x - a.X, Y: y - a.Y}
	default:
		a.Width, a.Height = x-a.X, y-a.Y
	}
	return nil
}

// End commits the open annotation and returns it.
func (l *Layer) End() (pipeline.Annotation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current == nil {
		return pipeline.Annotation{}, ErrNotInProgress
	}
	a := *l.current
	l.items = append(l.items, a)
	l.current = nil
	return a, nil
}

// Cancel drops the open annotation, if any.
func (l *Layer) Cancel() {
	l.mu.Lock()
	l.current = nil
	l.mu.Unlock()
}

// Undo removes the most recently committed annotation. It reports false
// when there is nothing to remove.
func (l *Layer) Undo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.items) == 0 {
		return false
	}
	l.items = l.items[:len(l.items)-1]
	return true
}

// Clear removes every annotation, including an open one.
func (l *Layer) Clear() {
	l.mu.Lock()
	l.items = nil
	l.current = nil
	l.mu.Unlock()
}

// Len returns the number of committed annotations.
func (l *Layer) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Annotations returns a copy of the committed annotations in draw order,
// followed by the open one so a preview can show it.
func (l *Layer) Annotations() []pipeline.Annotation {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]pipeline.Annotation, 0, len(l.items)+1)
	for _, a := range l.items {
		out = append(out, clone(a))
	}
	if l.current != nil {
		out = append(out, clone(*l.current))
	}
	return out
}

func clone(a pipeline.Annotation) pipeline.Annotation {
	if a.Points != nil {
		a.Points = append([]ports.Point(nil), a.Points...)
	}
	return a
}
