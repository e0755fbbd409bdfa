package pipeline

import (
	"github.com/user/shotframe/pkg/ports"
)

// AnnotationType selects how an annotation is drawn.
type AnnotationType string

const (
	AnnotationBlur  AnnotationType = "blur"
	AnnotationRect  AnnotationType = "rect"
	AnnotationText  AnnotationType = "text"
	AnnotationArrow AnnotationType = "arrow"
)

// AnnotationTypes lists all annotation types.
var AnnotationTypes = []AnnotationType{AnnotationBlur, AnnotationRect, AnnotationText, AnnotationArrow}

func knownAnnotation(t AnnotationType) bool {
	for _, v := range AnnotationTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Annotation is a user-drawn overlay in image-local coordinates.
// Width and Height are signed: a shape dragged up or left has negative size.
type Annotation struct {
	ID       string         `yaml:"id" json:"id"`
	Type     AnnotationType `yaml:"type" json:"type"`
	X        float64        `yaml:"x" json:"x"`
	Y        float64        `yaml:"y" json:"y"`
	Width    float64        `yaml:"width,omitempty" json:"width,omitempty"`
	Height   float64        `yaml:"height,omitempty" json:"height,omitempty"`
	Color    string         `yaml:"color,omitempty" json:"color,omitempty"`
	Text     string         `yaml:"text,omitempty" json:"text,omitempty"`
	FontSize float64        `yaml:"font_size,omitempty" json:"fontSize,omitempty"`

	// Points holds the arrow start and end offsets relative to (X, Y).
	Points []ports.Point `yaml:"points,omitempty" json:"points,omitempty"`
}

// Bounds returns the annotation rectangle with non-negative size.
func (a Annotation) Bounds() ports.Rect {
	return ports.Rect{X: a.X, Y: a.Y, W: a.Width, H: a.Height}.Normalize()
}
