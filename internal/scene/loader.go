package scene

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default_scene.yaml
var defaultScene []byte

// Node is the YAML form of an element.
type Node struct {
	ID          string            `yaml:"id"`
	Classes     []string          `yaml:"classes,omitempty"`
	Data        map[string]string `yaml:"data,omitempty"`
	Text        string            `yaml:"text,omitempty"`
	Hidden      bool              `yaml:"hidden,omitempty"`
	Position    string            `yaml:"position,omitempty"`
	X           float64           `yaml:"x,omitempty"`
	Y           float64           `yaml:"y,omitempty"`
	Width       float64           `yaml:"width"`
	Height      float64           `yaml:"height"`
	Rotation    float64           `yaml:"rotation,omitempty"`
	ZIndex      int               `yaml:"z,omitempty"`
	Focusable   bool              `yaml:"focusable,omitempty"`
	PassThrough bool              `yaml:"pass_through,omitempty"`
	Flow        bool              `yaml:"flow,omitempty"`
	Padding     float64           `yaml:"padding,omitempty"`
	Gap         float64           `yaml:"gap,omitempty"`
	Fill        string            `yaml:"fill,omitempty"`
	Stroke      string            `yaml:"stroke,omitempty"`
	Children    []Node            `yaml:"children,omitempty"`
}

// Load reads a scene description from a YAML file.
func Load(filePath string) (*Document, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	doc, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", filePath, err)
	}
	return doc, nil
}

// Default returns a fresh copy of the built-in scene.
func Default() (*Document, error) {
	return Parse(bytes.NewReader(defaultScene))
}

// Parse builds a document from a YAML scene description.
func Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var root Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}
	if root.ID == "" && len(root.Children) == 0 {
		return nil, fmt.Errorf("scene is empty")
	}

	el, err := root.build()
	if err != nil {
		return nil, err
	}
	return NewDocument(el)
}

func (n Node) build() (*Element, error) {
	if n.Width <= 0 || n.Height <= 0 {
		return nil, fmt.Errorf("element %q: size must be positive, got %gx%g", n.ID, n.Width, n.Height)
	}
	pos, err := ParsePositioning(n.Position)
	if err != nil {
		return nil, fmt.Errorf("element %q: %w", n.ID, err)
	}

	el := &Element{
		ID:          n.ID,
		Text:        n.Text,
		Data:        n.Data,
		Hidden:      n.Hidden,
		Position:    pos,
		Left:        n.X,
		Top:         n.Y,
		Width:       n.Width,
		Height:      n.Height,
		Rotation:    n.Rotation,
		ZIndex:      n.ZIndex,
		Focusable:   n.Focusable,
		PassThrough: n.PassThrough,
		Flow:        n.Flow,
		Padding:     n.Padding,
		Gap:         n.Gap,
		Fill:        n.Fill,
		Stroke:      n.Stroke,
	}
	for _, c := range n.Classes {
		el.AddClass(c)
	}
	for _, cn := range n.Children {
		child, err := cn.build()
		if err != nil {
			return nil, err
		}
		el.AppendChild(child)
	}
	return el, nil
}
