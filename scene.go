package winforms

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Scene is a declarative element tree loaded from a TOML document: one
// [container] table plus any number of [[element]] entries, in z-order.
type Scene struct {
	Root *Element

	byName map[string]*Element
}

// Lookup returns the named element, or false if the scene has none.
func (s *Scene) Lookup(name string) (*Element, bool) {
	el, ok := s.byName[name]
	return el, ok
}

// LoadScene reads and parses a TOML scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}
	scene, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("parsing scene %s: %w", path, err)
	}
	return scene, nil
}

type sceneFile struct {
	Container containerSpec `toml:"container"`
	Elements  []elementSpec `toml:"element"`
}

type containerSpec struct {
	Name     string `toml:"name"`
	Size     []int  `toml:"size"`
	Padding  []int  `toml:"padding"`
	AutoSize bool   `toml:"autosize"`
	Mode     string `toml:"mode"`
}

type elementSpec struct {
	Name         string   `toml:"name"`
	Bounds       []int    `toml:"bounds"`
	Anchors      []string `toml:"anchors"`
	Dock         string   `toml:"dock"`
	AutoSize     bool     `toml:"autosize"`
	Mode         string   `toml:"mode"`
	Margin       []int    `toml:"margin"`
	Min          []int    `toml:"min"`
	Max          []int    `toml:"max"`
	Preferred    []int    `toml:"preferred"`
	DocumentHost bool     `toml:"document_host"`
	Visible      *bool    `toml:"visible"`
}

// ParseScene builds a Scene from TOML data. The container becomes the
// root element; [[element]] entries become its children in document
// order, which is z-order.
func ParseScene(data []byte) (*Scene, error) {
	var file sceneFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	root, err := buildContainer(file.Container)
	if err != nil {
		return nil, err
	}

	scene := &Scene{Root: root, byName: map[string]*Element{}}
	if root.Name() != "" {
		scene.byName[root.Name()] = root
	}

	root.SuspendLayout()
	for i, spec := range file.Elements {
		el, err := buildElement(spec)
		if err != nil {
			return nil, fmt.Errorf("element %d (%q): %w", i, spec.Name, err)
		}
		if el.Name() != "" {
			if _, dup := scene.byName[el.Name()]; dup {
				return nil, fmt.Errorf("element %d: duplicate name %q", i, el.Name())
			}
			scene.byName[el.Name()] = el
		}
		root.AddChild(el)
	}
	root.ResumeLayout(true)

	return scene, nil
}

func buildContainer(spec containerSpec) (*Element, error) {
	opts := []Option{WithName(spec.Name)}

	size, err := pair(spec.Size, "container size")
	if err != nil {
		return nil, err
	}
	opts = append(opts, WithSize(size.Width, size.Height))

	padding, err := edges(spec.Padding, "container padding")
	if err != nil {
		return nil, err
	}
	opts = append(opts, WithPadding(padding.Top, padding.Right, padding.Bottom, padding.Left))

	if spec.AutoSize {
		mode, err := parseMode(spec.Mode)
		if err != nil {
			return nil, fmt.Errorf("container: %w", err)
		}
		opts = append(opts, WithAutoSizeMode(mode))
	}

	return New(opts...), nil
}

func buildElement(spec elementSpec) (*Element, error) {
	opts := []Option{WithName(spec.Name)}

	if spec.Bounds != nil {
		if len(spec.Bounds) != 4 {
			return nil, fmt.Errorf("bounds needs 4 values [x, y, w, h], got %d", len(spec.Bounds))
		}
		opts = append(opts, WithBounds(spec.Bounds[0], spec.Bounds[1], spec.Bounds[2], spec.Bounds[3]))
	}

	if spec.Anchors != nil {
		anchors, err := parseAnchors(spec.Anchors)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithAnchors(anchors))
	}

	if spec.Dock != "" {
		dock, err := parseDock(spec.Dock)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithDock(dock))
	}

	if spec.AutoSize {
		mode, err := parseMode(spec.Mode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithAutoSizeMode(mode))
	}

	if spec.Margin != nil {
		m, err := edges(spec.Margin, "margin")
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithMargin(m.Top, m.Right, m.Bottom, m.Left))
	}
	if spec.Min != nil {
		s, err := pair(spec.Min, "min")
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithMinSize(s.Width, s.Height))
	}
	if spec.Max != nil {
		s, err := pair(spec.Max, "max")
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithMaxSize(s.Width, s.Height))
	}
	if spec.Preferred != nil {
		s, err := pair(spec.Preferred, "preferred")
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithPreferredSize(s.Width, s.Height))
	}

	if spec.DocumentHost {
		opts = append(opts, WithDocumentHost())
	}
	if spec.Visible != nil {
		opts = append(opts, WithVisible(*spec.Visible))
	}

	return New(opts...), nil
}

func parseAnchors(names []string) (AnchorStyles, error) {
	anchors := AnchorNone
	for _, name := range names {
		switch name {
		case "left":
			anchors |= AnchorLeft
		case "top":
			anchors |= AnchorTop
		case "right":
			anchors |= AnchorRight
		case "bottom":
			anchors |= AnchorBottom
		default:
			return 0, fmt.Errorf("unknown anchor %q (want left, top, right, or bottom)", name)
		}
	}
	return anchors, nil
}

func parseDock(name string) (DockStyle, error) {
	switch name {
	case "none":
		return DockNone, nil
	case "top":
		return DockTop, nil
	case "bottom":
		return DockBottom, nil
	case "left":
		return DockLeft, nil
	case "right":
		return DockRight, nil
	case "fill":
		return DockFill, nil
	default:
		return 0, fmt.Errorf("unknown dock %q (want none, top, bottom, left, right, or fill)", name)
	}
}

func parseMode(name string) (AutoSizeMode, error) {
	switch name {
	case "", "grow-only":
		return GrowOnly, nil
	case "grow-and-shrink":
		return GrowAndShrink, nil
	default:
		return 0, fmt.Errorf("unknown autosize mode %q (want grow-only or grow-and-shrink)", name)
	}
}

func pair(v []int, field string) (Size, error) {
	if v == nil {
		return Size{}, nil
	}
	if len(v) != 2 {
		return Size{}, fmt.Errorf("%s needs 2 values [w, h], got %d", field, len(v))
	}
	return NewSize(v[0], v[1]), nil
}

func edges(v []int, field string) (Edges, error) {
	switch len(v) {
	case 0:
		return Edges{}, nil
	case 1:
		return EdgeAll(v[0]), nil
	case 4:
		return EdgeTRBL(v[0], v[1], v[2], v[3]), nil
	default:
		return Edges{}, fmt.Errorf("%s needs 1 or 4 values (TRBL), got %d", field, len(v))
	}
}
