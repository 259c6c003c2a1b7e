package webm

import (
	"errors"
	"fmt"

	"github.com/deepch/webm/ebml"
)

// ErrMissingField is returned when a mandatory schema field has no matching
// child element.
var ErrMissingField = errors.New("webm: missing mandatory field")

func missing(reg ebml.ElementRegister) error {
	return fmt.Errorf("%w: %s (0x%x)", ErrMissingField, reg.Name, reg.ID)
}

// Field lookup helpers shared by every view. Each getter inspects direct
// children only: mandatory lookups fail with ErrMissingField, optional ones
// report presence, repeated ones collect matches in document order.

func uintField(n *ebml.Node, reg ebml.ElementRegister) (uint64, error) {
	c := n.FindID(reg.ID)
	if c == nil {
		return 0, missing(reg)
	}

	return c.Data.Uint(), nil
}

func optUintField(n *ebml.Node, reg ebml.ElementRegister) (uint64, bool) {
	c := n.FindID(reg.ID)
	if c == nil {
		return 0, false
	}

	return c.Data.Uint(), true
}

func intField(n *ebml.Node, reg ebml.ElementRegister) (int64, error) {
	c := n.FindID(reg.ID)
	if c == nil {
		return 0, missing(reg)
	}

	return c.Data.Int(), nil
}

func optIntField(n *ebml.Node, reg ebml.ElementRegister) (int64, bool) {
	c := n.FindID(reg.ID)
	if c == nil {
		return 0, false
	}

	return c.Data.Int(), true
}

func floatField(n *ebml.Node, reg ebml.ElementRegister) (float64, error) {
	c := n.FindID(reg.ID)
	if c == nil {
		return 0, missing(reg)
	}

	return c.Data.Float(), nil
}

func optFloatField(n *ebml.Node, reg ebml.ElementRegister) (float64, bool) {
	c := n.FindID(reg.ID)
	if c == nil {
		return 0, false
	}

	return c.Data.Float(), true
}

func boolField(n *ebml.Node, reg ebml.ElementRegister) (bool, error) {
	c := n.FindID(reg.ID)
	if c == nil {
		return false, missing(reg)
	}

	return c.Data.Bool(), nil
}

func textField(n *ebml.Node, reg ebml.ElementRegister) (string, error) {
	c := n.FindID(reg.ID)
	if c == nil {
		return "", missing(reg)
	}

	return c.Data.Text()
}

func optTextField(n *ebml.Node, reg ebml.ElementRegister) (string, bool, error) {
	c := n.FindID(reg.ID)
	if c == nil {
		return "", false, nil
	}
	s, err := c.Data.Text()
	if err != nil {
		return "", true, err
	}

	return s, true, nil
}

func binField(n *ebml.Node, reg ebml.ElementRegister) ([]byte, error) {
	c := n.FindID(reg.ID)
	if c == nil {
		return nil, missing(reg)
	}

	return c.Data.Bytes(), nil
}

func optBinField(n *ebml.Node, reg ebml.ElementRegister) ([]byte, bool) {
	c := n.FindID(reg.ID)
	if c == nil {
		return nil, false
	}

	return c.Data.Bytes(), true
}

func uintValues(n *ebml.Node, reg ebml.ElementRegister) []uint64 {
	nodes := n.FilterID(reg.ID)
	out := make([]uint64, 0, len(nodes))
	for _, c := range nodes {
		out = append(out, c.Data.Uint())
	}

	return out
}

func intValues(n *ebml.Node, reg ebml.ElementRegister) []int64 {
	nodes := n.FilterID(reg.ID)
	out := make([]int64, 0, len(nodes))
	for _, c := range nodes {
		out = append(out, c.Data.Int())
	}

	return out
}

func textValues(n *ebml.Node, reg ebml.ElementRegister) ([]string, error) {
	nodes := n.FilterID(reg.ID)
	out := make([]string, 0, len(nodes))
	for _, c := range nodes {
		s, err := c.Data.Text()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

func subView[V any](n *ebml.Node, reg ebml.ElementRegister, wrap func(*ebml.Node) V) (V, bool) {
	c := n.FindID(reg.ID)
	if c == nil {
		var zero V
		return zero, false
	}

	return wrap(c), true
}

func mustSubView[V any](n *ebml.Node, reg ebml.ElementRegister, wrap func(*ebml.Node) V) (V, error) {
	c := n.FindID(reg.ID)
	if c == nil {
		var zero V
		return zero, missing(reg)
	}

	return wrap(c), nil
}

func subViews[V any](n *ebml.Node, reg ebml.ElementRegister, wrap func(*ebml.Node) V) []V {
	nodes := n.FilterID(reg.ID)
	out := make([]V, 0, len(nodes))
	for _, c := range nodes {
		out = append(out, wrap(c))
	}

	return out
}
