package core

import (
	"io"
	"reflect"

	"gopkg.in/yaml.v3"
)

// SnapshotNode is a serializable view of one tree node, used for debug
// dumps and frame-over-frame diffing in tests.
type SnapshotNode struct {
	ID       string         `yaml:"id"`
	Widget   string         `yaml:"widget"`
	Children []SnapshotNode `yaml:"children,omitempty"`
}

// Snapshot captures the current shape of the tree.
func (d *Dom) Snapshot() SnapshotNode {
	return d.snapshotNode(d.root)
}

func (d *Dom) snapshotNode(id WidgetID) SnapshotNode {
	node, ok := d.nodes.get(id)
	if !ok {
		return SnapshotNode{ID: id.String(), Widget: "<stale>"}
	}

	snap := SnapshotNode{ID: id.String(), Widget: widgetName(node)}
	for _, child := range node.children {
		snap.Children = append(snap.Children, d.snapshotNode(child))
	}
	return snap
}

// widgetName names a node by its widget instance, falling back to the
// declared props type while the instance is detached mid-update.
func widgetName(n *Node) string {
	if n.widget != nil {
		return reflect.TypeOf(n.widget).String()
	}
	return n.propsType.String()
}

// DumpYAML writes the current tree shape to w as YAML.
func (d *Dom) DumpYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d.Snapshot()); err != nil {
		return err
	}
	return enc.Close()
}
