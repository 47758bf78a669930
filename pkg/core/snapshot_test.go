package core

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestSnapshot_StableAcrossIdenticalFrames(t *testing.T) {
	d := NewDom()

	build := func() {
		r := d.BeginWidget(fooProps{Label: "parent"})
		d.DoWidget(barProps{})
		d.DoWidget(fooProps{Label: "child"})
		d.EndWidget(r.ID)
	}

	buildFrame(d, build)
	first := d.Snapshot()

	buildFrame(d, build)
	second := d.Snapshot()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("identical frames produced different snapshots (-first +second):\n%s", diff)
	}
}

func TestSnapshot_ReflectsStructure(t *testing.T) {
	d := NewDom()

	buildFrame(d, func() {
		r := d.BeginWidget(fooProps{Label: "parent"})
		d.DoWidget(barProps{})
		d.EndWidget(r.ID)
	})

	snap := d.Snapshot()
	if len(snap.Children) != 1 {
		t.Fatalf("root has %d children, want 1", len(snap.Children))
	}
	parent := snap.Children[0]
	if parent.Widget != "*core.fooWidget" {
		t.Errorf("parent widget = %q, want *core.fooWidget", parent.Widget)
	}
	if len(parent.Children) != 1 || parent.Children[0].Widget != "*core.barWidget" {
		t.Errorf("unexpected child shape: %+v", parent.Children)
	}
}

func TestDumpYAML_RoundTrips(t *testing.T) {
	d := NewDom()

	buildFrame(d, func() {
		r := d.BeginWidget(fooProps{Label: "parent"})
		d.DoWidget(fooProps{Label: "child"})
		d.EndWidget(r.ID)
	})

	var buf bytes.Buffer
	if err := d.DumpYAML(&buf); err != nil {
		t.Fatalf("DumpYAML: %v", err)
	}

	var decoded SnapshotNode
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("dump is not valid YAML: %v", err)
	}
	if diff := cmp.Diff(d.Snapshot(), decoded); diff != "" {
		t.Errorf("YAML round trip changed the snapshot (-want +got):\n%s", diff)
	}
}
