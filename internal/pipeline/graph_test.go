// If you are AI: This file tests Graph's topological lifecycle ordering and param addressing.

package pipeline

import (
	"context"
	"testing"
)

type recordingComponent struct {
	Base
	log *[]string
}

func newRecording(id string, log *[]string, ports ...Port) *recordingComponent {
	c := &recordingComponent{log: log}
	c.Base = NewBase(id, ports)
	return c
}

// ioPorts is the "in"/"out" pair used by tests that wire components in a chain.
func ioPorts() []Port {
	return []Port{{Name: "in", Kind: PortIn}, {Name: "out", Kind: PortOut}}
}

func (c *recordingComponent) Prepare(ctx context.Context) error {
	*c.log = append(*c.log, "prepare:"+c.ID())
	return nil
}

func (c *recordingComponent) Start(ctx context.Context) error {
	*c.log = append(*c.log, "start:"+c.ID())
	return nil
}

func (c *recordingComponent) Stop(ctx context.Context) error {
	*c.log = append(*c.log, "stop:"+c.ID())
	return nil
}

// source -> filter -> sink: start order must be reverse-topo
// (sink, filter, source), stop order forward-topo (source, filter, sink).
func TestLifecycleOrdering(t *testing.T) {
	var log []string
	g := NewGraph()

	source := newRecording("source", &log, ioPorts()...)
	filter := newRecording("filter", &log, ioPorts()...)
	sink := newRecording("sink", &log, ioPorts()...)

	for _, c := range []Component{source, filter, sink} {
		if err := g.AddComponent(c); err != nil {
			t.Fatalf("AddComponent(%s): %v", c.ID(), err)
		}
	}
	if err := g.Connect(Connection{From: ComponentPort{"source", "out"}, To: ComponentPort{"filter", "in"}}); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	if err := g.Connect(Connection{From: ComponentPort{"filter", "out"}, To: ComponentPort{"sink", "in"}}); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}

	if err := g.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	wantPrepare := []string{"prepare:source", "prepare:filter", "prepare:sink"}
	for i, want := range wantPrepare {
		if log[i] != want {
			t.Fatalf("log[%d] = %q, want %q (prepare must run in topo order)", i, log[i], want)
		}
	}

	wantStart := []string{"start:sink", "start:filter", "start:source"}
	for i, want := range wantStart {
		got := log[len(wantPrepare)+i]
		if got != want {
			t.Fatalf("start phase log[%d] = %q, want %q (start must run reverse-topo)", i, got, want)
		}
	}

	log = nil
	if err := g.Stop(context.Background()); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	wantStop := []string{"stop:source", "stop:filter", "stop:sink"}
	for i, want := range wantStop {
		if log[i] != want {
			t.Fatalf("stop phase log[%d] = %q, want %q (stop must run forward-topo)", i, log[i], want)
		}
	}
}

func TestCycleDetected(t *testing.T) {
	var log []string
	g := NewGraph()
	a := newRecording("a", &log, ioPorts()...)
	b := newRecording("b", &log, ioPorts()...)
	g.AddComponent(a)
	g.AddComponent(b)
	if err := g.Connect(Connection{From: ComponentPort{"a", "out"}, To: ComponentPort{"b", "in"}}); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	if err := g.Connect(Connection{From: ComponentPort{"b", "out"}, To: ComponentPort{"a", "in"}}); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}

	if err := g.Start(context.Background()); err == nil {
		t.Fatal("Start() on a cyclic graph returned nil error, want a cycle error")
	}
}

func TestConnectRejectsMediaTypeMismatch(t *testing.T) {
	var log []string
	g := NewGraph()
	src := newRecording("src", &log, Port{Name: "out", Kind: PortOut, Media: MediaFrame})
	dst := newRecording("dst", &log, Port{Name: "in", Kind: PortIn, Media: MediaPacket})
	g.AddComponent(src)
	g.AddComponent(dst)

	if err := g.Connect(Connection{From: ComponentPort{"src", "out"}, To: ComponentPort{"dst", "in"}}); err == nil {
		t.Fatal("Connect() between a MediaFrame output and a MediaPacket input returned nil error")
	}
}

func TestConnectAllowsMediaAnyOnEitherSide(t *testing.T) {
	var log []string
	g := NewGraph()
	src := newRecording("src", &log, Port{Name: "out", Kind: PortOut, Media: MediaFrame})
	dst := newRecording("dst", &log, Port{Name: "in", Kind: PortIn, Media: MediaAny})
	g.AddComponent(src)
	g.AddComponent(dst)

	if err := g.Connect(Connection{From: ComponentPort{"src", "out"}, To: ComponentPort{"dst", "in"}}); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
}

func TestConnectRejectsWrongPortKind(t *testing.T) {
	var log []string
	g := NewGraph()
	a := newRecording("a", &log, ioPorts()...)
	b := newRecording("b", &log, ioPorts()...)
	g.AddComponent(a)
	g.AddComponent(b)

	if err := g.Connect(Connection{From: ComponentPort{"a", "in"}, To: ComponentPort{"b", "in"}}); err == nil {
		t.Fatal("Connect() with a non-output From port returned nil error")
	}
	if err := g.Connect(Connection{From: ComponentPort{"a", "out"}, To: ComponentPort{"b", "out"}}); err == nil {
		t.Fatal("Connect() with a non-input To port returned nil error")
	}
}

func TestConnectRejectsUnknownPort(t *testing.T) {
	var log []string
	g := NewGraph()
	a := newRecording("a", &log, ioPorts()...)
	b := newRecording("b", &log, ioPorts()...)
	g.AddComponent(a)
	g.AddComponent(b)

	if err := g.Connect(Connection{From: ComponentPort{"a", "nope"}, To: ComponentPort{"b", "in"}}); err == nil {
		t.Fatal("Connect() referencing an undeclared port returned nil error")
	}
}

func TestParamSetAndGetByPath(t *testing.T) {
	var log []string
	g := NewGraph()
	c := newRecording("enc", &log)
	c.Params().Define(Param{Key: "bitrate", Kind: ParamInt, Value: int64(1000), Min: 100, Max: 5000})
	g.AddComponent(c)

	if err := g.SetParam("enc.bitrate", int64(2000)); err != nil {
		t.Fatalf("SetParam() error = %v", err)
	}
	v, err := g.GetParam("enc.bitrate")
	if err != nil {
		t.Fatalf("GetParam() error = %v", err)
	}
	if v.(int64) != 2000 {
		t.Fatalf("GetParam() = %v, want 2000", v)
	}

	if err := g.SetParam("enc.bitrate", int64(99999)); err == nil {
		t.Fatal("SetParam() with out-of-range value returned nil error")
	}
}

func TestParamChangeCallback(t *testing.T) {
	ps := NewParamSet()
	ps.Define(Param{Key: "mode", Kind: ParamString, Value: "auto", Options: []string{"auto", "manual"}})

	var oldSeen, newSeen any
	ps.OnChange("mode", func(old, new any) {
		oldSeen, newSeen = old, new
	})

	if err := ps.Set("mode", "manual"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if oldSeen != "auto" || newSeen != "manual" {
		t.Fatalf("callback saw (%v, %v), want (auto, manual)", oldSeen, newSeen)
	}

	if err := ps.Set("mode", "bogus"); err == nil {
		t.Fatal("Set() with an out-of-options value returned nil error")
	}
}

func TestReadOnlyParamRejectsSet(t *testing.T) {
	ps := NewParamSet()
	ps.Define(Param{Key: "uptime", Kind: ParamInt, Value: int64(0), ReadOnly: true})

	if err := ps.Set("uptime", int64(5)); err == nil {
		t.Fatal("Set() on a read-only parameter returned nil error")
	}
}
