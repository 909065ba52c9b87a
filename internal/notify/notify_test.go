package notify

import (
	"bytes"
	"context"
	"testing"
)

func TestConstructorsUseStandardDurations(t *testing.T) {
	if n := Success("ok"); n.Type != TypeSuccess || n.DurationMs != 3000 {
		t.Fatalf("unexpected success notification %+v", n)
	}
	if n := Error("bad"); n.Type != TypeError || n.DurationMs != 5000 {
		t.Fatalf("unexpected error notification %+v", n)
	}
}

func TestMultiFansOut(t *testing.T) {
	var a, b Recorder
	var buf bytes.Buffer
	m := Multi{&a, nil, &b, NewWriter(&buf)}

	m.Notify(context.Background(), Success("Logged out"))
	m.Notify(context.Background(), Error("Something went wrong"))

	want := []string{"success: Logged out", "error: Something went wrong"}
	for _, r := range []*Recorder{&a, &b} {
		got := r.Messages()
		if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
			t.Fatalf("recorder got %v, want %v", got, want)
		}
	}
	if buf.String() != "✓ Logged out\n✗ Something went wrong\n" {
		t.Fatalf("writer got %q", buf.String())
	}

	a.Reset()
	if len(a.All()) != 0 {
		t.Fatalf("expected empty recorder after reset")
	}
}

func TestOrDiscard(t *testing.T) {
	OrDiscard(nil).Notify(context.Background(), Info("ignored"))

	var r Recorder
	OrDiscard(&r).Notify(context.Background(), Warning("kept"))
	if len(r.All()) != 1 {
		t.Fatalf("expected one notification")
	}
}
