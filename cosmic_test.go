package cosmic

import (
	"strings"
	"testing"
)

func TestParseMovementType(t *testing.T) {
	cases := map[string]MovementType{
		"E": Entry, "e": Entry, " x ": Exit, "r": Read, "W": Write,
	}
	for in, want := range cases {
		got, err := ParseMovementType(in)
		if err != nil {
			t.Fatalf("ParseMovementType(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseMovementType(%q) = %q, expected %q", in, got, want)
		}
	}

	_, err := ParseMovementType("entry")
	if err == nil || !strings.Contains(err.Error(), "E, X, R, W") {
		t.Fatalf("expected error listing valid types, got %v", err)
	}
}

func TestProcessCounts(t *testing.T) {
	p := FunctionalProcess{
		Name: "P",
		Movements: []DataMovement{
			{Type: Entry}, {Type: Entry}, {Type: Exit}, {Type: Write},
		},
	}
	if p.Count(Entry) != 2 || p.Count(Exit) != 1 || p.Count(Read) != 0 || p.Count(Write) != 1 {
		t.Errorf("unexpected counts: E=%d X=%d R=%d W=%d",
			p.Count(Entry), p.Count(Exit), p.Count(Read), p.Count(Write))
	}
	if p.TotalCFP() != 4 {
		t.Errorf("expected 4 CFP, got %d", p.TotalCFP())
	}

	m := Measurement{Processes: []FunctionalProcess{p, p}}
	if m.TotalCFP() != 8 {
		t.Errorf("expected 8 CFP, got %d", m.TotalCFP())
	}
}

func TestSummarizeKeepsOrder(t *testing.T) {
	m := Measurement{Processes: []FunctionalProcess{
		{Name: "B", Movements: []DataMovement{{Type: Read}}},
		{Name: "A"},
	}}
	sums := Summarize(&m)
	if len(sums) != 2 || sums[0].Name != "B" || sums[1].Name != "A" {
		t.Fatalf("unexpected summary order: %+v", sums)
	}
	if sums[0].Reads != 1 || sums[0].TotalCFP != 1 || sums[1].TotalCFP != 0 {
		t.Errorf("unexpected summary values: %+v", sums)
	}
}
