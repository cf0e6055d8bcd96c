package difficulty

import "testing"

func TestParse_RoundTrip(t *testing.T) {
	for _, l := range []Level{Easy, Medium, Hard} {
		got, err := Parse(l.String())
		if err != nil {
			t.Fatalf("parse %q: %v", l, err)
		}
		if got != l {
			t.Fatalf("expected %v, got %v", l, got)
		}
	}
}

func TestParse_CaseAndSpace(t *testing.T) {
	got, err := Parse("  HARD ")
	if err != nil || got != Hard {
		t.Fatalf("expected hard, got %v (err=%v)", got, err)
	}
}

func TestParse_Unknown(t *testing.T) {
	if _, err := Parse("nightmare"); err == nil {
		t.Fatal("expected error for unknown difficulty")
	}
}

func TestNext_Cycles(t *testing.T) {
	if Easy.Next() != Medium || Medium.Next() != Hard || Hard.Next() != Easy {
		t.Fatal("difficulty cycle should be easy → medium → hard → easy")
	}
}
