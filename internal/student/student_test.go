package student

import "testing"

func TestNormalizePersonality_Known(t *testing.T) {
	if p := NormalizePersonality("analytical"); p != PersonalityAnalytical {
		t.Errorf("NormalizePersonality = %s, want analytical", p)
	}
}

func TestNormalizePersonality_Unknown(t *testing.T) {
	if p := NormalizePersonality("grumpy"); p != DefaultPersonality {
		t.Errorf("NormalizePersonality = %s, want %s", p, DefaultPersonality)
	}
	if p := NormalizePersonality(""); p != DefaultPersonality {
		t.Errorf("NormalizePersonality(\"\") = %s, want %s", p, DefaultPersonality)
	}
}

func TestNormalizeLevel(t *testing.T) {
	if l := NormalizeLevel("B2"); l != LevelB2 {
		t.Errorf("NormalizeLevel = %s, want B2", l)
	}
	if l := NormalizeLevel("Z9"); l != LevelA1 {
		t.Errorf("NormalizeLevel unknown = %s, want A1", l)
	}
}

func TestLevelOrdering(t *testing.T) {
	if LevelIndex(LevelA1) != 0 {
		t.Errorf("LevelIndex(A1) = %d, want 0", LevelIndex(LevelA1))
	}
	if LevelIndex(LevelC2) != 5 {
		t.Errorf("LevelIndex(C2) = %d, want 5", LevelIndex(LevelC2))
	}
	if NextLevel(LevelA1) != LevelA2 {
		t.Errorf("NextLevel(A1) = %s, want A2", NextLevel(LevelA1))
	}
	if NextLevel(LevelC2) != LevelC2 {
		t.Errorf("NextLevel(C2) = %s, want C2", NextLevel(LevelC2))
	}
}

func TestClone_Isolated(t *testing.T) {
	s := &State{
		Name:       "Noa",
		Weaknesses: []string{"fingerspelling"},
	}
	c := s.Clone()
	c.Weaknesses[0] = "changed"
	c.Name = "Other"

	if s.Weaknesses[0] != "fingerspelling" {
		t.Error("Clone shares weakness slice with original")
	}
	if s.Name != "Noa" {
		t.Error("Clone mutated original name")
	}
}

func TestStatusOf_Nil(t *testing.T) {
	if StatusOf(nil) != nil {
		t.Error("StatusOf(nil) should be nil")
	}
}
