package brush

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	s := DefaultSettings()
	s.Mappings = []Mapping{
		{Source: SourcePressure, Target: TargetSize, Min: 0.5, Max: 1.5, Strength: 1},
		{Source: SourceTiltX, Target: TargetRotation, Min: -45, Max: 45, Strength: 1},
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Mappings = append(s.Mappings,
		Mapping{Source: SourcePressure, Target: TargetSize, Curve: CurveCustom},
		Mapping{Source: SourceSpeed, Target: TargetSpacing},
		Mapping{Source: SourcePressure, Target: TargetColorHue},
		Mapping{Source: Source(77), Target: TargetFlow},
	)
	err := s.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}

	var u *UnsupportedError
	if !errors.As(err, &u) {
		t.Fatalf("error %v does not wrap *UnsupportedError", err)
	}
	if u.Index != 2 || u.Field != "curve" {
		t.Errorf("first problem is %+v, want mapping 2 curve", u)
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("error %T does not hold multiple errors", err)
	}
	if n := len(joined.Unwrap()); n != 4 {
		t.Errorf("got %d problems, want 4", n)
	}
}

func TestClone(t *testing.T) {
	s := DefaultSettings()
	s.Mappings = []Mapping{{Source: SourcePressure, Target: TargetSize, Min: 1, Max: 2, Strength: 1}}

	c := s.Clone()
	c.Mappings[0].Max = 5
	c.Size = 99

	if s.Mappings[0].Max != 2 || s.Size != 20 {
		t.Error("Clone shares state with the original")
	}
}
