package domain

import "testing"

func TestParseCategory(t *testing.T) {
	cases := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{"0", CategoryChild, false},
		{"2", CategoryAdult, false},
		{"youth", CategoryYouth, false},
		{" Adult ", CategoryAdult, false},
		{"3", 0, true},
		{"-1", 0, true},
		{"senior", 0, true},
	}
	for _, c := range cases {
		got, err := ParseCategory(c.input)
		if c.wantErr {
			if err == nil || !IsKind(err, KindInvalidInput) {
				t.Errorf("ParseCategory(%q): expected invalid_input, got %v", c.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCategory(%q): unexpected error %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseCategory(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestFromLabel_RejectsIndexes(t *testing.T) {
	if _, err := RoleFromLabel("1"); err == nil {
		t.Fatalf("expected strict parse to reject index")
	}
	r, err := RoleFromLabel("Maintenance")
	if err != nil || r != RoleMaintenance {
		t.Fatalf("expected Maintenance, got %v err=%v", r, err)
	}
	f, err := FacilityTypeFromLabel("Multi-purpose Room")
	if err != nil || f != FacilityMultiPurpose {
		t.Fatalf("expected multi-purpose, got %v err=%v", f, err)
	}
	c, err := CategoryFromLabel("child")
	if err != nil || c != CategoryChild {
		t.Fatalf("expected Child, got %v err=%v", c, err)
	}
}

func TestEnumStringRoundTrip(t *testing.T) {
	for i, lbl := range FacilityTypeLabels() {
		ft, err := FacilityTypeFromLabel(FacilityType(i).String())
		if err != nil {
			t.Fatalf("label %q: %v", lbl, err)
		}
		if int(ft) != i {
			t.Fatalf("label %q mapped to %d", lbl, ft)
		}
	}
	if got := Role(9).String(); got != "Unknown(9)" {
		t.Fatalf("unexpected out-of-range label %q", got)
	}
}
