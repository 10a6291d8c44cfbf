package model

import (
	"testing"
)

func TestField_Get(t *testing.T) {
	tests := []struct {
		name   string
		field  Field[int]
		want   int
		wantOK bool
	}{
		{"present", Present(42), 42, true},
		{"absent", Field[int]{}, 0, false},
		{"malformed", Malformed[int](), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.field.Get()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Get() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFieldState_String(t *testing.T) {
	tests := []struct {
		state FieldState
		want  string
	}{
		{FieldAbsent, "absent"},
		{FieldPresent, "present"},
		{FieldMalformed, "malformed"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTrack_Durations(t *testing.T) {
	track := Track{TotalTime: Present(150000)}

	minutes, ok := track.DurationMinutes()
	if !ok || minutes != 2.5 {
		t.Errorf("DurationMinutes() = (%v, %v), want (2.5, true)", minutes, ok)
	}

	seconds, ok := track.DurationSeconds()
	if !ok || seconds != 150 {
		t.Errorf("DurationSeconds() = (%v, %v), want (150, true)", seconds, ok)
	}
}

func TestTrack_DurationsMissing(t *testing.T) {
	track := Track{TotalTime: Malformed[int]()}

	if _, ok := track.DurationMinutes(); ok {
		t.Error("DurationMinutes() should report missing for a malformed field")
	}
	if _, ok := track.DurationSeconds(); ok {
		t.Error("DurationSeconds() should report missing for a malformed field")
	}
}

func TestNewLibrary_SortsByID(t *testing.T) {
	lib := NewLibrary("lib.xml", []Track{{ID: "10"}, {ID: "9"}, {ID: "100"}, {ID: "abc"}, {ID: "2"}})

	want := []string{"2", "9", "10", "100", "abc"}
	for i, tr := range lib.Tracks {
		if tr.ID != want[i] {
			t.Errorf("Tracks[%d].ID = %q, want %q", i, tr.ID, want[i])
		}
	}
}

func TestLibrary_Names(t *testing.T) {
	lib := NewLibrary("lib.xml", []Track{
		{ID: "1", Name: Present("A")},
		{ID: "2", Name: Present("B")},
		{ID: "3", Name: Present("A")},
		{ID: "4"},
		{ID: "5", Name: Malformed[string]()},
	})

	names := lib.Names()
	if len(names) != 2 {
		t.Fatalf("len(Names()) = %d, want 2", len(names))
	}
	for _, n := range []string{"A", "B"} {
		if _, ok := names[n]; !ok {
			t.Errorf("Names() missing %q", n)
		}
	}
}
