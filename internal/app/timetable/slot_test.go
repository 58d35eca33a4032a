package timetable

import "testing"

func TestParseWeekday(t *testing.T) {
	cases := []struct {
		raw  string
		want Weekday
		ok   bool
	}{
		{raw: "MONDAY", want: Monday, ok: true},
		{raw: "LUNES", want: Monday, ok: true},
		{raw: "Lunes", want: Monday, ok: true},
		{raw: "Miércoles", want: Wednesday, ok: true},
		{raw: "MIERCOLES", want: Wednesday, ok: true},
		{raw: "Sábado", want: Saturday, ok: true},
		{raw: "SABADO", want: Saturday, ok: true},
		{raw: " viernes ", want: Friday, ok: true},
		{raw: "SUNDAY", ok: false},
		{raw: "DOMINGO", ok: false},
		{raw: "", ok: false},
		{raw: "garbage", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, ok := ParseWeekday(tc.raw)
			if ok != tc.ok {
				t.Fatalf("ParseWeekday(%q) ok = %v, want %v", tc.raw, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("ParseWeekday(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestWeekdayDisplayName(t *testing.T) {
	if got := Wednesday.DisplayName(); got != "Miércoles" {
		t.Fatalf("DisplayName = %q, want %q", got, "Miércoles")
	}
	if got := Saturday.DisplayName(); got != "Sábado" {
		t.Fatalf("DisplayName = %q, want %q", got, "Sábado")
	}
}

func TestParseHourRange(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    Interval
		wantErr bool
	}{
		{name: "plain", raw: "6-8", want: Interval{Start: 6, End: 8}},
		{name: "spaced", raw: " 10 - 12 ", want: Interval{Start: 10, End: 12}},
		{name: "single hour", raw: "21-22", want: Interval{Start: 21, End: 22}},
		{name: "reversed", raw: "8-6", wantErr: true},
		{name: "zero length", raw: "8-8", wantErr: true},
		{name: "non numeric start", raw: "x-8", wantErr: true},
		{name: "non numeric end", raw: "8-y", wantErr: true},
		{name: "missing separator", raw: "8", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseHourRange(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseHourRange(%q) expected error, got %+v", tc.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHourRange(%q) unexpected error: %v", tc.raw, err)
			}
			if got != tc.want {
				t.Fatalf("ParseHourRange(%q) = %+v, want %+v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestIntervalSpan(t *testing.T) {
	iv := Interval{Start: 8, End: 11}
	if got := iv.Span(); got != 3 {
		t.Fatalf("Span = %d, want 3", got)
	}
}
