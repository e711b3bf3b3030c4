package starfield

import "testing"

const testSceneYAML = `
scenes:
  - hour: 20
    background: "#102040"
    stars: 300
    drift: 1.0
  - hour: 4
    background: "#000000"
    stars: 500
    drift: 0.5
  - hour: 12
    background: "#204080"
    stars: 100
    drift: 2.0
`

func TestLoadSceneTable(t *testing.T) {
	tbl, err := LoadSceneTable([]byte(testSceneYAML))
	if err != nil {
		t.Fatalf("LoadSceneTable() error: %v", err)
	}
	if len(tbl.entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(tbl.entries))
	}
	// Entries are sorted by hour regardless of file order.
	if tbl.entries[0].Hour != 4 || tbl.entries[2].Hour != 20 {
		t.Errorf("entries not sorted: hours %v, %v, %v",
			tbl.entries[0].Hour, tbl.entries[1].Hour, tbl.entries[2].Hour)
	}
	assertNear(t, "parsed background R", tbl.entries[2].bg.R, 16.0/255)
	assertNear(t, "parsed background B", tbl.entries[2].bg.B, 64.0/255)
}

func TestLoadSceneTableErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", ":\nnot yaml["},
		{"empty", "scenes: []"},
		{"bad hour", "scenes:\n  - hour: 24\n    background: \"#000\""},
		{"bad color", "scenes:\n  - hour: 1\n    background: \"red\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadSceneTable([]byte(tt.yaml)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParamsAtEntryHours(t *testing.T) {
	tbl, err := LoadSceneTable([]byte(testSceneYAML))
	if err != nil {
		t.Fatal(err)
	}

	p := tbl.ParamsAt(4)
	if p.StarCount != 500 {
		t.Errorf("stars at hour 4 = %d, want 500", p.StarCount)
	}
	assertNear(t, "drift at hour 4", p.Drift, 0.5)

	p = tbl.ParamsAt(12)
	if p.StarCount != 100 {
		t.Errorf("stars at hour 12 = %d, want 100", p.StarCount)
	}
}

func TestParamsAtInterpolates(t *testing.T) {
	tbl, err := LoadSceneTable([]byte(testSceneYAML))
	if err != nil {
		t.Fatal(err)
	}

	// Halfway between hour 4 (500 stars, drift 0.5, black) and hour 12
	// (100 stars, drift 2.0).
	p := tbl.ParamsAt(8)
	if p.StarCount != 300 {
		t.Errorf("stars at hour 8 = %d, want 300", p.StarCount)
	}
	assertNear(t, "drift at hour 8", p.Drift, 1.25)
	assertNear(t, "background R at hour 8", p.Background.R, (32.0/255)/2)
}

func TestParamsAtWrapsMidnight(t *testing.T) {
	tbl, err := LoadSceneTable([]byte(testSceneYAML))
	if err != nil {
		t.Fatal(err)
	}

	// Hour 0 lies between the 20:00 entry and the 4:00 entry of the next
	// day: span 8 hours, 4 elapsed → halfway.
	p := tbl.ParamsAt(0)
	if p.StarCount != 400 {
		t.Errorf("stars at midnight = %d, want 400", p.StarCount)
	}
	assertNear(t, "drift at midnight", p.Drift, 0.75)

	// Out-of-range hours wrap to the same result.
	if q := tbl.ParamsAt(24); q != p {
		t.Errorf("ParamsAt(24) = %+v, want %+v", q, p)
	}
	if q := tbl.ParamsAt(-24); q != p {
		t.Errorf("ParamsAt(-24) = %+v, want %+v", q, p)
	}
}

func TestSingleEntryTableIsConstant(t *testing.T) {
	tbl, err := LoadSceneTable([]byte("scenes:\n  - hour: 6\n    background: \"#fff\"\n    stars: 42\n    drift: 3"))
	if err != nil {
		t.Fatal(err)
	}
	for _, hour := range []float64{0, 6, 13.7, 23.99} {
		p := tbl.ParamsAt(hour)
		if p.StarCount != 42 || p.Drift != 3 {
			t.Errorf("ParamsAt(%v) = %+v, want constant entry", hour, p)
		}
	}
}

func TestDefaultSceneTable(t *testing.T) {
	tbl := DefaultSceneTable()
	if len(tbl.entries) == 0 {
		t.Fatal("default table is empty")
	}
	p := tbl.ParamsNow()
	if p.StarCount <= 0 {
		t.Errorf("StarCount = %d, want positive", p.StarCount)
	}
	if p.Background.A != 1 {
		t.Errorf("Background.A = %v, want 1", p.Background.A)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "#fff", want: Color{1, 1, 1, 1}},
		{in: "#000000", want: Color{0, 0, 0, 1}},
		{in: "#FF8000", want: Color{1, 128.0 / 255, 0, 1}},
		{in: "fff", wantErr: true},
		{in: "#ff", wantErr: true},
		{in: "#gggggg", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseHexColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseHexColor(%q) error: %v", tt.in, err)
			}
			assertNear(t, "R", got.R, tt.want.R)
			assertNear(t, "G", got.G, tt.want.G)
			assertNear(t, "B", got.B, tt.want.B)
		})
	}
}
