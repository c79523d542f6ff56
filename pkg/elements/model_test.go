package elements

import (
	"math"
	"testing"
)

func TestTruncateIsotopes(t *testing.T) {
	tests := []struct {
		name     string
		envelope []float64
		monoIdx  int
		maxLen   int
		wantMono int
		wantSt   int
		wantEnd  int
	}{
		{
			name:     "interior peak extends toward higher abundance",
			envelope: []float64{1, 2, 3, 4, 10, 5, 4, 3, 2, 1},
			monoIdx:  4,
			maxLen:   5,
			wantMono: 1,
			wantSt:   3,
			wantEnd:  8,
		},
		{
			name:     "equal neighbors extend the upper side",
			envelope: []float64{0, 0, 1, 2, 10, 2, 1, 0, 0, 0},
			monoIdx:  4,
			maxLen:   2,
			wantMono: 0,
			wantSt:   4,
			wantEnd:  6,
		},
		{
			name:     "mono at lower edge re-anchors against start",
			envelope: []float64{10, 1, 1, 1, 1, 1, 1, 1},
			monoIdx:  0,
			maxLen:   4,
			wantMono: 0,
			wantSt:   0,
			wantEnd:  4,
		},
		{
			name:     "mono at upper edge re-anchors against end",
			envelope: []float64{1, 1, 1, 1, 1, 1, 1, 10},
			monoIdx:  7,
			maxLen:   4,
			wantMono: 3,
			wantSt:   4,
			wantEnd:  8,
		},
		{
			name:     "lower bound hits edge mid-walk",
			envelope: []float64{5, 9, 10, 1, 1, 1, 1, 1, 1, 1, 1, 1},
			monoIdx:  2,
			maxLen:   6,
			wantMono: 2,
			wantSt:   0,
			wantEnd:  6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMono, gotSt, gotEnd := truncateIsotopes(tt.envelope, tt.monoIdx, tt.maxLen)
			if gotMono != tt.wantMono || gotSt != tt.wantSt || gotEnd != tt.wantEnd {
				t.Errorf("truncateIsotopes() = (%d, %d, %d), want (%d, %d, %d)",
					gotMono, gotSt, gotEnd, tt.wantMono, tt.wantSt, tt.wantEnd)
			}
			if gotEnd-gotSt != tt.maxLen {
				t.Errorf("window width = %d, want %d", gotEnd-gotSt, tt.maxLen)
			}
			if gotMono < 0 || gotMono >= tt.maxLen {
				t.Errorf("mono index %d outside window of width %d", gotMono, tt.maxLen)
			}
			// The window must contain the original mono peak.
			if tt.monoIdx < gotSt || tt.monoIdx >= gotEnd {
				t.Errorf("window [%d, %d) does not contain original mono %d", gotSt, gotEnd, tt.monoIdx)
			}
			if tt.envelope[gotSt+gotMono] != tt.envelope[tt.monoIdx] {
				t.Errorf("mono abundance changed: %v != %v", tt.envelope[gotSt+gotMono], tt.envelope[tt.monoIdx])
			}
		})
	}
}

func TestBuildDistributionSingleIsotope(t *testing.T) {
	d := buildDistribution(Record{
		Abundance: []float64{1.0},
		Mass:      []float64{30.97376163},
	})
	if len(d.Envelope) != 1 {
		t.Fatalf("envelope length = %d, want 1", len(d.Envelope))
	}
	if d.MonoIdx != 0 {
		t.Errorf("MonoIdx = %d, want 0", d.MonoIdx)
	}
	if d.MonoMass != 30.97376163 {
		t.Errorf("MonoMass = %v, want 30.97376163", d.MonoMass)
	}
	if d.ClippedIsotopes != 0 {
		t.Errorf("ClippedIsotopes = %d, want 0", d.ClippedIsotopes)
	}
}

func TestBuildDistributionSortsUnorderedIsotopes(t *testing.T) {
	d := buildDistribution(Record{
		Abundance: []float64{0.0107, 0.9893},
		Mass:      []float64{13.0033548378, 12.0},
	})
	if len(d.Envelope) != 2 {
		t.Fatalf("envelope length = %d, want 2", len(d.Envelope))
	}
	if d.MonoIdx != 0 {
		t.Errorf("MonoIdx = %d, want 0", d.MonoIdx)
	}
	if d.MonoMass != 12.0 {
		t.Errorf("MonoMass = %v, want 12.0", d.MonoMass)
	}
	if d.Envelope[0] != 0.9893 || d.Envelope[1] != 0.0107 {
		t.Errorf("envelope = %v, want [0.9893 0.0107]", d.Envelope)
	}
}

func TestBuildDistributionSpanEqualsMaxIsNotTruncated(t *testing.T) {
	// Span is exactly MaxIsotopeLen; no truncation path is entered.
	d := buildDistribution(Record{
		Abundance: []float64{0.6, 0.4},
		Mass:      []float64{100.0, 100.0 + float64(MaxIsotopeLen-1)},
	})
	if len(d.Envelope) != MaxIsotopeLen {
		t.Fatalf("envelope length = %d, want %d", len(d.Envelope), MaxIsotopeLen)
	}
	if d.ClippedIsotopes != 0 || d.ClippedAbundance != 0 {
		t.Errorf("expected no clipping, got %d isotopes / %v abundance",
			d.ClippedIsotopes, d.ClippedAbundance)
	}
	if d.MonoIdx != 0 {
		t.Errorf("MonoIdx = %d, want 0", d.MonoIdx)
	}
}

func TestBuildDistributionWideSpanIsTruncated(t *testing.T) {
	// Tin spans 13 nominal masses (112-124), wider than MaxIsotopeLen.
	rec := defaultRecords()["Sn"]
	d := buildDistribution(rec)

	if len(d.Envelope) != MaxIsotopeLen {
		t.Fatalf("envelope length = %d, want %d", len(d.Envelope), MaxIsotopeLen)
	}
	// 120Sn stays the mono peak with its exact mass, before and after
	// truncation.
	if d.MonoMass != 119.9022016 {
		t.Errorf("MonoMass = %v, want 119.9022016", d.MonoMass)
	}
	if d.Envelope[d.MonoIdx] != 0.3258 {
		t.Errorf("mono abundance = %v, want 0.3258", d.Envelope[d.MonoIdx])
	}
	if d.ClippedIsotopes != 2 {
		t.Errorf("ClippedIsotopes = %d, want 2 (112Sn, 124Sn)", d.ClippedIsotopes)
	}
	if math.Abs(d.ClippedAbundance-(0.0097+0.0579)) > 1e-12 {
		t.Errorf("ClippedAbundance = %v, want %v", d.ClippedAbundance, 0.0097+0.0579)
	}
}

func TestDistributionLengthBound(t *testing.T) {
	model := NewTable().Model()
	for _, symbol := range model.Symbols() {
		dist, err := model.Distribution(symbol)
		if err != nil {
			t.Fatalf("Distribution(%s): %v", symbol, err)
		}
		if len(dist.Envelope) == 0 || len(dist.Envelope) > MaxIsotopeLen {
			t.Errorf("%s: envelope length %d outside (0, %d]", symbol, len(dist.Envelope), MaxIsotopeLen)
		}
		if dist.MonoIdx < 0 || dist.MonoIdx >= len(dist.Envelope) {
			t.Errorf("%s: MonoIdx %d outside envelope of length %d", symbol, dist.MonoIdx, len(dist.Envelope))
		}
		if dist.Envelope[dist.MonoIdx] <= 0 {
			t.Errorf("%s: mono abundance %v is not positive", symbol, dist.Envelope[dist.MonoIdx])
		}
	}
}
