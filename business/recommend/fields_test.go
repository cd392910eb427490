package recommend

import (
	"testing"
)

func TestNormalizeRecordAliases(t *testing.T) {
	t.Run("hotspot shape", func(t *testing.T) {
		rec, ok := NormalizeRecord(map[string]string{
			"핫스팟명":   "강남역",
			"특화업종":   "한식,카페",
			"특화비율":   "60.0",
			"변동계수(%)": "15.2",
			"활성도점수":  "82.5",
			"업종다양성":  "업종다양성 높음",
			"업종수":    "12개",
		})
		if !ok {
			t.Fatal("record rejected")
		}
		if rec.Name != "강남역" || rec.SpecializedIndustry != "한식,카페" {
			t.Errorf("name/industry = %q/%q", rec.Name, rec.SpecializedIndustry)
		}
		if rec.SpecializationRatio != 60.0 || rec.VariationCoefficient != 15.2 {
			t.Errorf("ratio/cv = %v/%v", rec.SpecializationRatio, rec.VariationCoefficient)
		}
		if rec.ActivityScore != 82.5 || rec.IndustryCount != 12 {
			t.Errorf("activity/count = %v/%v", rec.ActivityScore, rec.IndustryCount)
		}
	})

	t.Run("district shape", func(t *testing.T) {
		rec, ok := NormalizeRecord(map[string]string{
			"상권명":  "명동 상권",
			"주요특화업종": "쇼핑",
			"특화율":  "45.5%",
			"변동계수": "21.0",
		})
		if !ok {
			t.Fatal("record rejected")
		}
		if rec.Name != "명동 상권" {
			t.Errorf("name = %q", rec.Name)
		}
		if rec.SpecializationRatio != 45.5 {
			t.Errorf("percent suffix not stripped: ratio = %v", rec.SpecializationRatio)
		}
		if rec.VariationCoefficient != 21.0 {
			t.Errorf("cv alias not resolved: %v", rec.VariationCoefficient)
		}
	})

	t.Run("alias priority", func(t *testing.T) {
		rec, _ := NormalizeRecord(map[string]string{
			"핫스팟명": "홍대",
			"지역명":  "마포구",
		})
		if rec.Name != "홍대" {
			t.Errorf("name = %q, want first alias to win", rec.Name)
		}
	})
}

func TestNormalizeRecordDefaults(t *testing.T) {
	rec, ok := NormalizeRecord(map[string]string{"지역명": "성수"})
	if !ok {
		t.Fatal("record rejected")
	}
	if rec.SpecializedIndustry != "" || rec.SpecializationRatio != 0 ||
		rec.VariationCoefficient != 0 || rec.ActivityScore != 0 || rec.IndustryCount != 0 {
		t.Errorf("missing fields did not default to zero values: %+v", rec)
	}

	// malformed numerics keep defaults rather than failing the row
	rec, ok = NormalizeRecord(map[string]string{"지역명": "성수", "특화비율": "n/a", "업종수": "많음"})
	if !ok {
		t.Fatal("record with malformed numerics rejected")
	}
	if rec.SpecializationRatio != 0 || rec.IndustryCount != 0 {
		t.Errorf("malformed numerics = %v/%v, want defaults", rec.SpecializationRatio, rec.IndustryCount)
	}
}

func TestNormalizeRecordRejections(t *testing.T) {
	cases := []map[string]string{
		{},
		{"지역명": ""},
		{"지역명": "   "},
		{"지역명": "-"},
		{"특화업종": "한식"}, // data but no name column
	}
	for i, raw := range cases {
		if _, ok := NormalizeRecord(raw); ok {
			t.Errorf("case %d: row without a usable name accepted", i)
		}
	}
}

func TestLooseName(t *testing.T) {
	if got := looseName(map[string]string{"지역명": "강남역"}); got != "강남역" {
		t.Errorf("alias name = %q", got)
	}
	if got := looseName(map[string]string{"unknown": " 성수동 "}); got != "성수동" {
		t.Errorf("loose name = %q, want trimmed cell value", got)
	}
	if got := looseName(map[string]string{"a": "", "b": "  "}); got != "" {
		t.Errorf("empty row resolved to %q", got)
	}
}

// The widened pass must resolve the same row to the same name on every
// call regardless of map iteration order, and a numeric cell is never a
// region name.
func TestLooseNameDeterministic(t *testing.T) {
	row := map[string]string{
		"a_ratio": "60.0",
		"b_count": "12개",
		"c_pct":   "55%",
		"z_place": "성수동 카페거리",
	}
	for i := 0; i < 200; i++ {
		if got := looseName(row); got != "성수동 카페거리" {
			t.Fatalf("run %d: loose name = %q, want the textual cell", i, got)
		}
	}

	if got := looseName(map[string]string{"특화비율": "60.0", "업종수": "12"}); got != "" {
		t.Errorf("numeric-only row resolved to %q", got)
	}
}
