package vehicle

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"
	"time"
)

// fixClock pins the parser's notion of "now" for the duration of a test.
func fixClock(t *testing.T, at time.Time) {
	t.Helper()
	orig := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = orig })
}

func TestExtractYear(t *testing.T) {
	fixClock(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))

	cases := []struct {
		name  string
		title string
		want  Field
	}{
		{name: "leading year", title: "2015 TOYOTA CAMRY", want: Field{"2015", 100}},
		{name: "first of several", title: "1998 HONDA CIVIC 2003 ENGINE", want: Field{"1998", 100}},
		{name: "next model year", title: "2025 FORD F-150", want: Field{"2025", 100}},
		{name: "future year", title: "2029 TOYOTA CAMRY", want: Field{"2029", ConfidenceFutureYear}},
		{name: "lower bound", title: "1980 PORSCHE 911", want: Field{"1980", 100}},
		{name: "too old", title: "1979 PORSCHE 911", want: Field{}},
		{name: "too new", title: "2050 TESLA MODEL S", want: Field{}},
		{name: "not whole word", title: "CIVIC 20155 KM", want: Field{}},
		{name: "glued to letters", title: "ABC2015 ACCORD", want: Field{}},
		{name: "no digits", title: "TOYOTA CAMRY", want: Field{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractYear(tc.title); got != tc.want {
				t.Fatalf("ExtractYear(%q) = %+v, want %+v", tc.title, got, tc.want)
			}
		})
	}
}

func TestExtractYearUsesCurrentYear(t *testing.T) {
	future := strconv.Itoa(time.Now().Year() + 5)
	got := ExtractYear(future + " TOYOTA CAMRY")
	if got.Value != future || got.Confidence != ConfidenceFutureYear {
		t.Fatalf("expected %s at confidence %d, got %+v", future, ConfidenceFutureYear, got)
	}
}

func TestExtractMake(t *testing.T) {
	cases := []struct {
		name  string
		title string
		year  Field
		want  Field
	}{
		{name: "canonical", title: "TOYOTA CAMRY", want: Field{"TOYOTA", 100}},
		{name: "alias", title: "CHEVY SILVERADO", want: Field{"CHEVROLET", 95}},
		{name: "two word make", title: "LAND ROVER DISCOVERY", want: Field{"LAND ROVER", 100}},
		{name: "hyphenated alias", title: "LAND-ROVER DEFENDER", want: Field{"LAND ROVER", 95}},
		{name: "year removed", title: "2015 BMW 328I", year: Field{"2015", 100}, want: Field{"BMW", 100}},
		{name: "stop words ignored", title: "CLEAN TITLE FORD FOR SALE", want: Field{"FORD", 100}},
		{name: "fuzzy alias containment", title: "MERCEDESBENZ C300", want: Field{"MERCEDES-BENZ", 80}},
		{name: "fuzzy plural", title: "TOYOTAS WANTED", want: Field{"TOYOTA", 80}},
		{name: "partial stem", title: "VOLKSWAGON JETTA", want: Field{"VOLKSWAGEN", 60}},
		{name: "partial substring of make", title: "SUZUK SWIFT", want: Field{"SUZUKI", 60}},
		{name: "nothing recognisable", title: "MYSTERY", want: Field{}},
		{name: "only stop words", title: "FOR SALE OBO", want: Field{}},
		{name: "empty", title: "", want: Field{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractMake(tc.title, tc.year); got != tc.want {
				t.Fatalf("ExtractMake(%q) = %+v, want %+v", tc.title, got, tc.want)
			}
		})
	}
}

func TestExtractModel(t *testing.T) {
	cases := []struct {
		name  string
		title string
		year  Field
		mk    Field
		want  Field
	}{
		{
			name:  "hyphenated model",
			title: "2018 MAZDA CX-5 CLEAN TITLE",
			year:  Field{"2018", 100},
			mk:    Field{"MAZDA", 100},
			want:  Field{"CX-5", 100},
		},
		{
			name:  "two token window",
			title: "2015 BMW 3 SERIES 328I",
			year:  Field{"2015", 100},
			mk:    Field{"BMW", 100},
			want:  Field{"3 SERIES", 100},
		},
		{
			name:  "make's own digit model",
			title: "2012 MAZDA 3 GS",
			year:  Field{"2012", 100},
			mk:    Field{"MAZDA", 100},
			want:  Field{"3", 100},
		},
		{
			name:  "stop words between make and model",
			title: "FORD FOR SALE F-150",
			mk:    Field{"FORD", 100},
			want:  Field{"F-150", 100},
		},
		{
			name:  "digit alias",
			title: "2011 BMW 5 528I",
			year:  Field{"2011", 100},
			mk:    Field{"BMW", 100},
			want:  Field{"5 SERIES", 95},
		},
		{
			name:  "alias outside make falls through",
			title: "2015 TOYOTA 3",
			year:  Field{"2015", 100},
			mk:    Field{"TOYOTA", 100},
			want:  Field{"3", ConfidenceFreeText},
		},
		{
			name:  "partial containment",
			title: "2012 HONDA ACCORDEX",
			year:  Field{"2012", 100},
			mk:    Field{"HONDA", 100},
			want:  Field{"ACCORD", ConfidenceFuzzy},
		},
		{
			name:  "punctuation stripped",
			title: "2016 TOYOTA (RAV4) LE!",
			year:  Field{"2016", 100},
			mk:    Field{"TOYOTA", 100},
			want:  Field{"RAV4", 100},
		},
		{
			name:  "leftover text",
			title: "2010 TOYOTA WIDGET",
			year:  Field{"2010", 100},
			mk:    Field{"TOYOTA", 100},
			want:  Field{"WIDGET", ConfidenceFreeText},
		},
		{
			name:  "leftover text too long",
			title: "TOYOTA " + strings.Repeat("ZZ ", 20),
			mk:    Field{"TOYOTA", 100},
			want:  Field{},
		},
		{
			name:  "nothing left",
			title: "2015 TOYOTA CLEAN TITLE",
			year:  Field{"2015", 100},
			mk:    Field{"TOYOTA", 100},
			want:  Field{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractModel(tc.title, tc.year, tc.mk); got != tc.want {
				t.Fatalf("ExtractModel(%q) = %+v, want %+v", tc.title, got, tc.want)
			}
		})
	}
}

func TestExtractModelRequiresMake(t *testing.T) {
	titles := []string{
		"2015 BMW 3 SERIES",
		"2018 MAZDA CX-5",
		"CAMRY",
		"",
	}
	for _, title := range titles {
		if got := ExtractModel(title, Field{"2015", 100}, Field{}); got != (Field{}) {
			t.Fatalf("ExtractModel(%q) without make = %+v, want empty", title, got)
		}
	}
}

func TestModelAtHighConfidenceBelongsToMake(t *testing.T) {
	titles := []string{
		"2015 BMW 3 Series 328i",
		"2011 BMW 5 528i",
		"2012 Honda AccordEX",
		"2014 Mercedes-Benz C-Class C300",
		"2019 Subaru Crosstrek Sport",
		"2008 Chevy Silverado 1500",
	}
	for _, title := range titles {
		res := ParseTitle(title)
		if res.Model.Confidence >= ConfidenceFuzzy && !HasModel(res.Make.Value, res.Model.Value) {
			t.Fatalf("%q: model %q at %d is not a %s model", title, res.Model.Value, res.Model.Confidence, res.Make.Value)
		}
	}
}

func TestParseTitleEndToEnd(t *testing.T) {
	fixClock(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))

	res := ParseTitle("2015 BMW 3 Series 328i Clean Title Leather Sunroof")
	if res.Year != (Field{"2015", 100}) {
		t.Fatalf("unexpected year: %+v", res.Year)
	}
	if res.Make != (Field{"BMW", 100}) {
		t.Fatalf("unexpected make: %+v", res.Make)
	}
	if res.Model != (Field{"3 SERIES", 100}) {
		t.Fatalf("unexpected model: %+v", res.Model)
	}
	if res.Confidence().Overall != 100 {
		t.Fatalf("expected overall 100, got %d", res.Confidence().Overall)
	}
	if res.OriginalTitle != "2015 BMW 3 Series 328i Clean Title Leather Sunroof" {
		t.Fatalf("original title not preserved: %q", res.OriginalTitle)
	}
}

func TestParseTitleOverallRounds(t *testing.T) {
	fixClock(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))

	// 100 + 100 + 95 = 295 -> 98.33
	res := ParseTitle("2011 bmw 5 528i")
	if got := res.Confidence().Overall; got != 98 {
		t.Fatalf("expected overall 98, got %d (%+v)", got, res)
	}
}

func TestParseTitleBlank(t *testing.T) {
	for _, title := range []string{"", "   "} {
		res := ParseTitle(title)
		if res.Year.Found() || res.Make.Found() || res.Model.Found() {
			t.Fatalf("expected nothing parsed from %q, got %+v", title, res)
		}
		if res.Confidence() != (Result{}).Confidence() {
			t.Fatalf("expected zero confidence for %q", title)
		}
	}
}

func TestParseTitleDeterministic(t *testing.T) {
	title := "Volkswagon Jetta TDI low km"
	first := ParseTitle(title)
	for i := 0; i < 20; i++ {
		if got := ParseTitle(title); got != first {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestResultJSONUsesNotAvailable(t *testing.T) {
	data, err := json.Marshal(ParseTitle("mystery"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"year", "make", "model"} {
		if decoded[key] != NotAvailable {
			t.Fatalf("expected %s to be %q, got %v", key, NotAvailable, decoded[key])
		}
	}
	if decoded["originalTitle"] != "mystery" {
		t.Fatalf("unexpected originalTitle: %v", decoded["originalTitle"])
	}
	conf, ok := decoded["confidence"].(map[string]any)
	if !ok || conf["overall"] != float64(0) {
		t.Fatalf("unexpected confidence block: %v", decoded["confidence"])
	}
}
