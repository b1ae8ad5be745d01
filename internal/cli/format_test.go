package cli

import "testing"

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{10000, "10,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.in); got != c.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatMacroPairRoundsForDisplay(t *testing.T) {
	if got := FormatMacroPair(50.0, 150.0); got != "50 / 150 g" {
		t.Fatalf("FormatMacroPair = %q", got)
	}
	if got := FormatMacroPair(49.6, 150.4); got != "50 / 150 g" {
		t.Fatalf("FormatMacroPair rounding = %q", got)
	}
}

func TestFormatLiters(t *testing.T) {
	if got := FormatLiters(2.0); got != "2.0 L" {
		t.Fatalf("FormatLiters = %q", got)
	}
}

func TestFormatMeasureDropsTrailingZeros(t *testing.T) {
	if got := FormatMeasure(172, "cm"); got != "172cm" {
		t.Fatalf("FormatMeasure = %q", got)
	}
	if got := FormatMeasure(81.5, "kg"); got != "81.5kg" {
		t.Fatalf("FormatMeasure = %q", got)
	}
}
