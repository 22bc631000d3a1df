package money

import (
	"encoding/json"
	"testing"
)

func TestFromFloatRounding(t *testing.T) {
	cases := []struct {
		in   float64
		want Centavos
	}{
		{125450.75, 12545075},
		{1.0, 100},
		{0.005, 1},
		{-3250.50, -325050},
		{5178.08, 517808},
	}
	for _, c := range cases {
		if got := FromFloat(c.in); got != c.want {
			t.Errorf("FromFloat(%v)=%d want=%d", c.in, got, c.want)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   Centavos
		want string
	}{
		{12545075, "$125.450,75"},
		{100, "$1,00"},
		{10000000, "$100.000,00"},
		{5000000, "$50.000,00"},
		{-500050, "-$5.000,50"},
		{7, "$0,07"},
	}
	for _, c := range cases {
		if got := c.in.Format(); got != c.want {
			t.Errorf("Format(%d)=%q want=%q", c.in, got, c.want)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(Centavos(12545075))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "125450.75" {
		t.Fatalf("marshal=%s want=125450.75", b)
	}

	var c Centavos
	if err := json.Unmarshal([]byte("89320.50"), &c); err != nil {
		t.Fatal(err)
	}
	if c != 8932050 {
		t.Fatalf("unmarshal=%d want=8932050", c)
	}
}

func TestUnmarshalRejectsOutOfRangeAmounts(t *testing.T) {
	for _, in := range []string{"1e300", "-1e300", "1e400", "92233720368547758.08"} {
		var c Centavos
		if err := json.Unmarshal([]byte(in), &c); err == nil {
			t.Errorf("Unmarshal(%s) accepted, got %d", in, c)
		}
	}
}
