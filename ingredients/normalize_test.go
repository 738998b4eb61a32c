package ingredients

import "testing"

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  SALMON  ", "Salmon"},
		{"salmon", "Salmon"},
		{"Salmon", "Salmon"},
		{"  mixed Case Name ", "Mixed case name"},
		{"мука", "Мука"},
		{"  ", ""},
	}
	for _, c := range cases {
		if got := NormalizeName(c.in); got != c.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeNameIdempotent(t *testing.T) {
	once := NormalizeName("  SALMON  ")
	if twice := NormalizeName(once); twice != once {
		t.Errorf("re-normalizing %q changed it to %q", once, twice)
	}
}

func TestNormalizeUnit(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{" KG ", "kg"},
		{"g", "g"},
		{" мл ", "мл"},
	}
	for _, c := range cases {
		if got := NormalizeUnit(c.in); got != c.want {
			t.Errorf("NormalizeUnit(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
