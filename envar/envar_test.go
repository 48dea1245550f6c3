package envar

import "testing"

func TestGetenv(t *testing.T) {
	t.Setenv(SpritecutSrc, "")
	if v := Getenv(SpritecutSrc, "fox-sprite.png"); v != "fox-sprite.png" {
		t.Fatalf("Expected fox-sprite.png, got %s", v)
	}

	t.Setenv(SpritecutSrc, "cat.png")
	if v := Getenv(SpritecutSrc, "fox-sprite.png"); v != "cat.png" {
		t.Fatalf("Expected cat.png, got %s", v)
	}
}

func TestGetBool(t *testing.T) {
	cases := map[string]bool{
		"":      false,
		"0":     false,
		"false": false,
		"1":     true,
		"true":  true,
		"yes":   true,
	}
	for val, expected := range cases {
		t.Setenv(SpritecutVerbose, val)
		if got := GetBool(SpritecutVerbose); got != expected {
			t.Fatalf("Expected %v for %q, got %v", expected, val, got)
		}
	}
}
