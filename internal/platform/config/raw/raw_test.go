package raw

import "testing"

func TestGetWithPrefix(t *testing.T) {
	t.Setenv("VOICE_API_ADDR", " :9000 ")

	c := New().Prefix("VOICE_API_")
	if got := c.Get("ADDR", ":8000"); got != ":9000" {
		t.Fatalf("Get = %q, want trimmed value", got)
	}
	if got := c.Get("MISSING", "fallback"); got != "fallback" {
		t.Fatalf("Get missing = %q, want fallback", got)
	}
}

func TestGetBool(t *testing.T) {
	cases := []struct {
		val  string
		def  bool
		want bool
	}{
		{"1", false, true},
		{"true", false, true},
		{"yes", false, true},
		{"no", true, false},
		{"", true, true},
		{"", false, false},
	}
	for _, tc := range cases {
		t.Setenv("TEST_FLAG", tc.val)
		if got := New().GetBool("TEST_FLAG", tc.def); got != tc.want {
			t.Fatalf("GetBool(%q, %v) = %v, want %v", tc.val, tc.def, got, tc.want)
		}
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("TEST_N", "42")
	if got := New().GetInt("TEST_N", 7); got != 42 {
		t.Fatalf("GetInt = %d", got)
	}
	t.Setenv("TEST_N", "nope")
	if got := New().GetInt("TEST_N", 7); got != 7 {
		t.Fatalf("GetInt invalid = %d, want default", got)
	}
}
