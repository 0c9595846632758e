package config_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/shivxmhere/ai-voice-detector/internal/platform/config"
)

func TestMayStringAndPrefix(t *testing.T) {
	t.Setenv("VOICE_API_KEY", "sekrit")

	cfg := config.New().Prefix("VOICE_API_")
	if got := cfg.MayString("KEY", "default"); got != "sekrit" {
		t.Fatalf("MayString = %q", got)
	}
	if got := cfg.MayString("ABSENT", "default"); got != "default" {
		t.Fatalf("MayString absent = %q", got)
	}
}

func TestMayInt(t *testing.T) {
	t.Setenv("N", "12")
	cfg := config.New()
	if got := cfg.MayInt("N", 3); got != 12 {
		t.Fatalf("MayInt = %d", got)
	}
	t.Setenv("N", "not-a-number")
	if got := cfg.MayInt("N", 3); got != 3 {
		t.Fatalf("MayInt invalid = %d, want default", got)
	}
}

func TestMayBool(t *testing.T) {
	t.Setenv("B", "true")
	cfg := config.New()
	if !cfg.MayBool("B", false) {
		t.Fatal("MayBool true")
	}
	t.Setenv("B", "wat")
	if !cfg.MayBool("B", true) {
		t.Fatal("MayBool invalid should fall back to default")
	}
}

func TestMayDuration(t *testing.T) {
	t.Setenv("D", "250ms")
	cfg := config.New()
	if got := cfg.MayDuration("D", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	t.Setenv("D", "soon")
	if got := cfg.MayDuration("D", time.Second); got != time.Second {
		t.Fatalf("MayDuration invalid = %v, want default", got)
	}
}

func TestMayCSV(t *testing.T) {
	t.Setenv("LANGS", "Tamil, English ,Hindi,,")
	cfg := config.New()
	got := cfg.MayCSV("LANGS", nil)
	want := []string{"Tamil", "English", "Hindi"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MayCSV = %v, want %v", got, want)
	}

	t.Setenv("LANGS", "")
	def := []string{"English"}
	if got := cfg.MayCSV("LANGS", def); !reflect.DeepEqual(got, def) {
		t.Fatalf("MayCSV empty = %v, want default", got)
	}
}
