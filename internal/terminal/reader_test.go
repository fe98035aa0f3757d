package terminal

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func readAll(t *testing.T, input string) []Key {
	t.Helper()
	r := NewReader(strings.NewReader(input))
	var keys []Key
	for {
		key, err := r.ReadKey()
		if errors.Is(err, io.EOF) {
			return keys
		}
		if err != nil && !errors.Is(err, ErrInterrupted) {
			t.Fatalf("unexpected error: %v", err)
		}
		keys = append(keys, key)
	}
}

func TestReadKeyDecodesOneKeyPerCall(t *testing.T) {
	keys := readAll(t, "12q\r\x7f")
	want := []Key{RuneKey('1'), RuneKey('2'), RuneKey('q'), {Code: KeyEnter}, {Code: KeyBackspace}}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %#v", len(want), keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("key %d: expected %v, got %v", i, want[i], keys[i])
		}
	}
}

func TestReadKeyTreatsCRLFAsSingleEnter(t *testing.T) {
	keys := readAll(t, "\r\n5")
	if len(keys) != 2 || keys[0].Code != KeyEnter || keys[1] != RuneKey('5') {
		t.Fatalf("unexpected keys %#v", keys)
	}
}

func TestReadKeySkipsArrowSequences(t *testing.T) {
	keys := readAll(t, "\x1b[A3\x1bOB")
	if len(keys) != 3 {
		t.Fatalf("expected 3 keys, got %#v", keys)
	}
	if keys[0].Code != KeyUnknown || keys[1] != RuneKey('3') || keys[2].Code != KeyUnknown {
		t.Fatalf("unexpected keys %#v", keys)
	}
}

func TestReadKeyLoneEscape(t *testing.T) {
	keys := readAll(t, "\x1b")
	if len(keys) != 1 || keys[0].Code != KeyEscape {
		t.Fatalf("expected a bare escape, got %#v", keys)
	}
}

func TestReadKeyInterrupt(t *testing.T) {
	r := NewReader(strings.NewReader("\x03"))
	key, err := r.ReadKey()
	if !errors.Is(err, ErrInterrupted) {
		t.Fatalf("expected ErrInterrupted, got %v", err)
	}
	if key.Code != KeyInterrupt {
		t.Fatalf("expected interrupt key, got %v", key)
	}
}

func TestKeyHelpers(t *testing.T) {
	if !RuneKey('0').IsDigit() || RuneKey('a').IsDigit() {
		t.Fatal("unexpected digit classification")
	}
	if (Key{Code: KeyEnter}).IsDigit() {
		t.Fatal("enter must not be a digit")
	}
	if got := (Key{Code: KeyBackspace}).String(); got != "backspace" {
		t.Fatalf("expected backspace, got %q", got)
	}
	if got := decodeRune('\x01'); got.Code != KeyUnknown {
		t.Fatalf("expected control rune to be unknown, got %v", got)
	}
}

func TestDrainHandsOverTypeAhead(t *testing.T) {
	r := NewReader(strings.NewReader("0Math\r"))
	key, err := r.ReadKey()
	if err != nil || key != RuneKey('0') {
		t.Fatalf("expected 0, got %v (%v)", key, err)
	}
	if got := string(r.Drain()); got != "Math\r" {
		t.Fatalf("Drain = %q, want %q", got, "Math\r")
	}
	if got := r.Drain(); got != nil {
		t.Fatalf("second Drain = %q, want nothing", got)
	}
	if _, err := r.ReadKey(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF after drain, got %v", err)
	}
}
