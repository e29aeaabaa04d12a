package utils

import "testing"

func TestNewToken(t *testing.T) {
	tok := NewToken()
	if len(tok) != 16 {
		t.Errorf("Expected a 16-char hex token, got %q (len %d)", tok, len(tok))
	}

	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		v := NewToken()
		if seen[v] {
			t.Fatalf("Token %q repeated", v)
		}
		seen[v] = true
	}
}
