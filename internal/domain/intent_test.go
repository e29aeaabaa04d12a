package domain

import "testing"

func TestParseIntentKind(t *testing.T) {
	tests := []struct {
		input    string
		expected IntentKind
	}{
		{"MOVE", IntentMove},
		{"move", IntentMove},
		{"USE_ITEM", IntentUseItem},
		{"DESCEND", IntentDescend},
		{"CHOOSE_STAT", IntentChooseStat},
		{"", IntentNone},
		{"TELEPORT", IntentNone},
	}

	for _, tt := range tests {
		if got := ParseIntentKind(tt.input); got != tt.expected {
			t.Errorf("ParseIntentKind(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestParseStatChoice(t *testing.T) {
	if got := ParseStatChoice("strength"); got != StatStrength {
		t.Errorf("ParseStatChoice(strength) = %v, want StatStrength", got)
	}
	if got := ParseStatChoice("LUCK"); got != StatNone {
		t.Errorf("Unknown stat must parse to StatNone, got %v", got)
	}
}
