package speech

import (
	"errors"
	"testing"
)

func TestNewSpeakerMissingBinaryIsUnavailable(t *testing.T) {
	_, err := NewSpeaker("definitely-not-a-real-tts-binary-xyz", 0.95)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestRateArgsPerBinary(t *testing.T) {
	tests := []struct {
		command string
		rate    float64
		want    []string
	}{
		{"say", 1.0, []string{"-r", "175"}},
		{"espeak-ng", 0.95, []string{"-s", "166"}},
		{"espeak", 2.0, []string{"-s", "350"}},
		{"say", 0, nil},
		{"custom-tts", 1.0, nil},
	}

	for _, tt := range tests {
		got := rateArgs(tt.command, tt.rate)
		if len(got) != len(tt.want) {
			t.Errorf("rateArgs(%q, %v) = %v, want %v", tt.command, tt.rate, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("rateArgs(%q, %v) = %v, want %v", tt.command, tt.rate, got, tt.want)
				break
			}
		}
	}
}

func TestNewTranscriberEmptyCommandIsUnavailable(t *testing.T) {
	_, err := NewTranscriber("")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestNewTranscriberMissingBinaryIsUnavailable(t *testing.T) {
	_, err := NewTranscriber("definitely-not-a-real-stt-binary-xyz --stream")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}
