package speech

import (
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

// speakCandidates are tried in order when no command is configured.
var speakCandidates = []string{"say", "espeak-ng", "espeak"}

// CommandSpeaker shells out to a text-to-speech binary. Each Speak cancels
// the previous utterance first, matching how the web client drains the
// synthesis queue before enqueueing.
type CommandSpeaker struct {
	command string
	args    []string

	mu      sync.Mutex
	current *exec.Cmd
}

// NewSpeaker builds a CommandSpeaker from the configured command line, or
// from the first known TTS binary on PATH when command is empty. Returns
// ErrUnavailable when nothing usable exists. rate is relative to normal
// speed (1.0); values <= 0 leave the binary's default alone.
func NewSpeaker(command string, rate float64) (*CommandSpeaker, error) {
	if command != "" {
		fields := strings.Fields(command)
		if _, err := exec.LookPath(fields[0]); err != nil {
			return nil, ErrUnavailable
		}
		return &CommandSpeaker{command: fields[0], args: fields[1:]}, nil
	}

	for _, candidate := range speakCandidates {
		if _, err := exec.LookPath(candidate); err == nil {
			return &CommandSpeaker{command: candidate, args: rateArgs(candidate, rate)}, nil
		}
	}
	return nil, ErrUnavailable
}

// rateArgs translates the relative rate into the flag each known binary
// expects. say takes words per minute, espeak takes words per minute via -s.
func rateArgs(command string, rate float64) []string {
	if rate <= 0 {
		return nil
	}
	wpm := strconv.Itoa(int(rate * defaultWPM))
	switch command {
	case "say":
		return []string{"-r", wpm}
	case "espeak-ng", "espeak":
		return []string{"-s", wpm}
	}
	return nil
}

// defaultWPM is the speaking rate the relative rate scales against.
const defaultWPM = 175

// Speak cancels any in-flight utterance and starts speaking text. It does
// not wait for playback to finish.
func (s *CommandSpeaker) Speak(text string) error {
	s.Cancel()

	cmd := exec.Command(s.command, append(s.args, text)...)
	if err := cmd.Start(); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = cmd
	s.mu.Unlock()

	go func() {
		_ = cmd.Wait()
		s.mu.Lock()
		if s.current == cmd {
			s.current = nil
		}
		s.mu.Unlock()
	}()

	return nil
}

// Cancel stops the in-flight utterance, if any.
func (s *CommandSpeaker) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil && s.current.Process != nil {
		_ = s.current.Process.Kill()
		s.current = nil
	}
}
