package speech

import (
	"bufio"
	"os/exec"
	"strings"
	"sync"
)

// CommandTranscriber runs a configured speech-to-text command and treats
// each line the command writes to stdout as one finalized transcript
// segment. There is no portable default binary for this, so an empty
// command means the capability is absent.
type CommandTranscriber struct {
	command string
	args    []string

	mu      sync.Mutex
	current *exec.Cmd
}

// NewTranscriber builds a CommandTranscriber from the configured command
// line. Returns ErrUnavailable when no command is configured or the binary
// is missing.
func NewTranscriber(command string) (*CommandTranscriber, error) {
	if command == "" {
		return nil, ErrUnavailable
	}
	fields := strings.Fields(command)
	if _, err := exec.LookPath(fields[0]); err != nil {
		return nil, ErrUnavailable
	}
	return &CommandTranscriber{command: fields[0], args: fields[1:]}, nil
}

// Start launches the capture command. Each stdout line is delivered to
// onFinal as a finalized segment. Start returns immediately; capture runs
// until Stop or until the command exits on its own.
func (t *CommandTranscriber) Start(onFinal func(segment string)) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current != nil {
		return nil // already capturing
	}

	cmd := exec.Command(t.command, t.args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	t.current = cmd

	go func() {
		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			segment := strings.TrimSpace(scanner.Text())
			if segment != "" {
				onFinal(segment)
			}
		}
		_ = cmd.Wait()
		t.mu.Lock()
		if t.current == cmd {
			t.current = nil
		}
		t.mu.Unlock()
	}()

	return nil
}

// Stop terminates the capture command, if running.
func (t *CommandTranscriber) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current != nil && t.current.Process != nil {
		_ = t.current.Process.Kill()
		t.current = nil
	}
}
