// Package speech abstracts the optional voice features behind two small
// interfaces so the interview flow can run with real audio, with external
// commands, or with fakes in tests.
package speech

import "errors"

// ErrUnavailable means the host has no usable speech capability. Callers
// surface a notice and carry on; it never changes interview state.
var ErrUnavailable = errors.New("speech capability not available")

// Speaker synthesizes text aloud. Speak replaces anything still pending:
// implementations cancel queued utterances before enqueueing a new one.
type Speaker interface {
	Speak(text string) error
	Cancel()
}

// Transcriber captures speech and delivers finalized transcript segments.
// Interim results stay internal to the implementation; only final segments
// reach the callback, so committed text is never duplicated.
type Transcriber interface {
	Start(onFinal func(segment string)) error
	Stop()
}
