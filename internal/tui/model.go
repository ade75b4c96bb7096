// Package tui implements the terminal user interface using Bubble Tea.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"go.uber.org/zap"

	"github.com/prajaltale/HireMind/internal/api"
	"github.com/prajaltale/HireMind/internal/config"
	"github.com/prajaltale/HireMind/internal/history"
	"github.com/prajaltale/HireMind/internal/interview"
	"github.com/prajaltale/HireMind/internal/session"
	"github.com/prajaltale/HireMind/internal/speech"
)

// ViewState identifies the single visible view. StateAuth is the gate:
// while it is active no other view can be shown.
type ViewState int

const (
	StateAuth ViewState = iota
	StateDashboard
	StateResume
	StateInterview
	StateProfile
)

// Name returns the label shown in the nav bar.
func (v ViewState) Name() string {
	switch v {
	case StateAuth:
		return "Sign in"
	case StateDashboard:
		return "Dashboard"
	case StateResume:
		return "Resume"
	case StateInterview:
		return "Interview"
	case StateProfile:
		return "Profile"
	default:
		return "Unknown"
	}
}

// AuthedViews is the tab cycle order once signed in.
var AuthedViews = []ViewState{StateDashboard, StateResume, StateInterview, StateProfile}

// Model is the main TUI model that holds all application state.
type Model struct {
	// State management
	State        ViewState
	Notice       string // blocking notice line, cleared on next action
	CtrlCPending bool

	// Wiring
	Cfg     *config.Config
	Client  *api.Client
	Store   *session.Store
	History *history.Store
	Logger  *zap.Logger

	// Speech capabilities; either may be nil when the host has none.
	Speaker     speech.Speaker
	Transcriber speech.Transcriber

	// Session lives for the authenticated portion of a run.
	Session *session.Session

	// Application state, discarded on logout.
	ResumeText     string
	JobDescription string
	ATSResult      *api.ATSResult
	Flow           *interview.Flow

	// Channel carrying finalized transcript segments from the transcriber
	// goroutine into the update loop.
	TranscriptChan chan string

	// Bubbles components shared across views
	Spinner spinner.Model

	// Terminal dimensions
	Width  int
	Height int
}

// NewModel creates a Model wired to the given collaborators. The session,
// if any, has already been rehydrated from the store by the caller.
func NewModel(cfg *config.Config, client *api.Client, store *session.Store, hist *history.Store, logger *zap.Logger, sess *session.Session) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	state := StateAuth
	if sess.Valid() {
		state = StateDashboard
		client.SetToken(sess.Token)
	}

	return &Model{
		State:          state,
		Cfg:            cfg,
		Client:         client,
		Store:          store,
		History:        hist,
		Logger:         logger,
		Session:        sess,
		Flow:           interview.NewFlow(),
		TranscriptChan: make(chan string, 16),
		Spinner:        sp,
		Width:          80,
		Height:         24,
	}
}

// Authenticated reports whether a valid session exists.
func (m *Model) Authenticated() bool {
	return m.Session.Valid()
}

// ClearAppState drops everything scoped to the signed-in user. Called on
// logout so the next session starts clean.
func (m *Model) ClearAppState() {
	m.ResumeText = ""
	m.JobDescription = ""
	m.ATSResult = nil
	m.Flow = interview.NewFlow()
}
