// Package interview implements the mock-interview state machine: a fixed
// list of generated questions stepped through one at a time, each answer
// evaluated remotely, with a single summary submission at the end.
package interview

import (
	"errors"

	"github.com/prajaltale/HireMind/internal/api"
)

// QuestionCount is the fixed size of every generated interview.
const QuestionCount = 5

// State is the flow's position in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateGenerating
	StateActive
	StateEvaluating
	StateFinished
)

// Transition guard errors.
var (
	ErrNotIdle       = errors.New("an interview is already in progress")
	ErrNotGenerating = errors.New("no question generation in flight")
	ErrNotActive     = errors.New("no active question")
	ErrNotEvaluating = errors.New("no evaluation in flight")
	ErrLastQuestion  = errors.New("already on the last question; end the interview to finish")
	ErrNoQuestions   = errors.New("no questions were generated")
	ErrAlreadyEnded  = errors.New("interview already ended")
)

// Flow holds the interview state. All methods are transitions or reads; the
// caller performs the network calls and feeds results back in. Evaluation
// results are sparse: a skipped question simply has no entry.
type Flow struct {
	state     State
	questions []string
	index     int
	results   map[int]api.Evaluation
}

// Summary is what gets submitted when the interview ends.
type Summary struct {
	QuestionCount int
	AnsweredCount int
	AverageScore  float64
	Scores        map[int]float64
}

// NewFlow returns a Flow in the idle state.
func NewFlow() *Flow {
	return &Flow{results: make(map[int]api.Evaluation)}
}

// State returns the current state.
func (f *Flow) State() State {
	return f.state
}

// Begin moves idle (or a finished prior cycle) into generating.
func (f *Flow) Begin() error {
	if f.state != StateIdle && f.state != StateFinished {
		return ErrNotIdle
	}
	f.state = StateGenerating
	return nil
}

// QuestionsReady installs the generated questions, resets the index and any
// prior evaluation results, and activates question 0.
func (f *Flow) QuestionsReady(questions []string) error {
	if f.state != StateGenerating {
		return ErrNotGenerating
	}
	if len(questions) == 0 {
		f.state = StateIdle
		return ErrNoQuestions
	}
	f.questions = questions
	f.index = 0
	f.results = make(map[int]api.Evaluation)
	f.state = StateActive
	return nil
}

// QuestionsFailed returns the flow to idle after a failed generation call.
func (f *Flow) QuestionsFailed() {
	if f.state == StateGenerating {
		f.state = StateIdle
	}
}

// Question returns the current question text.
func (f *Flow) Question() (string, bool) {
	if (f.state != StateActive && f.state != StateEvaluating) || f.index >= len(f.questions) {
		return "", false
	}
	return f.questions[f.index], true
}

// Index returns the 0-based current question index.
func (f *Flow) Index() int {
	return f.index
}

// Total returns the number of generated questions.
func (f *Flow) Total() int {
	return len(f.questions)
}

// BeginEvaluation moves active(i) to evaluating(i).
func (f *Flow) BeginEvaluation() error {
	if f.state != StateActive {
		return ErrNotActive
	}
	f.state = StateEvaluating
	return nil
}

// EvaluationReady stores the result for the current question, overwriting
// any prior result for the slot, and returns to active(i).
func (f *Flow) EvaluationReady(result api.Evaluation) error {
	if f.state != StateEvaluating {
		return ErrNotEvaluating
	}
	f.results[f.index] = result
	f.state = StateActive
	return nil
}

// EvaluationFailed returns to active(i) with the index and any prior result
// untouched.
func (f *Flow) EvaluationFailed() {
	if f.state == StateEvaluating {
		f.state = StateActive
	}
}

// Result returns the stored evaluation for question i, if any.
func (f *Flow) Result(i int) (api.Evaluation, bool) {
	r, ok := f.results[i]
	return r, ok
}

// Next advances to the following question. On the last question it returns
// ErrLastQuestion and the index does not move; that is a terminal guard,
// not a transition.
func (f *Flow) Next() error {
	if f.state != StateActive {
		return ErrNotActive
	}
	if f.index >= len(f.questions)-1 {
		return ErrLastQuestion
	}
	f.index++
	return nil
}

// End computes the summary and moves to finished. Calling End again returns
// ErrAlreadyEnded so rapid repeated triggers cannot double-submit.
func (f *Flow) End() (Summary, error) {
	if f.state == StateFinished {
		return Summary{}, ErrAlreadyEnded
	}
	if f.state != StateActive && f.state != StateEvaluating {
		return Summary{}, ErrNotActive
	}

	scores := make(map[int]float64, len(f.results))
	var sum float64
	for i, r := range f.results {
		scores[i] = r.Score
		sum += r.Score
	}

	avg := 0.0
	if len(scores) > 0 {
		avg = sum / float64(len(scores))
	}

	f.state = StateFinished
	return Summary{
		QuestionCount: len(f.questions),
		AnsweredCount: len(scores),
		AverageScore:  avg,
		Scores:        scores,
	}, nil
}
