package interview

import (
	"errors"
	"testing"

	"github.com/prajaltale/HireMind/internal/api"
)

func startedFlow(t *testing.T) *Flow {
	t.Helper()
	f := NewFlow()
	if err := f.Begin(); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	questions := []string{"q1", "q2", "q3", "q4", "q5"}
	if err := f.QuestionsReady(questions); err != nil {
		t.Fatalf("QuestionsReady failed: %v", err)
	}
	return f
}

func evaluate(t *testing.T, f *Flow, score float64) {
	t.Helper()
	if err := f.BeginEvaluation(); err != nil {
		t.Fatalf("BeginEvaluation failed: %v", err)
	}
	if err := f.EvaluationReady(api.Evaluation{Score: score}); err != nil {
		t.Fatalf("EvaluationReady failed: %v", err)
	}
}

func TestStartResetsIndexAndResults(t *testing.T) {
	f := startedFlow(t)

	if f.State() != StateActive {
		t.Errorf("state: got %v, want StateActive", f.State())
	}
	if f.Index() != 0 {
		t.Errorf("index: got %d, want 0", f.Index())
	}
	if f.Total() != 5 {
		t.Errorf("total: got %d, want 5", f.Total())
	}
	q, ok := f.Question()
	if !ok || q != "q1" {
		t.Errorf("question: got %q ok=%v", q, ok)
	}
}

func TestGenerationFailureReturnsToIdle(t *testing.T) {
	f := NewFlow()
	if err := f.Begin(); err != nil {
		t.Fatal(err)
	}
	f.QuestionsFailed()
	if f.State() != StateIdle {
		t.Errorf("state after failure: got %v, want StateIdle", f.State())
	}
	// A fresh Begin is allowed again.
	if err := f.Begin(); err != nil {
		t.Errorf("Begin after failure: %v", err)
	}
}

func TestEmptyQuestionListReturnsToIdle(t *testing.T) {
	f := NewFlow()
	if err := f.Begin(); err != nil {
		t.Fatal(err)
	}
	if err := f.QuestionsReady(nil); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("expected ErrNoQuestions, got %v", err)
	}
	if f.State() != StateIdle {
		t.Errorf("state: got %v, want StateIdle", f.State())
	}
}

func TestNextCapsAtLastIndex(t *testing.T) {
	f := startedFlow(t)

	for i := 0; i < 4; i++ {
		if err := f.Next(); err != nil {
			t.Fatalf("Next %d failed: %v", i, err)
		}
	}
	if f.Index() != 4 {
		t.Fatalf("index after four Next calls: got %d, want 4", f.Index())
	}

	// Fifth Next is a guard, not a transition.
	if err := f.Next(); !errors.Is(err, ErrLastQuestion) {
		t.Errorf("expected ErrLastQuestion, got %v", err)
	}
	if f.Index() != 4 {
		t.Errorf("index moved on guarded Next: got %d", f.Index())
	}
	if f.State() != StateActive {
		t.Errorf("state changed on guarded Next: got %v", f.State())
	}
}

func TestEvaluationOverwritesSameSlot(t *testing.T) {
	f := startedFlow(t)

	evaluate(t, f, 4)
	evaluate(t, f, 9)

	r, ok := f.Result(0)
	if !ok || r.Score != 9 {
		t.Errorf("result 0: got %+v ok=%v, want score 9", r, ok)
	}
}

func TestEvaluationFailureKeepsIndexAndResults(t *testing.T) {
	f := startedFlow(t)
	evaluate(t, f, 7)

	if err := f.BeginEvaluation(); err != nil {
		t.Fatal(err)
	}
	f.EvaluationFailed()

	if f.State() != StateActive {
		t.Errorf("state: got %v, want StateActive", f.State())
	}
	if f.Index() != 0 {
		t.Errorf("index: got %d, want 0", f.Index())
	}
	if r, ok := f.Result(0); !ok || r.Score != 7 {
		t.Errorf("prior result lost: got %+v ok=%v", r, ok)
	}
}

func TestEndAveragesAnsweredOnly(t *testing.T) {
	f := startedFlow(t)

	// Answer questions 0, 2, 4 with scores 6, 8, 10; skip 1 and 3.
	evaluate(t, f, 6)
	_ = f.Next()
	_ = f.Next()
	evaluate(t, f, 8)
	_ = f.Next()
	_ = f.Next()
	evaluate(t, f, 10)

	summary, err := f.End()
	if err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if summary.QuestionCount != 5 {
		t.Errorf("QuestionCount: got %d, want 5", summary.QuestionCount)
	}
	if summary.AnsweredCount != 3 {
		t.Errorf("AnsweredCount: got %d, want 3", summary.AnsweredCount)
	}
	if summary.AverageScore != 8.0 {
		t.Errorf("AverageScore: got %v, want 8.0", summary.AverageScore)
	}
}

func TestEndWithNoAnswersAveragesZero(t *testing.T) {
	f := startedFlow(t)

	summary, err := f.End()
	if err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if summary.AverageScore != 0 {
		t.Errorf("AverageScore: got %v, want 0", summary.AverageScore)
	}
	if summary.AnsweredCount != 0 {
		t.Errorf("AnsweredCount: got %d, want 0", summary.AnsweredCount)
	}
}

func TestEndIsNotReentrant(t *testing.T) {
	f := startedFlow(t)

	if _, err := f.End(); err != nil {
		t.Fatalf("first End failed: %v", err)
	}
	if _, err := f.End(); !errors.Is(err, ErrAlreadyEnded) {
		t.Errorf("second End: expected ErrAlreadyEnded, got %v", err)
	}
}

func TestFinishedFlowCanBeginAgain(t *testing.T) {
	f := startedFlow(t)
	if _, err := f.End(); err != nil {
		t.Fatal(err)
	}
	if err := f.Begin(); err != nil {
		t.Errorf("Begin after finish: %v", err)
	}
	if f.State() != StateGenerating {
		t.Errorf("state: got %v, want StateGenerating", f.State())
	}
}

func TestGuardsOutsideActiveState(t *testing.T) {
	f := NewFlow()

	if err := f.Next(); !errors.Is(err, ErrNotActive) {
		t.Errorf("Next while idle: got %v", err)
	}
	if err := f.BeginEvaluation(); !errors.Is(err, ErrNotActive) {
		t.Errorf("BeginEvaluation while idle: got %v", err)
	}
	if _, err := f.End(); !errors.Is(err, ErrNotActive) {
		t.Errorf("End while idle: got %v", err)
	}
	if err := f.QuestionsReady([]string{"q"}); !errors.Is(err, ErrNotGenerating) {
		t.Errorf("QuestionsReady while idle: got %v", err)
	}
}
