package views

import (
	"strings"
	"testing"

	"github.com/prajaltale/HireMind/internal/interview"
	"github.com/prajaltale/HireMind/internal/tui"
)

func activeFlow(t *testing.T) *interview.Flow {
	t.Helper()
	f := interview.NewFlow()
	if err := f.Begin(); err != nil {
		t.Fatal(err)
	}
	questions := []string{"q1", "q2", "q3", "q4", "q5"}
	if err := f.QuestionsReady(questions); err != nil {
		t.Fatal(err)
	}
	return f
}

func TestInterviewStartOnlyFromIdleOrFinished(t *testing.T) {
	f := interview.NewFlow()
	m := NewInterviewModel(f, false, 100, 40)

	_, cmd := m.Update(keyMsg("ctrl+g"))
	if cmd == nil {
		t.Error("start should be available while idle")
	}

	f = activeFlow(t)
	m = NewInterviewModel(f, false, 100, 40)
	_, cmd = m.Update(keyMsg("ctrl+g"))
	if cmd != nil {
		t.Error("start must be ignored mid-session")
	}
}

func TestInterviewEvaluateRejectsEmptyAnswer(t *testing.T) {
	m := NewInterviewModel(activeFlow(t), false, 100, 40)

	m, cmd := m.Update(keyMsg("ctrl+e"))
	if cmd != nil {
		t.Fatal("empty answer must not be submitted")
	}
	if m.evalErr == "" {
		t.Error("expected an inline error for an empty answer")
	}
}

func TestInterviewNextBlockedOnLastQuestion(t *testing.T) {
	f := activeFlow(t)
	for i := 0; i < 4; i++ {
		if err := f.Next(); err != nil {
			t.Fatal(err)
		}
	}
	m := NewInterviewModel(f, false, 100, 40)

	_, cmd := m.Update(keyMsg("ctrl+n"))
	if cmd == nil {
		t.Fatal("expected a guard notice on the last question")
	}
	if _, ok := cmd().(tui.NoticeMsg); !ok {
		t.Error("the last question should surface a guard notice, not advance")
	}
	if f.Index() != 4 {
		t.Errorf("index = %d, want 4", f.Index())
	}
	if !strings.Contains(m.View(), "Question 5/5") {
		t.Error("view should still show the last question")
	}
}

func TestInterviewRecordHiddenWithoutSpeech(t *testing.T) {
	m := NewInterviewModel(activeFlow(t), false, 100, 40)

	_, cmd := m.Update(keyMsg("ctrl+r"))
	if cmd != nil {
		t.Error("recording must be unavailable without a transcriber")
	}
	if strings.Contains(m.View(), "Ctrl+R") {
		t.Error("record hint should be hidden without a transcriber")
	}
}

func TestInterviewAppendTranscriptJoinsSegments(t *testing.T) {
	m := NewInterviewModel(activeFlow(t), true, 100, 40)

	m.AppendTranscript("I led the migration")
	m.AppendTranscript("to a new platform")

	got := m.answer.Value()
	want := "I led the migration to a new platform"
	if got != want {
		t.Errorf("answer = %q, want %q", got, want)
	}
}

func TestInterviewTranscriptIsSanitized(t *testing.T) {
	m := NewInterviewModel(activeFlow(t), true, 100, 40)

	m.AppendTranscript("hello\x1b[2Jworld")
	if got := m.answer.Value(); got != "helloworld" {
		t.Errorf("answer = %q, want %q", got, "helloworld")
	}
}

func TestInterviewNextQuestionClearsAnswer(t *testing.T) {
	m := NewInterviewModel(activeFlow(t), false, 100, 40)
	m.answer.SetValue("previous answer")
	m.SetEvalError("boom")

	m.NextQuestionShown()
	if m.answer.Value() != "" || m.evalErr != "" {
		t.Error("advancing should clear the answer and inline error")
	}
}

func TestInterviewSummaryRendersSaveFailure(t *testing.T) {
	f := activeFlow(t)
	summary, err := f.End()
	if err != nil {
		t.Fatal(err)
	}

	m := NewInterviewModel(f, false, 100, 40)
	m.SetSummary(summary, "HTTP 502")

	out := m.View()
	if !strings.Contains(out, "Interview complete") {
		t.Error("summary should render even when saving failed")
	}
	if !strings.Contains(out, "not saved") {
		t.Error("save failure should be visible")
	}
}
