package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func submitAuth(t *testing.T, m AuthModel) (AuthModel, tea.Msg) {
	t.Helper()
	m, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		return m, nil
	}
	return m, cmd()
}

func fillAuth(m *AuthModel, email, password, name string) {
	m.email.SetValue(email)
	m.pass.SetValue(password)
	m.name.SetValue(name)
	m.focused = len(m.fields()) - 1
}

func TestAuthSubmitValidLogin(t *testing.T) {
	m := NewAuthModel(80, 24)
	fillAuth(&m, "ada@example.com", "hunter2", "")

	_, msg := submitAuth(t, m)
	sub, ok := msg.(SubmitAuthMsg)
	if !ok {
		t.Fatalf("expected SubmitAuthMsg, got %T", msg)
	}
	if sub.Mode != ModeLogin || sub.Email != "ada@example.com" || sub.Password != "hunter2" {
		t.Errorf("unexpected submission: %+v", sub)
	}
}

func TestAuthRejectsInvalidEmail(t *testing.T) {
	m := NewAuthModel(80, 24)
	fillAuth(&m, "not-an-email", "hunter2", "")

	m, msg := submitAuth(t, m)
	if msg != nil {
		t.Fatal("invalid email must not produce a submission")
	}
	if m.errText == "" {
		t.Error("expected a blocking validation error")
	}
}

func TestAuthRejectsEmptyPassword(t *testing.T) {
	m := NewAuthModel(80, 24)
	fillAuth(&m, "ada@example.com", "", "")

	m, msg := submitAuth(t, m)
	if msg != nil {
		t.Fatal("empty password must not produce a submission")
	}
	if m.errText == "" {
		t.Error("expected a blocking validation error")
	}
}

func TestAuthRegisterRequiresName(t *testing.T) {
	m := NewAuthModel(80, 24)
	m, _ = m.Update(keyMsg("tab")) // login -> register
	if m.mode != ModeRegister {
		t.Fatalf("mode = %v, want register", m.mode)
	}
	fillAuth(&m, "ada@example.com", "hunter2", "")

	m, msg := submitAuth(t, m)
	if msg != nil {
		t.Fatal("registration without a name must not produce a submission")
	}
	if m.errText == "" {
		t.Error("expected a blocking validation error")
	}

	fillAuth(&m, "ada@example.com", "hunter2", "Ada Lovelace")
	_, msg = submitAuth(t, m)
	sub, ok := msg.(SubmitAuthMsg)
	if !ok {
		t.Fatalf("expected SubmitAuthMsg, got %T", msg)
	}
	if sub.Mode != ModeRegister || sub.Name != "Ada Lovelace" {
		t.Errorf("unexpected submission: %+v", sub)
	}
}

func TestAuthModeSwitchClearsError(t *testing.T) {
	m := NewAuthModel(80, 24)
	fillAuth(&m, "bad", "", "")
	m, _ = submitAuth(t, m)
	if m.errText == "" {
		t.Fatal("expected a validation error first")
	}

	m, _ = m.Update(keyMsg("tab"))
	if m.errText != "" {
		t.Error("switching modes should clear the error")
	}
}

func TestAuthGoogleNeedsOnlyEmail(t *testing.T) {
	m := NewAuthModel(80, 24)
	m, _ = m.Update(keyMsg("tab")) // register
	m, _ = m.Update(keyMsg("tab")) // google
	if m.mode != ModeGoogle {
		t.Fatalf("mode = %v, want google", m.mode)
	}
	fillAuth(&m, "ada@example.com", "", "")

	_, msg := submitAuth(t, m)
	sub, ok := msg.(SubmitAuthMsg)
	if !ok {
		t.Fatalf("expected SubmitAuthMsg, got %T", msg)
	}
	if sub.Mode != ModeGoogle || sub.Email != "ada@example.com" {
		t.Errorf("unexpected submission: %+v", sub)
	}
}

func TestAuthBusyBlocksInput(t *testing.T) {
	m := NewAuthModel(80, 24)
	fillAuth(&m, "ada@example.com", "hunter2", "")
	m.SetBusy(true)

	_, msg := submitAuth(t, m)
	if msg != nil {
		t.Error("submission while busy should be ignored")
	}
}
