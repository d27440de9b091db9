package host

import (
	"errors"
	"testing"

	"github.com/ytget/loadbutton/internal/locale"
	"github.com/ytget/loadbutton/internal/model"
)

type fakeButton struct {
	state   model.ButtonState
	history []model.ButtonState
}

func (b *fakeButton) SetState(s model.ButtonState) {
	if s == b.state {
		return
	}
	if s == model.StateCompleted && b.state != model.StateLoading {
		return
	}
	b.state = s
	b.history = append(b.history, s)
}

func (b *fakeButton) State() model.ButtonState { return b.state }

type fakeOperations struct {
	callback func(*model.Operation)
	started  []model.Repository
	canceled []string
	startErr error
	nextID   int
}

func (f *fakeOperations) SetUpdateCallback(cb func(*model.Operation)) { f.callback = cb }

func (f *fakeOperations) Start(repo model.Repository) (*model.Operation, error) {
	if f.startErr != nil {
		return nil, f.startErr
	}
	f.nextID++
	f.started = append(f.started, repo)
	return &model.Operation{
		ID:         "op-" + string(rune('0'+f.nextID)),
		Repository: repo,
		Status:     model.OperationRunning,
	}, nil
}

func (f *fakeOperations) Get(id string) (*model.Operation, bool) { return nil, false }

func (f *fakeOperations) Cancel(id string) error {
	f.canceled = append(f.canceled, id)
	return nil
}

func (f *fakeOperations) finish(id string, repo model.Repository, status model.OperationStatus) {
	f.callback(&model.Operation{ID: id, Repository: repo, Status: status})
}

func newTestScreen(t *testing.T) (*Screen, *fakeButton, *fakeOperations, *[]Notice) {
	t.Helper()
	btn := &fakeButton{}
	ops := &fakeOperations{}
	loc := locale.NewLocalization()
	loc.SetLanguage("en")
	s := NewScreen(btn, ops, loc, nil)
	var notices []Notice
	s.SetNoticeCallback(func(n Notice) { notices = append(notices, n) })
	return s, btn, ops, &notices
}

func TestScreen_ClickWithoutSelection(t *testing.T) {
	s, btn, ops, notices := newTestScreen(t)

	s.Click()

	if btn.State() != model.StateReady || len(btn.history) != 0 {
		t.Errorf("state = %s, history = %v, want untouched Ready", btn.State(), btn.history)
	}
	if len(ops.started) != 0 {
		t.Errorf("started %d operations, want 0", len(ops.started))
	}
	if len(*notices) != 1 || (*notices)[0].Text != "Please select the file to download" {
		t.Errorf("notices = %+v", *notices)
	}
}

func TestScreen_ClickStartsOperation(t *testing.T) {
	s, btn, ops, _ := newTestScreen(t)
	if err := s.Select(RepoRetrofit); err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	s.Click()

	want := []model.ButtonState{model.StateClicked, model.StateLoading}
	if len(btn.history) != len(want) {
		t.Fatalf("history = %v, want %v", btn.history, want)
	}
	for i := range want {
		if btn.history[i] != want[i] {
			t.Errorf("history[%d] = %s, want %s", i, btn.history[i], want[i])
		}
	}
	if len(ops.started) != 1 || ops.started[0].URL != RetrofitURL {
		t.Errorf("started = %+v", ops.started)
	}
	if !s.Busy() {
		t.Error("Busy() = false after click")
	}
}

func TestScreen_CompletionMapsToCompleted(t *testing.T) {
	tests := []struct {
		name   string
		status model.OperationStatus
		want   string
	}{
		{"success", model.OperationSucceeded, "Success"},
		{"failure", model.OperationFailed, "Failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, btn, ops, notices := newTestScreen(t)
			_ = s.Select(RepoGlide)
			s.Click()
			repo, _ := s.Selected()

			ops.finish("op-1", repo, tt.status)

			if btn.State() != model.StateCompleted {
				t.Errorf("state = %s, want Completed", btn.State())
			}
			last := (*notices)[len(*notices)-1]
			if last.Kind != NoticeResult {
				t.Fatalf("last notice kind = %v, want NoticeResult", last.Kind)
			}
			wantText := "Download Complete · File name: " + repo.Name + " · Status: " + tt.want
			if last.Text != wantText {
				t.Errorf("notice text = %q, want %q", last.Text, wantText)
			}
			if op, ok := s.LastOperation(); !ok || op.Status != tt.status {
				t.Errorf("LastOperation() = %+v, %v", op, ok)
			}
			if s.Busy() {
				t.Error("Busy() = true after completion")
			}
		})
	}
}

func TestScreen_IgnoresStaleCompletion(t *testing.T) {
	s, btn, ops, _ := newTestScreen(t)
	_ = s.Select(RepoLoadApp)
	s.Click()
	repo, _ := s.Selected()

	ops.finish("op-9", repo, model.OperationSucceeded)

	if btn.State() != model.StateLoading {
		t.Errorf("state = %s, want Loading", btn.State())
	}
	if !s.Busy() {
		t.Error("stale update cleared the current operation")
	}
}

func TestScreen_ClickWhileBusyIgnored(t *testing.T) {
	s, btn, ops, _ := newTestScreen(t)
	_ = s.Select(RepoGlide)
	s.Click()
	s.Click()

	if len(ops.started) != 1 {
		t.Errorf("started %d operations, want 1", len(ops.started))
	}
	if btn.State() != model.StateLoading {
		t.Errorf("state = %s, want Loading", btn.State())
	}
}

func TestScreen_StartError(t *testing.T) {
	s, btn, ops, notices := newTestScreen(t)
	ops.startErr = errors.New("boom")
	_ = s.Select(RepoGlide)

	s.Click()

	if btn.State() != model.StateReady {
		t.Errorf("state = %s, want Ready", btn.State())
	}
	if s.Busy() {
		t.Error("Busy() = true after failed start")
	}
	if len(*notices) == 0 || (*notices)[0].Text != "boom" {
		t.Errorf("notices = %+v", *notices)
	}
}

func TestScreen_SelectUnknown(t *testing.T) {
	s, _, _, _ := newTestScreen(t)
	if err := s.Select("nope"); err == nil {
		t.Error("Select() error = nil, want error")
	}
	if _, ok := s.Selected(); ok {
		t.Error("Selected() reported a selection")
	}
}

func TestScreen_CloseCancelsRunning(t *testing.T) {
	s, _, ops, _ := newTestScreen(t)
	_ = s.Select(RepoGlide)
	s.Click()

	s.Close()

	if len(ops.canceled) != 1 || ops.canceled[0] != "op-1" {
		t.Errorf("canceled = %v, want [op-1]", ops.canceled)
	}
	if s.Busy() {
		t.Error("Busy() = true after Close")
	}
}

func TestScreen_DispatcherUsedForUpdates(t *testing.T) {
	btn := &fakeButton{}
	ops := &fakeOperations{}
	var queued []func()
	s := NewScreen(btn, ops, locale.NewLocalization(), func(fn func()) { queued = append(queued, fn) })
	_ = s.Select(RepoGlide)
	s.Click()
	repo, _ := s.Selected()

	ops.finish("op-1", repo, model.OperationSucceeded)
	if btn.State() != model.StateLoading {
		t.Fatalf("update applied before dispatch, state = %s", btn.State())
	}
	if len(queued) != 1 {
		t.Fatalf("queued = %d, want 1", len(queued))
	}
	queued[0]()
	if btn.State() != model.StateCompleted {
		t.Errorf("state = %s, want Completed", btn.State())
	}
}

func TestDefaultRepositories(t *testing.T) {
	loc := locale.NewLocalization()
	loc.SetLanguage("en")
	repos := DefaultRepositories(loc)
	if len(repos) != 3 {
		t.Fatalf("len = %d, want 3", len(repos))
	}
	for _, r := range repos {
		if r.Name == "" || r.Name == r.Key {
			t.Errorf("repository %s has no localized name", r.Key)
		}
		if err := validateURL(r.URL); err != nil {
			t.Errorf("repository %s URL invalid: %v", r.Key, err)
		}
	}
}
