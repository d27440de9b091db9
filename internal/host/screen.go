package host

import (
	"fmt"
	"log"

	"github.com/ytget/loadbutton/internal/locale"
	"github.com/ytget/loadbutton/internal/model"
)

// NoticeKind classifies messages the screen shows outside the button
type NoticeKind int

const (
	// NoticeInfo is a transient hint such as "select a file"
	NoticeInfo NoticeKind = iota
	// NoticeResult reports how an operation ended
	NoticeResult
)

// Notice is a message for the host's own status area. The button never
// shows success or failure itself.
type Notice struct {
	Kind      NoticeKind
	Text      string
	Operation *model.Operation // set for NoticeResult
}

// Screen is the main screen controller: it owns the selection, starts an
// operation on click and completes the button when the operation reports back.
//
// All methods must be called on the UI goroutine; updates from Operations are
// marshalled there through the Dispatcher.
type Screen struct {
	button       StateButton
	ops          Operations
	localization *locale.Localization
	dispatch     Dispatcher
	repos        []model.Repository

	selected  *model.Repository
	currentID string
	last      *model.Operation
	onNotice  func(Notice)
}

// NewScreen wires a button to an operations service
func NewScreen(button StateButton, ops Operations, localization *locale.Localization, dispatch Dispatcher) *Screen {
	if dispatch == nil {
		dispatch = Immediate
	}
	s := &Screen{
		button:       button,
		ops:          ops,
		localization: localization,
		dispatch:     dispatch,
		repos:        DefaultRepositories(localization),
	}
	ops.SetUpdateCallback(s.onOperationUpdate)
	return s
}

// SetNoticeCallback sets the receiver of status messages
func (s *Screen) SetNoticeCallback(callback func(Notice)) {
	s.onNotice = callback
}

// Repositories returns the selectable repositories
func (s *Screen) Repositories() []model.Repository {
	return s.repos
}

// Select marks the repository with the given key as the download target
func (s *Screen) Select(key string) error {
	for i := range s.repos {
		if s.repos[i].Key == key {
			repo := s.repos[i]
			s.selected = &repo
			return nil
		}
	}
	return fmt.Errorf("unknown repository: %s", key)
}

// Selected returns the current selection
func (s *Screen) Selected() (model.Repository, bool) {
	if s.selected == nil {
		return model.Repository{}, false
	}
	return *s.selected, true
}

// LastOperation returns the most recently finished operation, if any
func (s *Screen) LastOperation() (*model.Operation, bool) {
	return s.last, s.last != nil
}

// Busy reports whether an operation is in flight
func (s *Screen) Busy() bool {
	return s.currentID != ""
}

// Click handles a press of the loading button
func (s *Screen) Click() {
	if s.selected == nil {
		// Nothing ran, so the button keeps its idle look
		s.notify(Notice{Kind: NoticeInfo, Text: s.localization.GetText(locale.KeySelectFile)})
		return
	}
	if s.Busy() {
		log.Printf("Screen: click ignored, operation %s still running", s.currentID)
		return
	}

	s.button.SetState(model.StateClicked)

	op, err := s.ops.Start(*s.selected)
	if err != nil {
		log.Printf("Screen: failed to start operation: %v", err)
		s.button.SetState(model.StateReady)
		s.notify(Notice{Kind: NoticeInfo, Text: err.Error()})
		return
	}

	s.currentID = op.ID
	s.button.SetState(model.StateLoading)
	s.notify(Notice{Kind: NoticeInfo, Text: s.localization.GetText(locale.KeyDownloadStarted)})
}

// Close abandons the running operation, if any
func (s *Screen) Close() {
	if !s.Busy() {
		return
	}
	if err := s.ops.Cancel(s.currentID); err != nil {
		log.Printf("Screen: cancel %s: %v", s.currentID, err)
	}
	s.currentID = ""
}

// onOperationUpdate may run on any goroutine
func (s *Screen) onOperationUpdate(op *model.Operation) {
	if op == nil {
		return
	}
	s.dispatch(func() {
		s.handleUpdate(op)
	})
}

func (s *Screen) handleUpdate(op *model.Operation) {
	if op.ID != s.currentID {
		log.Printf("Screen: ignoring update for stale operation %s", op.ID)
		return
	}
	if !op.Status.IsFinished() {
		return
	}

	s.currentID = ""
	s.last = op
	// Success and failure complete the button alike
	s.button.SetState(model.StateCompleted)

	statusKey := locale.KeyStatusSuccess
	if op.Status != model.OperationSucceeded {
		statusKey = locale.KeyStatusFailed
	}
	text := fmt.Sprintf("%s · %s: %s · %s: %s",
		s.localization.GetText(locale.KeyDownloadComplete),
		s.localization.GetText(locale.KeyFileName), op.GetDisplayName(),
		s.localization.GetText(locale.KeyStatus), s.localization.GetText(statusKey))
	s.notify(Notice{Kind: NoticeResult, Text: text, Operation: op})
}

func (s *Screen) notify(n Notice) {
	if s.onNotice != nil {
		s.onNotice(n)
	}
}
