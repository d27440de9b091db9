package host

import (
	"github.com/ytget/loadbutton/internal/model"
)

// Operations defines the interface for the external service the screen
// starts work on. Update callbacks may arrive on any goroutine.
type Operations interface {
	SetUpdateCallback(func(*model.Operation))
	Start(repo model.Repository) (*model.Operation, error)
	Get(id string) (*model.Operation, bool)
	Cancel(id string) error
}

// StateButton is the part of the loading button the screen drives.
type StateButton interface {
	SetState(s model.ButtonState)
	State() model.ButtonState
}

// Dispatcher runs fn on the UI goroutine.
type Dispatcher func(fn func())

// Immediate runs fn on the calling goroutine. It is only correct when the
// caller already is the UI goroutine.
func Immediate(fn func()) { fn() }
