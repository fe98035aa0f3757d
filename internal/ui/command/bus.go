package command

import (
	"github.com/atomicstack/gradebook/internal/logging/events"
)

// Request encapsulates an action invocation.
type Request struct {
	ID    string
	Label string
	// Run performs the action. done asks the caller to close its menu.
	Run func() (done bool, err error)
}

// Bus coordinates the execution of menu actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute runs the request on the calling goroutine while emitting trace
// logs. The menus own the terminal, so actions never run in the background.
func (b *Bus) Execute(req Request) (bool, error) {
	events.Command.Queue(req.ID, req.Label)
	if req.Run == nil {
		events.Command.Skip(req.ID, req.Label)
		return false, nil
	}
	done, err := req.Run()
	events.Command.Result(req.ID, req.Label, done, err)
	return done, err
}
