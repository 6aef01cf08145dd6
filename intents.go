package gallery

import (
	"fmt"
	"sync"

	"github.com/gekko3d/gallery/core"
)

// Intent is a user action from the presentation shell. Intents are queued
// with Commands.Submit and applied in PreUpdate, so an intent submitted
// before a frame is visible to that frame's animation step.
type Intent interface {
	Apply(sel *core.Selection) error
}

type SelectShaderIntent struct {
	Name string
}

func (i SelectShaderIntent) Apply(sel *core.Selection) error { return sel.SelectShader(i.Name) }

type SelectShapeIntent struct {
	Name string
}

func (i SelectShapeIntent) Apply(sel *core.Selection) error { return sel.SelectShape(i.Name) }

type ShowCodeIntent struct {
	Visible bool
}

func (i ShowCodeIntent) Apply(sel *core.Selection) error {
	sel.SetCodePanelVisible(i.Visible)
	return nil
}

type SetParameterIntent struct {
	Name  string
	Value any
}

func (i SetParameterIntent) Apply(sel *core.Selection) error { return sel.SetParameter(i.Name, i.Value) }

func (i SelectShaderIntent) String() string { return fmt.Sprintf("select shader %q", i.Name) }
func (i SelectShapeIntent) String() string  { return fmt.Sprintf("select shape %q", i.Name) }
func (i ShowCodeIntent) String() string     { return fmt.Sprintf("show code %v", i.Visible) }
func (i SetParameterIntent) String() string { return fmt.Sprintf("set %s = %v", i.Name, i.Value) }

// IntentQueue is safe for use from the shell's goroutine while the app runs.
type IntentQueue struct {
	mu    sync.Mutex
	items []Intent
}

func (q *IntentQueue) Push(intents ...Intent) {
	q.mu.Lock()
	q.items = append(q.items, intents...)
	q.mu.Unlock()
}

// Drain returns the queued intents in submission order and empties the queue.
func (q *IntentQueue) Drain() []Intent {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.items
	q.items = nil
	return out
}

func (q *IntentQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
