package layout

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/masomo-layout/core"
)

// IntentKind is what a click on an item asks the host to do.
type IntentKind string

const (
	IntentNavigate IntentKind = "navigate"
	IntentCallback IntentKind = "callback"
	IntentDropdown IntentKind = "dropdown"
	IntentToggle   IntentKind = "toggle"
)

// Intent is emitted when an item is clicked.
type Intent struct {
	ItemID   string     `json:"itemId"`
	Kind     IntentKind `json:"kind"`
	Href     string     `json:"href,omitempty"`
	Callback string     `json:"callback,omitempty"`
	State    string     `json:"state,omitempty"`
}

// NavigationIntent: an inline action takes precedence over the href.
func NavigationIntent(it NavigationItem) Intent {
	if it.Action != "" {
		return Intent{ItemID: it.ID, Kind: IntentCallback, Callback: it.Action, Href: it.Href}
	}
	return Intent{ItemID: it.ID, Kind: IntentNavigate, Href: it.Href}
}

func SidebarIntent(it SidebarItem) Intent {
	return Intent{ItemID: it.ID, Kind: IntentNavigate, Href: it.Href}
}

func HeaderIntent(it HeaderItem) (Intent, error) {
	intent := Intent{ItemID: it.ID}
	switch a := it.Action.(type) {
	case NavigateAction:
		intent.Kind = IntentNavigate
		intent.Href = a.Href
	case CallbackAction:
		intent.Kind = IntentCallback
		intent.Callback = a.Name
	case DropdownAction:
		intent.Kind = IntentDropdown
	case ToggleAction:
		intent.Kind = IntentToggle
		intent.State = a.State
	case nil:
		intent.Kind = IntentNavigate // no href: nothing happens
	default:
		return intent, errors.Wrapf(errUnknownAction, "%T", a)
	}
	return intent, nil
}

// Callback handles an intent. Returning false suppresses the default navigation.
type Callback func(ctx context.Context, intent Intent) (bool, error)

// Outcome tells the host what to do after a click.
type Outcome struct {
	Intent   Intent `json:"intent"`
	Navigate bool   `json:"navigate"`
	Href     string `json:"href,omitempty"`
	Reason   string `json:"reason,omitempty"` // why navigation did not happen
}

// Suppression reasons.
const (
	ReasonUIState    = "ui state change"
	ReasonNoHref     = "no href"
	ReasonNoCallback = "no callback registered"
	ReasonCallback   = "suppressed by callback"
	ReasonFailed     = "callback failed"
	ReasonCancelled  = "cancelled"
)

// Dispatcher runs click callbacks and decides whether the host navigates.
// A failing callback never escapes Dispatch: it suppresses the navigation like a false return.
type Dispatcher struct {
	mu        sync.RWMutex
	callbacks map[string]Callback
	onClick   Callback
	logger    core.Logger
}

func NewDispatcher(logger core.Logger) *Dispatcher {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Dispatcher{
		callbacks: make(map[string]Callback),
		logger:    logger,
	}
}

// Register binds a named callback, referenced by CallbackAction and NavigationItem.Action.
func (d *Dispatcher) Register(name string, cb Callback) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.callbacks[name] = cb
}

// OnClick sets the hook run before any navigate intent.
func (d *Dispatcher) OnClick(cb Callback) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onClick = cb
}

// Dispatch awaits the callback of intent (if any) and returns the navigation outcome.
func (d *Dispatcher) Dispatch(ctx context.Context, intent Intent) Outcome {
	out := Outcome{Intent: intent}

	var cb Callback
	d.mu.RLock()
	switch intent.Kind {
	case IntentDropdown, IntentToggle:
		d.mu.RUnlock()
		out.Reason = ReasonUIState
		return out
	case IntentCallback:
		cb = d.callbacks[intent.Callback]
	default:
		cb = d.onClick
	}
	d.mu.RUnlock()

	if intent.Kind == IntentCallback && cb == nil {
		out.Reason = ReasonNoCallback
		return out
	}

	if cb != nil {
		proceed, err := d.await(ctx, cb, intent)
		if err != nil {
			if ctx.Err() != nil {
				out.Reason = ReasonCancelled
				return out
			}
			d.logger.Warn(fmt.Sprintf("navigation callback for %q failed", intent.ItemID), err)
			out.Reason = ReasonFailed
			return out
		}
		if !proceed {
			out.Reason = ReasonCallback
			return out
		}
	}

	if intent.Href == "" {
		out.Reason = ReasonNoHref
		return out
	}
	out.Navigate = true
	out.Href = intent.Href
	return out
}

type callbackResult struct {
	proceed bool
	err     error
}

func (d *Dispatcher) await(ctx context.Context, cb Callback, intent Intent) (bool, error) {
	done := make(chan callbackResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- callbackResult{err: errors.Errorf("callback panic: %v", r)}
			}
		}()
		proceed, err := cb(ctx, intent)
		done <- callbackResult{proceed: proceed, err: err}
	}()

	select {
	case res := <-done:
		return res.proceed, res.err
	case <-ctx.Done():
		return false, errors.Wrap(ctx.Err(), "awaiting callback")
	}
}
