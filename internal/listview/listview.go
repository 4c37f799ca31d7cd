// Package listview implements the one controller behind every "table of
// records with tabs, search and row actions" screen: load once, partition by
// status tabs, filter by a search term, apply row actions either optimistically
// or only after the backend confirms, and surface the outcome as a toast.
package listview

import (
	"context"
	"strings"
	"sync"

	"github.com/sensitive01/jobsstorm-admin-panel/internal/common"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/gateway"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/logging"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/toast"
)

// TabAll is the conventional key for the constant-true tab.
const TabAll = "all"

// Tab partitions the record set for both display and count badges.
type Tab[T any] struct {
	Key       string
	Label     string
	Predicate func(T) bool
}

// Action describes one row mutation.
//
// Optimistic actions rewrite the local record and report success immediately;
// the backend call runs in the background and a failure rolls the record back
// to its pre-action snapshot, replacing the toast with an error. Confirmed
// actions wait for the backend and touch local state only on a 200/201.
type Action[T any] struct {
	Key     string
	Success string
	Failure string

	// Optimistic selects the strategy described above.
	Optimistic bool

	// Confirm gates the action behind an explicit user confirmation,
	// used for deletes. Declining is a no-op with no network call.
	Confirm string

	// Mutate rewrites the record's status fields. Nil together with
	// Remove=false means the action changes nothing locally.
	Mutate func(*T)

	// Remove drops the record from the collection instead of mutating it.
	Remove bool

	// Call performs the backend operation for one record.
	Call func(ctx context.Context, id string) gateway.Result
}

// Config parametrizes a View for one screen.
type Config[T any] struct {
	// Resource names the collection, used for envelope extraction and logs.
	Resource string

	ID         func(T) string
	SearchText func(T) []string
	Tabs       []Tab[T]
	Fetch      func(ctx context.Context) gateway.Result
	Actions    []Action[T]

	// ConfirmFn asks the user to accept a destructive action. Nil means
	// every confirmation is declined.
	ConfirmFn func(prompt string) bool

	Toasts *toast.Manager
	Log    logging.Logger
}

// View is one screen's controller instance. Records are private to it and
// discarded when the screen closes; they mirror backend state and are always
// re-fetchable.
type View[T any] struct {
	cfg Config[T]

	mu       sync.Mutex
	records  []T
	gen      uint64
	loading  bool
	search   string
	tab      string
	inFlight map[string]bool
	closed   bool
	wg       sync.WaitGroup
}

// New builds a View. The active tab starts at the first configured tab.
func New[T any](cfg Config[T]) *View[T] {
	v := &View[T]{cfg: cfg, inFlight: make(map[string]bool)}
	if len(cfg.Tabs) > 0 {
		v.tab = cfg.Tabs[0].Key
	}
	return v
}

// Load fetches the collection and replaces the in-memory record set. The
// loading flag clears on every path, so a failed request cannot leave the
// screen stuck. Fetch failures keep whatever records were already loaded.
func (v *View[T]) Load(ctx context.Context) {
	v.mu.Lock()
	v.loading = true
	v.mu.Unlock()

	res := v.cfg.Fetch(ctx)

	v.mu.Lock()
	defer func() {
		v.loading = false
		v.mu.Unlock()
	}()

	if v.closed {
		return
	}
	if res.Err != nil {
		v.cfg.Log.Warn(ctx, "fetch failed", "resource", v.cfg.Resource, "err", res.Err)
		return
	}
	if !res.OK {
		v.cfg.Log.Warn(ctx, "fetch rejected", "resource", v.cfg.Resource, "status", res.Status, "message", res.Message)
		return
	}
	v.records = gateway.DecodeList[T](ctx, res.Data, v.cfg.Resource, v.cfg.Log)
	v.gen++
}

// Loading reports whether a Load is in progress.
func (v *View[T]) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// SetSearch sets the search term. Pure client-side; no re-fetch.
func (v *View[T]) SetSearch(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.search = term
}

// SetTab selects the active tab by key. Unknown keys are ignored.
func (v *View[T]) SetTab(key string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, t := range v.cfg.Tabs {
		if t.Key == key {
			v.tab = key
			return
		}
	}
}

// TabOrder returns the configured tab keys in declaration order.
func (v *View[T]) TabOrder() []string {
	keys := make([]string, len(v.cfg.Tabs))
	for i, t := range v.cfg.Tabs {
		keys[i] = t.Key
	}
	return keys
}

// ActiveTab returns the active tab key.
func (v *View[T]) ActiveTab() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.tab
}

func (v *View[T]) matchesSearch(rec T) bool {
	if v.search == "" {
		return true
	}
	needle := strings.ToLower(v.search)
	for _, field := range v.cfg.SearchText(rec) {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func (v *View[T]) activePredicate() func(T) bool {
	for _, t := range v.cfg.Tabs {
		if t.Key == v.tab {
			return t.Predicate
		}
	}
	return func(T) bool { return true }
}

// Visible returns the records matching both the search term and the active
// tab's predicate, in insertion order from the last Load.
func (v *View[T]) Visible() []T {
	v.mu.Lock()
	defer v.mu.Unlock()

	pred := v.activePredicate()
	out := make([]T, 0, len(v.records))
	for _, rec := range v.records {
		if v.matchesSearch(rec) && pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// TabCounts returns each tab's badge count in a single pass. Every count is
// computed over the search-filtered base, so badges on inactive tabs shrink
// as the user types.
func (v *View[T]) TabCounts() map[string]int {
	v.mu.Lock()
	defer v.mu.Unlock()

	counts := make(map[string]int, len(v.cfg.Tabs))
	for _, t := range v.cfg.Tabs {
		counts[t.Key] = 0
	}
	for _, rec := range v.records {
		if !v.matchesSearch(rec) {
			continue
		}
		for _, t := range v.cfg.Tabs {
			if t.Predicate(rec) {
				counts[t.Key]++
			}
		}
	}
	return counts
}

// Apply runs the named action against one record. It returns an error only
// for dispatch problems (unknown action or record, an action already running
// on the same record, closed view); backend outcomes are reported through
// toasts, never returned.
func (v *View[T]) Apply(ctx context.Context, id, actionKey string) error {
	var act *Action[T]
	for i := range v.cfg.Actions {
		if v.cfg.Actions[i].Key == actionKey {
			act = &v.cfg.Actions[i]
			break
		}
	}
	if act == nil {
		return common.ErrNotFound
	}

	if act.Confirm != "" {
		if v.cfg.ConfirmFn == nil || !v.cfg.ConfirmFn(act.Confirm) {
			return nil
		}
	}

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return common.ErrControllerClosed
	}
	idx := v.indexOfLocked(id)
	if idx < 0 {
		v.mu.Unlock()
		return common.ErrNotFound
	}
	if v.inFlight[id] {
		v.mu.Unlock()
		return common.ErrActionInFlight
	}
	v.inFlight[id] = true
	v.mu.Unlock()

	if act.Optimistic {
		return v.applyOptimistic(ctx, id, act)
	}
	return v.applyConfirmed(ctx, id, act)
}

// applyConfirmed awaits the backend call and rewrites local state only on a
// 200/201 acknowledgment. Exactly one toast fires: success or failure.
func (v *View[T]) applyConfirmed(ctx context.Context, id string, act *Action[T]) error {
	res := act.Call(ctx, id)

	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.inFlight, id)
	if v.closed {
		return nil
	}

	if res.Err != nil || !res.OK || (res.Status != 200 && res.Status != 201) {
		v.cfg.Log.Warn(ctx, "action rejected", "resource", v.cfg.Resource, "action", act.Key, "id", id, "result", res.String())
		v.cfg.Toasts.Show(failureText(act, res), toast.Error)
		return nil
	}

	v.rewriteLocked(id, act)
	v.cfg.Toasts.Show(act.Success, toast.Success)
	return nil
}

// applyOptimistic rewrites local state and reports success before the
// backend answers. The pre-action snapshot is kept; if the confirming call
// fails, the record rolls back and the toast is replaced with the failure.
func (v *View[T]) applyOptimistic(ctx context.Context, id string, act *Action[T]) error {
	v.mu.Lock()
	idx := v.indexOfLocked(id)
	if idx < 0 {
		delete(v.inFlight, id)
		v.mu.Unlock()
		return common.ErrNotFound
	}
	snapshot := v.records[idx]
	gen := v.gen
	v.rewriteLocked(id, act)
	v.cfg.Toasts.Show(act.Success, toast.Success)
	v.mu.Unlock()

	v.wg.Add(1)
	go func() {
		defer v.wg.Done()
		res := act.Call(context.WithoutCancel(ctx), id)

		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.inFlight, id)
		if v.closed {
			return
		}
		if res.Err == nil && res.OK {
			return
		}

		v.cfg.Log.Warn(ctx, "optimistic action rolled back", "resource", v.cfg.Resource, "action", act.Key, "id", id, "result", res.String())
		// A reload that completed after the optimistic rewrite already
		// holds server truth; the stale snapshot must not touch it. Only
		// the toast swap still happens.
		if v.gen == gen {
			if act.Remove {
				// Restore the removed record at the end; insertion order
				// for re-added rows is not otherwise observable.
				v.records = append(v.records, snapshot)
			} else if i := v.indexOfLocked(id); i >= 0 {
				v.records[i] = snapshot
			}
		}
		v.cfg.Toasts.Show(failureText(act, res), toast.Error)
	}()
	return nil
}

func (v *View[T]) rewriteLocked(id string, act *Action[T]) {
	i := v.indexOfLocked(id)
	if i < 0 {
		return
	}
	if act.Remove {
		v.records = append(v.records[:i], v.records[i+1:]...)
		return
	}
	if act.Mutate != nil {
		act.Mutate(&v.records[i])
	}
}

func (v *View[T]) indexOfLocked(id string) int {
	for i, rec := range v.records {
		if v.cfg.ID(rec) == id {
			return i
		}
	}
	return -1
}

// InFlight reports whether an action is pending for the record; screens use
// it to keep the record's controls disabled.
func (v *View[T]) InFlight(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.inFlight[id]
}

// Close tears the view down. Pending background confirmations finish without
// touching state; Close returns once they have drained.
func (v *View[T]) Close() {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()
	v.wg.Wait()
}

func failureText[T any](act *Action[T], res gateway.Result) string {
	if res.Err == nil && res.Message != "" && res.Message != gateway.GenericFailure {
		return res.Message
	}
	return act.Failure
}
