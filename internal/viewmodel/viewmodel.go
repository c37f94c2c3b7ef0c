package viewmodel

import (
	"log/slog"
	"strings"

	"github.com/Makepad-fr/nameboard/internal/store"
)

// ViewModel is the per-screen state sitting between user input and the store.
// It keeps its own copy of the names and refreshes it after every action it
// forwards, so what a screen shows always matches the store.
type ViewModel struct {
	store   *store.Store
	log     *slog.Logger
	items   []string
	pending string
}

// New binds a view-model to s. Call Initialize before reading Items.
func New(s *store.Store, log *slog.Logger) *ViewModel {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &ViewModel{store: s, log: log}
}

// Initialize loads the first snapshot from the store.
func (vm *ViewModel) Initialize() {
	vm.items = vm.store.List()
}

// Refresh re-reads the store.
func (vm *ViewModel) Refresh() {
	vm.items = vm.store.List()
}

// Items returns the cached names. The slice belongs to the view-model.
func (vm *ViewModel) Items() []string { return vm.items }

func (vm *ViewModel) Pending() string { return vm.pending }

func (vm *ViewModel) SetPending(s string) { vm.pending = s }

// SubmitNew appends the trimmed pending name and clears the input.
// Blank input is ignored and left in place. Reports whether the store changed.
func (vm *ViewModel) SubmitNew() bool {
	name := strings.TrimSpace(vm.pending)
	if name == "" {
		return false
	}
	vm.items = vm.store.Append(name)
	vm.pending = ""
	vm.log.Info("name added", "name", name)
	return true
}

// RemoveAt forwards a delete to the store and refreshes.
func (vm *ViewModel) RemoveAt(index int) {
	vm.items = vm.store.RemoveAt(index)
	vm.log.Info("remove requested", "index", index)
}

// BeginEdit resyncs with the store and returns the name currently at index.
// ok is false when index does not point at an entry.
func (vm *ViewModel) BeginEdit(index int) (current string, ok bool) {
	vm.Refresh()
	if index < 0 || index >= len(vm.items) {
		return "", false
	}
	return vm.items[index], true
}

// CommitEdit replaces the entry at index with the trimmed name.
// A blank name leaves the store alone.
func (vm *ViewModel) CommitEdit(index int, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	vm.items = vm.store.ReplaceAt(index, name)
	vm.log.Info("edit committed", "index", index, "name", name)
	return true
}

// EditAt runs a full edit: it asks p for a replacement of the name at index
// and commits a non-blank answer. p may block.
func (vm *ViewModel) EditAt(index int, p Prompter) {
	current, ok := vm.BeginEdit(index)
	if !ok {
		return
	}
	answer, ok := p.Prompt(current)
	if !ok {
		return
	}
	vm.CommitEdit(index, answer)
}
