// Package direct implements the exact phrase -> command registry, the first
// lookup tier of the resolution pipeline.
package direct

import (
	"fmt"
	"strings"
	"sync"

	"github.com/doeshing/nlsh-go/internal/domain"
	"github.com/doeshing/nlsh-go/internal/ports"
)

// Index maps registered natural-language phrases to ready-made commands.
// Built-ins are immutable; custom entries shadow built-ins with the same key.
// Mutation is single-writer: Add/Remove take the write lock, lookups share a
// read lock so a reader never observes a half-written entry.
type Index struct {
	mu          sync.RWMutex
	builtins    map[string]domain.CommandEntry
	order       []string // builtin phrases in registration order
	custom      map[string]domain.CommandEntry
	customOrder []string
	store       ports.CustomCommandStore
}

// NewIndex builds the registry from the static builtin tables and, when a
// store is supplied, the persisted custom entries.
func NewIndex(store ports.CustomCommandStore) (*Index, error) {
	idx := &Index{
		builtins: make(map[string]domain.CommandEntry, len(builtinEntries)),
		custom:   make(map[string]domain.CommandEntry),
		store:    store,
	}
	for _, e := range builtinEntries {
		key := normalizeKey(e.Phrase)
		if _, dup := idx.builtins[key]; dup {
			continue // first-registered wins
		}
		idx.builtins[key] = e
		idx.order = append(idx.order, key)
	}
	if store != nil {
		entries, err := store.Load()
		if err != nil {
			return nil, fmt.Errorf("load custom commands: %w", err)
		}
		for _, e := range entries {
			e.IsCustom = true
			e.Category = domain.CategoryCustom
			key := normalizeKey(e.Phrase)
			if _, dup := idx.custom[key]; !dup {
				idx.customOrder = append(idx.customOrder, key)
			}
			idx.custom[key] = e
		}
	}
	return idx, nil
}

// Lookup resolves an exact phrase. Priority: custom > exact builtin >
// base-command-with-args.
func (idx *Index) Lookup(phrase string) (domain.CommandEntry, bool) {
	key := normalizeKey(phrase)
	if key == "" {
		return domain.CommandEntry{}, false
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if e, ok := idx.custom[key]; ok {
		return e, true
	}
	if e, ok := idx.builtins[key]; ok {
		return e, true
	}
	return idx.lookupBaseWithArgs(key)
}

// lookupBaseWithArgs matches "<base> <args>" inputs whose base token is a
// registered base command. The arguments are appended verbatim and the
// registered (lower) confidence applies. Caller holds the read lock.
func (idx *Index) lookupBaseWithArgs(key string) (domain.CommandEntry, bool) {
	base, args, found := strings.Cut(key, " ")
	if !found || args == "" {
		return domain.CommandEntry{}, false
	}
	e, ok := baseCommandEntries[base]
	if !ok {
		return domain.CommandEntry{}, false
	}
	e.Command = e.Command + " " + args
	e.Explanation = fmt.Sprintf("%s (arguments passed through)", e.Explanation)
	return e, true
}

// Add inserts a custom entry. Confidence outside [0,1] is rejected, never
// clamped. Overwriting an existing entry requires overwrite=true; asking to
// overwrite a non-existent entry is its own error.
func (idx *Index) Add(entry domain.CommandEntry, overwrite bool) error {
	key := normalizeKey(entry.Phrase)
	if key == "" {
		return fmt.Errorf("%w: empty phrase", domain.ErrInvalidInput)
	}
	if len(key) > domain.MaxPhraseLength {
		return fmt.Errorf("%w: phrase exceeds %d characters", domain.ErrInvalidInput, domain.MaxPhraseLength)
	}
	if entry.Command == "" {
		return fmt.Errorf("%w: empty command", domain.ErrInvalidInput)
	}
	if entry.Confidence < 0 || entry.Confidence > 1 {
		return fmt.Errorf("%w: confidence %.2f outside [0,1]", domain.ErrInvalidInput, entry.Confidence)
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	_, exists := idx.custom[key]
	if exists && !overwrite {
		return fmt.Errorf("%w: custom command %q already exists", domain.ErrInvalidInput, entry.Phrase)
	}
	if !exists && overwrite {
		return fmt.Errorf("%w: %q", domain.ErrUnknownCustomCommand, entry.Phrase)
	}

	entry.Phrase = key
	entry.IsCustom = true
	entry.Category = domain.CategoryCustom
	idx.custom[key] = entry
	if !exists {
		idx.customOrder = append(idx.customOrder, key)
	}
	return idx.persistLocked()
}

// Remove deletes a custom entry. Built-ins are never removable; removing an
// unknown phrase returns false with no side effects.
func (idx *Index) Remove(phrase string) bool {
	key := normalizeKey(phrase)

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, ok := idx.custom[key]; !ok {
		return false
	}
	delete(idx.custom, key)
	for i, k := range idx.customOrder {
		if k == key {
			idx.customOrder = append(idx.customOrder[:i], idx.customOrder[i+1:]...)
			break
		}
	}
	_ = idx.persistLocked()
	return true
}

// CustomEntries returns the user-added entries in registration order.
func (idx *Index) CustomEntries() []domain.CommandEntry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make([]domain.CommandEntry, 0, len(idx.customOrder))
	for _, k := range idx.customOrder {
		out = append(out, idx.custom[k])
	}
	return out
}

// BuiltinCount reports how many builtin phrases are registered.
func (idx *Index) BuiltinCount() int {
	return len(idx.order)
}

func (idx *Index) persistLocked() error {
	if idx.store == nil {
		return nil
	}
	entries := make([]domain.CommandEntry, 0, len(idx.customOrder))
	for _, k := range idx.customOrder {
		entries = append(entries, idx.custom[k])
	}
	return idx.store.Save(entries)
}

func normalizeKey(phrase string) string {
	return strings.ToLower(strings.Join(strings.Fields(phrase), " "))
}

var _ ports.DirectIndex = (*Index)(nil)
