package fuzzy

import (
	"sort"
	"sync"

	"github.com/doeshing/nlsh-go/internal/domain"
	"github.com/doeshing/nlsh-go/internal/ports"
)

// MemoryLearningStore keeps accepted matches in process memory, keyed by
// pattern key. Injectable so tests get a fresh store per test; a persisted
// backing can implement the same port.
type MemoryLearningStore struct {
	mu      sync.RWMutex
	entries map[string][]domain.LearnedSuggestion
}

// NewMemoryLearningStore builds an empty store.
func NewMemoryLearningStore() *MemoryLearningStore {
	return &MemoryLearningStore{entries: make(map[string][]domain.LearnedSuggestion)}
}

// Record notes that command was accepted for the phrase's pattern key. A
// recurring command updates its tuple (count incremented, confidence raised
// to the maximum seen) instead of duplicating it.
func (s *MemoryLearningStore) Record(phrase, command string, confidence float64) {
	key := PatternKey(phrase)
	if key == "" || command == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.entries[key]
	for i := range list {
		if list[i].Command == command {
			list[i].UseCount++
			if confidence > list[i].Confidence {
				list[i].Confidence = confidence
			}
			return
		}
	}
	s.entries[key] = append(list, domain.LearnedSuggestion{
		Command:    command,
		Confidence: confidence,
		UseCount:   1,
	})
}

// Query returns up to limit suggestions for the phrase's pattern key, sorted
// by (use count, confidence) descending.
func (s *MemoryLearningStore) Query(phrase string, limit int) []domain.LearnedSuggestion {
	key := PatternKey(phrase)
	if key == "" || limit <= 0 {
		return nil
	}

	s.mu.RLock()
	list := s.entries[key]
	out := make([]domain.LearnedSuggestion, len(list))
	copy(out, list)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].UseCount != out[j].UseCount {
			return out[i].UseCount > out[j].UseCount
		}
		return out[i].Confidence > out[j].Confidence
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Size reports how many pattern keys have been learned.
func (s *MemoryLearningStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

var _ ports.LearningStore = (*MemoryLearningStore)(nil)
