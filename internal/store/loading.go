package store

// LoadingFlag names a long-running operation whose in-flight state the UI
// and callers can observe.
type LoadingFlag string

const (
	FlagSavingResume      LoadingFlag = "savingResume"
	FlagGeneratingContent LoadingFlag = "generatingContent"
	FlagAnalyzingResume   LoadingFlag = "analyzingResume"
)

// SetLoading marks a named operation as in flight or finished. Flags are
// independent; setting one never touches the others.
func (s *Store) SetLoading(flag LoadingFlag, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if active {
		s.loading[flag] = true
	} else {
		delete(s.loading, flag)
	}
}

// IsLoading reports whether the named operation is in flight.
func (s *Store) IsLoading(flag LoadingFlag) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading[flag]
}

// Loading returns a snapshot of all in-flight flags.
func (s *Store) Loading() map[LoadingFlag]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[LoadingFlag]bool, len(s.loading))
	for k, v := range s.loading {
		out[k] = v
	}
	return out
}
