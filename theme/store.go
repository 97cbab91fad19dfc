package theme

// Store is the theme provider. Hosts subscribe the engine remount and the
// renderer palette refresh; the toggle button and key bindings call Toggle.
// Not safe for concurrent use; hosts call it from their frame goroutine.
type Store struct {
	current     Theme
	subscribers []func(Theme)
}

// NewStore creates a provider starting at the given theme.
func NewStore(initial Theme) *Store {
	return &Store{current: initial}
}

// Current returns the active theme.
func (s *Store) Current() Theme {
	return s.current
}

// Palette returns the palette of the active theme.
func (s *Store) Palette() Palette {
	return PaletteFor(s.current)
}

// Subscribe registers fn to be called after every change.
func (s *Store) Subscribe(fn func(Theme)) {
	s.subscribers = append(s.subscribers, fn)
}

// Set switches to t. Setting the active theme again notifies nobody.
func (s *Store) Set(t Theme) {
	if t == s.current {
		return
	}
	s.current = t
	for _, fn := range s.subscribers {
		fn(t)
	}
}

// Toggle flips between dark and light and returns the new theme.
func (s *Store) Toggle() Theme {
	s.Set(s.current.Other())
	return s.current
}
