package input

// Key is a host key code.
type Key int

// State records which keys are currently held. The host writes it from key
// events and the simulation reads it once per frame; it is not safe for
// concurrent use.
type State struct {
	held map[Key]bool
}

func NewState() *State {
	return &State{held: make(map[Key]bool)}
}

// KeyDown marks k as held.
func (s *State) KeyDown(k Key) {
	s.set(k, true)
}

// KeyUp marks k as released. The entry is kept.
func (s *State) KeyUp(k Key) {
	s.set(k, false)
}

func (s *State) set(k Key, held bool) {
	if s.held == nil {
		s.held = make(map[Key]bool)
	}
	s.held[k] = held
}

// Held reports whether k is down. Unknown keys are not held.
func (s *State) Held(k Key) bool {
	if s == nil {
		return false
	}
	return s.held[k]
}

// Len returns how many keys have ever been seen.
func (s *State) Len() int {
	if s == nil {
		return 0
	}
	return len(s.held)
}
