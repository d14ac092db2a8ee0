package game

import "math/rand"

// Location says where a letter slot currently sits.
type Location string

const (
	LocationPool   Location = "pool"
	LocationActive Location = "active"
)

// Slot is one physical letter of the target word. Repeated letters get one
// slot each.
type Slot struct {
	ID   int
	Char byte
}

// Selection partitions the target word's slots into the pool and the active
// candidate. slots is the arena; pool and active hold slot IDs in display and
// activation order.
type Selection struct {
	slots  []Slot
	pool   []int
	active []int
	rng    *rand.Rand
}

// NewSelection lays out one slot per letter of target, shuffled into the pool.
func NewSelection(target string, rng *rand.Rand) *Selection {
	s := &Selection{
		slots:  make([]Slot, len(target)),
		pool:   make([]int, len(target)),
		active: make([]int, 0, len(target)),
		rng:    rng,
	}
	for i := 0; i < len(target); i++ {
		s.slots[i] = Slot{ID: i, Char: target[i]}
		s.pool[i] = i
	}
	s.Shuffle()
	return s
}

// Select moves the first pool slot holding ch to the end of the candidate.
// It reports false, changing nothing, when no such slot is available.
func (s *Selection) Select(ch byte) bool {
	for i, id := range s.pool {
		if s.slots[id].Char != ch {
			continue
		}
		s.pool = append(s.pool[:i], s.pool[i+1:]...)
		s.active = append(s.active, id)
		return true
	}
	return false
}

// Backspace returns the most recently selected slot to the end of the pool.
func (s *Selection) Backspace() bool {
	n := len(s.active)
	if n == 0 {
		return false
	}
	id := s.active[n-1]
	s.active = s.active[:n-1]
	s.pool = append(s.pool, id)
	return true
}

// Clear returns every active slot to the pool in selection order.
func (s *Selection) Clear() {
	s.pool = append(s.pool, s.active...)
	s.active = s.active[:0]
}

// Shuffle permutes the pool uniformly; active slots keep their order.
func (s *Selection) Shuffle() {
	s.rng.Shuffle(len(s.pool), func(i, j int) {
		s.pool[i], s.pool[j] = s.pool[j], s.pool[i]
	})
}

// Candidate is the word spelled by the active slots in selection order.
func (s *Selection) Candidate() string {
	buf := make([]byte, len(s.active))
	for i, id := range s.active {
		buf[i] = s.slots[id].Char
	}
	return string(buf)
}

// Pool returns the available slots in display order.
func (s *Selection) Pool() []Slot {
	return s.collect(s.pool)
}

// Active returns the selected slots in selection order.
func (s *Selection) Active() []Slot {
	return s.collect(s.active)
}

func (s *Selection) collect(ids []int) []Slot {
	out := make([]Slot, len(ids))
	for i, id := range ids {
		out[i] = s.slots[id]
	}
	return out
}
