package round

// Sequencer — FIFO частей фигуры, снимаемых по одной на каждый промах.
type Sequencer struct {
	queue []Part
}

// NewSequencer создает очередь в каноническом порядке.
func NewSequencer() *Sequencer {
	s := &Sequencer{}
	s.Reset()
	return s
}

// Reset возвращает очередь к полному набору из шести частей.
func (s *Sequencer) Reset() {
	s.queue = append(s.queue[:0], RemovalOrder[:]...)
}

// PopNext снимает и возвращает первую часть.
func (s *Sequencer) PopNext() (Part, error) {
	if len(s.queue) == 0 {
		return 0, ErrEmptyQueue
	}
	p := s.queue[0]
	s.queue = s.queue[1:]
	return p, nil
}

func (s *Sequencer) IsEmpty() bool {
	return len(s.queue) == 0
}

func (s *Sequencer) Len() int {
	return len(s.queue)
}

// Remaining возвращает копию оставшихся частей.
func (s *Sequencer) Remaining() []Part {
	out := make([]Part, len(s.queue))
	copy(out, s.queue)
	return out
}
