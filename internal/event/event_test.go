package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchDeliversToSubscribersOfType(t *testing.T) {
	d := NewDispatcher()
	won := &recorder{}
	lost := &recorder{}
	d.Subscribe(RoundWon, won)
	d.Subscribe(RoundLost, lost)

	d.Dispatch(Event{Type: RoundWon})
	d.Dispatch(Event{Type: RoundWon})
	d.Dispatch(Event{Type: RoundLost, Data: "DOG"})

	if len(won.got) != 2 {
		t.Errorf("won listener got %d events, want 2", len(won.got))
	}
	if len(lost.got) != 1 || lost.got[0].Data != "DOG" {
		t.Errorf("lost listener got %+v", lost.got)
	}
}

func TestSubscribeAllAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r, RoundStarted, RoundWon)
	d.Dispatch(Event{Type: RoundStarted})
	d.Unsubscribe(RoundStarted, r)
	d.Dispatch(Event{Type: RoundStarted})
	d.Dispatch(Event{Type: RoundWon})

	if len(r.got) != 2 {
		t.Fatalf("got %d events, want 2", len(r.got))
	}
	if r.got[1].Type != RoundWon {
		t.Errorf("second event = %s, want %s", r.got[1].Type, RoundWon)
	}
}

func TestDispatchOnNilDispatcherIsNoop(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Type: RoundWon})
}

type selfRemover struct {
	d     *Dispatcher
	calls int
}

func (s *selfRemover) OnEvent(e Event) {
	s.calls++
	s.d.Unsubscribe(e.Type, s)
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	first := &selfRemover{d: d}
	second := &recorder{}
	d.Subscribe(LetterMissed, first)
	d.Subscribe(LetterMissed, second)

	d.Dispatch(Event{Type: LetterMissed})
	d.Dispatch(Event{Type: LetterMissed})

	if first.calls != 1 {
		t.Errorf("self-removing listener called %d times, want 1", first.calls)
	}
	if len(second.got) != 2 {
		t.Errorf("second listener got %d events, want 2", len(second.got))
	}
	if d.Sent(LetterMissed) != 2 {
		t.Errorf("Sent = %d, want 2", d.Sent(LetterMissed))
	}
}

func TestDuplicateSubscribeDeliversOnce(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(RoundWon, r)
	d.Subscribe(RoundWon, r)
	d.Dispatch(Event{Type: RoundWon})
	if len(r.got) != 1 {
		t.Errorf("got %d events, want 1", len(r.got))
	}
}
