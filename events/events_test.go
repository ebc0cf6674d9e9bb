package events

import "testing"

func TestPublishReachesAllSubscribers(t *testing.T) {
	bus := NewBus()
	a := bus.Subscribe(1)
	b := bus.Subscribe(1)

	bus.Publish(ResponseLogged{Message: "hello"})

	for i, ch := range []chan Event{a, b} {
		select {
		case ev := <-ch:
			if r, ok := ev.(ResponseLogged); !ok || r.Message != "hello" {
				t.Errorf("subscriber %d got %#v", i, ev)
			}
		default:
			t.Errorf("subscriber %d got nothing", i)
		}
	}
}

func TestPublishSkipsFullSubscriber(t *testing.T) {
	bus := NewBus()
	ch := bus.Subscribe(1)
	bus.Publish(ArmStateChanged{Component: "Pump", Armed: true, Icon: "unlock"})
	// second publish must not block even though the buffer is full
	bus.Publish(ArmStateChanged{Component: "Pump", Armed: false, Icon: "lock"})

	ev := <-ch
	if got := ev.(ArmStateChanged); !got.Armed {
		t.Errorf("expected first event to be kept, got %#v", got)
	}
	if len(ch) != 0 {
		t.Errorf("expected overflow event to be dropped, %d pending", len(ch))
	}
}

func TestNilBusPublish(t *testing.T) {
	var bus *Bus
	bus.Publish(ResponseLogged{Message: "dropped"})
}
