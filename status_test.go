package fsesl

import "testing"

func TestStatusWatcherSubscribeSeesCurrent(t *testing.T) {
	w := newStatusWatcher()
	w.publish(ConnStatus{State: StateConnected})

	sub := w.Subscribe()
	s, ok := <-sub
	if !ok || s.State != StateConnected {
		t.Fatalf("got %+v, ok=%v, want Connected", s, ok)
	}
}

func TestStatusWatcherBroadcastsToAllSubscribers(t *testing.T) {
	w := newStatusWatcher()
	subA := w.Subscribe()
	subB := w.Subscribe()
	<-subA // drain the initial Connecting snapshot
	<-subB

	w.publish(ConnStatus{State: StateConnected})

	for _, sub := range []<-chan ConnStatus{subA, subB} {
		s := <-sub
		if s.State != StateConnected {
			t.Fatalf("got %+v, want Connected", s)
		}
	}
}

func TestStatusWatcherMonotonicAfterDisconnect(t *testing.T) {
	w := newStatusWatcher()
	w.publish(ConnStatus{State: StateConnected})
	w.publish(ConnStatus{State: StateDisconnected, Reason: ReasonGraceful})
	// A further publish must be ignored: the watcher is terminal.
	w.publish(ConnStatus{State: StateConnected})

	if got := w.Current(); got.State != StateDisconnected || got.Reason != ReasonGraceful {
		t.Fatalf("Current() = %+v, want Disconnected(Graceful)", got)
	}
}

func TestStatusWatcherClosesSubscriberOnDisconnect(t *testing.T) {
	w := newStatusWatcher()
	w.publish(ConnStatus{State: StateConnected})
	sub := w.Subscribe()
	<-sub

	w.publish(ConnStatus{State: StateDisconnected, Reason: ReasonEOF})

	s, ok := <-sub
	if !ok || s.Reason != ReasonEOF {
		t.Fatalf("expected terminal status delivered before close, got %+v, ok=%v", s, ok)
	}
	if _, ok := <-sub; ok {
		t.Fatalf("expected subscriber channel closed after terminal status")
	}
}

func TestStatusSubscribeAfterDisconnectIsClosedImmediately(t *testing.T) {
	w := newStatusWatcher()
	w.publish(ConnStatus{State: StateDisconnected, Reason: ReasonIO})

	sub := w.Subscribe()
	s, ok := <-sub
	if !ok {
		t.Fatalf("expected the terminal status delivered once before close")
	}
	if s.Reason != ReasonIO {
		t.Fatalf("got %+v", s)
	}
	if _, ok := <-sub; ok {
		t.Fatalf("expected channel already closed for a post-terminal subscriber")
	}
}
