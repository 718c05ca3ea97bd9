package fsesl

import (
	"testing"
	"time"
)

func TestPendingTablesFIFOOrder(t *testing.T) {
	pt := newPendingTables()

	s1 := pt.push(classCommandReply)
	s2 := pt.push(classCommandReply)
	s3 := pt.push(classCommandReply)

	pt.popFront(classCommandReply).deliver(pendingResult{reply: &CommandReply{ReplyText: "+OK 1"}})
	pt.popFront(classCommandReply).deliver(pendingResult{reply: &CommandReply{ReplyText: "+OK 2"}})
	pt.popFront(classCommandReply).deliver(pendingResult{reply: &CommandReply{ReplyText: "+OK 3"}})

	for i, s := range []*pendingSlot{s1, s2, s3} {
		select {
		case res := <-s.ch:
			want := "+OK " + string(rune('1'+i))
			if res.reply.ReplyText != want {
				t.Errorf("slot %d reply = %q, want %q", i, res.reply.ReplyText, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("slot %d: no delivery", i)
		}
	}
}

func TestPendingTablesPopFrontEmpty(t *testing.T) {
	pt := newPendingTables()
	if s := pt.popFront(classAPI); s != nil {
		t.Fatal("expected nil from empty FIFO")
	}
}

func TestPendingTablesDrain(t *testing.T) {
	pt := newPendingTables()
	s := pt.push(classCommandReply)
	pt.drain(errNotConnected())

	select {
	case res := <-s.ch:
		if res.err == nil {
			t.Fatal("expected an error from drain")
		}
	case <-time.After(time.Second):
		t.Fatal("drain did not deliver to pending slot")
	}
}

func TestPendingTablesJobArrivesBeforeRegister(t *testing.T) {
	pt := newPendingTables()
	e := NewEvent()
	e.AddHeader("Event-Name", "BACKGROUND_JOB")
	e.AddHeader("Job-UUID", "job-1")

	pt.deliverJob("job-1", e)
	ch := pt.registerJob("job-1")

	select {
	case got := <-ch:
		if got.JobUUID() != "job-1" {
			t.Errorf("JobUUID() = %q", got.JobUUID())
		}
	case <-time.After(time.Second):
		t.Fatal("buffered job event not delivered")
	}
}

func TestPendingTablesJobRegisterBeforeArrives(t *testing.T) {
	pt := newPendingTables()
	ch := pt.registerJob("job-2")

	e := NewEvent()
	e.AddHeader("Event-Name", "BACKGROUND_JOB")
	e.AddHeader("Job-UUID", "job-2")
	pt.deliverJob("job-2", e)

	select {
	case got := <-ch:
		if got.JobUUID() != "job-2" {
			t.Errorf("JobUUID() = %q", got.JobUUID())
		}
	case <-time.After(time.Second):
		t.Fatal("job event not delivered to registered channel")
	}
}
