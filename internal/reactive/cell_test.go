package reactive

import "testing"

func TestCellSetNotifiesSubscribersInOrder(t *testing.T) {
	cell := NewCell(0)
	var got []string
	cell.Subscribe(func(v int) { got = append(got, "first") })
	cell.Subscribe(func(v int) { got = append(got, "second") })

	cell.Set(3)

	if cell.Get() != 3 {
		t.Fatalf("expected value 3, got %d", cell.Get())
	}
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("expected ordered notifications, got %v", got)
	}
}

func TestCellUnsubscribe(t *testing.T) {
	cell := NewCell("a")
	calls := 0
	unsubscribe := cell.Subscribe(func(string) { calls++ })
	cell.Set("b")
	unsubscribe()
	unsubscribe()
	cell.Set("c")

	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
	if cell.Subscribers() != 0 {
		t.Fatalf("expected no subscribers, got %d", cell.Subscribers())
	}
}

func TestCellSubscriberMayReadCell(t *testing.T) {
	cell := NewCell(false)
	var seen bool
	cell.Subscribe(func(bool) { seen = cell.Get() })
	cell.Set(true)
	if !seen {
		t.Fatalf("expected subscriber to observe the written value")
	}
}

func TestNilSubscriberIgnored(t *testing.T) {
	cell := NewCell(1)
	cell.Subscribe(nil)()
	if cell.Subscribers() != 0 {
		t.Fatalf("expected nil subscriber to be ignored")
	}
}
