package cmenu

import (
	"errors"
	"testing"
	"time"
)

func TestChainBuilderRoundTrip(t *testing.T) {
	c, _ := newTestMenu(t)
	if got := c.OpenC().HoldC(100 * time.Millisecond).CloseC(); got != c {
		t.Fatalf("expected builder to return the controller")
	}
	chain := c.Chain()
	want := []Action{Open(), Hold(100 * time.Millisecond), Close()}
	if len(chain) != len(want) {
		t.Fatalf("expected %d actions, got %d", len(want), len(chain))
	}
	for i := range want {
		if chain[i] != want[i] {
			t.Fatalf("action %d: expected %v, got %v", i, want[i], chain[i])
		}
	}
	if c.Clear() != c {
		t.Fatalf("expected Clear to return the controller")
	}
	if len(c.Chain()) != 0 {
		t.Fatalf("expected empty chain after clear, got %v", c.Chain())
	}
}

func TestChainCopyIsIndependent(t *testing.T) {
	c, _ := newTestMenu(t)
	c.OpenC()
	chain := c.Chain()
	chain[0] = Close()
	if c.Chain()[0] != Open() {
		t.Fatalf("expected chain copy to be detached")
	}
}

func TestHoldClampsNegative(t *testing.T) {
	c, _ := newTestMenu(t)
	c.HoldC(-time.Second).Append(Action{Kind: ActionHold, Hold: -5})
	for i, a := range c.Chain() {
		if a.Hold != 0 {
			t.Fatalf("step %d: expected clamp to 0, got %v", i, a.Hold)
		}
	}
}

func TestExecuteOpenHoldClose(t *testing.T) {
	c, clock := newTestMenu(t)
	c.OpenC().HoldC(2 * time.Second).CloseC()

	done := c.Execute(12, 34)
	if !c.Visible() {
		t.Fatalf("expected menu visible immediately after execute")
	}
	if pos := c.Position(); pos.X != "12px" || pos.Y != "34px" {
		t.Fatalf("unexpected position %#v", pos)
	}
	if finished(done) {
		t.Fatalf("expected run to be suspended in hold")
	}

	clock.Advance(time.Second)
	if !c.Visible() {
		t.Fatalf("expected menu to stay visible before the hold elapses")
	}

	clock.Advance(time.Second)
	waitDone(t, done)
	if c.Visible() {
		t.Fatalf("expected menu hidden after hold")
	}
	if len(c.Chain()) != 3 {
		t.Fatalf("expected chain to survive the run, got %v", c.Chain())
	}
}

func TestExecuteWithoutHoldsIsSynchronous(t *testing.T) {
	c, _ := newTestMenu(t)
	c.OpenC().CloseC().OpenC()
	done := c.Execute("1vw", "2vh")
	if !finished(done) {
		t.Fatalf("expected run without holds to finish before Execute returns")
	}
	if !c.Visible() {
		t.Fatalf("expected final open step to leave menu visible")
	}
}

func TestExecuteEmptyChainIsNoop(t *testing.T) {
	c, _ := newTestMenu(t)
	c.OpenC().Clear()
	before := c.Token()
	done := c.Execute(5, 5)
	if !finished(done) {
		t.Fatalf("expected empty run to complete immediately")
	}
	if c.Visible() {
		t.Fatalf("expected empty run to leave menu hidden")
	}
	if c.Token() != before+1 {
		t.Fatalf("expected execute to claim a token, got %d -> %d", before, c.Token())
	}
}

func TestSecondExecuteSupersedesFirst(t *testing.T) {
	c, clock := newTestMenu(t)
	c.OpenC().HoldC(100 * time.Millisecond).CloseC()

	first := c.Execute(1, 1)
	clock.Advance(50 * time.Millisecond)
	second := c.Execute(2, 2)
	if pos := c.Position(); pos.X != "2px" {
		t.Fatalf("expected second run to reopen at its own position, got %#v", pos)
	}

	clock.Advance(50 * time.Millisecond)
	waitDone(t, first)
	if !c.Visible() {
		t.Fatalf("expected superseded run to skip its close step")
	}
	if finished(second) {
		t.Fatalf("expected second run still holding")
	}

	clock.Advance(50 * time.Millisecond)
	waitDone(t, second)
	if c.Visible() {
		t.Fatalf("expected second run to close the menu")
	}
}

func TestOverwriteDuringHoldCancelsRun(t *testing.T) {
	cases := []struct {
		name      string
		interrupt func(*Controller)
		visible   bool
	}{
		{"open overwrite", func(c *Controller) { c.Open(9, 9, true) }, true},
		{"close overwrite", func(c *Controller) { c.Close(true) }, false},
		{"clear", func(c *Controller) { c.Clear() }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, clock := newTestMenu(t)
			c.OpenC().HoldC(time.Second).CloseC().OpenC()
			done := c.Execute(1, 1)
			tc.interrupt(c)
			if finished(done) {
				t.Fatalf("expected run to keep holding until its hold ends")
			}
			if n := clock.Waiters(); n != 1 {
				t.Fatalf("expected the hold timer to stay armed, got %d waiters", n)
			}
			clock.Advance(500 * time.Millisecond)
			if finished(done) {
				t.Fatalf("expected run to stop only at the next step boundary")
			}
			clock.Advance(500 * time.Millisecond)
			waitDone(t, done)
			if c.Visible() != tc.visible {
				t.Fatalf("expected visible=%v, got %v", tc.visible, c.Visible())
			}
		})
	}
}

func TestPlainOpenCloseDoNotCancel(t *testing.T) {
	c, clock := newTestMenu(t)
	c.OpenC().HoldC(time.Second).CloseC()
	done := c.Execute(1, 1)
	c.Open(3, 3, false)
	c.Close(false)
	c.Open(4, 4, false)
	clock.Advance(time.Second)
	waitDone(t, done)
	if c.Visible() {
		t.Fatalf("expected chain close step to run")
	}
}

func TestStepsAppendedDuringHoldRun(t *testing.T) {
	c, clock := newTestMenu(t)
	c.OpenC().HoldC(time.Second)
	done := c.Execute(1, 1)
	c.CloseC()
	clock.Advance(time.Second)
	waitDone(t, done)
	if c.Visible() {
		t.Fatalf("expected appended close step to run")
	}
}

func TestMultipleHolds(t *testing.T) {
	c, clock := newTestMenu(t)
	c.OpenC().HoldC(10 * time.Millisecond).CloseC().HoldC(10 * time.Millisecond).OpenC()
	done := c.Execute(0, 0)

	clock.Advance(10 * time.Millisecond)
	if !clock.BlockUntil(1, testTimeout) {
		t.Fatalf("expected second hold to register")
	}
	if c.Visible() {
		t.Fatalf("expected close between holds")
	}
	clock.Advance(10 * time.Millisecond)
	waitDone(t, done)
	if !c.Visible() {
		t.Fatalf("expected final open")
	}
}

func TestRerunSameChain(t *testing.T) {
	c, _ := newTestMenu(t)
	c.OpenC().CloseC()
	c.Wait(1, 1)
	opens := 0
	c.VisibleCell().Subscribe(func(v bool) {
		if v {
			opens++
		}
	})
	c.Wait(1, 1)
	if opens != 1 {
		t.Fatalf("expected re-run to open again, got %d opens", opens)
	}
}

func TestParseChain(t *testing.T) {
	actions, err := ParseChain([]string{"open", "hold 1500", "HOLD 2s", "close"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Action{Open(), Hold(1500 * time.Millisecond), Hold(2 * time.Second), Close()}
	for i := range want {
		if actions[i] != want[i] {
			t.Fatalf("step %d: expected %v, got %v", i, want[i], actions[i])
		}
	}
	for _, bad := range []string{"", "jump", "hold", "hold -5", "hold -1s", "hold soon", "open now"} {
		if _, err := ParseAction(bad); !errors.Is(err, ErrInvalidAction) {
			t.Fatalf("expected ErrInvalidAction for %q, got %v", bad, err)
		}
	}
}
