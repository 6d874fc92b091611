package engine

import "testing"

func TestSchedulerFiresInOrder(t *testing.T) {
	s := NewScheduler()

	s.After(30, TimerPromptFail, 3)
	s.After(10, TimerPromptSpawn, 1)
	s.After(20, TimerIntro, 0)

	fired := s.Due(25)
	if len(fired) != 2 {
		t.Fatalf("Expected 2 deadlines due at tick 25, got %d", len(fired))
	}
	if fired[0].Kind != TimerPromptSpawn || fired[1].Kind != TimerIntro {
		t.Errorf("Wrong firing order: %v, %v", fired[0].Kind, fired[1].Kind)
	}

	// Already-fired deadlines must not fire again
	if again := s.Due(25); again != nil {
		t.Errorf("Expected no deadlines on second poll, got %d", len(again))
	}

	fired = s.Due(30)
	if len(fired) != 1 || fired[0].Ref != 3 {
		t.Errorf("Expected the remaining deadline with ref 3, got %v", fired)
	}
	if s.Len() != 0 {
		t.Errorf("Scheduler should be empty, has %d pending", s.Len())
	}
}

func TestSchedulerSameTickStableOrder(t *testing.T) {
	s := NewScheduler()

	first := s.After(5, TimerPromptSpawn, 1)
	second := s.After(5, TimerPromptFail, 2)

	fired := s.Due(5)
	if len(fired) != 2 {
		t.Fatalf("Expected 2 deadlines, got %d", len(fired))
	}
	if fired[0].ID != first || fired[1].ID != second {
		t.Error("Deadlines on the same tick should fire in scheduling order")
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()

	id := s.After(10, TimerPromptFail, 1)
	s.After(10, TimerPromptSpawn, 2)

	if !s.Cancel(id) {
		t.Error("Cancel of a pending deadline should return true")
	}
	if s.Cancel(id) {
		t.Error("Second cancel of the same deadline should return false")
	}

	fired := s.Due(10)
	if len(fired) != 1 || fired[0].Kind != TimerPromptSpawn || fired[0].Ref != 2 {
		t.Errorf("Expected only the spawn deadline to fire, got %v", fired)
	}
}

func TestSchedulerCancelKind(t *testing.T) {
	s := NewScheduler()

	s.After(10, TimerPromptFail, 1)
	s.After(20, TimerPromptFail, 2)
	s.After(15, TimerPromptSpawn, 3)

	s.CancelKind(TimerPromptFail)

	fired := s.Due(100)
	if len(fired) != 1 || fired[0].Kind != TimerPromptSpawn {
		t.Errorf("Expected only the spawn deadline to survive, got %v", fired)
	}
}

func TestSchedulerReset(t *testing.T) {
	s := NewScheduler()

	s.After(10, TimerPromptFail, 1)
	s.After(20, TimerIntro, 0)
	s.Reset()

	if s.Len() != 0 {
		t.Errorf("Reset should drop all deadlines, %d left", s.Len())
	}
	if fired := s.Due(100); fired != nil {
		t.Errorf("No deadline may fire after Reset, got %v", fired)
	}
}
