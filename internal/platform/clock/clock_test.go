package clock

import (
	"testing"
	"time"
)

func TestRealClockTracksSystemTime(t *testing.T) {
	t.Parallel()

	before := time.Now()
	got := RealClock{}.Now()
	after := time.Now()
	if got.Before(before) || got.After(after) {
		t.Fatalf("RealClock.Now() = %v outside [%v, %v]", got, before, after)
	}
}

func TestMockClockSetAndAdvance(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	c := NewMock(base)

	if !c.Now().Equal(base) {
		t.Fatalf("Now = %v, want %v", c.Now(), base)
	}

	c.Advance(90 * time.Minute)
	if want := base.Add(90 * time.Minute); !c.Now().Equal(want) {
		t.Fatalf("after Advance Now = %v, want %v", c.Now(), want)
	}

	c.Advance(-time.Hour)
	if want := base.Add(30 * time.Minute); !c.Now().Equal(want) {
		t.Fatalf("after negative Advance Now = %v, want %v", c.Now(), want)
	}

	other := time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC)
	c.Set(other)
	if !c.Now().Equal(other) {
		t.Fatalf("after Set Now = %v, want %v", c.Now(), other)
	}
}
