package stack

import (
	"errors"
	"testing"

	"github.com/npillmayer/orderedtree/collection"
)

func TestPushPop(t *testing.T) {
	s := New(1, 2, 3)
	if s.Len() != 3 {
		t.Fatalf("expected 3 items, have %d", s.Len())
	}
	for _, want := range []int{3, 2, 1} {
		got, err := s.Pop()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("expected pop to yield %d, got %d", want, got)
		}
	}
	if !s.IsEmpty() {
		t.Errorf("expected stack to be empty")
	}
}

func TestPopEmpty(t *testing.T) {
	var s Stack[string]
	if _, err := s.Pop(); !errors.Is(err, ErrEmptyStack) {
		t.Errorf("expected ErrEmptyStack, got %v", err)
	}
	if _, err := s.Peek(); !errors.Is(err, ErrEmptyStack) {
		t.Errorf("expected ErrEmptyStack from peek, got %v", err)
	}
}

func TestPeekKeepsItem(t *testing.T) {
	s := New("a")
	top, err := s.Peek()
	if err != nil || top != "a" {
		t.Fatalf("expected peek to yield 'a', got %q/%v", top, err)
	}
	if s.Len() != 1 {
		t.Errorf("peek must not remove the item")
	}
}

func TestBulkAddAndClear(t *testing.T) {
	s := New[int]()
	if err := collection.AddSlice[int](s, 7, 8, 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if top, _ := s.Peek(); top != 9 || s.Len() != 3 {
		t.Errorf("expected top=9 and len=3, got %d/%d", top, s.Len())
	}
	s.Clear()
	if !s.IsEmpty() {
		t.Errorf("expected stack to be empty after clear")
	}
}

func TestEmptinessFollowsLen(t *testing.T) {
	var s Stack[int]
	check := func(step string) {
		t.Helper()
		if s.IsEmpty() != (s.Len() == 0) {
			t.Errorf("%s: IsEmpty=%v disagrees with Len=%d", step, s.IsEmpty(), s.Len())
		}
	}
	check("zero value")
	s.Push(1)
	s.Push(2)
	check("after push")
	_, _ = s.Pop()
	check("after first pop")
	_, _ = s.Pop()
	check("after second pop")
	if !s.IsEmpty() {
		t.Errorf("expected stack to be empty after popping all items")
	}
	if _, err := s.Pop(); !errors.Is(err, ErrEmptyStack) {
		t.Errorf("expected ErrEmptyStack, got %v", err)
	}
	check("after failed pop")
	_ = collection.AddSlice[int](&s, 3, 4)
	s.Clear()
	check("after clear")
}
