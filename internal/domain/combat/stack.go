package combat

import "log"

// DefaultStackDepth bounds reaction chains so a reaction that triggers
// further reactions cannot recurse without limit
const DefaultStackDepth = 8

// StackItem is one entry in the resolution stack: the root trigger or one
// accepted reaction currently in flight.
type StackItem struct {
	ActionType     string
	SourceID       string
	TargetID       string
	Depth          int // position from the stack base
	TriggerContext *TriggerContext
	IsCancelled    bool
}

// ResolutionStack is a depth-bounded LIFO of in-flight interrupts. It is
// owned by a single resolver; pushes and pops happen in strict LIFO order.
type ResolutionStack struct {
	items    []*StackItem
	capacity int
}

// NewResolutionStack creates a stack with the given capacity. Non-positive
// capacities fall back to DefaultStackDepth.
func NewResolutionStack(capacity int) *ResolutionStack {
	if capacity <= 0 {
		capacity = DefaultStackDepth
	}
	return &ResolutionStack{
		items:    make([]*StackItem, 0, capacity),
		capacity: capacity,
	}
}

// CanPush reports whether the stack has room for another frame
func (s *ResolutionStack) CanPush() bool {
	return len(s.items) < s.capacity
}

// Push adds a frame for the given action. Callers must check CanPush first;
// pushing a full stack is a no-op that returns nil.
func (s *ResolutionStack) Push(actionType, sourceID, targetID string) *StackItem {
	if !s.CanPush() {
		log.Printf("ResolutionStack: push of %q refused at capacity %d", actionType, s.capacity)
		return nil
	}

	item := &StackItem{
		ActionType: actionType,
		SourceID:   sourceID,
		TargetID:   targetID,
		Depth:      len(s.items),
	}
	s.items = append(s.items, item)
	return item
}

// Peek returns the top frame without removing it, or nil when empty
func (s *ResolutionStack) Peek() *StackItem {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

// Pop removes the top frame. Popping an empty stack means the push/pop
// discipline has been broken somewhere; it is logged and otherwise ignored.
func (s *ResolutionStack) Pop() {
	if len(s.items) == 0 {
		log.Printf("ResolutionStack: pop on empty stack, push/pop symmetry violated")
		return
	}
	s.items[len(s.items)-1] = nil
	s.items = s.items[:len(s.items)-1]
}

// CurrentDepth exposes the stack size for diagnostics and result bookkeeping
func (s *ResolutionStack) CurrentDepth() int {
	return len(s.items)
}

// Capacity returns the configured depth bound
func (s *ResolutionStack) Capacity() int {
	return s.capacity
}
