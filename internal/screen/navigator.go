package screen

import (
	"context"
	"sync"
)

// Screen is anything the Navigator can show.
type Screen interface {
	Enter(ctx context.Context) <-chan struct{}
	Resume(ctx context.Context) <-chan struct{}
	Close()
}

// Navigator is a stack of screens. Popping a child always reloads the parent, because
// the child may have changed what the parent shows.
type Navigator struct {
	mu    sync.Mutex
	stack []Screen
}

// Push shows s on top and starts its load.
func (n *Navigator) Push(ctx context.Context, s Screen) <-chan struct{} {
	n.mu.Lock()
	n.stack = append(n.stack, s)
	n.mu.Unlock()
	return s.Enter(ctx)
}

// Pop closes the top screen and resumes the one below. The returned channel closes when
// the parent's reload finishes; it is already closed when the stack becomes empty.
func (n *Navigator) Pop(ctx context.Context) <-chan struct{} {
	n.mu.Lock()
	if len(n.stack) == 0 {
		n.mu.Unlock()
		return closedChan()
	}
	top := n.stack[len(n.stack)-1]
	n.stack = n.stack[:len(n.stack)-1]
	var parent Screen
	if len(n.stack) > 0 {
		parent = n.stack[len(n.stack)-1]
	}
	n.mu.Unlock()

	top.Close()
	if parent == nil {
		return closedChan()
	}
	return parent.Resume(ctx)
}

// Top returns the visible screen, or nil.
func (n *Navigator) Top() Screen {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.stack) == 0 {
		return nil
	}
	return n.stack[len(n.stack)-1]
}

// Depth is the number of screens on the stack.
func (n *Navigator) Depth() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.stack)
}

// CloseAll tears down every screen, top first.
func (n *Navigator) CloseAll() {
	n.mu.Lock()
	stack := n.stack
	n.stack = nil
	n.mu.Unlock()

	for i := len(stack) - 1; i >= 0; i-- {
		stack[i].Close()
	}
}

func closedChan() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
