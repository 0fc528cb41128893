package game

import "potionhouse/internal/story"

// cursor tracks the currently active script node. It only navigates; the
// Engine owns every side effect (logging, phase changes, sequence-end
// handling).
type cursor struct {
	lib    *story.Library
	active *story.Node
}

// start makes the first node of a sequence active, or clears the cursor if
// the key is unknown. An unknown key means the transition simply has no
// script.
func (c *cursor) start(key string) {
	c.active = c.lib.First(key)
}

func (c *cursor) clear() {
	c.active = nil
}

func (c *cursor) node() *story.Node {
	return c.active
}

// jump makes the node with the given id active, wherever it lives in the
// library. Returns false if the id resolves to nothing.
func (c *cursor) jump(id string) bool {
	node, ok := c.lib.Node(id)
	if !ok {
		return false
	}
	c.active = node
	return true
}

// step moves to the next node in the active node's own sequence. When the
// active node is the last of its sequence, the cursor is cleared and the
// owning sequence key is returned so the Engine can run its sequence-end
// transition.
func (c *cursor) step() (endedSeq string, ended bool) {
	if c.active == nil {
		return "", false
	}
	if next := c.lib.Next(c.active.ID); next != nil {
		c.active = next
		return "", false
	}
	key, _ := c.lib.SequenceOf(c.active.ID)
	c.active = nil
	return key, true
}
