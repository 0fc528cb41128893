package story

import "fmt"

// Sequence keys for every scripted scene. Callers look sequences up by key;
// an absent key means "no script for this transition" and is not an error.
const (
	SeqDay1Start          = "day1_start"
	SeqDay1Guest          = "day1_guest"
	SeqDay1Result         = "day1_result"
	SeqDay1ResultLove     = "day1_result_love"
	SeqDay1ResultBad      = "day1_result_bad"
	SeqDay1ResultFail     = "day1_result_fail"
	SeqDay2Start          = "day2_start"
	SeqDay2Guest          = "day2_guest"
	SeqDay2Breakdown      = "day2_breakdown"
	SeqDay2HealPrompt     = "day2_brew_heal_prompt"
	SeqDay2PoisonPrompt   = "day2_brew_poison_prompt"
	SeqDay2Result         = "day2_result"
	SeqDay2ResultHeal     = "day2_result_heal"
	SeqDay2ResultPoison   = "day2_result_poison"
	SeqDay2ResultFail     = "day2_result_fail"
	SeqDay2ResultHealFail = "day2_result_heal_fail"
	SeqDay3Start          = "day3_start"
	SeqDay3Guest          = "day3_guest"
	SeqDay3Story          = "day3_story"
	SeqDay3FakePrompt     = "day3_brew_fake_prompt"
	SeqDay3PoisonPrompt   = "day3_brew_poison_prompt"
	SeqDay3BrewComplete   = "day3_brew_complete"
	SeqDay3ResultFake     = "day3_result_fake"
	SeqDay3ResultDeath    = "day3_result_death"
	SeqDay3ResultFail     = "day3_result_fail"
	SeqDay4Start          = "day4_start"
	SeqDay4BrewPrompt     = "day4_brew_prompt"
	SeqTrueEnding         = "true_ending"
)

// Library is the read-only script catalog. It owns every dialogue sequence
// plus a reverse index from node id to its sequence key, built once at
// construction. Node ids are globally unique across the library; cross-
// sequence jumps rely on that.
type Library struct {
	sequences map[string][]*Node
	nodeIndex map[string]*Node
	seqOfNode map[string]string
}

// NewLibrary builds the default library from the embedded script data.
func NewLibrary() (*Library, error) {
	return newLibrary(scriptSequences())
}

func newLibrary(sequences map[string][]*Node) (*Library, error) {
	lib := &Library{
		sequences: sequences,
		nodeIndex: make(map[string]*Node),
		seqOfNode: make(map[string]string),
	}
	for key, nodes := range sequences {
		if len(nodes) == 0 {
			return nil, fmt.Errorf("sequence %q is empty", key)
		}
		for _, node := range nodes {
			if node.ID == "" {
				return nil, fmt.Errorf("sequence %q contains a node without an id", key)
			}
			if prev, ok := lib.seqOfNode[node.ID]; ok {
				return nil, fmt.Errorf("node id %q appears in both %q and %q", node.ID, prev, key)
			}
			lib.nodeIndex[node.ID] = node
			lib.seqOfNode[node.ID] = key
		}
	}
	return lib, nil
}

// Sequence returns the nodes for a key, or ok=false if the key is unknown.
func (l *Library) Sequence(key string) ([]*Node, bool) {
	nodes, ok := l.sequences[key]
	return nodes, ok
}

// First returns the opening node of a sequence, or nil if the key is unknown.
func (l *Library) First(key string) *Node {
	nodes, ok := l.sequences[key]
	if !ok {
		return nil
	}
	return nodes[0]
}

// Node resolves a node id anywhere in the library.
func (l *Library) Node(id string) (*Node, bool) {
	node, ok := l.nodeIndex[id]
	return node, ok
}

// SequenceOf returns the key of the sequence containing the node id.
func (l *Library) SequenceOf(nodeID string) (string, bool) {
	key, ok := l.seqOfNode[nodeID]
	return key, ok
}

// Next returns the node following id within its own sequence, or nil if id is
// the last node (the caller treats that as sequence end).
func (l *Library) Next(id string) *Node {
	key, ok := l.seqOfNode[id]
	if !ok {
		return nil
	}
	nodes := l.sequences[key]
	for i, node := range nodes {
		if node.ID == id && i+1 < len(nodes) {
			return nodes[i+1]
		}
	}
	return nil
}
