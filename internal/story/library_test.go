package story

import (
	"testing"
)

func TestNewLibrary_BuildsAndIndexesEveryNode(t *testing.T) {
	lib, err := NewLibrary()
	if err != nil {
		t.Fatalf("NewLibrary err: %v", err)
	}

	for key := range scriptSequences() {
		nodes, ok := lib.Sequence(key)
		if !ok || len(nodes) == 0 {
			t.Fatalf("sequence %q missing or empty", key)
		}
		if first := lib.First(key); first == nil || first.ID != nodes[0].ID {
			t.Fatalf("First(%q) = %v, want %q", key, first, nodes[0].ID)
		}
		for _, node := range nodes {
			seq, ok := lib.SequenceOf(node.ID)
			if !ok || seq != key {
				t.Fatalf("SequenceOf(%q) = %q, want %q", node.ID, seq, key)
			}
		}
	}
}

func TestNewLibrary_RejectsDuplicateNodeIDs(t *testing.T) {
	_, err := newLibrary(map[string][]*Node{
		"a": {{ID: "n1", Text: "x"}},
		"b": {{ID: "n1", Text: "y"}},
	})
	if err == nil {
		t.Fatal("expected duplicate node id to be rejected")
	}
}

func TestNewLibrary_RejectsEmptySequence(t *testing.T) {
	_, err := newLibrary(map[string][]*Node{"a": {}})
	if err == nil {
		t.Fatal("expected empty sequence to be rejected")
	}
}

func TestNewLibrary_RejectsMissingNodeID(t *testing.T) {
	_, err := newLibrary(map[string][]*Node{"a": {{Text: "x"}}})
	if err == nil {
		t.Fatal("expected node without id to be rejected")
	}
}

func TestNext_WalksWithinSequenceAndStopsAtEnd(t *testing.T) {
	lib, err := newLibrary(map[string][]*Node{
		"seq": {{ID: "n1"}, {ID: "n2"}, {ID: "n3"}},
	})
	if err != nil {
		t.Fatalf("newLibrary err: %v", err)
	}

	if next := lib.Next("n1"); next == nil || next.ID != "n2" {
		t.Fatalf("Next(n1) = %v, want n2", next)
	}
	if next := lib.Next("n3"); next != nil {
		t.Fatalf("Next(n3) = %v, want nil at sequence end", next)
	}
	if next := lib.Next("unknown"); next != nil {
		t.Fatalf("Next(unknown) = %v, want nil", next)
	}
}

// Every goto target in the shipped scripts must resolve somewhere in the
// library, or a choice would strand the cursor mid-story.
func TestScripts_EveryGotoTargetResolves(t *testing.T) {
	lib, err := NewLibrary()
	if err != nil {
		t.Fatalf("NewLibrary err: %v", err)
	}

	for key, nodes := range scriptSequences() {
		for _, node := range nodes {
			for _, choice := range node.Choices {
				if choice.Target.Kind != TargetGoto {
					continue
				}
				if _, ok := lib.Node(choice.Target.NodeID); !ok {
					t.Errorf("sequence %q node %q: goto target %q does not exist",
						key, node.ID, choice.Target.NodeID)
				}
			}
		}
	}
}

func TestEndingScripts_EveryEndingHasTitleAndPages(t *testing.T) {
	for _, id := range []EndingID{EndingPyre, EndingEscape, EndingGodhead, EndingCat} {
		if EndingTitles[id] == "" {
			t.Errorf("ending %q has no title", id)
		}
		pages := EndingScripts[id]
		if len(pages) == 0 {
			t.Errorf("ending %q has no pages", id)
		}
		for i, page := range pages {
			if len(page) == 0 {
				t.Errorf("ending %q page %d is empty", id, i)
			}
		}
	}
}
