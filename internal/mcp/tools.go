package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"potionhouse/internal/game"
)

// ChoiceView is one selectable option on the active script node.
type ChoiceView struct {
	Index int    `json:"index" jsonschema:"choice index, passed to game_choose"`
	Text  string `json:"text" jsonschema:"choice text shown to the player"`
}

// NodeView is the active script node as seen over MCP.
type NodeView struct {
	ID      string       `json:"id" jsonschema:"script node identifier"`
	Speaker string       `json:"speaker" jsonschema:"who is speaking"`
	Text    string       `json:"text" jsonschema:"line text"`
	Choices []ChoiceView `json:"choices,omitempty" jsonschema:"options when the node is a branch"`
}

// StateResult is the snapshot returned by every state-changing tool, so a
// client always sees the world it just acted on.
type StateResult struct {
	Day             int       `json:"day" jsonschema:"current day, 0 before the story starts"`
	Phase           string    `json:"phase" jsonschema:"current phase"`
	Guest           string    `json:"guest,omitempty" jsonschema:"visitor present during dialogue"`
	Cauldron        []string  `json:"cauldron,omitempty" jsonschema:"ingredient ids currently in the cauldron"`
	SceneItems      []string  `json:"scene_items,omitempty" jsonschema:"keepsakes placed in the room"`
	ActiveHint      string    `json:"active_hint,omitempty" jsonschema:"current brewing hint"`
	PendingResult   string    `json:"pending_result,omitempty" jsonschema:"outcome key revealed this morning"`
	Transitioning   bool      `json:"transitioning,omitempty" jsonschema:"day-change screen is up"`
	ReachedEndingID string    `json:"reached_ending_id,omitempty" jsonschema:"selected ending, set on day 4's brew"`
	ActiveNode      *NodeView `json:"active_node,omitempty" jsonschema:"script node awaiting advance or choice"`
}

// ChooseInput selects a branch option by index.
type ChooseInput struct {
	Index int `json:"index" jsonschema:"index of the choice on the active node"`
}

// ChooseOptionInput selects a branch option by the node id it jumps to.
type ChooseOptionInput struct {
	NodeID string `json:"node_id" jsonschema:"node id the desired choice jumps to"`
}

// AddIngredientInput names the ingredient to drop into the cauldron.
type AddIngredientInput struct {
	ID string `json:"id" jsonschema:"ingredient id, e.g. chamomile or hemlock"`
}

// StartDayInput names the day to begin.
type StartDayInput struct {
	Day int `json:"day" jsonschema:"day number, 1 through 4"`
}

type emptyInput struct{}

func registerGameTools(mcpServer *mcp.Server, s *Server) {
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "game_state",
		Description: "Returns the current game state and the active script node",
	}, s.stateHandler)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "game_start",
		Description: "Starts a new playthrough from the home screen",
	}, s.intent(func(e *game.Engine) { e.Start() }))
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "game_start_day",
		Description: "Begins the given day; day 1 follows the intro, later days follow the day-change transition",
	}, s.startDayHandler)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "game_advance",
		Description: "Advances past the active dialogue line",
	}, s.intent(func(e *game.Engine) { e.Advance() }))
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "game_choose",
		Description: "Selects one of the active node's choices by index",
	}, s.chooseHandler)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "game_choose_option",
		Description: "Selects a choice by the node id it jumps to; an unresolvable id degrades to advancing past the branch",
	}, s.chooseOptionHandler)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "game_add_ingredient",
		Description: "Drops an ingredient into the cauldron while brewing",
	}, s.addIngredientHandler)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "game_clear_cauldron",
		Description: "Empties the cauldron",
	}, s.intent(func(e *game.Engine) { e.ClearCauldron() }))
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "game_brew",
		Description: "Brews the cauldron's contents and resolves the day's potion",
	}, s.intent(func(e *game.Engine) { e.Brew() }))
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "game_acknowledge_result",
		Description: "Dismisses the morning outcome report",
	}, s.intent(func(e *game.Engine) { e.AcknowledgeResult() }))
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "game_finish_day_transition",
		Description: "Completes the day-change transition and begins the next morning",
	}, s.intent(func(e *game.Engine) { e.FinishDayTransition() }))
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "game_trigger_true_ending",
		Description: "Enters the hidden dialogue after the golden ending's narration; a no-op for every other ending",
	}, s.intent(func(e *game.Engine) { e.TriggerTrueEnding() }))
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "game_complete_ending",
		Description: "Finishes the ending narration and reaches the epilogue",
	}, s.intent(func(e *game.Engine) { e.CompleteEnding() }))
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "game_restart",
		Description: "Abandons the playthrough and returns to the home screen",
	}, s.intent(func(e *game.Engine) { e.Restart() }))
}

// intent wraps a no-argument engine intent into a tool handler that returns
// the resulting state.
func (s *Server) intent(apply func(*game.Engine)) mcp.ToolHandlerFor[emptyInput, StateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, StateResult, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		apply(s.engine)
		return nil, s.stateResult(), nil
	}
}

func (s *Server) stateHandler(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, StateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return nil, s.stateResult(), nil
}

func (s *Server) startDayHandler(ctx context.Context, _ *mcp.CallToolRequest, input StartDayInput) (*mcp.CallToolResult, StateResult, error) {
	if input.Day < 1 || input.Day > 4 {
		return nil, StateResult{}, fmt.Errorf("day must be 1 through 4, got %d", input.Day)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.StartDay(input.Day)
	return nil, s.stateResult(), nil
}

func (s *Server) chooseHandler(ctx context.Context, _ *mcp.CallToolRequest, input ChooseInput) (*mcp.CallToolResult, StateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	node := s.engine.ActiveNode()
	if node == nil || !node.IsBranch() {
		return nil, StateResult{}, fmt.Errorf("no choice is pending")
	}
	if input.Index < 0 || input.Index >= len(node.Choices) {
		return nil, StateResult{}, fmt.Errorf("choice index %d out of range", input.Index)
	}

	s.engine.Choose(node.Choices[input.Index].Target)
	return nil, s.stateResult(), nil
}

func (s *Server) chooseOptionHandler(ctx context.Context, _ *mcp.CallToolRequest, input ChooseOptionInput) (*mcp.CallToolResult, StateResult, error) {
	if input.NodeID == "" {
		return nil, StateResult{}, fmt.Errorf("node id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if node := s.engine.ActiveNode(); node == nil || !node.IsBranch() {
		return nil, StateResult{}, fmt.Errorf("no choice is pending")
	}
	s.engine.ChooseOption(input.NodeID)
	return nil, s.stateResult(), nil
}

func (s *Server) addIngredientHandler(ctx context.Context, _ *mcp.CallToolRequest, input AddIngredientInput) (*mcp.CallToolResult, StateResult, error) {
	if input.ID == "" {
		return nil, StateResult{}, fmt.Errorf("ingredient id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.AddIngredient(input.ID)
	return nil, s.stateResult(), nil
}

// stateResult builds the MCP view of the current state. Callers hold s.mu.
func (s *Server) stateResult() StateResult {
	snap := s.engine.Snapshot()

	result := StateResult{
		Day:             snap.Day,
		Phase:           string(snap.Phase),
		Guest:           string(snap.CurrentGuest),
		Cauldron:        snap.CauldronContents,
		SceneItems:      snap.SceneItems,
		ActiveHint:      snap.ActiveHint,
		PendingResult:   snap.PendingResult,
		Transitioning:   snap.Transitioning,
		ReachedEndingID: string(snap.ReachedEndingID),
	}

	if node := s.engine.ActiveNode(); node != nil {
		view := &NodeView{
			ID:      node.ID,
			Speaker: node.Speaker,
			Text:    node.Text,
		}
		for i, choice := range node.Choices {
			view.Choices = append(view.Choices, ChoiceView{Index: i, Text: choice.Text})
		}
		result.ActiveNode = view
	}

	return result
}
