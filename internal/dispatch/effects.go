package dispatch

import (
	"context"
	"fmt"

	"github.com/cristianoliveira/g-project/internal/commands"
	"github.com/cristianoliveira/g-project/internal/domain"
)

// effects applies each ActionResult variant to the host.
type effects struct {
	ctx       context.Context
	processor *Processor
	outcome   *Outcome
}

var _ commands.ResultHandler = (*effects)(nil)

func (e *effects) HandleTool(r commands.ToolResult) error {
	*e.outcome = Outcome{Kind: OutcomeScheduleTool, ToolName: r.ToolName, ToolArgs: r.ToolArgs}
	return nil
}

func (e *effects) HandleMessage(r commands.MessageResult) error {
	e.processor.host.AddItem(domain.NewTextItem(r.ItemType(), r.Content))
	return nil
}

func (e *effects) HandleDialog(r commands.DialogResult) error {
	r.Dialog.Accept(e.processor.host)
	return nil
}

func (e *effects) HandleLoadHistory(r commands.LoadHistoryResult) error {
	if chat := e.processor.builder.Services.Chat; chat != nil {
		if err := chat.SetHistory(e.ctx, r.ClientHistory); err != nil {
			return fmt.Errorf("restoring conversation: %w", err)
		}
	}
	host := e.processor.host
	host.Clear()
	for _, item := range r.History {
		host.AddItem(item)
	}
	return nil
}

func (e *effects) HandleQuit(r commands.QuitResult) error {
	p := e.processor
	p.host.SetQuittingMessages(r.Messages)
	p.after(p.quitGrace, func() {
		p.host.Exit(0)
	})
	return nil
}
