package cmd

import (
	"context"
	"fmt"

	chatui "github.com/MuzzammilShah/pa-agent-cli/internal/adapters/render/chat"
	"github.com/MuzzammilShah/pa-agent-cli/internal/application"
	"github.com/MuzzammilShah/pa-agent-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newChatCmd(app *app) *cobra.Command {
	var (
		withTools bool
		message   string
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with PA Agent",
		Long:  "Chat with PA Agent interactively. With --tools the assistant can act on your behalf: read email, draft replies, create events, generate documents, and review code.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sender := newChatSender(app, withTools)

			if message != "" {
				appended, err := sender.Send(cmd.Context(), message)
				if err != nil {
					return err
				}
				printTurn(cmd, appended)
				return nil
			}

			return chatui.Run(cmd.Context(), sender, sender.Visible())
		},
	}

	cmd.Flags().BoolVar(&withTools, "tools", false, "Let the assistant call backend tools")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Send a single message and print the reply")

	return cmd
}

// chatSender levels the two controller variants behind the interface the
// terminal UI renders against.
type chatSender interface {
	chatui.Sender
	Visible() []domain.ChatMessage
}

func newChatSender(app *app, withTools bool) chatSender {
	if withTools {
		return &agentSender{agent: application.NewChatAgent(app.client.Chat(), app.registry, app.logger)}
	}
	return &simpleSender{chat: application.NewSimpleChat(app.client.Chat(), app.logger)}
}

type agentSender struct {
	agent *application.ChatAgent
}

func (s *agentSender) Send(ctx context.Context, text string) ([]domain.ChatMessage, error) {
	return s.agent.Send(ctx, text)
}

func (s *agentSender) Visible() []domain.ChatMessage {
	return s.agent.Conversation().Visible()
}

type simpleSender struct {
	chat *application.SimpleChat
}

func (s *simpleSender) Send(ctx context.Context, text string) ([]domain.ChatMessage, error) {
	user := domain.ChatMessage{Role: domain.RoleUser, Content: text}
	reply, err := s.chat.Send(ctx, text)
	return []domain.ChatMessage{user, reply}, err
}

func (s *simpleSender) Visible() []domain.ChatMessage {
	return s.chat.Conversation().Visible()
}

func printTurn(cmd *cobra.Command, appended []domain.ChatMessage) {
	out := cmd.OutOrStdout()
	for _, msg := range domain.VisibleMessages(appended) {
		if msg.Role != domain.RoleAssistant {
			continue
		}
		for _, call := range msg.ToolCalls {
			_, _ = fmt.Fprintf(out, "[using %s]\n", call.Name)
		}
		if msg.Content != "" {
			_, _ = fmt.Fprintln(out, msg.Content)
		}
	}
}
