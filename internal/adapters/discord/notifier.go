package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"localeaudit/internal/domain/entities"
	"localeaudit/internal/ports/output"
	pkgdiscord "localeaudit/pkg/discord"
)

var _ output.Notifier = (*Notifier)(nil)

// MessageSender is the part of *discordgo.Session the notifier uses.
type MessageSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Notifier posts report summaries to a Discord channel.
type Notifier struct {
	sender    MessageSender
	channelID string
}

// NewNotifier creates a REST-only session; no gateway connection is opened.
func NewNotifier(token, channelID string) (*Notifier, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	return NewNotifierWithSender(s, channelID), nil
}

func NewNotifierWithSender(sender MessageSender, channelID string) *Notifier {
	return &Notifier{sender: sender, channelID: channelID}
}

func (n *Notifier) Notify(ctx context.Context, report *entities.Report) error {
	_, err := n.sender.ChannelMessageSendComplex(n.channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{pkgdiscord.BuildReportEmbed(report)},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("send report to channel %s: %w", n.channelID, err)
	}
	return nil
}
