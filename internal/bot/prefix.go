package bot

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/arcdex/arcdex/internal/errors"
	"github.com/arcdex/arcdex/internal/render"
	"github.com/arcdex/arcdex/internal/services/codex"
)

// messageSession is the slice of discordgo.Session the prefix handler
// needs, kept narrow so tests can fake it.
type messageSession interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// commandAliases maps every prefix-command spelling to its canonical
// command name.
var commandAliases = map[string]string{
	"w":       "weapon",
	"weapon":  "weapon",
	"weapons": "weapons",
	"e":       "enemy",
	"enemy":   "enemy",
	"enemies": "enemies",
	"b":       "build",
	"build":   "build",
	"builds":  "builds",
	"g":       "gadget",
	"gadget":  "gadget",
	"gadgets": "gadgets",
	"guide":   "guide",
	"guides":  "guide",
	"s":       "search",
	"search":  "search",
	"tip":     "tip",
	"tips":    "tip",
	"h":       "help",
	"help":    "help",
}

// parseCommand splits a chat message into a canonical command and its
// argument. ok is false when the message is not addressed to the bot;
// an addressed message with an unknown command keeps its raw spelling
// and resolves to an empty canonical name.
func parseCommand(content, prefix string) (command, arg string, ok bool) {
	content = strings.TrimSpace(content)
	if content != prefix && !strings.HasPrefix(content, prefix+" ") {
		return "", "", false
	}

	rest := strings.TrimSpace(strings.TrimPrefix(content, prefix))
	if rest == "" {
		return "help", "", true
	}

	parts := strings.Fields(rest)
	return commandAliases[strings.ToLower(parts[0])], strings.Join(parts[1:], " "), true
}

func (b *Bot) handleMessage(s messageSession, m *discordgo.MessageCreate) {
	command, arg, ok := parseCommand(m.Content, b.prefix)
	if !ok {
		return
	}

	ctx := context.Background()

	var err error
	switch command {
	case "weapon":
		if arg == "" {
			err = b.sendWeaponList(ctx, s, m.ChannelID, "")
		} else {
			err = b.sendWeapon(ctx, s, m.ChannelID, arg)
		}
	case "weapons":
		err = b.sendWeaponList(ctx, s, m.ChannelID, arg)
	case "enemy":
		if arg == "" {
			err = b.sendEnemyList(ctx, s, m.ChannelID)
		} else {
			err = b.sendEnemy(ctx, s, m.ChannelID, arg)
		}
	case "enemies":
		err = b.sendEnemyList(ctx, s, m.ChannelID)
	case "build":
		if arg == "" {
			err = b.sendBuildList(ctx, s, m.ChannelID)
		} else {
			err = b.sendBuild(ctx, s, m.ChannelID, arg)
		}
	case "builds":
		err = b.sendBuildList(ctx, s, m.ChannelID)
	case "gadget":
		if arg == "" {
			err = b.sendGadgetList(ctx, s, m.ChannelID, "")
		} else {
			err = b.sendGadget(ctx, s, m.ChannelID, arg)
		}
	case "gadgets":
		err = b.sendGadgetList(ctx, s, m.ChannelID, arg)
	case "guide":
		err = b.sendGuide(ctx, s, m.ChannelID, arg)
	case "search":
		err = b.sendSearch(ctx, s, m.ChannelID, arg)
	case "tip":
		err = b.sendTip(ctx, s, m.ChannelID)
	case "help":
		_, err = s.ChannelMessageSendEmbed(m.ChannelID, helpEmbed())
	default:
		err = errors.InvalidArgumentf("unknown command; try %s help", b.prefix)
	}

	if err != nil {
		b.sendError(ctx, s, m.ChannelID, err)
	}
}

func (b *Bot) sendWeapon(ctx context.Context, s messageSession, channelID, token string) error {
	output, err := b.service.GetWeapon(ctx, &codex.GetWeaponInput{Token: token})
	if err != nil {
		return err
	}
	_, err = s.ChannelMessageSendEmbed(channelID, detailEmbed(output.Weapon.Name, output.Sections, output.Color))
	return err
}

func (b *Bot) sendWeaponList(ctx context.Context, s messageSession, channelID, filter string) error {
	output, err := b.service.ListWeapons(ctx, &codex.ListWeaponsInput{Filter: filter})
	if err != nil {
		return err
	}
	_, err = s.ChannelMessageSendEmbed(channelID, listEmbed(output.Title, output.Cards, render.ColorDefault))
	return err
}

func (b *Bot) sendEnemy(ctx context.Context, s messageSession, channelID, token string) error {
	output, err := b.service.GetEnemy(ctx, &codex.GetEnemyInput{Token: token})
	if err != nil {
		return err
	}
	_, err = s.ChannelMessageSendEmbed(channelID, detailEmbed(output.Enemy.Name, output.Sections, output.Color))
	return err
}

func (b *Bot) sendEnemyList(ctx context.Context, s messageSession, channelID string) error {
	output, err := b.service.ListEnemies(ctx, &codex.ListEnemiesInput{})
	if err != nil {
		return err
	}

	embed := listEmbed("ARC Machines", output.Cards, render.ColorDefault)
	if len(output.Tips) > 0 {
		embed.Fields = append(embed.Fields, sectionField(render.Section{
			Title: "💡 General Tips",
			List:  tipEntries(output.Tips),
		}))
	}
	_, err = s.ChannelMessageSendEmbed(channelID, embed)
	return err
}

func (b *Bot) sendBuild(ctx context.Context, s messageSession, channelID, token string) error {
	output, err := b.service.GetBuild(ctx, &codex.GetBuildInput{Token: token})
	if err != nil {
		return err
	}
	_, err = s.ChannelMessageSendEmbed(channelID, detailEmbed(output.Build.Name, output.Sections, output.Color))
	return err
}

func (b *Bot) sendBuildList(ctx context.Context, s messageSession, channelID string) error {
	output, err := b.service.ListBuilds(ctx, &codex.ListBuildsInput{})
	if err != nil {
		return err
	}

	embed := listEmbed("Recommended Builds", output.Cards, render.ColorDefault)
	if len(output.Tips) > 0 {
		embed.Fields = append(embed.Fields, sectionField(render.Section{
			Title: "💡 Loadout Tips",
			List:  tipEntries(output.Tips),
		}))
	}
	_, err = s.ChannelMessageSendEmbed(channelID, embed)
	return err
}

func (b *Bot) sendGadget(ctx context.Context, s messageSession, channelID, token string) error {
	output, err := b.service.GetGadget(ctx, &codex.GetGadgetInput{Token: token})
	if err != nil {
		return err
	}
	_, err = s.ChannelMessageSendEmbed(channelID, detailEmbed(output.Gadget.Name, output.Sections, output.Color))
	return err
}

func (b *Bot) sendGadgetList(ctx context.Context, s messageSession, channelID, category string) error {
	output, err := b.service.ListGadgets(ctx, &codex.ListGadgetsInput{Category: category})
	if err != nil {
		return err
	}
	_, err = s.ChannelMessageSendEmbed(channelID, listEmbed(output.Title, output.Cards, render.ColorDefault))
	return err
}

func (b *Bot) sendGuide(ctx context.Context, s messageSession, channelID, topic string) error {
	if topic == "" {
		output, err := b.service.ListGuides(ctx, &codex.ListGuidesInput{})
		if err != nil {
			return err
		}

		entries := make([]render.Entry, 0, len(output.Guides))
		for _, g := range output.Guides {
			entries = append(entries, render.Entry{Name: g.Title, Detail: g.Topic})
		}
		embed := &discordgo.MessageEmbed{Title: "📖 Guides", Color: render.ColorDefault}
		embed.Fields = append(embed.Fields, sectionField(render.Section{Title: "Topics", List: entries}))
		_, err = s.ChannelMessageSendEmbed(channelID, embed)
		return err
	}

	output, err := b.service.GetGuide(ctx, &codex.GetGuideInput{Topic: topic})
	if err != nil {
		return err
	}
	_, err = s.ChannelMessageSendEmbed(channelID, detailEmbed("📖 "+output.Guide.Title, output.Sections, render.ColorDefault))
	return err
}

func (b *Bot) sendSearch(ctx context.Context, s messageSession, channelID, q string) error {
	output, err := b.service.Search(ctx, &codex.SearchInput{Query: q})
	if err != nil {
		return err
	}

	if output.Total == 0 {
		_, err = s.ChannelMessageSend(channelID, "No results for \""+q+"\".")
		return err
	}

	embed := &discordgo.MessageEmbed{Title: "🔍 Search Results", Color: render.ColorDefault}
	for _, result := range output.Results {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  result.Card.Name + " [" + string(result.Domain) + "]",
			Value: orPlaceholder(result.Card.Description),
		})
	}
	_, err = s.ChannelMessageSendEmbed(channelID, embed)
	return err
}

func (b *Bot) sendTip(ctx context.Context, s messageSession, channelID string) error {
	output, err := b.service.RandomTip(ctx, &codex.RandomTipInput{})
	if err != nil {
		return err
	}
	_, err = s.ChannelMessageSendEmbed(channelID, tipEmbed(output.Tip))
	return err
}

func (b *Bot) sendError(ctx context.Context, s messageSession, channelID string, err error) {
	message := genericErrorMessage
	if errors.IsNotFound(err) || errors.IsInvalidArgument(err) {
		message = "❌ " + errors.GetMessage(err)
	} else {
		slog.ErrorContext(ctx, "prefix command failed", "error", err)
	}

	if _, sendErr := s.ChannelMessageSend(channelID, message); sendErr != nil {
		slog.ErrorContext(ctx, "error message send failed", "error", sendErr)
	}
}

func helpEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "ARC Raiders Reference",
		Description: "Look up weapons, ARC machines, builds, gadgets, and guides.",
		Color:       render.ColorDefault,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "/arc weapon <name>", Value: "Weapon stats, strengths, and weaknesses"},
			{Name: "/arc weapons [filter]", Value: "List weapons by tier (S/A/B/C) or category"},
			{Name: "/arc enemy <name>", Value: "ARC machine profile and tactics"},
			{Name: "/arc builds", Value: "Recommended loadout builds"},
			{Name: "/arc gadgets [category]", Value: "Gadget listing"},
			{Name: "/arc guide [topic]", Value: "Strategy guides"},
			{Name: "/arc search <query>", Value: "Search everything"},
			{Name: "/arc tip", Value: "Random quick tip"},
			{Name: "Prefix commands", Value: "The same commands work in chat: w, e, b, g, s, tip, help"},
		},
	}
}
