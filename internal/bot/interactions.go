package bot

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"github.com/arcdex/arcdex/internal/errors"
	"github.com/arcdex/arcdex/internal/render"
	"github.com/arcdex/arcdex/internal/services/codex"
)

// genericErrorMessage is shown when an interaction fails for any reason
// the user cannot act on.
const genericErrorMessage = "❌ An error occurred while processing your request."

// interactionSession is the slice of discordgo.Session the interaction
// handlers need, kept narrow so tests can fake it.
type interactionSession interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

func commandDefinitions() []*discordgo.ApplicationCommand {
	nameOption := func(desc string) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "name",
			Description:  desc,
			Required:     true,
			Autocomplete: true,
		}
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "arc",
			Description: "ARC Raiders reference: weapons, enemies, builds, gadgets, and guides",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "weapon",
					Description: "Look up a weapon",
					Options:     []*discordgo.ApplicationCommandOption{nameOption("Weapon name or id")},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "weapons",
					Description: "List weapons by tier or category",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "filter",
							Description: "Tier letter (S/A/B/C) or category",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "enemy",
					Description: "Look up an ARC machine",
					Options:     []*discordgo.ApplicationCommandOption{nameOption("Enemy name or id")},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "enemies",
					Description: "List all ARC machines",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "build",
					Description: "Look up a loadout build",
					Options:     []*discordgo.ApplicationCommandOption{nameOption("Build name or id")},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "builds",
					Description: "List recommended builds",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "gadget",
					Description: "Look up a gadget",
					Options:     []*discordgo.ApplicationCommandOption{nameOption("Gadget name or id")},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "gadgets",
					Description: "List gadgets, optionally by category",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "category",
							Description: "Gadget category key",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "guide",
					Description: "Read a strategy guide",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "topic",
							Description: "Guide topic; omit to list topics",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "guides",
					Description: "List guide topics",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "search",
					Description: "Search everything",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "query",
							Description: "Search text",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "tip",
					Description: "Get a random quick tip",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "help",
					Description: "Show every command",
				},
			},
		},
	}
}

func (b *Bot) handleInteraction(s interactionSession, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handleCommand(ctx, s, i)
	case discordgo.InteractionApplicationCommandAutocomplete:
		b.handleAutocomplete(ctx, s, i)
	case discordgo.InteractionMessageComponent:
		b.handleComponent(ctx, s, i)
	}
}

func (b *Bot) handleCommand(ctx context.Context, s interactionSession, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if data.Name != "arc" || len(data.Options) == 0 {
		return
	}

	sub := data.Options[0]
	args := optionValues(sub.Options)

	var err error
	switch sub.Name {
	case "weapon":
		err = b.runWeapon(ctx, s, i, args["name"])
	case "weapons":
		err = b.runWeapons(ctx, s, i, args["filter"])
	case "enemy":
		err = b.runEnemy(ctx, s, i, args["name"])
	case "enemies":
		err = b.runEnemies(ctx, s, i)
	case "build":
		err = b.runBuild(ctx, s, i, args["name"])
	case "builds":
		err = b.runBuilds(ctx, s, i)
	case "gadget":
		err = b.runGadget(ctx, s, i, args["name"])
	case "gadgets":
		err = b.runGadgets(ctx, s, i, args["category"])
	case "guide":
		err = b.runGuide(ctx, s, i, args["topic"])
	case "guides":
		err = b.runGuide(ctx, s, i, "")
	case "search":
		err = b.runSearch(ctx, s, i, args["query"])
	case "tip":
		err = b.runTip(ctx, s, i, false)
	case "help":
		err = respondEmbed(s, i, helpEmbed(), nil)
	default:
		err = errors.InvalidArgumentf("unknown command %q", sub.Name)
	}

	if err != nil {
		b.respondError(ctx, s, i, err)
	}
}

func (b *Bot) runWeapon(ctx context.Context, s interactionSession, i *discordgo.InteractionCreate, token string) error {
	output, err := b.service.GetWeapon(ctx, &codex.GetWeaponInput{Token: token})
	if err != nil {
		return err
	}
	embed := detailEmbed(output.Weapon.Name, output.Sections, output.Color)
	return respondEmbed(s, i, embed, weaponComponents(output.Weapon.ID))
}

func (b *Bot) runWeapons(ctx context.Context, s interactionSession, i *discordgo.InteractionCreate, filter string) error {
	output, err := b.service.ListWeapons(ctx, &codex.ListWeaponsInput{Filter: filter})
	if err != nil {
		return err
	}
	embed := listEmbed(output.Title, output.Cards, render.ColorDefault)
	return respondEmbed(s, i, embed, selectComponents(actionWeaponSelect, "Jump to a weapon", output.Cards))
}

func (b *Bot) runEnemy(ctx context.Context, s interactionSession, i *discordgo.InteractionCreate, token string) error {
	output, err := b.service.GetEnemy(ctx, &codex.GetEnemyInput{Token: token})
	if err != nil {
		return err
	}
	return respondEmbed(s, i, detailEmbed(output.Enemy.Name, output.Sections, output.Color), nil)
}

func (b *Bot) runEnemies(ctx context.Context, s interactionSession, i *discordgo.InteractionCreate) error {
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
	return respondEmbed(s, i, embed, nil)
}

func (b *Bot) runBuild(ctx context.Context, s interactionSession, i *discordgo.InteractionCreate, token string) error {
	output, err := b.service.GetBuild(ctx, &codex.GetBuildInput{Token: token})
	if err != nil {
		return err
	}
	return respondEmbed(s, i, detailEmbed(output.Build.Name, output.Sections, output.Color), nil)
}

func (b *Bot) runBuilds(ctx context.Context, s interactionSession, i *discordgo.InteractionCreate) error {
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
	return respondEmbed(s, i, embed, selectComponents(actionBuildSelect, "Jump to a build", output.Cards))
}

func (b *Bot) runGadget(ctx context.Context, s interactionSession, i *discordgo.InteractionCreate, token string) error {
	output, err := b.service.GetGadget(ctx, &codex.GetGadgetInput{Token: token})
	if err != nil {
		return err
	}
	return respondEmbed(s, i, detailEmbed(output.Gadget.Name, output.Sections, output.Color), nil)
}

func (b *Bot) runGadgets(ctx context.Context, s interactionSession, i *discordgo.InteractionCreate, category string) error {
	output, err := b.service.ListGadgets(ctx, &codex.ListGadgetsInput{Category: category})
	if err != nil {
		return err
	}
	return respondEmbed(s, i, listEmbed(output.Title, output.Cards, render.ColorDefault), nil)
}

func (b *Bot) runGuide(ctx context.Context, s interactionSession, i *discordgo.InteractionCreate, topic string) error {
	if topic == "" {
		output, err := b.service.ListGuides(ctx, &codex.ListGuidesInput{})
		if err != nil {
			return err
		}

		entries := make([]render.Entry, 0, len(output.Guides))
		for _, g := range output.Guides {
			entries = append(entries, render.Entry{Name: g.Title, Detail: g.Topic})
		}
		embed := &discordgo.MessageEmbed{
			Title: "📖 Guides",
			Color: render.ColorDefault,
		}
		embed.Fields = append(embed.Fields, sectionField(render.Section{Title: "Topics", List: entries}))
		return respondEmbed(s, i, embed, nil)
	}

	output, err := b.service.GetGuide(ctx, &codex.GetGuideInput{Topic: topic})
	if err != nil {
		return err
	}
	return respondEmbed(s, i, detailEmbed("📖 "+output.Guide.Title, output.Sections, render.ColorDefault), nil)
}

func (b *Bot) runSearch(ctx context.Context, s interactionSession, i *discordgo.InteractionCreate, q string) error {
	output, err := b.service.Search(ctx, &codex.SearchInput{Query: q})
	if err != nil {
		return err
	}

	if output.Total == 0 {
		return respondEphemeral(s, i, "No results for \""+q+"\".")
	}

	embed := &discordgo.MessageEmbed{
		Title: "🔍 Search Results",
		Color: render.ColorDefault,
	}
	for _, result := range output.Results {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  result.Card.Name + " [" + string(result.Domain) + "]",
			Value: orPlaceholder(result.Card.Description),
		})
	}
	if output.Total > len(output.Results) {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: "Showing " + strconv.Itoa(len(output.Results)) + " of " + strconv.Itoa(output.Total) + " matches",
		}
	}
	return respondEmbed(s, i, embed, nil)
}

func (b *Bot) runTip(ctx context.Context, s interactionSession, i *discordgo.InteractionCreate, update bool) error {
	output, err := b.service.RandomTip(ctx, &codex.RandomTipInput{})
	if err != nil {
		return err
	}

	if update {
		return updateEmbed(s, i, tipEmbed(output.Tip), tipComponents())
	}
	return respondEmbed(s, i, tipEmbed(output.Tip), tipComponents())
}

func (b *Bot) handleAutocomplete(ctx context.Context, s interactionSession, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if data.Name != "arc" || len(data.Options) == 0 {
		return
	}

	sub := data.Options[0]
	domain, ok := autocompleteDomain(sub.Name)
	if !ok {
		return
	}

	var partial string
	for _, opt := range sub.Options {
		if opt.Focused {
			partial, _ = opt.Value.(string)
			break
		}
	}

	output, err := b.service.Suggest(ctx, &codex.SuggestInput{Domain: domain, Partial: partial})
	if err != nil {
		slog.ErrorContext(ctx, "autocomplete failed", "domain", domain, "error", err)
		return
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(output.Suggestions))
	for _, sug := range output.Suggestions {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  sug.Name,
			Value: sug.ID,
		})
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	})
	if err != nil {
		slog.ErrorContext(ctx, "autocomplete respond failed", "error", err)
	}
}

func autocompleteDomain(subcommand string) (codex.Domain, bool) {
	switch subcommand {
	case "weapon":
		return codex.DomainWeapons, true
	case "enemy":
		return codex.DomainEnemies, true
	case "build":
		return codex.DomainBuilds, true
	case "gadget":
		return codex.DomainGadgets, true
	default:
		return "", false
	}
}

func (b *Bot) handleComponent(ctx context.Context, s interactionSession, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()
	action, arg := parseCustomID(data.CustomID)

	var err error
	switch action {
	case actionWeaponPrev, actionWeaponNext:
		direction := codex.DirectionPrev
		if action == actionWeaponNext {
			direction = codex.DirectionNext
		}

		var output *codex.NavigateWeaponOutput
		output, err = b.service.NavigateWeapon(ctx, &codex.NavigateWeaponInput{CurrentID: arg, Direction: direction})
		if err == nil {
			embed := detailEmbed(output.Weapon.Name, output.Sections, output.Color)
			err = updateEmbed(s, i, embed, weaponComponents(output.Weapon.ID))
		}

	case actionRefreshTip:
		err = b.runTip(ctx, s, i, true)

	case actionWeaponSelect:
		if len(data.Values) > 0 {
			err = b.selectWeapon(ctx, s, i, data.Values[0])
		}

	case actionBuildSelect:
		if len(data.Values) > 0 {
			err = b.selectBuild(ctx, s, i, data.Values[0])
		}

	default:
		err = respondEphemeral(s, i, "❌ Unknown button action.")
	}

	if err != nil {
		b.respondError(ctx, s, i, err)
	}
}

func (b *Bot) selectWeapon(ctx context.Context, s interactionSession, i *discordgo.InteractionCreate, token string) error {
	output, err := b.service.GetWeapon(ctx, &codex.GetWeaponInput{Token: token})
	if err != nil {
		return err
	}
	embed := detailEmbed(output.Weapon.Name, output.Sections, output.Color)
	return respondEmbed(s, i, embed, weaponComponents(output.Weapon.ID))
}

func (b *Bot) selectBuild(ctx context.Context, s interactionSession, i *discordgo.InteractionCreate, token string) error {
	output, err := b.service.GetBuild(ctx, &codex.GetBuildInput{Token: token})
	if err != nil {
		return err
	}
	return respondEmbed(s, i, detailEmbed(output.Build.Name, output.Sections, output.Color), nil)
}

func (b *Bot) respondError(ctx context.Context, s interactionSession, i *discordgo.InteractionCreate, err error) {
	message := genericErrorMessage
	if errors.IsNotFound(err) || errors.IsInvalidArgument(err) {
		message = "❌ " + errors.GetMessage(err)
	} else {
		slog.ErrorContext(ctx, "interaction failed", "error", err)
	}

	if respondErr := respondEphemeral(s, i, message); respondErr != nil {
		slog.ErrorContext(ctx, "error response failed", "error", respondErr)
	}
}

func respondEmbed(s interactionSession, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "interaction respond")
	}
	return nil
}

func updateEmbed(s interactionSession, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "interaction update")
	}
	return nil
}

func respondEphemeral(s interactionSession, i *discordgo.InteractionCreate, content string) error {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "interaction respond")
	}
	return nil
}

func optionValues(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]string {
	values := make(map[string]string, len(options))
	for _, opt := range options {
		if v, ok := opt.Value.(string); ok {
			values[opt.Name] = v
		}
	}
	return values
}

func tipEntries(tips []string) []render.Entry {
	entries := make([]render.Entry, 0, len(tips))
	for _, tip := range tips {
		entries = append(entries, render.Entry{Name: tip})
	}
	return entries
}
