package bot

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/arcdex/arcdex/internal/render"
)

// Component custom id actions. Navigation ids carry the current record
// id after the separator, so buttons need no server-side state.
const (
	actionWeaponPrev   = "weapon_prev"
	actionWeaponNext   = "weapon_next"
	actionRefreshTip   = "refresh_tip"
	actionWeaponSelect = "weapon_select"
	actionBuildSelect  = "build_select"

	customIDSeparator = ":"
)

func customID(action, arg string) string {
	if arg == "" {
		return action
	}
	return action + customIDSeparator + arg
}

func parseCustomID(id string) (action, arg string) {
	action, arg, _ = strings.Cut(id, customIDSeparator)
	return action, arg
}

// detailEmbed paints an ordered section rendering as one embed. An
// untitled leading section becomes the embed description; every titled
// section becomes an embed field.
func detailEmbed(title string, sections []render.Section, color int) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: title,
		Color: color,
	}

	for _, section := range sections {
		if section.Note == "" && len(section.Fields) == 0 && len(section.List) == 0 {
			continue
		}

		if section.Title == "" && embed.Description == "" {
			embed.Description = section.Note
			embed.Fields = append(embed.Fields, fieldRows(section.Fields)...)
			continue
		}

		if len(section.Fields) > 0 {
			for _, f := range section.Fields {
				embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
					Name:   f.Label,
					Value:  orPlaceholder(f.Value),
					Inline: f.Inline,
				})
			}
			if section.Note != "" || len(section.List) > 0 {
				embed.Fields = append(embed.Fields, sectionField(section))
			}
			continue
		}

		embed.Fields = append(embed.Fields, sectionField(section))
	}

	return embed
}

func fieldRows(fields []render.Field) []*discordgo.MessageEmbedField {
	rows := make([]*discordgo.MessageEmbedField, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, &discordgo.MessageEmbedField{
			Name:   f.Label,
			Value:  orPlaceholder(f.Value),
			Inline: f.Inline,
		})
	}
	return rows
}

func sectionField(section render.Section) *discordgo.MessageEmbedField {
	var lines []string
	if section.Note != "" {
		lines = append(lines, section.Note)
	}
	for _, entry := range section.List {
		lines = append(lines, entryLine(entry))
	}

	return &discordgo.MessageEmbedField{
		Name:  section.Title,
		Value: orPlaceholder(strings.Join(lines, "\n")),
	}
}

func entryLine(entry render.Entry) string {
	line := "• " + entry.Name
	if entry.Detail != "" {
		line += " — " + entry.Detail
	}
	if entry.Value != "" {
		line += " (" + entry.Value + ")"
	}
	return line
}

// listEmbed paints summary cards as one embed, one field per card.
func listEmbed(title string, cards []render.Card, color int) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: title,
		Color: color,
	}

	for _, card := range cards {
		value := card.Description
		if card.Headline != "" {
			value += "\n" + card.Headline
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  card.Name + " [" + card.Badge + "]",
			Value: orPlaceholder(value),
		})
	}

	return embed
}

func tipEmbed(tip string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "💡 Quick Tip",
		Description: tip,
		Color:       render.ColorDefault,
	}
}

func weaponComponents(weaponID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "◀ Previous",
					Style:    discordgo.SecondaryButton,
					CustomID: customID(actionWeaponPrev, weaponID),
				},
				discordgo.Button{
					Label:    "Next ▶",
					Style:    discordgo.SecondaryButton,
					CustomID: customID(actionWeaponNext, weaponID),
				},
			},
		},
	}
}

func tipComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "🔄 Another Tip",
					Style:    discordgo.PrimaryButton,
					CustomID: actionRefreshTip,
				},
			},
		},
	}
}

// selectComponents offers the listed cards in a select menu, bounded by
// Discord's 25-option limit.
func selectComponents(action, placeholder string, cards []render.Card) []discordgo.MessageComponent {
	const maxOptions = 25

	if len(cards) == 0 {
		return nil
	}
	if len(cards) > maxOptions {
		cards = cards[:maxOptions]
	}

	options := make([]discordgo.SelectMenuOption, 0, len(cards))
	for _, card := range cards {
		options = append(options, discordgo.SelectMenuOption{
			Label:       card.Name,
			Value:       card.ID,
			Description: card.Badge,
		})
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    action,
					Placeholder: placeholder,
					Options:     options,
				},
			},
		},
	}
}

func orPlaceholder(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
