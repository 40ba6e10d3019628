package bot

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/arcdex/arcdex/internal/entities/arc"
	"github.com/arcdex/arcdex/internal/errors"
	"github.com/arcdex/arcdex/internal/query"
	"github.com/arcdex/arcdex/internal/render"
	"github.com/arcdex/arcdex/internal/services/codex"
	codexmock "github.com/arcdex/arcdex/internal/services/codex/mock"
)

type fakeInteractionSession struct {
	responses []*discordgo.InteractionResponse
}

func (f *fakeInteractionSession) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.responses = append(f.responses, resp)
	return nil
}

type fakeMessageSession struct {
	contents []string
	embeds   []*discordgo.MessageEmbed
}

func (f *fakeMessageSession) ChannelMessageSend(_ string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.contents = append(f.contents, content)
	return &discordgo.Message{}, nil
}

func (f *fakeMessageSession) ChannelMessageSendEmbed(_ string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.embeds = append(f.embeds, embed)
	return &discordgo.Message{}, nil
}

type BotTestSuite struct {
	suite.Suite

	ctrl    *gomock.Controller
	service *codexmock.MockService
	bot     *Bot
}

func (s *BotTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = codexmock.NewMockService(s.ctrl)
	s.bot = &Bot{service: s.service, prefix: "!arc"}
}

func (s *BotTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BotTestSuite) TestParseCommand() {
	testCases := []struct {
		name        string
		content     string
		wantCommand string
		wantArg     string
		wantOK      bool
	}{
		{name: "alias with arg", content: "!arc w anvil", wantCommand: "weapon", wantArg: "anvil", wantOK: true},
		{name: "full spelling", content: "!arc weapon anvil", wantCommand: "weapon", wantArg: "anvil", wantOK: true},
		{name: "multi word arg", content: "!arc b budget scrapper", wantCommand: "build", wantArg: "budget scrapper", wantOK: true},
		{name: "bare prefix is help", content: "!arc", wantCommand: "help", wantOK: true},
		{name: "tips alias", content: "!arc TIPS", wantCommand: "tip", wantOK: true},
		{name: "unknown command", content: "!arc frobnicate", wantCommand: "", wantOK: true},
		{name: "prefix must be a whole word", content: "!arcade", wantOK: false},
		{name: "unaddressed message", content: "hello there", wantOK: false},
		{name: "leading whitespace", content: "  !arc e wasp", wantCommand: "enemy", wantArg: "wasp", wantOK: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			command, arg, ok := parseCommand(tc.content, "!arc")
			s.Equal(tc.wantOK, ok)
			if !tc.wantOK {
				return
			}
			s.Equal(tc.wantCommand, command)
			s.Equal(tc.wantArg, arg)
		})
	}
}

func (s *BotTestSuite) TestCustomIDRoundTrip() {
	id := customID(actionWeaponNext, "anvil")
	s.Equal("weapon_next:anvil", id)

	action, arg := parseCustomID(id)
	s.Equal(actionWeaponNext, action)
	s.Equal("anvil", arg)

	action, arg = parseCustomID(actionRefreshTip)
	s.Equal(actionRefreshTip, action)
	s.Empty(arg)
}

func (s *BotTestSuite) TestDetailEmbed() {
	sections := []render.Section{
		{
			Note: "Workhorse rifle.",
			Fields: []render.Field{
				{Label: "📊 Tier", Value: "S", Inline: true},
			},
		},
		{Title: "✅ Strengths", List: []render.Entry{{Name: "High damage"}}},
		{Title: "❌ Weaknesses"},
		{Title: "♻️ Salvage", Note: "Salvaging this item yields:", List: []render.Entry{{Name: "Metal Parts", Detail: "75% chance", Value: "×4"}}},
	}

	embed := detailEmbed("Anvil", sections, 0xFFD700)

	s.Equal("Anvil", embed.Title)
	s.Equal(0xFFD700, embed.Color)
	s.Equal("Workhorse rifle.", embed.Description)
	s.Require().Len(embed.Fields, 3)
	s.Equal("📊 Tier", embed.Fields[0].Name)
	s.True(embed.Fields[0].Inline)
	s.Equal("✅ Strengths", embed.Fields[1].Name)
	s.Equal("• High damage", embed.Fields[1].Value)
	s.Contains(embed.Fields[2].Value, "Salvaging this item yields:")
	s.Contains(embed.Fields[2].Value, "• Metal Parts — 75% chance (×4)")
}

func (s *BotTestSuite) TestSelectComponentsCapsOptions() {
	cards := make([]render.Card, 30)
	for i := range cards {
		cards[i] = render.Card{ID: "id", Name: "Name", Badge: "S-Tier"}
	}

	components := selectComponents(actionWeaponSelect, "Jump to a weapon", cards)
	s.Require().Len(components, 1)

	row, ok := components[0].(discordgo.ActionsRow)
	s.Require().True(ok)
	menu, ok := row.Components[0].(discordgo.SelectMenu)
	s.Require().True(ok)
	s.Len(menu.Options, 25)

	s.Nil(selectComponents(actionWeaponSelect, "Jump to a weapon", nil))
}

func (s *BotTestSuite) TestSlashWeaponCommand() {
	s.service.EXPECT().
		GetWeapon(gomock.Any(), &codex.GetWeaponInput{Token: "anvil"}).
		Return(&codex.GetWeaponOutput{
			Weapon:   arc.Weapon{ID: "anvil", Name: "Anvil"},
			Sections: []render.Section{{Note: "Workhorse rifle."}},
			Color:    0xFFD700,
		}, nil)

	session := &fakeInteractionSession{}
	s.bot.handleInteraction(session, &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: "arc",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{
						Name: "weapon",
						Type: discordgo.ApplicationCommandOptionSubCommand,
						Options: []*discordgo.ApplicationCommandInteractionDataOption{
							{Name: "name", Type: discordgo.ApplicationCommandOptionString, Value: "anvil"},
						},
					},
				},
			},
		},
	})

	s.Require().Len(session.responses, 1)
	resp := session.responses[0]
	s.Equal(discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	s.Require().Len(resp.Data.Embeds, 1)
	s.Equal("Anvil", resp.Data.Embeds[0].Title)
	s.NotEmpty(resp.Data.Components)
}

func (s *BotTestSuite) TestSlashWeaponNotFoundIsEphemeral() {
	s.service.EXPECT().
		GetWeapon(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFoundf("weapon %q not found", "ghost"))

	session := &fakeInteractionSession{}
	s.bot.handleInteraction(session, &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: "arc",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{
						Name: "weapon",
						Type: discordgo.ApplicationCommandOptionSubCommand,
						Options: []*discordgo.ApplicationCommandInteractionDataOption{
							{Name: "name", Type: discordgo.ApplicationCommandOptionString, Value: "ghost"},
						},
					},
				},
			},
		},
	})

	s.Require().Len(session.responses, 1)
	resp := session.responses[0]
	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	s.Contains(resp.Data.Content, "ghost")
}

func (s *BotTestSuite) TestNavigationButtonUpdatesMessage() {
	s.service.EXPECT().
		NavigateWeapon(gomock.Any(), &codex.NavigateWeaponInput{
			CurrentID: "anvil",
			Direction: codex.DirectionNext,
		}).
		Return(&codex.NavigateWeaponOutput{
			Weapon:   arc.Weapon{ID: "ferro", Name: "Ferro"},
			Sections: []render.Section{{Note: "Close-quarters shredder."}},
			Color:    0xC0C0C0,
		}, nil)

	session := &fakeInteractionSession{}
	s.bot.handleInteraction(session, &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionMessageComponent,
			Data: discordgo.MessageComponentInteractionData{
				CustomID: "weapon_next:anvil",
			},
		},
	})

	s.Require().Len(session.responses, 1)
	resp := session.responses[0]
	s.Equal(discordgo.InteractionResponseUpdateMessage, resp.Type)
	s.Equal("Ferro", resp.Data.Embeds[0].Title)

	row, ok := resp.Data.Components[0].(discordgo.ActionsRow)
	s.Require().True(ok)
	button, ok := row.Components[1].(discordgo.Button)
	s.Require().True(ok)
	s.Equal("weapon_next:ferro", button.CustomID)
}

func (s *BotTestSuite) TestUnknownComponentAction() {
	session := &fakeInteractionSession{}
	s.bot.handleInteraction(session, &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionMessageComponent,
			Data: discordgo.MessageComponentInteractionData{
				CustomID: "mystery_button:anvil",
			},
		},
	})

	s.Require().Len(session.responses, 1)
	resp := session.responses[0]
	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	s.Equal("❌ Unknown button action.", resp.Data.Content)
}

func (s *BotTestSuite) TestRefreshTipButton() {
	s.service.EXPECT().
		RandomTip(gomock.Any(), &codex.RandomTipInput{}).
		Return(&codex.RandomTipOutput{Tip: "quick2"}, nil)

	session := &fakeInteractionSession{}
	s.bot.handleInteraction(session, &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionMessageComponent,
			Data: discordgo.MessageComponentInteractionData{
				CustomID: actionRefreshTip,
			},
		},
	})

	s.Require().Len(session.responses, 1)
	resp := session.responses[0]
	s.Equal(discordgo.InteractionResponseUpdateMessage, resp.Type)
	s.Equal("quick2", resp.Data.Embeds[0].Description)
}

func (s *BotTestSuite) TestAutocomplete() {
	s.service.EXPECT().
		Suggest(gomock.Any(), &codex.SuggestInput{Domain: codex.DomainWeapons, Partial: "an"}).
		Return(&codex.SuggestOutput{
			Suggestions: []query.Suggestion{{Name: "Anvil", ID: "anvil"}},
		}, nil)

	session := &fakeInteractionSession{}
	s.bot.handleInteraction(session, &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommandAutocomplete,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: "arc",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{
						Name: "weapon",
						Type: discordgo.ApplicationCommandOptionSubCommand,
						Options: []*discordgo.ApplicationCommandInteractionDataOption{
							{Name: "name", Type: discordgo.ApplicationCommandOptionString, Value: "an", Focused: true},
						},
					},
				},
			},
		},
	})

	s.Require().Len(session.responses, 1)
	resp := session.responses[0]
	s.Equal(discordgo.InteractionApplicationCommandAutocompleteResult, resp.Type)
	s.Require().Len(resp.Data.Choices, 1)
	s.Equal("Anvil", resp.Data.Choices[0].Name)
	s.Equal("anvil", resp.Data.Choices[0].Value)
}

func (s *BotTestSuite) TestPrefixWeapon() {
	s.service.EXPECT().
		GetWeapon(gomock.Any(), &codex.GetWeaponInput{Token: "anvil"}).
		Return(&codex.GetWeaponOutput{
			Weapon:   arc.Weapon{ID: "anvil", Name: "Anvil"},
			Sections: []render.Section{{Note: "Workhorse rifle."}},
			Color:    0xFFD700,
		}, nil)

	session := &fakeMessageSession{}
	s.bot.handleMessage(session, &discordgo.MessageCreate{
		Message: &discordgo.Message{ChannelID: "c1", Content: "!arc w anvil"},
	})

	s.Require().Len(session.embeds, 1)
	s.Equal("Anvil", session.embeds[0].Title)
}

func (s *BotTestSuite) TestPrefixNotFound() {
	s.service.EXPECT().
		GetEnemy(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFoundf("enemy %q not found", "ghost"))

	session := &fakeMessageSession{}
	s.bot.handleMessage(session, &discordgo.MessageCreate{
		Message: &discordgo.Message{ChannelID: "c1", Content: "!arc e ghost"},
	})

	s.Require().Len(session.contents, 1)
	s.Contains(session.contents[0], "❌")
	s.Contains(session.contents[0], "ghost")
}

func (s *BotTestSuite) TestPrefixHelp() {
	session := &fakeMessageSession{}
	s.bot.handleMessage(session, &discordgo.MessageCreate{
		Message: &discordgo.Message{ChannelID: "c1", Content: "!arc"},
	})

	s.Require().Len(session.embeds, 1)
	s.Equal("ARC Raiders Reference", session.embeds[0].Title)
}

func (s *BotTestSuite) TestPrefixIgnoresUnaddressedMessages() {
	session := &fakeMessageSession{}
	s.bot.handleMessage(session, &discordgo.MessageCreate{
		Message: &discordgo.Message{ChannelID: "c1", Content: "just chatting"},
	})

	s.Empty(session.embeds)
	s.Empty(session.contents)
}

func (s *BotTestSuite) TestNewRequiresConfig() {
	b, err := New(&Config{})
	s.Nil(b)
	s.True(errors.IsInvalidArgument(err))
}

func TestBotTestSuite(t *testing.T) {
	suite.Run(t, new(BotTestSuite))
}
