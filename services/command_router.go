package services

import (
	"context"
	"daily-pick/contract"
	"daily-pick/domain"
	"daily-pick/errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
)

// CommandRouter maps chat commands and button presses to roster, pick and joke operations.
type CommandRouter struct {
	roster *RosterService
	picker *PickService
	jokes  contract.JokeGenerator
	photos contract.PhotoPicker
	log    *slog.Logger
}

func NewCommandRouter(roster *RosterService, picker *PickService, jokes contract.JokeGenerator,
	photos contract.PhotoPicker, log *slog.Logger) *CommandRouter {
	return &CommandRouter{roster: roster, picker: picker, jokes: jokes, photos: photos, log: log}
}

// Handle routes a command. Store failures are returned untouched and abort the command;
// only the joke button converts a language model failure into a reply.
func (r *CommandRouter) Handle(ctx context.Context, cmd domain.Command) (*domain.Reply, error) {
	switch c := cmd.(type) {
	case domain.JoinCommand:
		return r.join(ctx, c)
	case domain.PersonCommand:
		return r.person(ctx, c)
	case domain.ListCommand:
		return r.all(ctx, c)
	case domain.WhoAmICommand:
		return r.whoAmI(c), nil
	case domain.JokeButtonCommand:
		return r.joke(ctx, c)
	default:
		return nil, fmt.Errorf("%w: %T", errors.ErrUnknownCommand, cmd)
	}
}

func (r *CommandRouter) join(ctx context.Context, c domain.JoinCommand) (*domain.Reply, error) {
	name := c.Requester.DisplayName()
	result, err := r.roster.AddParticipant(ctx, c.Room, name)
	if err != nil {
		return nil, err
	}
	text := fmt.Sprintf(textJoined, name)
	if !result.Added {
		text = fmt.Sprintf(textAlreadyJoined, name)
	}
	return &domain.Reply{Room: c.Room, Text: text}, nil
}

func (r *CommandRouter) person(ctx context.Context, c domain.PersonCommand) (*domain.Reply, error) {
	result, err := r.picker.PersonOfTheMoment(ctx, c.Room)
	if err != nil {
		return nil, err
	}

	reply := &domain.Reply{
		Room:     c.Room,
		Text:     personCaption(result),
		Markdown: true,
		Button:   &domain.Button{Text: textJokeButton, Data: domain.JokeCallbackData},
	}
	if r.photos == nil {
		return reply, nil
	}
	photo, err := r.photos.RandomPhoto()
	if err != nil {
		r.log.Warn("No photo for person reply, sending text", "room", c.Room, "error", err)
		return reply, nil
	}
	reply.PhotoPath = photo
	return reply, nil
}

func personCaption(result domain.PickResult) string {
	switch result.Outcome {
	case domain.OutcomeAlreadyPicked:
		return fmt.Sprintf(textAlreadyPicked, boldMarkdown(result.Person))
	case domain.OutcomeNewPick:
		return fmt.Sprintf(textNewPick, boldMarkdown(result.Person))
	default:
		return textNoParticipants
	}
}

func (r *CommandRouter) all(ctx context.Context, c domain.ListCommand) (*domain.Reply, error) {
	names, err := r.roster.ListParticipants(ctx, c.Room)
	if err != nil {
		return nil, err
	}
	body := textNoParticipants
	if len(names) > 0 {
		body = FormatRoster(names)
	}
	return &domain.Reply{Room: c.Room, Text: textRosterHeader + body}, nil
}

// FormatRoster numbers participants in store order, one per line.
func FormatRoster(names []string) string {
	return strings.Join(lo.Map(names, func(name string, i int) string {
		return fmt.Sprintf("%d. %s", i+1, name)
	}), "\n")
}

func (r *CommandRouter) whoAmI(c domain.WhoAmICommand) *domain.Reply {
	name := c.Requester.DisplayName()
	if name == "" {
		name = textUnknownRequester
	}
	return &domain.Reply{Room: c.Room, Text: fmt.Sprintf(textWhoAmI, name)}
}

func (r *CommandRouter) joke(ctx context.Context, c domain.JokeButtonCommand) (*domain.Reply, error) {
	status, err := r.roster.Status(ctx, c.Room)
	if err != nil {
		return nil, err
	}
	if !status.HasPerson() {
		return &domain.Reply{Room: c.Room, Text: textNotPickedYet}, nil
	}

	joke, err := r.jokes.GenerateJoke(ctx, status.Person)
	if err != nil {
		r.log.Error("Joke generation failed", "room", c.Room, "person", status.Person, "error", err)
		return &domain.Reply{Room: c.Room, Text: textJokeFailed}, nil
	}
	return &domain.Reply{
		Room:     c.Room,
		Text:     fmt.Sprintf(textJoke, boldMarkdown(status.Person), escapeMarkdown(joke)),
		Markdown: true,
	}, nil
}
