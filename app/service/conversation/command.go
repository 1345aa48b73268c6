package conversation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"retireterm/app/service/classify"
	"retireterm/app/service/schema"
)

const commandSigil = "/"

var setUsage = []string{
	"Usage: /set <field> <value> [<field> <value> ...]",
	"Fields: " + strings.Join(schema.EditableFields(), ", ") + ".",
}

// CommandSyntaxError is a malformed command invocation. Nothing is
// mutated; the usage lines are shown instead.
type CommandSyntaxError struct {
	Usage []string
}

func (e *CommandSyntaxError) Error() string {
	return strings.Join(e.Usage, " ")
}

// handleCommand interprets post-results input: batched field edits,
// help, or a free-text question for the assistant.
func (s *Service) handleCommand(ctx context.Context, text string) {
	tokens := strings.Fields(text)
	head := strings.ToLower(tokens[0])

	if !strings.HasPrefix(head, commandSigil) {
		s.askAssistant(ctx, text)
		return
	}

	switch head {
	case "/set":
		s.handleSet(ctx, tokens[1:])

	case "/help":
		s.append(
			Message{Role: RoleSystem, Text: "/set <field> <value> [...] - update fields and re-run the simulation"},
			Message{Role: RoleSystem, Text: "/help - show this message"},
			Message{Role: RoleSystem, Text: "Anything else is sent to the assistant as a question."},
			Message{Role: RoleSystem, Text: setUsage[1]},
		)

	default:
		s.append(Message{Role: RoleSystem, Text: fmt.Sprintf("Unknown command %q. Try /help.", head)})
	}
}

// handleSet applies a batched edit. The edit is all-or-nothing: if any
// pair fails to parse no field changes and the usage lines are shown.
func (s *Service) handleSet(ctx context.Context, args []string) {
	updates, err := parseSetArgs(args)
	if err != nil {
		var syntaxErr *CommandSyntaxError
		if errors.As(err, &syntaxErr) {
			for _, line := range syntaxErr.Usage {
				s.append(Message{Role: RoleSystem, Text: line})
			}
			return
		}
		s.append(Message{Role: RoleSystem, Text: err.Error()})
		return
	}

	for field, value := range updates {
		s.state.answers[field] = value
	}

	slog.Info("Applied field edits", "count", len(updates))

	s.finalize(ctx)
}

// parseSetArgs parses field/value pairs into canonical updates without
// touching any state.
func parseSetArgs(args []string) (map[string]float64, error) {
	if len(args) == 0 || len(args)%2 != 0 {
		return nil, &CommandSyntaxError{Usage: setUsage}
	}

	updates := make(map[string]float64, len(args)/2)

	for i := 0; i < len(args); i += 2 {
		field := schema.Normalize(args[i])

		value, err := schema.ParseField(field, args[i+1])
		if err != nil {
			return nil, &CommandSyntaxError{Usage: append(
				[]string{fmt.Sprintf("Invalid value for %q.", args[i])},
				setUsage...,
			)}
		}

		updates[field] = value
	}

	return updates, nil
}

// askAssistant forwards free text to the assistant together with the
// current answers and the latest run's summary, then classifies the
// reply before it reaches the transcript.
func (s *Service) askAssistant(ctx context.Context, question string) {
	var summary any
	if run := s.LatestRun(); run != nil {
		summary = run.Results.Summary
	}

	answer, err := s.askClient.Ask(ctx, question, s.buildPayload(), summary)
	if err != nil {
		slog.Error("Assistant request failed", "error", err)
		s.append(Message{Role: RoleSystem, Text: err.Error()})
		return
	}

	reply := classify.Classify(answer)
	if reply.Structured {
		s.append(Structured{Summary: reply.Summary, Suggestions: reply.Suggestions})
		return
	}

	s.append(Plain{Text: reply.Text})
}
