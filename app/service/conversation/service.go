package conversation

import (
	"context"
	"log/slog"
	"strings"

	"retireterm/app/client/assistant"
	"retireterm/app/client/simulation"
	"retireterm/app/config"
	"retireterm/app/service/schema"

	"github.com/samber/do"
)

const readyMessage = "Retirement simulator ready."

type Service struct {
	cfg       *config.Config
	simClient *simulation.Client
	askClient *assistant.Client

	state State
}

func New(di *do.Injector) (*Service, error) {
	s := &Service{
		cfg:       do.MustInvoke[*config.Config](di),
		simClient: do.MustInvoke[*simulation.Client](di),
		askClient: do.MustInvoke[*assistant.Client](di),
	}

	steps := schema.BaseSteps()

	s.state.steps = steps
	s.state.answers = make(map[string]float64)
	s.state.transcript = []Entry{
		Message{Role: RoleSystem, Text: readyMessage},
		Message{Role: RoleSystem, Text: steps[0].Prompt},
	}

	return s, nil
}

// Transcript returns a snapshot of the full transcript, in event order.
func (s *Service) Transcript() []Entry {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	return append([]Entry(nil), s.state.transcript...)
}

// LatestRun returns the most recent successful run, if any.
func (s *Service) LatestRun() *RunResult {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	return s.state.latestRun
}

// Submit processes one line of user input to completion, including any
// network round trip, and returns the transcript entries it appended.
// While a round trip is in flight further submissions are rejected
// without touching conversation state.
func (s *Service) Submit(ctx context.Context, raw string) []Entry {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	s.state.mu.Lock()
	start := len(s.state.transcript)
	s.state.transcript = append(s.state.transcript, Message{Role: RoleUser, Text: raw})

	if s.state.pending {
		s.state.transcript = append(s.state.transcript,
			Message{Role: RoleSystem, Text: "Still working on the previous request."})
		entries := append([]Entry(nil), s.state.transcript[start:]...)
		s.state.mu.Unlock()
		return entries
	}

	s.state.pending = true
	s.state.mu.Unlock()

	defer func() {
		s.state.mu.Lock()
		s.state.pending = false
		s.state.mu.Unlock()
	}()

	if s.state.mode == ModeInteractive {
		s.handleCommand(ctx, raw)
	} else {
		s.handleAnswer(ctx, raw)
	}

	s.state.mu.Lock()
	entries := append([]Entry(nil), s.state.transcript[start:]...)
	s.state.mu.Unlock()

	return entries
}

func (s *Service) append(entries ...Entry) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	s.state.transcript = append(s.state.transcript, entries...)
}

func (s *Service) handleAnswer(ctx context.Context, raw string) {
	step := s.state.steps[s.state.cursor]

	value, err := schema.Parse(step.Kind, raw)
	if err != nil {
		s.append(
			Message{Role: RoleSystem, Text: "Invalid input, try again."},
			Message{Role: RoleSystem, Text: step.Prompt},
		)
		return
	}

	if err := schema.Validate(step, value, s.state.answers); err != nil {
		s.append(
			Message{Role: RoleSystem, Text: err.Error()},
			Message{Role: RoleSystem, Text: step.Prompt},
		)
		return
	}

	if step.ID == schema.FieldRecipientCount {
		s.expandRecipients(ctx, value)
		return
	}

	if step.IsRecipient() {
		recipient := &s.state.recipients[step.RecipientIndex]
		if step.RecipientField == schema.FieldRecipientMonthly {
			recipient.MonthlyAmount = &value
		} else {
			recipient.StartYear = &value
		}
	} else {
		s.state.answers[step.ID] = value
	}

	if s.state.cursor == len(s.state.steps)-1 {
		s.finalize(ctx)
		return
	}

	s.advance()
}

// expandRecipients splices 2n recipient steps right after the cursor.
// A count of zero finalizes immediately with the answers so far.
func (s *Service) expandRecipients(ctx context.Context, value float64) {
	count := int(value)

	s.state.answers[schema.FieldRecipientCount] = value
	s.state.steps = append(s.state.steps[:s.state.cursor+1], schema.RecipientSteps(count)...)
	s.state.recipients = make([]Recipient, count)

	if count == 0 {
		s.finalize(ctx)
		return
	}

	s.advance()
}

func (s *Service) advance() {
	s.state.cursor++
	s.append(Message{Role: RoleSystem, Text: s.state.steps[s.state.cursor].Prompt})
}

// finalize builds the payload and performs the simulation round trip.
// On transport failure the collected answers and the cursor survive,
// so nothing has to be re-entered.
func (s *Service) finalize(ctx context.Context) {
	s.append(Message{Role: RoleSystem, Text: "Running simulation..."})

	payload := s.buildPayload()

	response, err := s.simClient.Simulate(ctx, payload)
	if err != nil {
		slog.Error("Simulation request failed", "error", err)
		s.append(Message{Role: RoleSystem, Text: err.Error()})
		return
	}

	run := RunResult{Inputs: payload, Results: response}

	s.state.mu.Lock()
	s.state.latestRun = &run
	s.state.mu.Unlock()

	s.append(
		Chart{Run: run},
		Message{Role: RoleSystem, Text: "Simulation complete. Type '/set <field> <value>' to adjust, or /help."},
	)

	if s.state.mode == ModeCollecting {
		s.state.mode = ModeInteractive
		s.state.cursor = len(s.state.steps)
	}

	slog.Info("Simulation complete",
		"runs", response.Summary.TotalRuns,
		"success_rate", response.Summary.SuccessRate)
}

func (s *Service) buildPayload() simulation.Payload {
	answers := s.state.answers

	stock := answers[schema.FieldStockAllocation]
	if stock < 0 {
		stock = 0
	}
	if stock > 1 {
		stock = 1
	}

	recipients := make([]simulation.Recipient, 0, len(s.state.recipients))
	for _, recipient := range s.state.recipients {
		if recipient.StartYear == nil || recipient.MonthlyAmount == nil {
			continue
		}
		recipients = append(recipients, simulation.Recipient{
			StartYear:     int(*recipient.StartYear),
			MonthlyAmount: *recipient.MonthlyAmount,
		})
	}

	return simulation.Payload{
		StartYear:               int(answers[schema.FieldStartYear]),
		RetirementYears:         int(answers[schema.FieldRetirementYears]),
		PortfolioStart:          answers[schema.FieldPortfolioStart],
		StockAllocation:         stock,
		BondAllocation:          1 - stock,
		WithdrawalRateStart:     answers[schema.FieldWithdrawalStart],
		WithdrawalRateMin:       answers[schema.FieldWithdrawalMin],
		WithdrawalRateMax:       answers[schema.FieldWithdrawalMax],
		WithdrawalSmoothingUp:   s.answerOr(schema.FieldSmoothingUp, s.cfg.Defaults.SmoothingUp),
		WithdrawalSmoothingDown: s.answerOr(schema.FieldSmoothingDown, s.cfg.Defaults.SmoothingDown),
		ManagementFee:           s.answerOr(schema.FieldManagementFee, s.cfg.Defaults.ManagementFee),
		InflationRate:           answers[schema.FieldInflationRate],
		SSRecipients:            recipients,
	}
}

func (s *Service) answerOr(field string, fallback float64) float64 {
	if value, ok := s.state.answers[field]; ok {
		return value
	}

	return fallback
}
