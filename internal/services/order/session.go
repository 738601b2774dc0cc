package order

import (
	"context"
	"log/slog"
	"strings"

	"pizza-orders/internal/ledger"
	"pizza-orders/internal/logger"
	"pizza-orders/internal/presenter"
	"pizza-orders/internal/prompt"
)

var (
	continueRule = prompt.MustRule(`$|(?:Y|N|O).*`)
	confirmRule  = prompt.MustRule(`$|(?:Y|N).*`)
)

type state int

const (
	stateAssembling state = iota
	stateCancelled
	stateConfirm
	stateTerminated
)

// Session takes orders until the user quits or input ends.
//
// It moves between assembling an order and confirming after a cancel. A cancel
// entered while confirming only repeats the quit hint.
type Session struct {
	builder   *Builder
	ledger    *ledger.Ledger
	input     *prompt.Validator
	logger    *logger.Logger
	requestID string
}

func NewSession(builder *Builder, l *ledger.Ledger, input *prompt.Validator, log *logger.Logger, requestID string) *Session {
	return &Session{
		builder:   builder,
		ledger:    l,
		input:     input,
		logger:    log,
		requestID: requestID,
	}
}

// Run prints the banner and loops over orders. It returns nil when the user
// quits or input ends cleanly, and the read error otherwise.
func (s *Session) Run(ctx context.Context) error {
	s.input.Print(presenter.Banner())
	s.logger.Info("session_started", s.requestID, "Order session started")

	st := stateAssembling
	for st != stateTerminated {
		if err := ctx.Err(); err != nil {
			s.finish()
			return err
		}

		switch st {
		case stateAssembling:
			st = s.takeOrder()
		case stateCancelled:
			s.input.Print("\nOrder cancelled\n")
			s.logger.Info("order_cancelled", s.requestID, "Order cancelled")
			st = stateConfirm
		case stateConfirm:
			st = s.confirmNext()
		}
	}

	s.finish()
	if err := s.input.Err(); err != nil {
		s.logger.Error("input_closed", s.requestID, "Console input failed", err)
		return err
	}
	return nil
}

func (s *Session) takeOrder() state {
	s.input.Print("\nNew Order\n")

	order, sig := s.builder.Assemble()
	if next, interrupted := onSignal(sig); interrupted {
		return next
	}

	s.ledger.Append(order)
	s.input.Print("\nOrder saved. Order was:\n")
	s.input.Print(presenter.RenderOrder(order))
	s.logger.Info("order_saved", s.requestID, "Order saved",
		slog.String("order_number", order.Number),
		slog.String("fulfillment", string(order.Fulfillment)),
		slog.Int("items", order.ItemCount()),
		slog.String("total", order.TotalCost.StringFixed(2)),
	)

	out := s.input.Request(continueRule,
		"Would you like to enter another order or view all previous orders? [Yes]/No/Orders:",
		`Only yes/no or "orders" responses allowed`)
	if next, interrupted := onSignal(out.Signal); interrupted {
		return next
	}

	switch strings.ToLower(firstLetter(out.Value)) {
	case "n":
		return stateTerminated
	case "o":
		s.input.Print(presenter.RenderLedger(s.ledger.Orders()))
		s.logger.Info("ledger_viewed", s.requestID, "Ledger displayed",
			slog.Int("orders", s.ledger.Len()),
		)
	}
	return stateAssembling
}

func (s *Session) confirmNext() state {
	out := s.input.Request(confirmRule,
		"Would you like to enter another order? [Yes]/No",
		"Only yes or no responses allowed")

	switch out.Signal {
	case prompt.Quit:
		return stateTerminated
	case prompt.Cancel:
		s.input.Println("Type 'QQ' to exit the program")
		s.logger.Info("cancel_ignored", s.requestID, "Cancel entered with no order in progress")
		return stateConfirm
	}

	if strings.ToLower(firstLetter(out.Value)) == "n" {
		return stateTerminated
	}
	return stateAssembling
}

func (s *Session) finish() {
	s.logger.Info("session_terminated", s.requestID, "Order session ended",
		slog.Int("orders", s.ledger.Len()),
		slog.String("total", s.ledger.Total().StringFixed(2)),
	)
}

func onSignal(sig prompt.Signal) (state, bool) {
	switch sig {
	case prompt.Cancel:
		return stateCancelled, true
	case prompt.Quit:
		return stateTerminated, true
	default:
		return stateAssembling, false
	}
}

func firstLetter(s string) string {
	if s == "" {
		return ""
	}
	return s[:1]
}
