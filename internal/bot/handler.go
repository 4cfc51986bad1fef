// Package bot turns chat commands into session operations.
package bot

import (
	"errors"
	"fmt"
	"strings"

	"FundPicker/internal/metrics"
	"FundPicker/internal/model"
	"FundPicker/internal/notifier"
	"FundPicker/internal/session"
	"FundPicker/internal/strategy"

	"github.com/rs/zerolog"
)

// commands maps every accepted spelling to its canonical name.
var commands = map[string]string{
	"start":     "help",
	"help":      "help",
	"recommend": "recommend",
	"amount":    "amount",
	"risk":      "risk",
	"tier":      "risk",
	"period":    "period",
	"years":     "period",
	"submit":    "submit",
	"show":      "show",
	"next":      "next",
	"prev":      "prev",
	"previous":  "prev",
	"clear":     "clear",
	"reset":     "clear",
	"catalog":   "catalog",
}

// Handler answers commands from any front end.
type Handler struct {
	store     *session.Store
	catalog   []model.Fund
	engine    *strategy.Engine
	formatter notifier.Formatter
	metrics   *metrics.Metrics
	log       zerolog.Logger
}

// NewHandler creates a Handler. m may be nil.
func NewHandler(store *session.Store, catalog []model.Fund, engine *strategy.Engine, f notifier.Formatter, m *metrics.Metrics, log zerolog.Logger) *Handler {
	return &Handler{
		store:     store,
		catalog:   catalog,
		engine:    engine,
		formatter: f,
		metrics:   m,
		log:       log.With().Str("component", "handler").Logger(),
	}
}

// ParseCommand splits text into a canonical command name and its arguments.
// A leading slash and a trailing @botname are optional. Unknown commands
// return ok=false with the name as typed.
func ParseCommand(text string) (name string, args []string, ok bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", nil, false
	}
	raw := strings.ToLower(strings.TrimPrefix(fields[0], "/"))
	if i := strings.IndexByte(raw, '@'); i >= 0 {
		raw = raw[:i]
	}
	name, ok = commands[raw]
	if !ok {
		return raw, fields[1:], false
	}
	return name, fields[1:], true
}

// HandleCommand runs one command for the session keyed by chatID and
// returns the reply.
func (h *Handler) HandleCommand(chatID, text string) string {
	name, args, ok := ParseCommand(text)
	if !ok {
		h.metrics.ObserveCommand("unknown")
		if name == "" {
			return h.formatter.Help()
		}
		return h.formatter.Notice(fmt.Sprintf("Unknown command %q.", name)) + "\n\n" + h.formatter.Help()
	}
	h.metrics.ObserveCommand(name)

	var reply string
	h.store.Do(chatID, func(s *session.Session) {
		reply = h.dispatch(s, name, args)
	})
	h.log.Debug().Str("session", chatID).Str("command", name).Msg("command handled")
	return reply
}

func (h *Handler) dispatch(s *session.Session, name string, args []string) string {
	f := h.formatter
	switch name {
	case "help":
		return f.Help()
	case "recommend":
		if len(args) < 3 {
			return f.Notice("Usage: /recommend <amount> <low|medium|high> <years>")
		}
		tier, err := model.ParseRiskTier(args[1])
		if err != nil {
			return f.Notice(err.Error())
		}
		return h.submit(s, s.Submit(args[0], tier, args[2]))
	case "amount":
		if len(args) == 0 {
			return f.Notice("Usage: /amount <amount>")
		}
		s.SetAmount(strings.Join(args, " "))
		return h.refresh(s)
	case "risk":
		if len(args) == 0 {
			return f.Notice("Usage: /risk <low|medium|high>")
		}
		tier, err := model.ParseRiskTier(args[0])
		if err != nil {
			return f.Notice(err.Error())
		}
		s.SelectRiskTier(tier)
		return h.refresh(s)
	case "period":
		if len(args) == 0 {
			return f.Notice("Usage: /period <years>")
		}
		s.SetPeriod(strings.Join(args, " "))
		return h.refresh(s)
	case "submit":
		return h.submit(s, s.Show())
	case "show":
		return h.refresh(s)
	case "next", "prev":
		if !s.ResultsVisible() {
			return f.Notice("No results yet. Send /submit first.")
		}
		if name == "next" {
			s.GoToPage(1)
		} else {
			s.GoToPage(-1)
		}
		return f.Table(s.TablePage())
	case "clear":
		s.Clear()
		return f.Notice("Cleared.") + "\n" + f.Inputs(s.Snapshot())
	case "catalog":
		return f.Catalog(h.catalog, h.engine.Classifier().Label)
	}
	return f.Help()
}

func (h *Handler) submit(s *session.Session, err error) string {
	if errors.Is(err, session.ErrIncompleteInput) {
		return h.formatter.Notice("Please enter both investment amount and period.") + "\n" + h.formatter.Inputs(s.Snapshot())
	}
	h.metrics.ObserveSubmit(s.RiskTier())
	return h.formatter.Results(s.Snapshot())
}

// refresh shows live results once submitted, or the pending inputs before that.
func (h *Handler) refresh(s *session.Session) string {
	snap := s.Snapshot()
	if snap.ResultsVisible {
		return h.formatter.Results(snap)
	}
	return h.formatter.Inputs(snap)
}
