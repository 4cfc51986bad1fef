package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"FundPicker/internal/bot"
	"FundPicker/internal/metrics"
	"FundPicker/internal/notifier"
	"FundPicker/internal/scheduler"
	"FundPicker/internal/session"

	"github.com/spf13/cobra"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Serve recommendations over Telegram",
	Long: `Bot long-polls the Telegram Bot API and keeps one session per chat.

Idle sessions are swept on session.sweep_cron. When metrics.addr is set,
Prometheus metrics are served on /metrics.

Example:
  TELEGRAM_BOT_TOKEN=123:abc fundpicker bot -c configs/config.yaml`,
	RunE: runBot,
}

func init() {
	rootCmd.AddCommand(botCmd)
}

func runBot(cmd *cobra.Command, args []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	if err := a.cfg.ValidateBot(); err != nil {
		return err
	}
	a.log.Info().Int("funds", len(a.catalog)).Msg("FundPicker bot starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := session.NewStore(a.catalog, a.engine, a.cfg.SessionTTL(), a.log)
	m := metrics.New(store.Len)
	if a.cfg.Metrics.Addr != "" {
		go func() {
			if err := m.Serve(ctx, a.cfg.Metrics.Addr, a.log); err != nil {
				a.log.Error().Err(err).Msg("metrics server")
			}
		}()
	}

	sched := scheduler.NewScheduler(store, a.log)
	sched.OnSweep = m.ObserveSweep
	if a.cfg.SessionTTL() > 0 {
		if err := sched.RegisterSweep(a.cfg.Session.SweepCron); err != nil {
			return err
		}
	}
	sched.Start()
	defer sched.Stop()

	tn := notifier.NewTelegramNotifier(a.cfg.Telegram.BotToken, notifier.TelegramOptions{
		ProxyURL:     a.cfg.Proxy,
		SendPerSec:   a.cfg.Telegram.SendPerSec,
		AllowedChats: a.cfg.AllowedChats(),
	}, a.log)
	h := bot.NewHandler(store, a.catalog, a.engine, notifier.HTMLFormatter{Currency: a.cfg.Display.Currency}, m, a.log)

	go tn.StartPolling(ctx, h.HandleCommand, a.cfg.Telegram.SendRetries)
	a.log.Info().Msg("Telegram polling started. Press Ctrl+C to stop.")

	<-ctx.Done()
	a.log.Info().Msg("shutdown signal received, stopping")
	return nil
}
