package bot

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/taltal7719-art/4muluk-cloud-bot/internal/profile"
	"github.com/taltal7719-art/4muluk-cloud-bot/internal/report"
	"github.com/taltal7719-art/4muluk-cloud-bot/pkg/config"
)

const helpText = `Hi! I am the *4 Muluk* day-profile bot.

Commands:
/day — profile for today
/day YYYY-MM-DD — profile for a specific date
/week — 7-day summary starting today
/week YYYY-MM-DD — 7-day summary starting at a date
/menu — quick navigation buttons
/morning_test — preview the scheduled morning report

The bot runs in the cloud 24/7.`

const computeFailedText = "Could not compute the day profile. Try again later."

// transport is the Telegram client surface the bot uses. Satisfied by
// *Client; tests substitute fakes.
type transport interface {
	GetUpdates(ctx context.Context, offset int, timeout time.Duration) ([]Update, error)
	SendMessage(ctx context.Context, chatID int64, text string, keyboard [][]InlineButton) error
	EditMessageText(ctx context.Context, chatID int64, messageID int, text string, keyboard [][]InlineButton) error
	AnswerCallback(ctx context.Context, callbackQueryID, text string) error
}

// Bot runs the long-poll loop and dispatches commands and callbacks.
// Handlers run concurrently; all profile computation is pure, so there is
// no shared mutable state to guard.
type Bot struct {
	client      transport
	agg         *profile.Aggregator
	formatter   *report.Formatter
	router      *Router
	pollTimeout time.Duration
	logger      *logrus.Entry
	now         func() time.Time
}

// New creates the bot.
func New(cfg *config.TelegramConfig, client transport, agg *profile.Aggregator, formatter *report.Formatter, logger *logrus.Entry) *Bot {
	now := time.Now
	return &Bot{
		client:      client,
		agg:         agg,
		formatter:   formatter,
		router:      NewRouter(agg, formatter),
		pollTimeout: cfg.PollTimeout,
		logger:      logger,
		now:         now,
	}
}

// Run polls for updates until the context is cancelled. Each update is
// handled on its own goroutine so a slow handler never blocks the loop.
func (b *Bot) Run(ctx context.Context) {
	offset := 0
	b.logger.Info("Telegram polling started")

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Telegram polling stopped")
			return
		default:
		}

		updates, err := b.client.GetUpdates(ctx, offset, b.pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				b.logger.Info("Telegram polling stopped")
				return
			}
			b.logger.WithError(err).Error("Poll failed")
			select {
			case <-ctx.Done():
				return
			case <-time.After(5 * time.Second):
			}
			continue
		}

		for _, u := range updates {
			if u.UpdateID >= offset {
				offset = u.UpdateID + 1
			}
			update := u
			go b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, u Update) {
	switch {
	case u.CallbackQuery != nil:
		b.handleCallback(ctx, u.CallbackQuery)
	case u.Message != nil:
		b.handleMessage(ctx, u.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *Message) {
	command, arg := splitCommand(msg.Text)

	switch command {
	case "/start":
		b.send(ctx, msg.Chat.ID, helpText, nil)
	case "/day":
		b.handleDay(ctx, msg.Chat.ID, arg)
	case "/week":
		b.handleWeek(ctx, msg.Chat.ID, arg)
	case "/menu":
		b.send(ctx, msg.Chat.ID, "Choose a view:", MenuButtons(b.now))
	case "/morning_test":
		b.handleMorningTest(ctx, msg.Chat.ID)
	}
}

// handleDay renders the full day view with navigation buttons attached.
func (b *Bot) handleDay(ctx context.Context, chatID int64, arg string) {
	date, err := ResolveDate(arg, b.now)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			b.send(ctx, chatID, "Date must be in YYYY-MM-DD format, for example:\n/day 2025-11-30", nil)
			return
		}
		b.logger.WithError(err).Error("Date resolution failed")
		return
	}

	p, err := b.agg.Aggregate(date)
	if err != nil {
		b.logger.WithError(err).WithField("date", date.Format(dateLayout)).Error("Day aggregation failed")
		b.send(ctx, chatID, computeFailedText, nil)
		return
	}

	doc := b.formatter.FormatDay(p, report.DetailFull)
	b.send(ctx, chatID, doc.Render(), DayNavButtons(date))
}

func (b *Bot) handleWeek(ctx context.Context, chatID int64, arg string) {
	start, err := ResolveDate(arg, b.now)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			b.send(ctx, chatID, "Date must be in YYYY-MM-DD format, for example:\n/week 2025-11-30", nil)
			return
		}
		b.logger.WithError(err).Error("Date resolution failed")
		return
	}

	profiles, err := b.agg.AggregateWeek(start)
	if err != nil {
		b.logger.WithError(err).WithField("start", start.Format(dateLayout)).Error("Week aggregation failed")
		b.send(ctx, chatID, computeFailedText, nil)
		return
	}

	doc := b.formatter.FormatWeek(profiles)
	b.send(ctx, chatID, doc.Render(), nil)
}

// handleMorningTest renders exactly what the daily scheduler would send.
func (b *Bot) handleMorningTest(ctx context.Context, chatID int64) {
	p, err := b.agg.Aggregate(today(b.now))
	if err != nil {
		b.logger.WithError(err).Error("Morning test aggregation failed")
		b.send(ctx, chatID, computeFailedText, nil)
		return
	}

	doc := b.formatter.FormatDay(p, report.DetailFull)
	b.send(ctx, chatID, doc.Render(), nil)
}

// handleCallback decodes the token and edits the originating message in
// place. A new message is never sent from the callback path.
func (b *Bot) handleCallback(ctx context.Context, cq *CallbackQuery) {
	token := DecodeToken(cq.Data, b.now)

	doc, buttons, ok, err := b.router.Transition(token)
	if !ok {
		// Unknown action: acknowledge the press, render nothing.
		if err := b.client.AnswerCallback(ctx, cq.ID, ""); err != nil {
			b.logger.WithError(err).Warn("Callback ack failed")
		}
		return
	}
	if err != nil {
		b.logger.WithError(err).WithField("action", string(token.Action)).Error("Callback aggregation failed")
		if err := b.client.AnswerCallback(ctx, cq.ID, computeFailedText); err != nil {
			b.logger.WithError(err).Warn("Callback ack failed")
		}
		return
	}

	if err := b.client.AnswerCallback(ctx, cq.ID, ""); err != nil {
		b.logger.WithError(err).Warn("Callback ack failed")
	}

	if cq.Message == nil {
		b.logger.Warn("Callback without originating message, nothing to edit")
		return
	}

	if err := b.client.EditMessageText(ctx, cq.Message.Chat.ID, cq.Message.MessageID, doc.Render(), buttons); err != nil {
		b.logger.WithError(err).Error("Message edit failed")
	}
}

func (b *Bot) send(ctx context.Context, chatID int64, text string, keyboard [][]InlineButton) {
	if err := b.client.SendMessage(ctx, chatID, text, keyboard); err != nil {
		b.logger.WithError(err).Error("Message send failed")
	}
}

// splitCommand splits "/day 2025-11-30" into the command and its argument,
// stripping the @BotName suffix used in group chats.
func splitCommand(text string) (command, arg string) {
	text = strings.TrimSpace(text)
	command, arg, _ = strings.Cut(text, " ")
	if at := strings.Index(command, "@"); at > 0 {
		command = command[:at]
	}
	return command, strings.TrimSpace(arg)
}
