package scheduler

import (
	"context"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/taltal7719-art/4muluk-cloud-bot/internal/profile"
	"github.com/taltal7719-art/4muluk-cloud-bot/internal/report"
)

// Dispatcher delivers a finished report to a chat. Satisfied by the
// Telegram client; tests substitute fakes.
type Dispatcher interface {
	Send(ctx context.Context, chatID int64, text string) error
}

// DailyReporter fires once per calendar day at a configured local
// time-of-day, computes today's profile and dispatches the full report to
// a single destination. Two states: idle (waiting for the next fire time)
// and firing. Only one firing cycle is ever in flight; if the process is
// down at fire time that day's report is skipped, with no backfill.
type DailyReporter struct {
	agg         *profile.Aggregator
	formatter   *report.Formatter
	dispatcher  Dispatcher
	destination string // numeric chat id, may be empty
	hour        int
	minute      int
	loc         *time.Location
	logger      *logrus.Entry
	now         func() time.Time
}

// New creates a daily reporter. An empty destination makes every cycle a
// logged no-op rather than an error.
func New(agg *profile.Aggregator, formatter *report.Formatter, dispatcher Dispatcher, destination string, hour, minute int, loc *time.Location, logger *logrus.Entry) *DailyReporter {
	return &DailyReporter{
		agg:         agg,
		formatter:   formatter,
		dispatcher:  dispatcher,
		destination: destination,
		hour:        hour,
		minute:      minute,
		loc:         loc,
		logger:      logger,
		now:         time.Now,
	}
}

// Run waits for each day's fire time and fires, until the context is
// cancelled. The next cycle is not scheduled until the previous dispatch
// completes or fails, so duplicate daily reports cannot happen.
func (r *DailyReporter) Run(ctx context.Context) {
	r.logger.WithFields(logrus.Fields{
		"time":     r.fireTimeLabel(),
		"timezone": r.loc.String(),
	}).Info("Daily reporter started")

	for {
		next := r.nextFireTime(r.now().In(r.loc))
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			r.logger.Info("Daily reporter stopped")
			return
		case <-timer.C:
			r.FireNow(ctx)
		}
	}
}

// FireNow runs one firing cycle immediately. Failures abort this cycle
// only; the reporter stays alive for the next one.
func (r *DailyReporter) FireNow(ctx context.Context) {
	if r.destination == "" {
		r.logger.Info("No report destination configured, skipping cycle")
		return
	}

	chatID, err := strconv.ParseInt(r.destination, 10, 64)
	if err != nil {
		r.logger.WithField("destination", r.destination).Error("Destination is not a numeric chat id, skipping cycle")
		return
	}

	day := r.today()
	p, err := r.agg.Aggregate(day)
	if err != nil {
		r.logger.WithError(err).WithField("date", day.Format("2006-01-02")).Error("Daily aggregation failed, cycle abandoned")
		return
	}

	doc := r.formatter.FormatDay(p, report.DetailFull)
	if err := r.dispatcher.Send(ctx, chatID, doc.Render()); err != nil {
		r.logger.WithError(err).Error("Daily report dispatch failed, cycle abandoned")
		return
	}

	r.logger.WithFields(logrus.Fields{
		"date":    day.Format("2006-01-02"),
		"chat_id": chatID,
	}).Info("Daily report dispatched")
}

// nextFireTime returns the next occurrence of the configured local
// time-of-day strictly after now.
func (r *DailyReporter) nextFireTime(now time.Time) time.Time {
	candidate := time.Date(now.Year(), now.Month(), now.Day(), r.hour, r.minute, 0, 0, r.loc)
	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 0, 1)
	}
	return candidate
}

// today is the current calendar date in the reporter's timezone,
// normalized to midnight UTC for profile computation.
func (r *DailyReporter) today() time.Time {
	year, month, day := r.now().In(r.loc).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (r *DailyReporter) fireTimeLabel() string {
	return time.Date(0, 1, 1, r.hour, r.minute, 0, 0, time.UTC).Format("15:04")
}
