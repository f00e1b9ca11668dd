package module

import (
	"context"
	"time"

	perr "moodlog/internal/platform/errors"
	"moodlog/internal/platform/metrics"
	"moodlog/internal/services/api/moods/domain"
	moodssvc "moodlog/internal/services/api/moods/service"
)

// instrumented counts every service call by outcome
type instrumented struct{ next moodssvc.Service }

var _ moodssvc.Service = instrumented{}

// observe is deferred with a pointer so it sees the final error
func observe(op string, start time.Time, err *error) {
	outcome := metrics.OutcomeOK
	switch e := *err; {
	case e == nil:
	case perr.IsInfrastructure(e):
		outcome = metrics.OutcomeError
	default:
		outcome = metrics.OutcomeRejected
	}
	metrics.ObserveMoodOp(op, outcome, time.Since(start))
}

func (a instrumented) Submit(ctx context.Context, callerID string, in domain.SubmitInput) (_ string, err error) {
	defer observe("submit", time.Now(), &err)
	return a.next.Submit(ctx, callerID, in)
}

func (a instrumented) Get(ctx context.Context, callerID, id string) (_ domain.Entry, err error) {
	defer observe("get", time.Now(), &err)
	return a.next.Get(ctx, callerID, id)
}

func (a instrumented) Update(ctx context.Context, callerID, id string, in domain.UpdateInput) (_ domain.Entry, err error) {
	defer observe("update", time.Now(), &err)
	return a.next.Update(ctx, callerID, id, in)
}

func (a instrumented) Delete(ctx context.Context, callerID, id string) (err error) {
	defer observe("delete", time.Now(), &err)
	return a.next.Delete(ctx, callerID, id)
}

func (a instrumented) ListRecent(ctx context.Context, callerID string, windowDays int) (_ []domain.Entry, err error) {
	defer observe("list", time.Now(), &err)
	return a.next.ListRecent(ctx, callerID, windowDays)
}

func (a instrumented) Trend(ctx context.Context, callerID string, windowDays int) (_ domain.TrendResp, err error) {
	defer observe("trend", time.Now(), &err)
	return a.next.Trend(ctx, callerID, windowDays)
}
