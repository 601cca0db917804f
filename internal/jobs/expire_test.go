package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/testutil"
)

type fakeReservations struct {
	now     time.Time
	slot    time.Duration
	expired int64
	err     error
}

func (f *fakeReservations) ExpirePast(_ context.Context, now time.Time, slot time.Duration) (int64, error) {
	f.now, f.slot = now, slot
	return f.expired, f.err
}

type fakeTables struct {
	date     time.Time
	called   bool
	released int64
}

func (f *fakeTables) ReleaseIdle(_ context.Context, date time.Time) (int64, error) {
	f.date, f.called = date, true
	return f.released, nil
}

type directTx struct{}

func (directTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestExpireReservations_Run(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	reservations := &fakeReservations{expired: 2}
	tables := &fakeTables{released: 1}
	log := &testutil.Logger{}

	job := NewExpireReservations(reservations, tables, directTx{}, time.Hour, moscow, log).
		WithTimeProvider(testutil.FixedTime{T: time.Date(2030, 6, 1, 16, 30, 0, 0, time.UTC)})

	require.NoError(t, job.Run(context.Background()))

	// 16:30 UTC - 19:30 по времени ресторана
	assert.Equal(t, time.Date(2030, 6, 1, 19, 30, 0, 0, time.UTC), reservations.now)
	assert.Equal(t, time.Hour, reservations.slot)
	assert.True(t, tables.called)
	assert.Equal(t, reservations.now, tables.date)
	assert.True(t, log.Contains("expired=2 reservations, released=1 tables"))
}

func TestExpireReservations_Run_Quiet(t *testing.T) {
	log := &testutil.Logger{}
	job := NewExpireReservations(&fakeReservations{}, &fakeTables{}, directTx{}, time.Hour, time.UTC, log)

	require.NoError(t, job.Run(context.Background()))
	assert.Empty(t, log.Lines())
}

func TestExpireReservations_Run_RepositoryError(t *testing.T) {
	tables := &fakeTables{}
	job := NewExpireReservations(&fakeReservations{err: errors.New("boom")}, tables, directTx{}, time.Hour, time.UTC, &testutil.Logger{})

	err := job.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExpire)
	assert.False(t, tables.called)
}

type countingJob struct {
	runs chan struct{}
}

func (j *countingJob) Name() string { return "counting" }

func (j *countingJob) Run(context.Context) error {
	select {
	case j.runs <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler_RunsJob(t *testing.T) {
	s, err := NewScheduler(&testutil.Logger{})
	require.NoError(t, err)

	job := &countingJob{runs: make(chan struct{}, 1)}
	require.NoError(t, s.Every(context.Background(), 20*time.Millisecond, job))

	s.Start()
	defer func() { assert.NoError(t, s.Shutdown()) }()

	select {
	case <-job.runs:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run")
	}
}
