package statistics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rpollard00/tcpt/statistics"
)

// record plays outcomes through the same record-then-advance cycle the prober uses.
func record(s *statistics.Statistics, outcomes ...statistics.Outcome) {
	for _, o := range outcomes {
		s.Record(o)
		s.Next()
	}
}

func TestNew(t *testing.T) {
	s := statistics.New()

	assert.Equal(t, uint64(1), s.Seq)
	assert.Zero(t, s.Average)
	assert.Zero(t, s.Max)
	assert.Zero(t, s.Lost)
	assert.Zero(t, s.Attempts())

	_, ok := s.Min()
	assert.False(t, ok)
	assert.Equal(t, statistics.MinSentinel, s.MinStr())
	assert.Equal(t, "340282366920938463463374607431768211455", s.MinStr())
}

func TestRecord_AverageRecurrence(t *testing.T) {
	steps := []struct {
		outcome statistics.Outcome
		average uint64
	}{
		{statistics.Success(10), 10}, // (0*0 + 10) / 1
		{statistics.Success(20), 15}, // (10*1 + 20) / 2
		{statistics.Failure(), 10},   // 15*2 / 3
		{statistics.Success(30), 15}, // (10*3 + 30) / 4
	}

	s := statistics.New()
	for i, step := range steps {
		s.Record(step.outcome)
		assert.Equal(t, step.average, s.Average, "average after step %d", i+1)
		s.Next()
	}

	assert.Equal(t, uint64(5), s.Seq)
	assert.Equal(t, uint64(1), s.Lost)
	assert.Equal(t, uint64(30), s.Max)
	assert.Equal(t, "10", s.MinStr())
}

func TestRecord_Truncation(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []statistics.Outcome
		want     uint64
	}{
		{
			name:     "odd pair truncates",
			outcomes: []statistics.Outcome{statistics.Success(1), statistics.Success(2)},
			want:     1,
		},
		{
			name: "repeated truncation drifts below true mean",
			outcomes: []statistics.Outcome{
				statistics.Success(5),
				statistics.Success(6),
				statistics.Success(6),
			},
			want: 5, // true mean 5.67; (5*1+6)/2 = 5, (5*2+6)/3 = 5
		},
		{
			name:     "loss dilutes toward zero",
			outcomes: []statistics.Outcome{statistics.Success(9), statistics.Failure(), statistics.Failure()},
			want:     2, // 9, then 9*1/2 = 4, then 4*2/3 = 2
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := statistics.New()
			record(&s, tt.outcomes...)
			assert.Equal(t, tt.want, s.Average)
		})
	}
}

func TestRecord_MinMaxOnlyOnSuccess(t *testing.T) {
	s := statistics.New()
	record(&s, statistics.Success(40), statistics.Failure(), statistics.Success(7), statistics.Failure(), statistics.Success(25))

	got, ok := s.Min()
	assert.True(t, ok)
	assert.Equal(t, uint64(7), got)
	assert.Equal(t, uint64(40), s.Max)
	assert.LessOrEqual(t, got, s.Max)
}

func TestRecord_AllFailures(t *testing.T) {
	s := statistics.New()
	record(&s, statistics.Failure(), statistics.Failure(), statistics.Failure())

	assert.Equal(t, uint64(4), s.Seq)
	assert.Equal(t, uint64(3), s.Lost)
	assert.Zero(t, s.Average)
	assert.Zero(t, s.Max)
	assert.Equal(t, statistics.MinSentinel, s.MinStr())
	_, ok := s.Min()
	assert.False(t, ok)
	assert.Zero(t, s.Successful())
}

func TestRecord_ZeroMillisecondSuccess(t *testing.T) {
	s := statistics.New()
	record(&s, statistics.Success(0))

	got, ok := s.Min()
	assert.True(t, ok, "a 0 ms success is still an observation")
	assert.Zero(t, got)
	assert.Equal(t, "0", s.MinStr())
}

func TestRecord_LostPlusSuccessfulEqualsAttempts(t *testing.T) {
	outcomes := []statistics.Outcome{
		statistics.Success(3),
		statistics.Failure(),
		statistics.Success(4),
		statistics.Success(5),
		statistics.Failure(),
	}

	s := statistics.New()
	var successes uint64
	for n, o := range outcomes {
		record(&s, o)
		if o.Success {
			successes++
		}

		attempts := uint64(n + 1)
		assert.Equal(t, attempts, s.Attempts())
		assert.Equal(t, s.Seq-1, s.Lost+s.Successful())
		assert.LessOrEqual(t, s.Lost, attempts)
		assert.Equal(t, successes, attempts-s.Lost)
	}
}

func TestDurationToMilliseconds(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want uint64
	}{
		{name: "zero", in: 0, want: 0},
		{name: "sub millisecond", in: 900 * time.Microsecond, want: 0},
		{name: "truncates", in: 12*time.Millisecond + 999*time.Microsecond, want: 12},
		{name: "seconds", in: 3 * time.Second, want: 3000},
		{name: "negative clamps", in: -time.Millisecond, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statistics.DurationToMilliseconds(tt.in))
		})
	}
}
