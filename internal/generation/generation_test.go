package generation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"alcyxob/fitplanner/internal/domain"
	"alcyxob/fitplanner/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeJobClient struct {
	mu        sync.Mutex
	statuses  []JobStatus
	submitErr error
	statusErr error
	result    string
	resultErr error

	submitted   []string
	statusCalls int
	onStatus    func(call int)
}

func (f *fakeJobClient) Submit(_ context.Context, prompt string) (JobHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitErr != nil {
		return JobHandle{}, f.submitErr
	}
	f.submitted = append(f.submitted, prompt)
	return JobHandle{ThreadID: "thread_1", RunID: "run_1"}, nil
}

func (f *fakeJobClient) Status(_ context.Context, _ JobHandle) (JobStatus, error) {
	f.mu.Lock()
	f.statusCalls++
	call := f.statusCalls
	hook := f.onStatus
	f.mu.Unlock()

	if hook != nil {
		hook(call)
	}
	if f.statusErr != nil {
		return "", f.statusErr
	}
	if call > len(f.statuses) {
		return JobPending, nil
	}
	return f.statuses[call-1], nil
}

func (f *fakeJobClient) Result(_ context.Context, _ JobHandle) (string, error) {
	return f.result, f.resultErr
}

func testProfile() *domain.Profile {
	return &domain.Profile{
		Name:               "Alex",
		Age:                30,
		Gender:             "female",
		WeightKg:           65.5,
		HeightCm:           170,
		ActivityLevel:      domain.ActivityModerate,
		WorkoutDaysPerWeek: 4,
	}
}

func testPrefs() domain.GenerationPreferences {
	return domain.GenerationPreferences{
		FitnessLevel:    domain.FitnessIntermediate,
		Goals:           "build strength",
		TimeAvailable:   45,
		Equipment:       domain.EquipmentBasic,
		CustomEquipment: []string{"kettlebell", "bench"},
	}
}

func fastPoller(maxAttempts int) Poller {
	return Poller{Interval: time.Millisecond, MaxAttempts: maxAttempts}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(testProfile(), testPrefs())

	assert.Contains(t, prompt, "Name: Alex\n")
	assert.Contains(t, prompt, "Weight: 65.5 kg\n")
	assert.Contains(t, prompt, "Height: 170 cm\n")
	assert.Contains(t, prompt, "Health Conditions: None\n")
	assert.Contains(t, prompt, "Dietary Restrictions: None\n")
	assert.Contains(t, prompt, "Time Available: 45 minutes\n")
	assert.Contains(t, prompt, "Equipment: basic (Additional: kettlebell, bench)\n")
	for _, section := range RequiredSections {
		assert.Contains(t, prompt, "### "+section+"\n")
	}
}

func TestBuildPrompt_KeepsNotes(t *testing.T) {
	profile := testProfile()
	profile.HealthConditions = "knee injury"

	prompt := BuildPrompt(profile, domain.GenerationPreferences{Equipment: domain.EquipmentMinimal})

	assert.Contains(t, prompt, "Health Conditions: knee injury\n")
	assert.Contains(t, prompt, "Equipment: minimal\n")
}

func TestPoller_CompletesAfterPending(t *testing.T) {
	client := &fakeJobClient{statuses: []JobStatus{JobPending, JobPending, JobCompleted}}

	state, err := fastPoller(10).Wait(context.Background(), client, JobHandle{})

	require.NoError(t, err)
	assert.Equal(t, StateCompleted, state)
	assert.Equal(t, 3, client.statusCalls)
}

func TestPoller_Failed(t *testing.T) {
	client := &fakeJobClient{statuses: []JobStatus{JobPending, JobFailed}}

	state, err := fastPoller(10).Wait(context.Background(), client, JobHandle{})

	require.NoError(t, err)
	assert.Equal(t, StateFailed, state)
}

func TestPoller_TimesOutAfterMaxAttempts(t *testing.T) {
	client := &fakeJobClient{}

	state, err := fastPoller(4).Wait(context.Background(), client, JobHandle{})

	require.NoError(t, err)
	assert.Equal(t, StateTimedOut, state)
	assert.Equal(t, 4, client.statusCalls)
}

func TestPoller_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	client := &fakeJobClient{onStatus: func(call int) {
		if call == 1 {
			cancel()
		}
	}}

	state, err := Poller{Interval: time.Hour, MaxAttempts: 100}.Wait(ctx, client, JobHandle{})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StatePending, state)
	assert.Equal(t, 1, client.statusCalls, "cancel during the wait stops before the next poll")
}

func TestNewPoller_Defaults(t *testing.T) {
	p := NewPoller(0, -1)

	assert.Equal(t, DefaultPollInterval, p.Interval)
	assert.Equal(t, DefaultMaxPollAttempts, p.MaxAttempts)
}

func TestGenerator_Success(t *testing.T) {
	m := metrics.NewTestManager()
	client := &fakeJobClient{statuses: []JobStatus{JobPending, JobCompleted}, result: "### Weekly Workout Schedule"}
	g := NewGenerator(client, fastPoller(5), zap.NewNop(), m)

	text, err := g.Generate(context.Background(), testProfile(), testPrefs())

	require.NoError(t, err)
	assert.Equal(t, "### Weekly Workout Schedule", text)
	require.Len(t, client.submitted, 1)
	assert.Contains(t, client.submitted[0], "Goals: build strength")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterGenerations.WithLabelValues(metrics.OutcomeCompleted)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.GaugeGenerationsInFlight))
}

func TestGenerator_UnconfiguredFailsBeforeSubmit(t *testing.T) {
	m := metrics.NewTestManager()
	g := NewGenerator(nil, fastPoller(5), zap.NewNop(), m)

	_, err := g.Generate(context.Background(), testProfile(), testPrefs())

	require.ErrorIs(t, err, ErrMissingCredential)
	assert.False(t, g.Configured())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterGenerations.WithLabelValues(metrics.OutcomeUnconfigured)))
}

func TestGenerator_ErrorKinds(t *testing.T) {
	tests := []struct {
		name    string
		client  *fakeJobClient
		wantErr error
		outcome string
	}{
		{
			name:    "job failed",
			client:  &fakeJobClient{statuses: []JobStatus{JobFailed}},
			wantErr: ErrJobFailed,
			outcome: metrics.OutcomeFailed,
		},
		{
			name:    "timed out",
			client:  &fakeJobClient{},
			wantErr: ErrTimedOut,
			outcome: metrics.OutcomeTimedOut,
		},
		{
			name:    "submit transport error",
			client:  &fakeJobClient{submitErr: errors.New("connection refused")},
			wantErr: ErrTransport,
			outcome: metrics.OutcomeTransport,
		},
		{
			name:    "status transport error",
			client:  &fakeJobClient{statusErr: errors.New("EOF")},
			wantErr: ErrTransport,
			outcome: metrics.OutcomeTransport,
		},
		{
			name:    "rejected credential",
			client:  &fakeJobClient{submitErr: ErrMissingCredential},
			wantErr: ErrMissingCredential,
			outcome: metrics.OutcomeUnconfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := metrics.NewTestManager()
			g := NewGenerator(tt.client, fastPoller(3), zap.NewNop(), m)

			text, err := g.Generate(context.Background(), testProfile(), testPrefs())

			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, text)
			assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterGenerations.WithLabelValues(tt.outcome)))
		})
	}
}

func TestGenerator_CallerGoneReturnsContextError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	client := &fakeJobClient{onStatus: func(int) { cancel() }}
	m := metrics.NewTestManager()
	g := NewGenerator(client, Poller{Interval: time.Hour, MaxAttempts: 10}, zap.NewNop(), m)

	_, err := g.Generate(ctx, testProfile(), testPrefs())

	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrTransport)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterGenerations.WithLabelValues(metrics.OutcomeCanceled)))
}
