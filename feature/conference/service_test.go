package conference

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"asset-audit/core/apperror"
	"asset-audit/core/database"
	"asset-audit/feature/assets"
	"asset-audit/feature/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	ownerID   uint = 1
	brunoID   uint = 2
	carlaID   uint = 3
	unknownID uint = 99
)

type sentMessage struct {
	Recipients []string
	Subject    string
	Body       string
}

// recordingSink remembers every message. When block is set it waits for the context.
type recordingSink struct {
	mu    sync.Mutex
	sent  []sentMessage
	err   error
	block bool
}

func (s *recordingSink) Send(ctx context.Context, recipients []string, subject, body string) error {
	if s.block {
		<-ctx.Done()
		return ctx.Err()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, sentMessage{Recipients: recipients, Subject: subject, Body: body})
	return s.err
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

// stepClock advances one second on every call.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

type fixture struct {
	db      *gorm.DB
	service *Service
	sink    *recordingSink
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	models := append([]any{&assets.Asset{}, &users.User{}}, Models()...)
	require.NoError(t, database.Migrate(db, models...))

	registry := []assets.Asset{
		{Code: "A1", Location: "RoomX", Description: "Desk"},
		{Code: "A2", Location: "RoomX", Description: "Chair"},
		{Code: "A3", Location: "RoomY", Description: "Projector"},
		{Code: "A4", Location: "RoomZ", Description: "Printer"},
	}
	require.NoError(t, db.Create(&registry).Error)

	people := []users.User{
		{Email: "ana@example.com", Badge: "1001", FirstName: "Ana"},
		{Email: "bruno@example.com", Badge: "1002", FirstName: "Bruno"},
		{Email: "carla@example.com", Badge: "1003", FirstName: "Carla"},
	}
	require.NoError(t, db.Create(&people).Error)
	return db
}

func setupFixture(t *testing.T, sink *recordingSink) *fixture {
	t.Helper()
	db := setupTestDB(t)
	if sink == nil {
		sink = &recordingSink{}
	}
	svc := NewService(Dependencies{
		Repository:    NewGormRepository(db),
		Registry:      assets.NewRepository(db),
		Identity:      users.NewDirectory(db),
		Sink:          sink,
		Clock:         &stepClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)},
		NotifyTimeout: 50 * time.Millisecond,
		Logger:        zap.NewNop(),
	})
	return &fixture{db: db, service: svc, sink: sink}
}

func (f *fixture) create(t *testing.T, creator uint) *Conference {
	t.Helper()
	conf, err := f.service.Create(context.Background(), CreateInput{
		Title:          "Quarterly audit",
		TargetLocation: "RoomX",
		CreatorID:      creator,
	})
	require.NoError(t, err)
	return conf
}

func TestService_Create(t *testing.T) {
	f := setupFixture(t, nil)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		desc := "  east wing "
		conf, err := f.service.Create(ctx, CreateInput{Title: " Audit ", TargetLocation: "RoomX", Description: &desc, CreatorID: ownerID})
		require.NoError(t, err)
		assert.NotEmpty(t, conf.ID)
		assert.Equal(t, "Audit", conf.Title)
		assert.Equal(t, StatusCreated, conf.Status)
		require.NotNil(t, conf.Description)
		assert.Equal(t, "east wing", *conf.Description)
		assert.Nil(t, conf.FinalizedAt)

		stored, err := NewGormRepository(f.db).FindByID(ctx, conf.ID)
		require.NoError(t, err)
		assert.Equal(t, conf.Title, stored.Title)
	})

	tests := []struct {
		name string
		in   CreateInput
	}{
		{"Missing Title", CreateInput{TargetLocation: "RoomX", CreatorID: ownerID}},
		{"Missing Location", CreateInput{Title: "Audit", TargetLocation: "  ", CreatorID: ownerID}},
		{"Missing Creator", CreateInput{Title: "Audit", TargetLocation: "RoomX"}},
		{"Title Too Long", CreateInput{Title: strings.Repeat("t", MaxTitleLength+1), TargetLocation: "RoomX", CreatorID: ownerID}},
		{"Location Too Long", CreateInput{Title: "Audit", TargetLocation: strings.Repeat("l", MaxLocationLength+1), CreatorID: ownerID}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.Create(ctx, tt.in)
			assert.True(t, errors.Is(err, apperror.ErrValidation), "got %v", err)
		})
	}
}

func TestService_AddParticipant(t *testing.T) {
	f := setupFixture(t, nil)
	ctx := context.Background()
	conf := f.create(t, ownerID)

	first, err := f.service.AddParticipant(ctx, conf.ID, "bruno@example.com")
	require.NoError(t, err)
	require.NotNil(t, first.ParticipationID)
	assert.False(t, first.Owner)

	t.Run("Same User Twice", func(t *testing.T) {
		again, err := f.service.AddParticipant(ctx, conf.ID, "1002")
		require.NoError(t, err)
		assert.Equal(t, *first.ParticipationID, *again.ParticipationID)
		assert.Equal(t, first.JoinedAt, again.JoinedAt)

		var rows int64
		require.NoError(t, f.db.Model(&Participation{}).Where("conference_id = ?", conf.ID).Count(&rows).Error)
		assert.Equal(t, int64(1), rows)
	})

	t.Run("Owner Is Derived", func(t *testing.T) {
		p, err := f.service.AddParticipant(ctx, conf.ID, "ana@example.com")
		require.NoError(t, err)
		assert.True(t, p.Owner)
		assert.Nil(t, p.ParticipationID)

		detail, err := f.service.Get(ctx, conf.ID)
		require.NoError(t, err)
		require.Len(t, detail.Participants, 2)
		assert.True(t, detail.Participants[0].Owner)
		assert.Equal(t, brunoID, detail.Participants[1].UserID)
	})

	t.Run("Unknown User", func(t *testing.T) {
		_, err := f.service.AddParticipant(ctx, conf.ID, "nobody@example.com")
		assert.True(t, errors.Is(err, apperror.ErrNotFound))
	})

	t.Run("Unknown Conference", func(t *testing.T) {
		_, err := f.service.AddParticipant(ctx, "missing", "1003")
		assert.True(t, errors.Is(err, apperror.ErrNotFound))
	})

	t.Run("Finalized Conference", func(t *testing.T) {
		closed := f.create(t, ownerID)
		_, err := f.service.Finalize(ctx, closed.ID)
		require.NoError(t, err)

		_, err = f.service.AddParticipant(ctx, closed.ID, "1003")
		assert.True(t, errors.Is(err, apperror.ErrInvalidState))
	})
}

func TestService_SubmitItem(t *testing.T) {
	f := setupFixture(t, nil)
	ctx := context.Background()
	conf := f.create(t, ownerID)

	t.Run("Foreign Asset", func(t *testing.T) {
		item, err := f.service.SubmitItem(ctx, SubmitItemInput{ConferenceID: conf.ID, Code: "A3", DeclaredLocation: "RoomX", UserID: ownerID})
		require.NoError(t, err)
		assert.False(t, item.Belongs)
		require.NotNil(t, item.ActualLocation)
		assert.Equal(t, "RoomY", *item.ActualLocation)
		assert.Equal(t, "RoomX", item.ScannedLocation)
	})

	t.Run("Declared Location Defaults To Target", func(t *testing.T) {
		item, err := f.service.SubmitItem(ctx, SubmitItemInput{ConferenceID: conf.ID, Code: " A1 ", UserID: ownerID})
		require.NoError(t, err)
		assert.Equal(t, "A1", item.Code)
		assert.Equal(t, "RoomX", item.ScannedLocation)
		assert.True(t, item.Belongs)
		assert.Nil(t, item.ActualLocation)
	})

	t.Run("Cross Location Declaration", func(t *testing.T) {
		item, err := f.service.SubmitItem(ctx, SubmitItemInput{ConferenceID: conf.ID, Code: "A4", DeclaredLocation: "RoomZ", UserID: ownerID})
		require.NoError(t, err)
		assert.True(t, item.Belongs)
	})

	t.Run("Duplicate For Same User", func(t *testing.T) {
		_, err := f.service.SubmitItem(ctx, SubmitItemInput{ConferenceID: conf.ID, Code: "A1", UserID: ownerID})
		assert.True(t, errors.Is(err, apperror.ErrConflict), "got %v", err)
	})

	t.Run("Same Code Other User", func(t *testing.T) {
		_, err := f.service.SubmitItem(ctx, SubmitItemInput{ConferenceID: conf.ID, Code: "A1", UserID: brunoID})
		assert.NoError(t, err)
	})

	errorCases := []struct {
		name string
		in   SubmitItemInput
		want error
	}{
		{"Unknown Code", SubmitItemInput{ConferenceID: conf.ID, Code: "UNKNOWN", UserID: ownerID}, apperror.ErrNotFound},
		{"Blank Code", SubmitItemInput{ConferenceID: conf.ID, Code: " ", UserID: ownerID}, apperror.ErrValidation},
		{"Missing User", SubmitItemInput{ConferenceID: conf.ID, Code: "A2"}, apperror.ErrValidation},
		{"Declared Location Too Long", SubmitItemInput{ConferenceID: conf.ID, Code: "A2", DeclaredLocation: strings.Repeat("l", MaxLocationLength+1), UserID: ownerID}, apperror.ErrValidation},
		{"Unknown Conference", SubmitItemInput{ConferenceID: "missing", Code: "A2", UserID: ownerID}, apperror.ErrNotFound},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.SubmitItem(ctx, tt.in)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	t.Run("Finalized Conference", func(t *testing.T) {
		_, err := f.service.Finalize(ctx, conf.ID)
		require.NoError(t, err)

		_, err = f.service.SubmitItem(ctx, SubmitItemInput{ConferenceID: conf.ID, Code: "A2", UserID: ownerID})
		assert.True(t, errors.Is(err, apperror.ErrInvalidState), "got %v", err)
	})
}

func TestService_SubmitItem_ConcurrentDuplicates(t *testing.T) {
	f := setupFixture(t, nil)
	ctx := context.Background()
	conf := f.create(t, ownerID)

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.service.SubmitItem(ctx, SubmitItemInput{ConferenceID: conf.ID, Code: "A2", UserID: brunoID})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, apperror.ErrConflict):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, conflicts)

	var rows int64
	require.NoError(t, f.db.Model(&Item{}).Where("conference_id = ? AND code = ?", conf.ID, "A2").Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestService_Status(t *testing.T) {
	f := setupFixture(t, nil)
	ctx := context.Background()
	conf := f.create(t, ownerID)

	for _, code := range []string{"A1", "A3"} {
		_, err := f.service.SubmitItem(ctx, SubmitItemInput{ConferenceID: conf.ID, Code: code, UserID: ownerID})
		require.NoError(t, err)
	}

	summary, err := f.service.Status(ctx, conf.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCreated, summary.Status)
	assert.Equal(t, 2, summary.ItemCount)
	assert.Equal(t, 2, summary.TotalExpected)
	assert.Equal(t, 1, summary.TotalVerified)
	assert.Equal(t, 1, summary.TotalMissing)
	assert.Equal(t, 1, summary.TotalForeign)

	_, err = f.service.Status(ctx, "missing")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestService_Finalize(t *testing.T) {
	f := setupFixture(t, nil)
	ctx := context.Background()
	conf := f.create(t, ownerID)

	_, err := f.service.AddParticipant(ctx, conf.ID, "1002")
	require.NoError(t, err)
	for _, code := range []string{"A1", "A3"} {
		_, err := f.service.SubmitItem(ctx, SubmitItemInput{ConferenceID: conf.ID, Code: code, DeclaredLocation: "RoomX", UserID: brunoID})
		require.NoError(t, err)
	}

	result, err := f.service.Finalize(ctx, conf.ID)
	require.NoError(t, err)
	assert.True(t, result.Delivered)
	assert.Empty(t, result.DeliveryError)
	assert.Equal(t, StatusFinalized, result.Conference.Status)
	require.NotNil(t, result.Conference.FinalizedAt)
	assert.ElementsMatch(t, []string{"ana@example.com", "bruno@example.com"}, result.Recipients)

	require.NotNil(t, result.Report)
	assert.Equal(t, 1, result.Report.TotalVerified)
	assert.Equal(t, 1, result.Report.TotalMissing)
	require.Len(t, result.Report.Foreign, 1)
	assert.Equal(t, "RoomY", result.Report.Foreign[0].Location)
	assert.Equal(t, 1, result.Report.Foreign[0].Count)
	assert.Equal(t, "Projector", result.Report.Foreign[0].Items[0].Description)

	require.Equal(t, 1, f.sink.count())
	assert.Contains(t, f.sink.sent[0].Subject, "Quarterly audit")
	assert.Contains(t, f.sink.sent[0].Body, "RoomY (1)")
	assert.Contains(t, f.sink.sent[0].Body, "Created by: Ana")
	assert.Equal(t, "Ana", result.Report.CreatorName)

	t.Run("Second Finalize", func(t *testing.T) {
		_, err := f.service.Finalize(ctx, conf.ID)
		assert.True(t, errors.Is(err, apperror.ErrInvalidState))
		assert.Equal(t, 1, f.sink.count())
	})

	t.Run("Unknown Conference", func(t *testing.T) {
		_, err := f.service.Finalize(ctx, "missing")
		assert.True(t, errors.Is(err, apperror.ErrNotFound))
	})
}

func TestService_Finalize_Concurrent(t *testing.T) {
	f := setupFixture(t, nil)
	ctx := context.Background()
	conf := f.create(t, ownerID)

	const callers = 5
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		wins    int
		invalid int
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.service.Finalize(ctx, conf.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, apperror.ErrInvalidState):
				invalid++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, callers-1, invalid)
	assert.Equal(t, 1, f.sink.count())
}

func TestService_Finalize_DeliveryFailure(t *testing.T) {
	tests := []struct {
		name string
		sink *recordingSink
	}{
		{"Sink Error", &recordingSink{err: apperror.Dependency("put report", errors.New("bucket offline"))}},
		{"Sink Timeout", &recordingSink{block: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupFixture(t, tt.sink)
			ctx := context.Background()
			conf := f.create(t, ownerID)

			result, err := f.service.Finalize(ctx, conf.ID)
			require.NoError(t, err)
			assert.False(t, result.Delivered)
			assert.NotEmpty(t, result.DeliveryError)

			stored, err := NewGormRepository(f.db).FindByID(ctx, conf.ID)
			require.NoError(t, err)
			assert.Equal(t, StatusFinalized, stored.Status)
		})
	}
}

// unreadableRepository fails every read once a conference has been finalized.
type unreadableRepository struct {
	Repository
	finalized bool
}

func (r *unreadableRepository) Finalize(ctx context.Context, id string, at time.Time) error {
	if err := r.Repository.Finalize(ctx, id, at); err != nil {
		return err
	}
	r.finalized = true
	return nil
}

func (r *unreadableRepository) FindByID(ctx context.Context, id string) (*Conference, error) {
	if r.finalized {
		return nil, apperror.Dependency("find conference", errors.New("connection reset"))
	}
	return r.Repository.FindByID(ctx, id)
}

func TestService_Finalize_ReadAfterCommitFails(t *testing.T) {
	db := setupTestDB(t)
	sink := &recordingSink{}
	repo := &unreadableRepository{Repository: NewGormRepository(db)}
	svc := NewService(Dependencies{
		Repository: repo,
		Registry:   assets.NewRepository(db),
		Identity:   users.NewDirectory(db),
		Sink:       sink,
		Clock:      &stepClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)},
		Logger:     zap.NewNop(),
	})
	ctx := context.Background()

	conf, err := svc.Create(ctx, CreateInput{Title: "Audit", TargetLocation: "RoomX", CreatorID: ownerID})
	require.NoError(t, err)

	result, err := svc.Finalize(ctx, conf.ID)
	require.NoError(t, err)
	assert.Equal(t, conf.ID, result.Conference.ID)
	assert.Equal(t, StatusFinalized, result.Conference.Status)
	require.NotNil(t, result.Conference.FinalizedAt)
	assert.False(t, result.Delivered)
	assert.Contains(t, result.DeliveryError, "connection reset")
	assert.Equal(t, 0, sink.count())

	stored, err := NewGormRepository(db).FindByID(ctx, conf.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusFinalized, stored.Status)
}

func TestService_History(t *testing.T) {
	f := setupFixture(t, nil)
	ctx := context.Background()

	owned := f.create(t, ownerID)
	joined := f.create(t, carlaID)
	_, err := f.service.AddParticipant(ctx, joined.ID, "ana@example.com")
	require.NoError(t, err)
	f.create(t, brunoID)

	history, err := f.service.History(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, joined.ID, history[0].ID)
	assert.False(t, history[0].Owner)
	assert.Equal(t, owned.ID, history[1].ID)
	assert.True(t, history[1].Owner)

	empty, err := f.service.History(ctx, unknownID)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = f.service.History(ctx, 0)
	assert.True(t, errors.Is(err, apperror.ErrValidation))
}
