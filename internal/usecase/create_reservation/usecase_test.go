package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
	locationRepo "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/infra/storage/location"
	optionRepo "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/infra/storage/rentaloption"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/ptr"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/types"
)

/* ==================== MOCKS ==================== */

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	args := m.Called(ctx, res)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) GetByJetSkiWithFilter(ctx context.Context, filter domain.JetSkiReservationsFilter) ([]*domain.Reservation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

type MockJetSkiRepository struct {
	mock.Mock
}

func (m *MockJetSkiRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.JetSki, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.JetSki), args.Error(1)
}

type MockRentalOptionRepository struct {
	mock.Mock
}

func (m *MockRentalOptionRepository) GetByID(ctx context.Context, id int64) (*domain.RentalOption, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalOption), args.Error(1)
}

type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

// fakeTxManager выполняет callback напрямую, без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fixedClock фиксированный источник времени
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

/* ==================== HELPERS ==================== */

var (
	testDate = time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
)

func testSchedule() domain.ScheduleConfig {
	return domain.ScheduleConfig{
		OpeningTime:            "07:00",
		ClosingTime:            "19:00",
		BufferMinutes:          5,
		SlotGranularityMinutes: 5,
	}
}

func regularOption() *domain.RentalOption {
	return &domain.RentalOption{
		ID:              10,
		Type:            domain.OptionRegular,
		Name:            "Час аренды",
		DurationMinutes: 60,
		Price:           120,
		IsAvailable:     true,
	}
}

func safariOption() *domain.RentalOption {
	return &domain.RentalOption{
		ID:              20,
		Type:            domain.OptionSafari,
		Name:            "Сафари-тур",
		DurationMinutes: 120,
		Price:           200,
		IsAvailable:     true,
	}
}

func bookableJetSkis(locationID int64, ids ...int64) []*domain.JetSki {
	result := make([]*domain.JetSki, 0, len(ids))
	for _, id := range ids {
		result = append(result, &domain.JetSki{
			ID:         id,
			Status:     domain.JetSkiAvailable,
			LocationID: ptr.Ptr(locationID),
		})
	}
	return result
}

func validRequest() *Request {
	return &Request{
		LocationID:      1,
		RentalOptionID:  10,
		ReservationDate: testDate,
		StartTime:       "10:00",
		JetSkiIDs:       []int64{1, 2},
		OwnerName:       "Иван Петров",
		OwnerPhone:      "+385911234567",
	}
}

type testEnv struct {
	reservationRepo *MockReservationRepository
	jetSkiRepo      *MockJetSkiRepository
	optionRepo      *MockRentalOptionRepository
	locationRepo    *MockLocationRepository
	useCase         *UseCase
}

func newTestEnv() *testEnv {
	env := &testEnv{
		reservationRepo: new(MockReservationRepository),
		jetSkiRepo:      new(MockJetSkiRepository),
		optionRepo:      new(MockRentalOptionRepository),
		locationRepo:    new(MockLocationRepository),
	}
	env.useCase = NewUseCase(
		env.reservationRepo,
		env.jetSkiRepo,
		env.optionRepo,
		env.locationRepo,
		fakeTxManager{},
		testSchedule(),
		fixedClock{now: testNow},
		nopLogger{},
	)
	return env
}

/* ==================== TESTS ==================== */

func TestExecute_Success(t *testing.T) {
	env := newTestEnv()

	env.locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)
	env.optionRepo.On("GetByID", mock.Anything, int64(10)).Return(regularOption(), nil)
	env.jetSkiRepo.On("GetByIDs", mock.Anything, []int64{1, 2}).Return(bookableJetSkis(1, 1, 2), nil)
	env.reservationRepo.On("GetByJetSkiWithFilter", mock.Anything, mock.Anything).
		Return([]*domain.Reservation{}, nil)
	env.reservationRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Reservation) bool {
		return r.Reference != uuid.Nil &&
			r.DurationMinutes == 60 &&
			r.OptionName == "Час аренды" &&
			r.TotalPrice == 240 // 120 за юнит * 2 гидроцикла
	})).Return(&domain.Reservation{
		ID:              55,
		Reference:       uuid.New(),
		LocationID:      1,
		RentalOptionID:  10,
		ReservationDate: testDate,
		StartTime:       "10:00",
		DurationMinutes: 60,
		JetSkiIDs:       []int64{1, 2},
		OptionName:      "Час аренды",
		OwnerName:       "Иван Петров",
		OwnerPhone:      "+385911234567",
		TotalPrice:      240,
	}, nil)

	resp, err := env.useCase.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(55), resp.ID)
	assert.NotEqual(t, uuid.Nil, resp.Reference)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)
	assert.Equal(t, float64(240), resp.TotalPrice)
	env.reservationRepo.AssertExpectations(t)
}

func TestExecute_ConflictIsAllOrNothing(t *testing.T) {
	env := newTestEnv()

	env.locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)
	env.optionRepo.On("GetByID", mock.Anything, int64(10)).Return(regularOption(), nil)
	env.jetSkiRepo.On("GetByIDs", mock.Anything, []int64{1, 2}).Return(bookableJetSkis(1, 1, 2), nil)

	// Гидроцикл 1 свободен, гидроцикл 2 занят пересекающейся бронью
	env.reservationRepo.On("GetByJetSkiWithFilter", mock.Anything, mock.MatchedBy(func(f domain.JetSkiReservationsFilter) bool {
		return f.JetSkiID == 1
	})).Return([]*domain.Reservation{}, nil)
	env.reservationRepo.On("GetByJetSkiWithFilter", mock.Anything, mock.MatchedBy(func(f domain.JetSkiReservationsFilter) bool {
		return f.JetSkiID == 2
	})).Return([]*domain.Reservation{
		{ReservationDate: testDate, StartTime: "10:30", DurationMinutes: 60},
	}, nil)

	_, err := env.useCase.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrJetSkisNotAvailable)
	env.reservationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExecute_TouchingReservationIsNotConflict(t *testing.T) {
	env := newTestEnv()

	env.locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)
	env.optionRepo.On("GetByID", mock.Anything, int64(10)).Return(regularOption(), nil)
	env.jetSkiRepo.On("GetByIDs", mock.Anything, []int64{1, 2}).Return(bookableJetSkis(1, 1, 2), nil)

	// Существующая бронь заканчивается ровно в 10:00 - начало новой
	env.reservationRepo.On("GetByJetSkiWithFilter", mock.Anything, mock.Anything).
		Return([]*domain.Reservation{
			{ReservationDate: testDate, StartTime: "09:00", DurationMinutes: 60},
		}, nil)
	env.reservationRepo.On("Create", mock.Anything, mock.Anything).
		Return(&domain.Reservation{ID: 56, StartTime: "10:00", DurationMinutes: 60}, nil)

	_, err := env.useCase.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
}

func TestExecute_SafariRequiresTwoJetSkis(t *testing.T) {
	env := newTestEnv()

	env.locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)
	env.optionRepo.On("GetByID", mock.Anything, int64(20)).Return(safariOption(), nil)

	req := validRequest()
	req.RentalOptionID = 20
	req.JetSkiIDs = []int64{1}

	_, err := env.useCase.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrNotEnoughJetSkis)
}

func TestExecute_HiddenOptionRejected(t *testing.T) {
	env := newTestEnv()

	hidden := regularOption()
	hidden.IsAvailable = false

	env.locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)
	env.optionRepo.On("GetByID", mock.Anything, int64(10)).Return(hidden, nil)

	_, err := env.useCase.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrRentalOptionUnavailable)
}

func TestExecute_OutsideOperatingHours(t *testing.T) {
	tests := []struct {
		name      string
		startTime types.TimeString
	}{
		{"before opening", "06:30"},
		{"interval crosses closing", "18:30"},
		{"interval overflows the day", "23:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()

			env.locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)
			env.optionRepo.On("GetByID", mock.Anything, int64(10)).Return(regularOption(), nil)

			req := validRequest()
			req.StartTime = tt.startTime

			_, err := env.useCase.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrOutsideOperatingHours)
		})
	}
}

func TestExecute_ReservationInPast(t *testing.T) {
	t.Run("past date", func(t *testing.T) {
		env := newTestEnv()

		env.locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)
		env.optionRepo.On("GetByID", mock.Anything, int64(10)).Return(regularOption(), nil)

		req := validRequest()
		req.ReservationDate = testNow.AddDate(0, 0, -1)

		_, err := env.useCase.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrReservationInPast)
	})

	t.Run("today with passed start time", func(t *testing.T) {
		env := newTestEnv()

		env.locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)
		env.optionRepo.On("GetByID", mock.Anything, int64(10)).Return(regularOption(), nil)

		// Сейчас 12:00, запрошено 10:00 того же дня
		req := validRequest()
		req.ReservationDate = testNow
		req.StartTime = "10:00"

		_, err := env.useCase.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrReservationInPast)
	})

	t.Run("today with future start time", func(t *testing.T) {
		env := newTestEnv()

		env.locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)
		env.optionRepo.On("GetByID", mock.Anything, int64(10)).Return(regularOption(), nil)
		env.jetSkiRepo.On("GetByIDs", mock.Anything, []int64{1, 2}).Return(bookableJetSkis(1, 1, 2), nil)
		env.reservationRepo.On("GetByJetSkiWithFilter", mock.Anything, mock.Anything).
			Return([]*domain.Reservation{}, nil)
		env.reservationRepo.On("Create", mock.Anything, mock.Anything).
			Return(&domain.Reservation{ID: 57, StartTime: "14:00", DurationMinutes: 60}, nil)

		req := validRequest()
		req.ReservationDate = testNow
		req.StartTime = "14:00"

		_, err := env.useCase.Execute(context.Background(), req)

		assert.NoError(t, err)
	})
}

func TestExecute_JetSkiChecks(t *testing.T) {
	t.Run("jetski not found", func(t *testing.T) {
		env := newTestEnv()

		env.locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)
		env.optionRepo.On("GetByID", mock.Anything, int64(10)).Return(regularOption(), nil)
		env.jetSkiRepo.On("GetByIDs", mock.Anything, []int64{1, 2}).Return(bookableJetSkis(1, 1), nil)

		_, err := env.useCase.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrJetSkiNotFound)
	})

	t.Run("jetski not bookable", func(t *testing.T) {
		env := newTestEnv()

		jetSkis := bookableJetSkis(1, 1, 2)
		jetSkis[1].Status = domain.JetSkiNotAvailable

		env.locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)
		env.optionRepo.On("GetByID", mock.Anything, int64(10)).Return(regularOption(), nil)
		env.jetSkiRepo.On("GetByIDs", mock.Anything, []int64{1, 2}).Return(jetSkis, nil)

		_, err := env.useCase.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrJetSkiNotBookable)
	})

	t.Run("jetski from another location", func(t *testing.T) {
		env := newTestEnv()

		jetSkis := bookableJetSkis(1, 1, 2)
		jetSkis[1].LocationID = ptr.Ptr(int64(2))

		env.locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)
		env.optionRepo.On("GetByID", mock.Anything, int64(10)).Return(regularOption(), nil)
		env.jetSkiRepo.On("GetByIDs", mock.Anything, []int64{1, 2}).Return(jetSkis, nil)

		_, err := env.useCase.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrJetSkiNotBookable)
	})

	t.Run("unassigned jetski", func(t *testing.T) {
		env := newTestEnv()

		jetSkis := bookableJetSkis(1, 1, 2)
		jetSkis[1].LocationID = nil

		env.locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)
		env.optionRepo.On("GetByID", mock.Anything, int64(10)).Return(regularOption(), nil)
		env.jetSkiRepo.On("GetByIDs", mock.Anything, []int64{1, 2}).Return(jetSkis, nil)

		_, err := env.useCase.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrJetSkiNotBookable)
	})
}

func TestExecute_NotFoundErrors(t *testing.T) {
	t.Run("location not found", func(t *testing.T) {
		env := newTestEnv()

		env.locationRepo.On("GetByID", mock.Anything, int64(1)).Return(nil, locationRepo.ErrLocationNotFound)

		_, err := env.useCase.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrLocationNotFound)
	})

	t.Run("rental option not found", func(t *testing.T) {
		env := newTestEnv()

		env.locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)
		env.optionRepo.On("GetByID", mock.Anything, int64(10)).Return(nil, optionRepo.ErrOptionNotFound)

		_, err := env.useCase.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrRentalOptionNotFound)
	})
}

func TestExecute_CreateFailure(t *testing.T) {
	env := newTestEnv()

	env.locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)
	env.optionRepo.On("GetByID", mock.Anything, int64(10)).Return(regularOption(), nil)
	env.jetSkiRepo.On("GetByIDs", mock.Anything, []int64{1, 2}).Return(bookableJetSkis(1, 1, 2), nil)
	env.reservationRepo.On("GetByJetSkiWithFilter", mock.Anything, mock.Anything).
		Return([]*domain.Reservation{}, nil)
	env.reservationRepo.On("Create", mock.Anything, mock.Anything).
		Return(nil, errors.New("serialization failure"))

	_, err := env.useCase.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"non-positive location", func(r *Request) { r.LocationID = 0 }},
		{"non-positive option", func(r *Request) { r.RentalOptionID = 0 }},
		{"zero date", func(r *Request) { r.ReservationDate = time.Time{} }},
		{"malformed start time", func(r *Request) { r.StartTime = "10:65" }},
		{"no jetskis", func(r *Request) { r.JetSkiIDs = nil }},
		{"duplicate jetskis", func(r *Request) { r.JetSkiIDs = []int64{1, 1} }},
		{"blank owner name", func(r *Request) { r.OwnerName = "   " }},
		{"blank owner phone", func(r *Request) { r.OwnerPhone = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()

			req := validRequest()
			tt.mutate(req)

			_, err := env.useCase.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
