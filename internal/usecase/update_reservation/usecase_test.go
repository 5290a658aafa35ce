package update_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
	reservationRepo "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/infra/storage/reservation"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/ptr"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/types"
)

/* ==================== MOCKS ==================== */

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) Update(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
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

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

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
	testDate      = time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)
	testNow       = time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	testReference = uuid.MustParse("b3f1a8a8-12f1-4aaa-9b2e-7f58d1c0a001")
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

func existingReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:              42,
		Reference:       testReference,
		LocationID:      1,
		RentalOptionID:  10,
		ReservationDate: testDate,
		StartTime:       "10:00",
		DurationMinutes: 60,
		JetSkiIDs:       []int64{1},
		OptionName:      "Час аренды",
		OwnerName:       "Иван Петров",
		OwnerPhone:      "+385911234567",
		TotalPrice:      120,
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
		ReservationID:   42,
		LocationID:      1,
		RentalOptionID:  10,
		ReservationDate: testDate,
		StartTime:       "10:30",
		JetSkiIDs:       []int64{1},
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

func (env *testEnv) expectHappyLookups() {
	env.locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)
	env.optionRepo.On("GetByID", mock.Anything, int64(10)).Return(regularOption(), nil)
	env.jetSkiRepo.On("GetByIDs", mock.Anything, []int64{1}).Return(bookableJetSkis(1, 1), nil)
}

/* ==================== TESTS ==================== */

func TestExecute_SelfExclusionAllowsMovingOwnWindow(t *testing.T) {
	env := newTestEnv()

	env.reservationRepo.On("GetByID", mock.Anything, int64(42)).Return(existingReservation(), nil)
	env.expectHappyLookups()

	// Конфликт-чек должен исключать собственную бронь id=42
	env.reservationRepo.On("GetByJetSkiWithFilter", mock.Anything, mock.MatchedBy(func(f domain.JetSkiReservationsFilter) bool {
		return f.JetSkiID == 1 && f.ExcludeID != nil && *f.ExcludeID == 42
	})).Return([]*domain.Reservation{}, nil)

	env.reservationRepo.On("Update", mock.Anything, mock.MatchedBy(func(r *domain.Reservation) bool {
		return r.ID == 42 && r.Reference == testReference && r.StartTime == types.TimeString("10:30")
	})).Return(&domain.Reservation{
		ID:              42,
		Reference:       testReference,
		LocationID:      1,
		RentalOptionID:  10,
		ReservationDate: testDate,
		StartTime:       "10:30",
		DurationMinutes: 60,
		JetSkiIDs:       []int64{1},
		OptionName:      "Час аренды",
		TotalPrice:      120,
	}, nil)

	resp, err := env.useCase.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, testReference, resp.Reference)
	assert.Equal(t, types.TimeString("11:30"), resp.EndTime)
	env.reservationRepo.AssertExpectations(t)
}

func TestExecute_ConflictWithForeignReservation(t *testing.T) {
	env := newTestEnv()

	env.reservationRepo.On("GetByID", mock.Anything, int64(42)).Return(existingReservation(), nil)
	env.expectHappyLookups()

	// Чужая бронь 11:00-12:00 пересекается с новым окном 10:30-11:30
	env.reservationRepo.On("GetByJetSkiWithFilter", mock.Anything, mock.Anything).
		Return([]*domain.Reservation{
			{ID: 77, ReservationDate: testDate, StartTime: "11:00", DurationMinutes: 60},
		}, nil)

	_, err := env.useCase.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrJetSkisNotAvailable)
	env.reservationRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestExecute_CannotBeEdited(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Reservation)
	}{
		{"currently running", func(r *domain.Reservation) { r.IsCurrentlyRunning = true }},
		{"already finished", func(r *domain.Reservation) { r.HasFinished = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()

			res := existingReservation()
			tt.mutate(res)
			env.reservationRepo.On("GetByID", mock.Anything, int64(42)).Return(res, nil)

			_, err := env.useCase.Execute(context.Background(), validRequest())

			assert.ErrorIs(t, err, ErrCannotBeEdited)
			env.locationRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_HiddenOptionPolicy(t *testing.T) {
	t.Run("keeping current hidden option is allowed", func(t *testing.T) {
		env := newTestEnv()

		hidden := regularOption()
		hidden.IsAvailable = false // опцию скрыли после создания брони

		env.reservationRepo.On("GetByID", mock.Anything, int64(42)).Return(existingReservation(), nil)
		env.locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)
		env.optionRepo.On("GetByID", mock.Anything, int64(10)).Return(hidden, nil)
		env.jetSkiRepo.On("GetByIDs", mock.Anything, []int64{1}).Return(bookableJetSkis(1, 1), nil)
		env.reservationRepo.On("GetByJetSkiWithFilter", mock.Anything, mock.Anything).
			Return([]*domain.Reservation{}, nil)
		env.reservationRepo.On("Update", mock.Anything, mock.Anything).
			Return(existingReservation(), nil)

		_, err := env.useCase.Execute(context.Background(), validRequest())

		assert.NoError(t, err)
	})

	t.Run("switching to a hidden option is rejected", func(t *testing.T) {
		env := newTestEnv()

		hidden := &domain.RentalOption{
			ID:              30,
			Type:            domain.OptionRegular,
			Name:            "Старый тариф",
			DurationMinutes: 60,
			Price:           90,
			IsAvailable:     false,
		}

		env.reservationRepo.On("GetByID", mock.Anything, int64(42)).Return(existingReservation(), nil)
		env.locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)
		env.optionRepo.On("GetByID", mock.Anything, int64(30)).Return(hidden, nil)

		req := validRequest()
		req.RentalOptionID = 30

		_, err := env.useCase.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrRentalOptionUnavailable)
	})
}

func TestExecute_FullReplacementRecalculatesPrice(t *testing.T) {
	env := newTestEnv()

	env.reservationRepo.On("GetByID", mock.Anything, int64(42)).Return(existingReservation(), nil)
	env.locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)
	env.optionRepo.On("GetByID", mock.Anything, int64(10)).Return(regularOption(), nil)
	env.jetSkiRepo.On("GetByIDs", mock.Anything, []int64{1, 2, 3}).Return(bookableJetSkis(1, 1, 2, 3), nil)
	env.reservationRepo.On("GetByJetSkiWithFilter", mock.Anything, mock.Anything).
		Return([]*domain.Reservation{}, nil)
	env.reservationRepo.On("Update", mock.Anything, mock.MatchedBy(func(r *domain.Reservation) bool {
		return r.TotalPrice == 360 && len(r.JetSkiIDs) == 3 // 120 за юнит * 3 гидроцикла
	})).Return(existingReservation(), nil)

	req := validRequest()
	req.JetSkiIDs = []int64{1, 2, 3}

	_, err := env.useCase.Execute(context.Background(), req)

	require.NoError(t, err)
	env.reservationRepo.AssertExpectations(t)
}

func TestExecute_ReservationNotFound(t *testing.T) {
	env := newTestEnv()

	env.reservationRepo.On("GetByID", mock.Anything, int64(42)).
		Return(nil, reservationRepo.ErrReservationNotFound)

	_, err := env.useCase.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_MoveToPastRejected(t *testing.T) {
	env := newTestEnv()

	env.reservationRepo.On("GetByID", mock.Anything, int64(42)).Return(existingReservation(), nil)
	env.locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)
	env.optionRepo.On("GetByID", mock.Anything, int64(10)).Return(regularOption(), nil)

	req := validRequest()
	req.ReservationDate = testNow.AddDate(0, 0, -1)

	_, err := env.useCase.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrReservationInPast)
}

func TestExecute_OutsideOperatingHours(t *testing.T) {
	env := newTestEnv()

	env.reservationRepo.On("GetByID", mock.Anything, int64(42)).Return(existingReservation(), nil)
	env.locationRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1}, nil)
	env.optionRepo.On("GetByID", mock.Anything, int64(10)).Return(regularOption(), nil)

	req := validRequest()
	req.StartTime = "18:30" // конец 19:30 позже закрытия

	_, err := env.useCase.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrOutsideOperatingHours)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"non-positive reservation id", func(r *Request) { r.ReservationID = 0 }},
		{"non-positive location", func(r *Request) { r.LocationID = -1 }},
		{"zero date", func(r *Request) { r.ReservationDate = time.Time{} }},
		{"malformed start time", func(r *Request) { r.StartTime = "half past ten" }},
		{"no jetskis", func(r *Request) { r.JetSkiIDs = nil }},
		{"blank owner name", func(r *Request) { r.OwnerName = "" }},
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
