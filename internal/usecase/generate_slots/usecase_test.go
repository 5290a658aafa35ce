package generate_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
	locationRepo "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/infra/storage/location"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/ptr"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/types"
)

/* ==================== MOCKS ==================== */

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

type MockJetSkiRepository struct {
	mock.Mock
}

func (m *MockJetSkiRepository) ListBookable(ctx context.Context, locationID *int64) ([]*domain.JetSki, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.JetSki), args.Error(1)
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

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

/* ==================== HELPERS ==================== */

var testDate = time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)

func testSchedule() domain.ScheduleConfig {
	return domain.ScheduleConfig{
		OpeningTime:            "07:00",
		ClosingTime:            "19:00",
		BufferMinutes:          5,
		SlotGranularityMinutes: 5,
	}
}

func fleet(ids ...int64) []*domain.JetSki {
	result := make([]*domain.JetSki, 0, len(ids))
	for _, id := range ids {
		result = append(result, &domain.JetSki{ID: id, Status: domain.JetSkiAvailable})
	}
	return result
}

func booking(start string, durationMinutes int, jetSkiIDs ...int64) *domain.Reservation {
	return &domain.Reservation{
		ReservationDate: testDate,
		StartTime:       types.TimeString(start),
		DurationMinutes: durationMinutes,
		JetSkiIDs:       jetSkiIDs,
	}
}

func newTestUseCase(
	reservationRepo *MockReservationRepository,
	jetSkiRepo *MockJetSkiRepository,
	locRepo *MockLocationRepository,
) *UseCase {
	return NewUseCase(reservationRepo, jetSkiRepo, locRepo, testSchedule(), nopLogger{})
}

func slotStarts(slots []Slot) []types.TimeString {
	starts := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.StartTime)
	}
	return starts
}

/* ==================== TESTS ==================== */

func TestExecute_EmptyDayJumpStepping(t *testing.T) {
	reservationRepo := new(MockReservationRepository)
	jetSkiRepo := new(MockJetSkiRepository)

	jetSkiRepo.On("ListBookable", mock.Anything, (*int64)(nil)).Return(fleet(1, 2, 3), nil)
	reservationRepo.On("GetByDate", mock.Anything, testDate).Return([]*domain.Reservation{}, nil)

	uc := newTestUseCase(reservationRepo, jetSkiRepo, new(MockLocationRepository))

	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate,
		DurationMinutes: 60,
		RequiredCount:   2,
	})

	require.NoError(t, err)

	// Пустой день: подходит каждый час, курсор прыгает на час после каждого слота
	expected := []types.TimeString{
		"07:00", "08:00", "09:00", "10:00", "11:00", "12:00",
		"13:00", "14:00", "15:00", "16:00", "17:00", "18:00",
	}
	assert.Equal(t, expected, slotStarts(resp.Slots))

	for _, slot := range resp.Slots {
		assert.Equal(t, 3, slot.FreeCount)
		end, err := slot.StartTime.AddMinutes(60)
		require.NoError(t, err)
		assert.Equal(t, end, slot.EndTime)
	}
}

func TestExecute_BufferBlocksAdjacentSlots(t *testing.T) {
	reservationRepo := new(MockReservationRepository)
	jetSkiRepo := new(MockJetSkiRepository)

	// Единственный гидроцикл занят 09:00-10:00; буфер 5 минут с обеих сторон
	jetSkiRepo.On("ListBookable", mock.Anything, (*int64)(nil)).Return(fleet(1), nil)
	reservationRepo.On("GetByDate", mock.Anything, testDate).
		Return([]*domain.Reservation{booking("09:00", 60, 1)}, nil)

	uc := newTestUseCase(reservationRepo, jetSkiRepo, new(MockLocationRepository))

	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate,
		DurationMinutes: 60,
		RequiredCount:   1,
	})

	require.NoError(t, err)

	// 07:00 подходит, прыжок на 08:00; с 08:00 каждый старт конфликтует
	// (конец окна + буфер заходит за 09:00) до 10:05 - первого старта,
	// у которого начало минус буфер не раньше конца брони
	expected := []types.TimeString{
		"07:00", "10:05", "11:05", "12:05", "13:05",
		"14:05", "15:05", "16:05", "17:05",
	}
	assert.Equal(t, expected, slotStarts(resp.Slots))
}

func TestExecute_FreeCountExcludesBusyJetSkis(t *testing.T) {
	reservationRepo := new(MockReservationRepository)
	jetSkiRepo := new(MockJetSkiRepository)

	jetSkiRepo.On("ListBookable", mock.Anything, (*int64)(nil)).Return(fleet(1, 2, 3), nil)
	reservationRepo.On("GetByDate", mock.Anything, testDate).
		Return([]*domain.Reservation{booking("10:00", 60, 2)}, nil)

	uc := newTestUseCase(reservationRepo, jetSkiRepo, new(MockLocationRepository))

	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate,
		DurationMinutes: 60,
		RequiredCount:   2,
	})

	require.NoError(t, err)

	byStart := make(map[types.TimeString]int)
	for _, slot := range resp.Slots {
		byStart[slot.StartTime] = slot.FreeCount
		assert.LessOrEqual(t, slot.FreeCount, 3)
		assert.GreaterOrEqual(t, slot.FreeCount, 2)
	}

	// Слоты вокруг брони теряют один гидроцикл, дальние - нет
	assert.Equal(t, 3, byStart["07:00"])
	assert.Equal(t, 2, byStart["09:00"])
	assert.Equal(t, 2, byStart["10:00"])
	assert.Equal(t, 2, byStart["11:00"])
	assert.Equal(t, 3, byStart["12:00"])
}

func TestExecute_SlotsNeverExceedClosingTime(t *testing.T) {
	reservationRepo := new(MockReservationRepository)
	jetSkiRepo := new(MockJetSkiRepository)

	jetSkiRepo.On("ListBookable", mock.Anything, (*int64)(nil)).Return(fleet(1), nil)
	reservationRepo.On("GetByDate", mock.Anything, testDate).Return([]*domain.Reservation{}, nil)

	uc := newTestUseCase(reservationRepo, jetSkiRepo, new(MockLocationRepository))

	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate,
		DurationMinutes: 50,
		RequiredCount:   1,
	})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)

	closing := testSchedule().ClosingTime
	for _, slot := range resp.Slots {
		assert.False(t, slot.EndTime.IsAfter(closing),
			"slot %s-%s ends after closing time", slot.StartTime, slot.EndTime)
	}
}

func TestExecute_FleetSmallerThanRequired(t *testing.T) {
	reservationRepo := new(MockReservationRepository)
	jetSkiRepo := new(MockJetSkiRepository)

	jetSkiRepo.On("ListBookable", mock.Anything, (*int64)(nil)).Return(fleet(1), nil)

	uc := newTestUseCase(reservationRepo, jetSkiRepo, new(MockLocationRepository))

	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate,
		DurationMinutes: 60,
		RequiredCount:   2,
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	reservationRepo.AssertNotCalled(t, "GetByDate", mock.Anything, mock.Anything)
}

func TestExecute_LocationFilter(t *testing.T) {
	t.Run("location not found", func(t *testing.T) {
		locRepo := new(MockLocationRepository)
		locRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, locationRepo.ErrLocationNotFound)

		uc := newTestUseCase(new(MockReservationRepository), new(MockJetSkiRepository), locRepo)

		_, err := uc.Execute(context.Background(), &Request{
			Date:            testDate,
			DurationMinutes: 60,
			RequiredCount:   1,
			LocationID:      ptr.Ptr(int64(99)),
		})

		assert.ErrorIs(t, err, ErrLocationNotFound)
	})

	t.Run("filter forwarded to fleet listing", func(t *testing.T) {
		reservationRepo := new(MockReservationRepository)
		jetSkiRepo := new(MockJetSkiRepository)
		locRepo := new(MockLocationRepository)

		locationID := ptr.Ptr(int64(5))
		locRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Location{ID: 5}, nil)
		jetSkiRepo.On("ListBookable", mock.Anything, locationID).Return(fleet(1, 2), nil)
		reservationRepo.On("GetByDate", mock.Anything, testDate).Return([]*domain.Reservation{}, nil)

		uc := newTestUseCase(reservationRepo, jetSkiRepo, locRepo)

		resp, err := uc.Execute(context.Background(), &Request{
			Date:            testDate,
			DurationMinutes: 60,
			RequiredCount:   1,
			LocationID:      locationID,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Slots)
		jetSkiRepo.AssertExpectations(t)
	})
}

func TestExecute_RepositoryError(t *testing.T) {
	reservationRepo := new(MockReservationRepository)
	jetSkiRepo := new(MockJetSkiRepository)

	jetSkiRepo.On("ListBookable", mock.Anything, (*int64)(nil)).Return(fleet(1), nil)
	reservationRepo.On("GetByDate", mock.Anything, testDate).Return(nil, errors.New("connection refused"))

	uc := newTestUseCase(reservationRepo, jetSkiRepo, new(MockLocationRepository))

	_, err := uc.Execute(context.Background(), &Request{
		Date:            testDate,
		DurationMinutes: 60,
		RequiredCount:   1,
	})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{"zero date", &Request{DurationMinutes: 60, RequiredCount: 1}},
		{"zero duration", &Request{Date: testDate, RequiredCount: 1}},
		{"negative duration", &Request{Date: testDate, DurationMinutes: -30, RequiredCount: 1}},
		{"duration too long", &Request{Date: testDate, DurationMinutes: domain.MaxRentalDurationMinutes + 1, RequiredCount: 1}},
		{"zero required count", &Request{Date: testDate, DurationMinutes: 60}},
		{"non-positive location id", &Request{Date: testDate, DurationMinutes: 60, RequiredCount: 1, LocationID: ptr.Ptr(int64(0))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(new(MockReservationRepository), new(MockJetSkiRepository), new(MockLocationRepository))

			_, err := uc.Execute(context.Background(), tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
