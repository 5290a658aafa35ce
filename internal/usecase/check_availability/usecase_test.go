package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/ptr"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/types"
)

/* ==================== MOCKS ==================== */

type MockReservationRepository struct {
	mock.Mock
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

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

/* ==================== HELPERS ==================== */

var testDate = time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)

func jetSkis(ids ...int64) []*domain.JetSki {
	result := make([]*domain.JetSki, 0, len(ids))
	for _, id := range ids {
		result = append(result, &domain.JetSki{ID: id, Status: domain.JetSkiAvailable})
	}
	return result
}

func reservation(start string, durationMinutes int) *domain.Reservation {
	return &domain.Reservation{
		ID:              100,
		ReservationDate: testDate,
		StartTime:       types.TimeString(start),
		DurationMinutes: durationMinutes,
	}
}

/* ==================== TESTS ==================== */

func TestExecute_AllAvailable(t *testing.T) {
	reservationRepo := new(MockReservationRepository)
	jetSkiRepo := new(MockJetSkiRepository)

	jetSkiRepo.On("GetByIDs", mock.Anything, []int64{1, 2}).Return(jetSkis(1, 2), nil)
	reservationRepo.On("GetByJetSkiWithFilter", mock.Anything, mock.Anything).Return([]*domain.Reservation{}, nil)

	uc := NewUseCase(reservationRepo, jetSkiRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:      testDate,
		StartTime: "10:00",
		EndTime:   "11:00",
		JetSkiIDs: []int64{1, 2},
	})

	require.NoError(t, err)
	assert.True(t, resp.AllAvailable())
	assert.Empty(t, resp.ConflictingIDs())
	jetSkiRepo.AssertExpectations(t)
	reservationRepo.AssertExpectations(t)
}

func TestExecute_OverlapDetection(t *testing.T) {
	// Существующая бронь 10:00-11:00 у гидроцикла 1
	tests := []struct {
		name      string
		startTime types.TimeString
		endTime   types.TimeString
		available bool
	}{
		{"identical interval", "10:00", "11:00", false},
		{"partial overlap from left", "09:30", "10:30", false},
		{"partial overlap from right", "10:30", "11:30", false},
		{"proposed contains existing", "09:00", "12:00", false},
		{"existing contains proposed", "10:15", "10:45", false},
		{"touching at existing end", "11:00", "12:00", true},
		{"touching at existing start", "09:00", "10:00", true},
		{"disjoint before", "07:00", "08:00", true},
		{"disjoint after", "13:00", "14:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservationRepo := new(MockReservationRepository)
			jetSkiRepo := new(MockJetSkiRepository)

			jetSkiRepo.On("GetByIDs", mock.Anything, []int64{1}).Return(jetSkis(1), nil)
			reservationRepo.On("GetByJetSkiWithFilter", mock.Anything, mock.Anything).
				Return([]*domain.Reservation{reservation("10:00", 60)}, nil)

			uc := NewUseCase(reservationRepo, jetSkiRepo, nopLogger{})

			resp, err := uc.Execute(context.Background(), &Request{
				Date:      testDate,
				StartTime: tt.startTime,
				EndTime:   tt.endTime,
				JetSkiIDs: []int64{1},
			})

			require.NoError(t, err)
			require.Len(t, resp.Results, 1)
			assert.Equal(t, int64(1), resp.Results[0].JetSkiID)
			assert.Equal(t, tt.available, resp.Results[0].Available)
		})
	}
}

func TestExecute_PartialConflictReportsOnlyBusyJetSkis(t *testing.T) {
	reservationRepo := new(MockReservationRepository)
	jetSkiRepo := new(MockJetSkiRepository)

	jetSkiRepo.On("GetByIDs", mock.Anything, []int64{1, 2, 3}).Return(jetSkis(1, 2, 3), nil)

	busyFilter := func(jetSkiID int64) interface{} {
		return mock.MatchedBy(func(f domain.JetSkiReservationsFilter) bool {
			return f.JetSkiID == jetSkiID
		})
	}
	reservationRepo.On("GetByJetSkiWithFilter", mock.Anything, busyFilter(1)).
		Return([]*domain.Reservation{}, nil)
	reservationRepo.On("GetByJetSkiWithFilter", mock.Anything, busyFilter(2)).
		Return([]*domain.Reservation{reservation("10:30", 60)}, nil)
	reservationRepo.On("GetByJetSkiWithFilter", mock.Anything, busyFilter(3)).
		Return([]*domain.Reservation{}, nil)

	uc := NewUseCase(reservationRepo, jetSkiRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:      testDate,
		StartTime: "10:00",
		EndTime:   "11:00",
		JetSkiIDs: []int64{1, 2, 3},
	})

	require.NoError(t, err)
	assert.False(t, resp.AllAvailable())
	assert.Equal(t, []int64{2}, resp.ConflictingIDs())
}

func TestExecute_SelfExclusionForwardedToFilter(t *testing.T) {
	reservationRepo := new(MockReservationRepository)
	jetSkiRepo := new(MockJetSkiRepository)

	jetSkiRepo.On("GetByIDs", mock.Anything, []int64{1}).Return(jetSkis(1), nil)
	reservationRepo.On("GetByJetSkiWithFilter", mock.Anything, mock.MatchedBy(func(f domain.JetSkiReservationsFilter) bool {
		return f.ExcludeID != nil && *f.ExcludeID == 42 && f.Date != nil && f.Date.Equal(testDate)
	})).Return([]*domain.Reservation{}, nil)

	uc := NewUseCase(reservationRepo, jetSkiRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:                 testDate,
		StartTime:            "10:00",
		EndTime:              "11:00",
		JetSkiIDs:            []int64{1},
		ExcludeReservationID: ptr.Ptr(int64(42)),
	})

	require.NoError(t, err)
	assert.True(t, resp.AllAvailable())
	reservationRepo.AssertExpectations(t)
}

func TestExecute_JetSkiNotFound(t *testing.T) {
	reservationRepo := new(MockReservationRepository)
	jetSkiRepo := new(MockJetSkiRepository)

	// Запрошено два гидроцикла, найден один
	jetSkiRepo.On("GetByIDs", mock.Anything, []int64{1, 99}).Return(jetSkis(1), nil)

	uc := NewUseCase(reservationRepo, jetSkiRepo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Date:      testDate,
		StartTime: "10:00",
		EndTime:   "11:00",
		JetSkiIDs: []int64{1, 99},
	})

	assert.ErrorIs(t, err, ErrJetSkiNotFound)
	reservationRepo.AssertNotCalled(t, "GetByJetSkiWithFilter", mock.Anything, mock.Anything)
}

func TestExecute_RepositoryErrorNeverFalseAvailable(t *testing.T) {
	reservationRepo := new(MockReservationRepository)
	jetSkiRepo := new(MockJetSkiRepository)

	jetSkiRepo.On("GetByIDs", mock.Anything, []int64{1}).Return(jetSkis(1), nil)
	reservationRepo.On("GetByJetSkiWithFilter", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	uc := NewUseCase(reservationRepo, jetSkiRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:      testDate,
		StartTime: "10:00",
		EndTime:   "11:00",
		JetSkiIDs: []int64{1},
	})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, resp)
}

func TestExecute_CorruptedStoredIntervalTreatedAsConflict(t *testing.T) {
	reservationRepo := new(MockReservationRepository)
	jetSkiRepo := new(MockJetSkiRepository)

	jetSkiRepo.On("GetByIDs", mock.Anything, []int64{1}).Return(jetSkis(1), nil)
	reservationRepo.On("GetByJetSkiWithFilter", mock.Anything, mock.Anything).
		Return([]*domain.Reservation{reservation("10:00", 0)}, nil)

	uc := NewUseCase(reservationRepo, jetSkiRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:      testDate,
		StartTime: "14:00",
		EndTime:   "15:00",
		JetSkiIDs: []int64{1},
	})

	require.NoError(t, err)
	assert.False(t, resp.Results[0].Available)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{"zero date", &Request{StartTime: "10:00", EndTime: "11:00", JetSkiIDs: []int64{1}}},
		{"missing start time", &Request{Date: testDate, EndTime: "11:00", JetSkiIDs: []int64{1}}},
		{"missing end time", &Request{Date: testDate, StartTime: "10:00", JetSkiIDs: []int64{1}}},
		{"malformed start time", &Request{Date: testDate, StartTime: "25:00", EndTime: "11:00", JetSkiIDs: []int64{1}}},
		{"end before start", &Request{Date: testDate, StartTime: "11:00", EndTime: "10:00", JetSkiIDs: []int64{1}}},
		{"end equals start", &Request{Date: testDate, StartTime: "10:00", EndTime: "10:00", JetSkiIDs: []int64{1}}},
		{"no jetskis", &Request{Date: testDate, StartTime: "10:00", EndTime: "11:00"}},
		{"non-positive jetski id", &Request{Date: testDate, StartTime: "10:00", EndTime: "11:00", JetSkiIDs: []int64{0}}},
		{"duplicate jetski ids", &Request{Date: testDate, StartTime: "10:00", EndTime: "11:00", JetSkiIDs: []int64{1, 1}}},
		{"non-positive exclude id", &Request{Date: testDate, StartTime: "10:00", EndTime: "11:00", JetSkiIDs: []int64{1}, ExcludeReservationID: ptr.Ptr(int64(0))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(new(MockReservationRepository), new(MockJetSkiRepository), nopLogger{})

			_, err := uc.Execute(context.Background(), tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
