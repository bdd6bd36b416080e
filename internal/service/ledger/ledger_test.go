package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/partizan-booking/internal/domain"
	"github.com/m04kA/partizan-booking/pkg/pgerrors"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetHallsBySlot(ctx context.Context, date time.Time, slot domain.TimeSlot) ([]domain.Hall, error) {
	args := m.Called(ctx, date, slot)
	halls, _ := args.Get(0).([]domain.Hall)
	return halls, args.Error(1)
}

type fixedTime time.Time

func (f fixedTime) Now() time.Time { return time.Time(f) }

var (
	now      = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tomorrow = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
)

func TestAssignHall(t *testing.T) {
	tests := []struct {
		name     string
		occupied []domain.Hall
		want     domain.Hall
		wantErr  error
	}{
		{"empty slot gets first hall", nil, domain.HallFirst, nil},
		{"first taken gets second", []domain.Hall{domain.HallFirst}, domain.HallSecond, nil},
		{"second taken gets first", []domain.Hall{domain.HallSecond}, domain.HallFirst, nil},
		{"both taken", []domain.Hall{domain.HallFirst, domain.HallSecond}, 0, ErrSlotFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AssignHall(tt.occupied)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLedger_Admit(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetHallsBySlot", mock.Anything, tomorrow, domain.Slot10To12).
		Return([]domain.Hall{domain.HallFirst}, nil).Once()

	l := New(repo, fixedTime(now))
	hall, err := l.Admit(context.Background(), tomorrow, domain.Slot10To12)

	require.NoError(t, err)
	assert.Equal(t, domain.HallSecond, hall)
	repo.AssertExpectations(t)
}

func TestLedger_Admit_Today(t *testing.T) {
	repo := &mockRepo{}
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	repo.On("GetHallsBySlot", mock.Anything, today, domain.Slot18To22).Return(nil, nil)

	hall, err := New(repo, fixedTime(now)).Admit(context.Background(), today, domain.Slot18To22)

	require.NoError(t, err)
	assert.Equal(t, domain.HallFirst, hall)
}

func TestLedger_Admit_Preconditions(t *testing.T) {
	repo := &mockRepo{}
	l := New(repo, fixedTime(now))

	_, err := l.Admit(context.Background(), tomorrow, domain.TimeSlot("09:00-11:00"))
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	_, err = l.Admit(context.Background(), time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC), domain.Slot10To12)
	assert.ErrorIs(t, err, ErrDateInPast)

	repo.AssertNotCalled(t, "GetHallsBySlot", mock.Anything, mock.Anything, mock.Anything)
}

func TestLedger_Admit_RepositoryErrors(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetHallsBySlot", mock.Anything, tomorrow, domain.Slot10To12).
		Return(nil, errors.New("connection reset")).Once()
	repo.On("GetHallsBySlot", mock.Anything, tomorrow, domain.Slot12To14).
		Return(nil, &pq.Error{Code: pgerrors.CodeSerializationFailure}).Once()

	l := New(repo, fixedTime(now))

	_, err := l.Admit(context.Background(), tomorrow, domain.Slot10To12)
	assert.ErrorIs(t, err, ErrInternal)

	_, err = l.Admit(context.Background(), tomorrow, domain.Slot12To14)
	assert.True(t, pgerrors.IsRetryable(err))
}
