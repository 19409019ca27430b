package inquiries

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStore struct {
	rows      []Inquiry
	createErr error
	gotLimit  int
	gotOffset int
}

func (f *fakeStore) Create(_ context.Context, in *Inquiry) error {
	if f.createErr != nil {
		return f.createErr
	}
	in.ID = int64(len(f.rows) + 1)
	in.CreatedAt = time.Now()
	f.rows = append(f.rows, *in)
	return nil
}

func (f *fakeStore) List(_ context.Context, limit, offset int) ([]Inquiry, error) {
	f.gotLimit, f.gotOffset = limit, offset
	return f.rows, nil
}

type fakeNotifier struct {
	got []Inquiry
	err error
}

func (f *fakeNotifier) InquiryReceived(_ context.Context, in Inquiry) error {
	f.got = append(f.got, in)
	return f.err
}

func validInput() SubmitInput {
	return SubmitInput{
		Name:      "Rajesh Kumar",
		Phone:     "+91 98765 43210",
		Email:     "rajesh@example.com",
		EventType: "Wedding",
		Date:      "2025-11-20",
		Message:   "Need a tent for 200 guests.",
		IP:        "1.2.3.4",
	}
}

func TestSubmitStoresAndNotifies(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	svc := NewService(store, notifier, zap.NewNop().Sugar())

	res, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, res.Reference)
	assert.Equal(t, receivedMessage, res.Message)

	require.Len(t, store.rows, 1)
	row := store.rows[0]
	assert.Equal(t, res.Reference, row.Reference)
	require.NotNil(t, row.EventDate)
	assert.Equal(t, "2025-11-20", row.EventDate.Format(time.DateOnly))
	require.Len(t, notifier.got, 1)
}

func TestSubmitValidation(t *testing.T) {
	svc := NewService(&fakeStore{}, nil, zap.NewNop().Sugar())

	in := validInput()
	in.Name = "  "
	in.Email = "not-an-email"
	in.Date = "20/11/2025"
	in.Message = ""

	_, err := svc.Submit(context.Background(), in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{
		"Name is required",
		"Email must be a valid email address",
		"Date must be in YYYY-MM-DD format",
		"Message is required",
	}, verr.Errors)
}

func TestSubmitStorageError(t *testing.T) {
	svc := NewService(&fakeStore{createErr: errors.New("db down")}, nil, zap.NewNop().Sugar())
	_, err := svc.Submit(context.Background(), validInput())
	require.Error(t, err)
	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
}

func TestListClamps(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil, zap.NewNop().Sugar())

	_, err := svc.List(context.Background(), 500, -1)
	require.NoError(t, err)
	assert.Equal(t, 50, store.gotLimit)
	assert.Equal(t, 0, store.gotOffset)
}
