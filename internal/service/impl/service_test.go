package impl

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/usly/internal/entities"
	"github.com/Decentr-net/usly/internal/service"
	storageinterface "github.com/Decentr-net/usly/internal/storage"
	storage "github.com/Decentr-net/usly/internal/storage/mock"
)

func TestSrv_SubmitFeedback(t *testing.T) {
	tt := []struct {
		name string
		in   entities.Feedback

		expected entities.Feedback
		stored   bool
		storeErr error
		err      error
	}{
		{
			name:     "success",
			in:       entities.Feedback{Type: "idea", Message: "  Dodajcie ciemny motyw "},
			expected: entities.Feedback{Type: "idea", Message: "Dodajcie ciemny motyw"},
			stored:   true,
		},
		{
			name:     "default type",
			in:       entities.Feedback{Message: "crash", View: "nearby"},
			expected: entities.Feedback{Type: "bug", Message: "crash", View: "nearby"},
			stored:   true,
		},
		{
			name: "empty message",
			in:   entities.Feedback{Message: "   "},
			err:  service.ErrInvalidFeedback,
		},
		{
			name: "too long message",
			in:   entities.Feedback{Message: strings.Repeat("ż", service.MaxMessageLength+1)},
			err:  service.ErrInvalidFeedback,
		},
		{
			name: "too long type",
			in:   entities.Feedback{Type: strings.Repeat("x", service.MaxTypeLength+1), Message: "x"},
			err:  service.ErrInvalidFeedback,
		},
		{
			name:     "storage error",
			in:       entities.Feedback{Message: "crash"},
			expected: entities.Feedback{Type: "bug", Message: "crash"},
			stored:   true,
			storeErr: context.Canceled,
			err:      context.Canceled,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			s := storage.NewMockStorage(ctrl)
			srv := New(s)

			if tc.stored {
				s.EXPECT().CreateFeedback(gomock.Any(), &tc.expected).DoAndReturn(func(_ context.Context, f *entities.Feedback) error {
					f.ID = 1
					return tc.storeErr
				})
			}

			f := tc.in
			err := srv.SubmitFeedback(context.Background(), &f)
			if tc.err != nil {
				require.True(t, errors.Is(err, tc.err), err)
				return
			}

			require.NoError(t, err)
			require.EqualValues(t, 1, f.ID)
		})
	}
}

func TestSrv_GetFeedback(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)
	srv := New(s)

	s.EXPECT().GetFeedback(gomock.Any(), int64(1)).Return(&entities.Feedback{ID: 1}, nil)
	f, err := srv.GetFeedback(context.Background(), 1)
	require.NoError(t, err)
	require.EqualValues(t, 1, f.ID)

	s.EXPECT().GetFeedback(gomock.Any(), int64(2)).Return(nil, storageinterface.ErrNotFound)
	_, err = srv.GetFeedback(context.Background(), 2)
	require.Equal(t, service.ErrNotFound, err)

	s.EXPECT().GetFeedback(gomock.Any(), int64(3)).Return(nil, context.Canceled)
	_, err = srv.GetFeedback(context.Background(), 3)
	require.True(t, errors.Is(err, context.Canceled))
}

func TestSrv_ListFeedback(t *testing.T) {
	tt := []struct {
		name     string
		in       service.ListFeedbackParams
		expected storageinterface.ListFeedbackParams
	}{
		{
			name:     "default limit",
			in:       service.ListFeedbackParams{},
			expected: storageinterface.ListFeedbackParams{Limit: service.DefaultLimit},
		},
		{
			name:     "max limit",
			in:       service.ListFeedbackParams{Limit: 1000, Type: "BUG", Before: 10},
			expected: storageinterface.ListFeedbackParams{Limit: service.MaxLimit, Type: "bug", Before: 10},
		},
		{
			name:     "limit",
			in:       service.ListFeedbackParams{Limit: 5},
			expected: storageinterface.ListFeedbackParams{Limit: 5},
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			s := storage.NewMockStorage(ctrl)
			srv := New(s)

			s.EXPECT().ListFeedback(gomock.Any(), tc.expected).Return([]*entities.Feedback{{ID: 2}, {ID: 1}}, nil)

			ff, err := srv.ListFeedback(context.Background(), tc.in)
			require.NoError(t, err)
			require.Len(t, ff, 2)
		})
	}

	ctrl := gomock.NewController(t)
	s := storage.NewMockStorage(ctrl)
	s.EXPECT().ListFeedback(gomock.Any(), gomock.Any()).Return(nil, context.Canceled)

	_, err := New(s).ListFeedback(context.Background(), service.ListFeedbackParams{})
	require.True(t, errors.Is(err, context.Canceled))
}
