package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"linkgap/internal/gap"
	mockgap "linkgap/internal/gap/mock"
	"linkgap/internal/worker"
	"linkgap/pkg/domain"
	"linkgap/pkg/logger"
	"linkgap/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeRefreshJob(id int64, property string) *river.Job[gap.RefreshJobArgs] {
	return &river.Job[gap.RefreshJobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   gap.RefreshJobArgs{Property: property},
	}
}

func TestRefreshWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockgap.NewMockAnalyzer(ctrl)
	w := worker.NewRefreshWorker(mock)

	mock.EXPECT().
		Analyze(gomock.Any(), gap.Request{Property: "example.com", Refresh: true}).
		Return(&domain.AnalysisResult{UserDomain: "example.com"}, nil)

	require.NoError(t, w.Work(context.Background(), makeRefreshJob(1, "example.com")))
}

func TestRefreshWorker_Work_InvalidInputCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockgap.NewMockAnalyzer(ctrl)
	w := worker.NewRefreshWorker(mock)

	mock.EXPECT().
		Analyze(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(gap.ErrUnsupportedIdentifier, "property set"))

	err := w.Work(context.Background(), makeRefreshJob(2, "sc-set:123"))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestRefreshWorker_Work_NoCompetitorsCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockgap.NewMockAnalyzer(ctrl)
	w := worker.NewRefreshWorker(mock)

	mock.EXPECT().
		Analyze(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(gap.ErrNoCompetitors, "none found"))

	err := w.Work(context.Background(), makeRefreshJob(3, "tiny-site.com"))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestRefreshWorker_Work_RateLimitedSnoozes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockgap.NewMockAnalyzer(ctrl)
	w := worker.NewRefreshWorker(mock)

	mock.EXPECT().
		Analyze(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrRateLimited, "budget exhausted"))

	err := w.Work(context.Background(), makeRefreshJob(4, "example.com"))
	require.Error(t, err)
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
}

func TestRefreshWorker_Work_GenericErrorRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockgap.NewMockAnalyzer(ctrl)
	w := worker.NewRefreshWorker(mock)

	mock.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	err := w.Work(context.Background(), makeRefreshJob(5, "example.com"))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr, "did not expect JobCancelError")
	var snoozeErr *river.JobSnoozeError
	require.NotErrorAs(t, err, &snoozeErr, "did not expect JobSnoozeError")
}
