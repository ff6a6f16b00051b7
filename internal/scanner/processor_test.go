package scanner_test

import (
	"context"
	"errors"
	"labelchecker/internal/scanner"
	"labelchecker/pkg/blob"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/labelai"
	"labelchecker/pkg/serrors"
	"labelchecker/pkg/storage"
	"testing"
	"time"

	mockrules "labelchecker/internal/rules/mock"
	mockblob "labelchecker/pkg/blob/mock"
	mocklabelai "labelchecker/pkg/labelai/mock"
	mockprogress "labelchecker/pkg/progress/mock"
	mockstorage "labelchecker/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type processorFixture struct {
	ctrl      *gomock.Controller
	storage   *mockstorage.MockStorage
	blobs     *mockblob.MockStore
	rules     *mockrules.MockService
	analyzer  *mocklabelai.MockAnalyzer
	publisher *mockprogress.MockPublisher
	processor scanner.Processor
}

func newProcessorFixture(t *testing.T, options scanner.Options) *processorFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &processorFixture{
		ctrl:      ctrl,
		storage:   mockstorage.NewMockStorage(ctrl),
		blobs:     mockblob.NewMockStore(ctrl),
		rules:     mockrules.NewMockService(ctrl),
		analyzer:  mocklabelai.NewMockAnalyzer(ctrl),
		publisher: mockprogress.NewMockPublisher(ctrl),
	}
	f.processor = scanner.NewProcessor(f.storage, f.blobs, f.rules, f.analyzer, f.publisher, options)

	return f
}

// recordEvents collects published stages and lets every publish succeed.
func (f *processorFixture) recordEvents() *[]domain.ScanEvent {
	var events []domain.ScanEvent
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ev domain.ScanEvent) error {
			events = append(events, ev)

			return nil
		}).AnyTimes()

	return &events
}

// applyUpdates mimics UpdateScanByID on an in-memory scan, honouring FromStatuses.
func applyUpdates(scan *domain.Scan) func(context.Context, domain.ScanID, storage.ScanUpdates) (*domain.Scan, error) {
	return func(_ context.Context, _ domain.ScanID, u storage.ScanUpdates) (*domain.Scan, error) {
		if len(u.FromStatuses) > 0 {
			allowed := false
			for _, s := range u.FromStatuses {
				if s == scan.Status {
					allowed = true
				}
			}
			if !allowed {
				return nil, nil
			}
		}
		if u.Status != "" {
			scan.Status = u.Status
		}
		if u.Progress != nil {
			scan.Progress = *u.Progress
		}
		if u.Result != nil {
			scan.Result = u.Result
		}
		if u.LastError != nil {
			scan.LastError = *u.LastError
		}
		if u.IncrementAttempts {
			scan.Attempts++
		}
		cp := *scan

		return &cp, nil
	}
}

func stages(events []domain.ScanEvent) []string {
	out := make([]string, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.Stage)
	}

	return out
}

func pendingScan() *domain.Scan {
	return &domain.Scan{
		ID:           domain.ScanID(uuid.New()),
		AccountID:    domain.AccountID(uuid.New()),
		ProductName:  "Kids bottle",
		ImageKey:     "labels/x.png",
		Marketplaces: []domain.Marketplace{domain.MarketplaceUS},
		Status:       domain.ScanStatusPending,
		Progress:     domain.ProgressQueued,
	}
}

func TestProcessor_Process_Success(t *testing.T) {
	f := newProcessorFixture(t, scanner.Options{AnalyzeTimeout: time.Minute})
	scan := pendingScan()
	img := pngImage(t, 20, 10)
	rules := []domain.RegulatoryRule{{Code: "FDA-ALLERGENS"}}
	resetAt := time.Now().Add(time.Minute)

	f.storage.EXPECT().ScanForProcessing(gomock.Any(), scan.ID).Return(scan, nil)
	f.storage.EXPECT().UpdateScanByID(gomock.Any(), scan.ID, gomock.Any()).DoAndReturn(applyUpdates(scan)).Times(4)
	f.blobs.EXPECT().Get(gomock.Any(), "labels/x.png").Return(&blob.Object{Body: img}, nil)
	f.rules.EXPECT().ForMarketplaces(gomock.Any(), []domain.Marketplace{domain.MarketplaceUS}).Return(rules, nil)
	f.analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, in labelai.Input) (*domain.ComplianceReport, labelai.RateLimitStatus, error) {
			_, ok := ctx.Deadline()
			require.True(t, ok)
			require.Equal(t, "Kids bottle", in.ProductName)
			require.Equal(t, rules, in.Rules)
			require.Equal(t, "image/png", in.ContentType)
			require.Equal(t, img, in.Image)

			return &domain.ComplianceReport{Score: 82, Status: domain.ComplianceWarning},
				labelai.RateLimitStatus{Limit: 10, Remaining: 9, ResetAt: resetAt}, nil
		})
	events := f.recordEvents()

	rl, err := f.processor.Process(context.Background(), scan.ID)
	require.NoError(t, err)
	require.Equal(t, 9, rl.Remaining)
	require.Equal(t, domain.ScanStatusCompleted, scan.Status)
	require.Equal(t, domain.ProgressDone, scan.Progress)
	require.EqualValues(t, 1, scan.Attempts)
	require.Equal(t, 82, scan.Result.Score)

	require.Equal(t, []string{
		scanner.StageDownloading, scanner.StageAnalyzing, scanner.StageSaving, scanner.StageCompleted,
	}, stages(*events))
	last := (*events)[len(*events)-1]
	require.Equal(t, scan.AccountID, last.AccountID)
	require.NotNil(t, last.Score)
	require.Equal(t, 82, *last.Score)
}

func TestProcessor_Process_MissingOrDone(t *testing.T) {
	t.Run("deleted scan cancels", func(t *testing.T) {
		f := newProcessorFixture(t, scanner.Options{})
		id := domain.ScanID(uuid.New())
		f.storage.EXPECT().ScanForProcessing(gomock.Any(), id).Return(nil, nil)
		f.storage.EXPECT().DeletedScanByID(gomock.Any(), id).Return(&domain.Scan{ID: id, ImageKey: "labels/gone.png"}, nil)
		f.blobs.EXPECT().Delete(gomock.Any(), "labels/gone.png").Return(nil)

		_, err := f.processor.Process(context.Background(), id)
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("unknown scan cancels", func(t *testing.T) {
		f := newProcessorFixture(t, scanner.Options{})
		id := domain.ScanID(uuid.New())
		f.storage.EXPECT().ScanForProcessing(gomock.Any(), id).Return(nil, nil)
		f.storage.EXPECT().DeletedScanByID(gomock.Any(), id).Return(nil, nil)

		_, err := f.processor.Process(context.Background(), id)
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("completed scan is a no-op", func(t *testing.T) {
		f := newProcessorFixture(t, scanner.Options{})
		scan := pendingScan()
		scan.Status = domain.ScanStatusCompleted
		f.storage.EXPECT().ScanForProcessing(gomock.Any(), scan.ID).Return(scan, nil)

		_, err := f.processor.Process(context.Background(), scan.ID)
		require.NoError(t, err)
	})

	t.Run("failed scan is not picked up", func(t *testing.T) {
		f := newProcessorFixture(t, scanner.Options{})
		scan := pendingScan()
		scan.Status = domain.ScanStatusFailed
		f.storage.EXPECT().ScanForProcessing(gomock.Any(), scan.ID).Return(scan, nil)
		f.storage.EXPECT().UpdateScanByID(gomock.Any(), scan.ID, gomock.Any()).DoAndReturn(applyUpdates(scan))
		f.storage.EXPECT().DeletedScanByID(gomock.Any(), scan.ID).Return(nil, nil)

		_, err := f.processor.Process(context.Background(), scan.ID)
		require.ErrorIs(t, err, serrors.ErrConflict)
	})
}

func TestProcessor_Process_AnalyzerErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{name: "rate limited", err: serrors.With(serrors.ErrRateLimited, "slow down"), kind: serrors.ErrRateLimited},
		{name: "rejected", err: serrors.With(serrors.ErrBadRequest, "bad image"), kind: serrors.ErrBadRequest},
		{name: "transient", err: errors.New("connection reset"), kind: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProcessorFixture(t, scanner.Options{})
			scan := pendingScan()
			resetAt := time.Now().Add(time.Minute)

			f.storage.EXPECT().ScanForProcessing(gomock.Any(), scan.ID).Return(scan, nil)
			f.storage.EXPECT().UpdateScanByID(gomock.Any(), scan.ID, gomock.Any()).DoAndReturn(applyUpdates(scan)).Times(3)
			f.blobs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(&blob.Object{Body: pngImage(t, 4, 4)}, nil)
			f.rules.EXPECT().ForMarketplaces(gomock.Any(), gomock.Any()).Return(nil, nil)
			f.analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).
				Return(nil, labelai.RateLimitStatus{Limit: 5, Remaining: 0, ResetAt: resetAt}, tt.err)
			events := f.recordEvents()

			rl, err := f.processor.Process(context.Background(), scan.ID)
			require.Error(t, err)
			if tt.kind != nil {
				require.ErrorIs(t, err, tt.kind)
			}
			require.Equal(t, resetAt, rl.ResetAt)

			require.Equal(t, domain.ScanStatusPending, scan.Status)
			require.Equal(t, domain.ProgressQueued, scan.Progress)
			require.Contains(t, scan.LastError, tt.err.Error())
			require.Equal(t, scanner.StageRetrying, (*events)[len(*events)-1].Stage)
		})
	}
}

func TestProcessor_Process_MissingImage(t *testing.T) {
	f := newProcessorFixture(t, scanner.Options{})
	scan := pendingScan()

	f.storage.EXPECT().ScanForProcessing(gomock.Any(), scan.ID).Return(scan, nil)
	f.storage.EXPECT().UpdateScanByID(gomock.Any(), scan.ID, gomock.Any()).DoAndReturn(applyUpdates(scan)).Times(2)
	f.blobs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, serrors.With(serrors.ErrNotFound, "no such key"))
	f.recordEvents()

	_, err := f.processor.Process(context.Background(), scan.ID)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestProcessor_Process_Timeout(t *testing.T) {
	f := newProcessorFixture(t, scanner.Options{AnalyzeTimeout: 10 * time.Millisecond})
	scan := pendingScan()

	f.storage.EXPECT().ScanForProcessing(gomock.Any(), scan.ID).Return(scan, nil)
	f.storage.EXPECT().UpdateScanByID(gomock.Any(), scan.ID, gomock.Any()).DoAndReturn(applyUpdates(scan)).Times(3)
	f.blobs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(&blob.Object{Body: pngImage(t, 4, 4)}, nil)
	f.rules.EXPECT().ForMarketplaces(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ labelai.Input) (*domain.ComplianceReport, labelai.RateLimitStatus, error) {
			<-ctx.Done()

			return nil, labelai.RateLimitStatus{}, ctx.Err()
		})
	f.recordEvents()

	_, err := f.processor.Process(context.Background(), scan.ID)
	require.ErrorIs(t, err, serrors.ErrTimeout)
}

func TestProcessor_PublishFailureIsIgnored(t *testing.T) {
	f := newProcessorFixture(t, scanner.Options{})
	scan := pendingScan()

	f.storage.EXPECT().ScanForProcessing(gomock.Any(), scan.ID).Return(scan, nil)
	f.storage.EXPECT().UpdateScanByID(gomock.Any(), scan.ID, gomock.Any()).DoAndReturn(applyUpdates(scan)).Times(4)
	f.blobs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(&blob.Object{Body: pngImage(t, 4, 4)}, nil)
	f.rules.EXPECT().ForMarketplaces(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).
		Return(&domain.ComplianceReport{Score: 100, Status: domain.ComplianceCompliant}, labelai.RateLimitStatus{}, nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).AnyTimes()

	_, err := f.processor.Process(context.Background(), scan.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ScanStatusCompleted, scan.Status)
}

func TestProcessor_Fail(t *testing.T) {
	t.Run("refunds the credit", func(t *testing.T) {
		f := newProcessorFixture(t, scanner.Options{})
		scan := pendingScan()
		scan.Status = domain.ScanStatusProcessing
		scan.CreditSource = domain.CreditSourcePeriod

		f.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cb func(storage.AllStorage) error) error {
				tx := mockstorage.NewMockAllStorage(f.ctrl)
				tx.EXPECT().UpdateScanByID(gomock.Any(), scan.ID, gomock.Any()).DoAndReturn(applyUpdates(scan))
				tx.EXPECT().RefundScanCredit(gomock.Any(), scan.AccountID, domain.CreditSourcePeriod).Return(nil)

				return cb(tx)
			})
		events := f.recordEvents()

		require.NoError(t, f.processor.Fail(context.Background(), scan.ID, errors.New("model gave up")))
		require.Equal(t, domain.ScanStatusFailed, scan.Status)
		require.Equal(t, "model gave up", scan.LastError)
		require.Len(t, *events, 1)
		require.Equal(t, scanner.StageFailed, (*events)[0].Stage)
		require.Equal(t, "model gave up", (*events)[0].Error)
	})

	t.Run("finished scans are left alone", func(t *testing.T) {
		f := newProcessorFixture(t, scanner.Options{})
		scan := pendingScan()
		scan.Status = domain.ScanStatusCompleted

		f.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cb func(storage.AllStorage) error) error {
				tx := mockstorage.NewMockAllStorage(f.ctrl)
				tx.EXPECT().UpdateScanByID(gomock.Any(), scan.ID, gomock.Any()).DoAndReturn(applyUpdates(scan))

				return cb(tx)
			})
		f.storage.EXPECT().DeletedScanByID(gomock.Any(), scan.ID).Return(nil, nil)

		require.NoError(t, f.processor.Fail(context.Background(), scan.ID, nil))
		require.Equal(t, domain.ScanStatusCompleted, scan.Status)
	})

	t.Run("deleted scans lose their image", func(t *testing.T) {
		f := newProcessorFixture(t, scanner.Options{})
		scan := pendingScan()

		f.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cb func(storage.AllStorage) error) error {
				tx := mockstorage.NewMockAllStorage(f.ctrl)
				tx.EXPECT().UpdateScanByID(gomock.Any(), scan.ID, gomock.Any()).Return(nil, nil)

				return cb(tx)
			})
		f.storage.EXPECT().DeletedScanByID(gomock.Any(), scan.ID).Return(scan, nil)
		f.blobs.EXPECT().Delete(gomock.Any(), "labels/x.png").Return(nil)

		require.NoError(t, f.processor.Fail(context.Background(), scan.ID, errors.New("gave up")))
	})
}

// deletableUpdates behaves like applyUpdates until the scan is deleted, after
// which no update matches.
func deletableUpdates(scan *domain.Scan, deleted *bool) func(context.Context, domain.ScanID, storage.ScanUpdates) (*domain.Scan, error) {
	apply := applyUpdates(scan)

	return func(ctx context.Context, id domain.ScanID, u storage.ScanUpdates) (*domain.Scan, error) {
		if *deleted {
			return nil, nil
		}

		return apply(ctx, id, u)
	}
}

func TestProcessor_Process_DeletedWhileRunning(t *testing.T) {
	tests := []struct {
		name      string
		report    *domain.ComplianceReport
		err       error
		wantError error
	}{
		{
			name:      "deleted before the result is stored",
			report:    &domain.ComplianceReport{Score: 90, Status: domain.ComplianceCompliant},
			wantError: serrors.ErrConflict,
		},
		{
			name: "deleted before a retry is recorded",
			err:  errors.New("connection reset"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProcessorFixture(t, scanner.Options{})
			scan := pendingScan()
			deleted := false

			f.storage.EXPECT().ScanForProcessing(gomock.Any(), scan.ID).Return(scan, nil)
			f.storage.EXPECT().UpdateScanByID(gomock.Any(), scan.ID, gomock.Any()).
				DoAndReturn(deletableUpdates(scan, &deleted)).AnyTimes()
			f.blobs.EXPECT().Get(gomock.Any(), "labels/x.png").Return(&blob.Object{Body: pngImage(t, 4, 4)}, nil)
			f.rules.EXPECT().ForMarketplaces(gomock.Any(), gomock.Any()).Return(nil, nil)
			f.analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).DoAndReturn(
				func(context.Context, labelai.Input) (*domain.ComplianceReport, labelai.RateLimitStatus, error) {
					// the owner deletes the scan while the model is working
					deleted = true

					return tt.report, labelai.RateLimitStatus{}, tt.err
				})
			f.storage.EXPECT().DeletedScanByID(gomock.Any(), scan.ID).Return(scan, nil)
			f.blobs.EXPECT().Delete(gomock.Any(), "labels/x.png").Return(nil)
			events := f.recordEvents()

			_, err := f.processor.Process(context.Background(), scan.ID)
			require.Error(t, err)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
			}
			require.NotContains(t, stages(*events), scanner.StageCompleted)
			require.NotContains(t, stages(*events), scanner.StageRetrying)
		})
	}
}

func TestScanner_DeletePendingThenProcess(t *testing.T) {
	f := newProcessorFixture(t, scanner.Options{})
	s := scanner.New(f.storage, f.blobs, f.publisher, scanner.Options{})
	scan := pendingScan()
	user := domain.User{ID: domain.UserID(uuid.New()), AccountID: scan.AccountID}

	deleted := *scan
	deleted.DeletedAt = time.Now()
	f.storage.EXPECT().DeleteScan(gomock.Any(), scan.AccountID, scan.ID).Return(&deleted, nil)
	require.NoError(t, s.Delete(context.Background(), user, scan.ID))

	// the queued job finds the scan gone and removes the image
	f.storage.EXPECT().ScanForProcessing(gomock.Any(), scan.ID).Return(nil, nil)
	f.storage.EXPECT().DeletedScanByID(gomock.Any(), scan.ID).Return(&deleted, nil)
	f.blobs.EXPECT().Delete(gomock.Any(), "labels/x.png").Return(nil)

	_, err := f.processor.Process(context.Background(), scan.ID)
	require.ErrorIs(t, err, serrors.ErrConflict)
}
