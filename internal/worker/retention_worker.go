package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/usecase/interfaces"
)

// 보존 정리 실행 시각 (매일 02:00)
const sweepHour = 2

// RetentionWorker 매일 지정 시각에 토큰 보존 정리를 수행하는 백그라운드 워커
type RetentionWorker struct {
	logger         *zap.Logger
	cleanupUseCase interfaces.CleanupUseCase
}

// NewRetentionWorker 새 보존 정리 워커 생성
func NewRetentionWorker(logger *zap.Logger, cleanupUC interfaces.CleanupUseCase) *RetentionWorker {
	return &RetentionWorker{
		logger:         logger,
		cleanupUseCase: cleanupUC,
	}
}

// Start 워커 고루틴 시작. 컨텍스트가 취소되면 종료됩니다
func (w *RetentionWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *RetentionWorker) run(ctx context.Context) {
	w.logger.Info("토큰 보존 정리 워커 시작",
		zap.Time("next_run", nextSweepTime(time.Now())))

	for {
		timer := time.NewTimer(time.Until(nextSweepTime(time.Now())))

		select {
		case <-ctx.Done():
			timer.Stop()
			w.logger.Info("토큰 보존 정리 워커 종료")
			return
		case <-timer.C:
			if _, err := w.cleanupUseCase.RunRetentionSweep(ctx); err != nil {
				w.logger.Error("토큰 보존 정리 실행 실패", zap.Error(err))
			}
		}
	}
}

// nextSweepTime 기준 시각 이후 첫 실행 시각 계산
func nextSweepTime(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), sweepHour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
