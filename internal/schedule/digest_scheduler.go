package schedule

// 摘要调度器：每天汇总待审批的请假申请，投递邮件摘要消息

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"HRDesk/config"
	"HRDesk/internal/cache"
	"HRDesk/internal/queue"
	"HRDesk/internal/service"
	"HRDesk/pkg/logger"
	"HRDesk/utils"
)

var (
	schedulerOnce sync.Once
	schedulerInst *DigestScheduler
)

type DigestScheduler struct {
	logger         *zap.Logger
	jobRunning     bool
	jobMu          sync.Mutex
	lastDigestTime time.Time
}

func GetScheduler() *DigestScheduler {
	schedulerOnce.Do(func() {
		schedulerInst = &DigestScheduler{
			logger: logger.Logger,
		}
	})
	return schedulerInst
}

// ScheduleDailyDigest 汇总当天待审批请假并投递摘要。
// 多实例部署时用 Redis 锁保证每天只投递一次。
func (s *DigestScheduler) ScheduleDailyDigest(ctx context.Context) error {
	s.jobMu.Lock()
	if s.jobRunning {
		s.jobMu.Unlock()
		s.logger.Info("Digest job already running, skipping")
		return nil
	}
	s.jobRunning = true
	s.jobMu.Unlock()

	defer func() {
		s.jobMu.Lock()
		s.jobRunning = false
		s.jobMu.Unlock()
	}()

	startTime := time.Now()
	s.lastDigestTime = startTime
	today := startTime.Format(utils.DateLayout)

	s.logger.Info("Starting daily leave digest scheduler",
		zap.String("date", today),
	)

	lockKey := "digest:" + today
	locked, err := cache.TryLock(ctx, lockKey, 23*time.Hour)
	if err != nil {
		s.logger.Warn("Failed to acquire digest lock, proceeding anyway",
			zap.String("date", today),
			zap.Error(err),
		)
	} else if !locked {
		s.logger.Info("Digest already scheduled by another instance, skipping",
			zap.String("date", today),
		)
		return nil
	}

	recipients := splitRecipients(config.Cfg.LeaveDigestRecipients)
	if len(recipients) == 0 {
		s.logger.Info("No digest recipients configured, skipping")
		return nil
	}

	msg, err := service.Leave().PendingDigest(ctx, startTime)
	if err != nil {
		// 失败时释放锁，下次调度可以重试
		if unlockErr := cache.Unlock(ctx, lockKey); unlockErr != nil {
			s.logger.Warn("Failed to release digest lock", zap.Error(unlockErr))
		}
		return fmt.Errorf("failed to build pending digest: %w", err)
	}

	if msg.PendingCount == 0 {
		s.logger.Info("No pending leave requests today, digest skipped",
			zap.String("date", today),
		)
		return nil
	}

	msg.Recipients = recipients

	if err := queue.PublishLeaveDigest(*msg); err != nil {
		if unlockErr := cache.Unlock(ctx, lockKey); unlockErr != nil {
			s.logger.Warn("Failed to release digest lock", zap.Error(unlockErr))
		}
		return fmt.Errorf("failed to publish leave digest: %w", err)
	}

	s.logger.Info("Daily leave digest scheduled",
		zap.String("date", today),
		zap.Int("pending_count", msg.PendingCount),
		zap.Int("recipient_count", len(recipients)),
		zap.Duration("duration", time.Since(startTime)),
	)

	return nil
}

func splitRecipients(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
