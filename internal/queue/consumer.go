package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"HRDesk/internal/cache"
	"HRDesk/internal/model"
	"HRDesk/pkg/errors"
	"HRDesk/pkg/logger"
	"HRDesk/pkg/mailer"
	"HRDesk/storage/mq"
)

// worker 进程的三个邮件消费者，幂等靠 Redis SETNX 标记

// StartAllConsumers 启动所有消费者并阻塞到 ctx 取消
func StartAllConsumers(ctx context.Context) {
	consumers := []struct {
		name  string
		start func(context.Context) error
	}{
		{"otp_mail", StartOTPMailConsumer},
		{"leave_notify", StartLeaveNotifyConsumer},
		{"leave_digest", StartLeaveDigestConsumer},
	}

	for _, c := range consumers {
		go func(name string, start func(context.Context) error) {
			if err := start(ctx); err != nil {
				logger.Logger.Error("Consumer stopped with error",
					zap.String("consumer", name),
					zap.Error(err),
				)
			}
		}(c.name, c.start)
	}

	<-ctx.Done()
}

// StartOTPMailConsumer 启动验证码邮件消费者
func StartOTPMailConsumer(ctx context.Context) error {
	handler := func(body []byte) error {
		var msg model.OTPMailMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			return fmt.Errorf("failed to unmarshal OTP mail message: %w", err)
		}

		processed, err := cache.TryMarkMessageProcessing(ctx, msg.MessageID, 24*time.Hour)
		if err != nil {
			logger.Logger.Warn("Failed to check message processed status",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
			// 检查失败时继续处理，可能重复发送但不阻塞业务
		} else if !processed {
			return &errors.SkipMessageError{Reason: fmt.Sprintf("Message %s already processed", msg.MessageID)}
		}

		if err := mailer.SendOTPMail(ctx, msg.Email, msg.Code); err != nil {
			cache.UnmarkMessageProcessing(ctx, msg.MessageID)
			return fmt.Errorf("failed to send OTP mail: %w", err)
		}

		if err := cache.MarkMessageProcessed(ctx, msg.MessageID, 48*time.Hour); err != nil {
			logger.Logger.Warn("Failed to mark message as processed",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		}

		logger.Logger.Info("OTP mail delivered",
			zap.String("message_id", msg.MessageID),
			zap.String("email", msg.Email),
		)
		return nil
	}

	return mq.Consume(mq.ConsumeOptions{
		Queue:         mq.OTPQueue,
		ConsumerTag:   "otp_mail_consumer",
		PrefetchCount: 10,
		Handler:       handler,
	})
}

// StartLeaveNotifyConsumer 启动请假审批结果通知消费者
func StartLeaveNotifyConsumer(ctx context.Context) error {
	handler := func(body []byte) error {
		var msg model.LeaveNotifyMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			return fmt.Errorf("failed to unmarshal leave notify message: %w", err)
		}

		processed, err := cache.TryMarkMessageProcessing(ctx, msg.MessageID, 24*time.Hour)
		if err != nil {
			logger.Logger.Warn("Failed to check message processed status",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		} else if !processed {
			return &errors.SkipMessageError{Reason: fmt.Sprintf("Message %s already processed", msg.MessageID)}
		}

		if msg.Email == "" {
			// 员工没有邮箱时无处投递，直接 Ack
			return &errors.SkipMessageError{Reason: fmt.Sprintf("Leave %d has no recipient email", msg.LeaveID)}
		}

		if err := mailer.SendLeaveStatusMail(ctx, msg.Email, msg.EmployeeName, msg.LeaveType, msg.Status); err != nil {
			cache.UnmarkMessageProcessing(ctx, msg.MessageID)
			return fmt.Errorf("failed to send leave status mail: %w", err)
		}

		if err := cache.MarkMessageProcessed(ctx, msg.MessageID, 48*time.Hour); err != nil {
			logger.Logger.Warn("Failed to mark message as processed",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		}

		logger.Logger.Info("Leave status mail delivered",
			zap.String("message_id", msg.MessageID),
			zap.Int64("leave_id", msg.LeaveID),
			zap.String("status", msg.Status),
		)
		return nil
	}

	return mq.Consume(mq.ConsumeOptions{
		Queue:         mq.LeaveQueue,
		ConsumerTag:   "leave_notify_consumer",
		PrefetchCount: 10,
		Handler:       handler,
	})
}

// StartLeaveDigestConsumer 启动每日摘要消费者
func StartLeaveDigestConsumer(ctx context.Context) error {
	handler := func(body []byte) error {
		var msg model.LeaveDigestMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			return fmt.Errorf("failed to unmarshal leave digest message: %w", err)
		}

		processed, err := cache.TryMarkMessageProcessing(ctx, msg.MessageID, 24*time.Hour)
		if err != nil {
			logger.Logger.Warn("Failed to check message processed status",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		} else if !processed {
			return &errors.SkipMessageError{Reason: fmt.Sprintf("Message %s already processed", msg.MessageID)}
		}

		if len(msg.Recipients) == 0 {
			return &errors.SkipMessageError{Reason: "Leave digest has no recipients configured"}
		}

		subject := fmt.Sprintf("Pending Leave Requests for %s (%d)", msg.Date, msg.PendingCount)
		bodyText := strings.Join(msg.Lines, "\n")
		if bodyText == "" {
			bodyText = "No pending leave requests."
		}

		if err := mailer.Send(ctx, msg.Recipients, subject, bodyText); err != nil {
			cache.UnmarkMessageProcessing(ctx, msg.MessageID)
			return fmt.Errorf("failed to send leave digest mail: %w", err)
		}

		if err := cache.MarkMessageProcessed(ctx, msg.MessageID, 48*time.Hour); err != nil {
			logger.Logger.Warn("Failed to mark message as processed",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		}

		logger.Logger.Info("Leave digest mail delivered",
			zap.String("message_id", msg.MessageID),
			zap.String("date", msg.Date),
			zap.Int("pending_count", msg.PendingCount),
		)
		return nil
	}

	return mq.Consume(mq.ConsumeOptions{
		Queue:         mq.DigestQueue,
		ConsumerTag:   "leave_digest_consumer",
		PrefetchCount: 5,
		Handler:       handler,
	})
}
