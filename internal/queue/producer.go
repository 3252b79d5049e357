package queue

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"HRDesk/internal/model"
	"HRDesk/pkg/logger"
	"HRDesk/storage/mq"
)

// PublishOTPMail 发布邮箱验证码投递消息
func PublishOTPMail(msg model.OTPMailMessage) error {
	if msg.MessageID == "" {
		msg.MessageID = fmt.Sprintf("otp_mail_%s", uuid.NewString())
	}
	if msg.RequestedAt == "" {
		msg.RequestedAt = time.Now().Format(time.RFC3339)
	}

	err := mq.PublishMessage(mq.MailExchange, mq.OTPRoutingKey, msg)
	if err != nil {
		logger.Logger.Error("Failed to publish OTP mail message",
			zap.String("message_id", msg.MessageID),
			zap.String("email", msg.Email),
			zap.Error(err),
		)
		return err
	}

	logger.Logger.Info("Published OTP mail message",
		zap.String("message_id", msg.MessageID),
		zap.String("email", msg.Email),
	)

	return nil
}

// PublishLeaveNotify 发布请假审批结果通知消息
func PublishLeaveNotify(msg model.LeaveNotifyMessage) error {
	if msg.MessageID == "" {
		msg.MessageID = fmt.Sprintf("leave_notify_%s", uuid.NewString())
	}
	if msg.DecidedAt == "" {
		msg.DecidedAt = time.Now().Format(time.RFC3339)
	}

	err := mq.PublishMessage(mq.MailExchange, mq.LeaveRoutingKey, msg)
	if err != nil {
		logger.Logger.Error("Failed to publish leave notify message",
			zap.String("message_id", msg.MessageID),
			zap.Int64("leave_id", msg.LeaveID),
			zap.Error(err),
		)
		return err
	}

	logger.Logger.Info("Published leave notify message",
		zap.String("message_id", msg.MessageID),
		zap.Int64("leave_id", msg.LeaveID),
		zap.String("status", msg.Status),
	)

	return nil
}

// PublishLeaveDigest 发布待审批请假的每日摘要消息
func PublishLeaveDigest(msg model.LeaveDigestMessage) error {
	if msg.MessageID == "" {
		msg.MessageID = fmt.Sprintf("leave_digest_%s", msg.Date)
	}

	err := mq.PublishMessage(mq.MailExchange, mq.DigestRoutingKey, msg)
	if err != nil {
		logger.Logger.Error("Failed to publish leave digest message",
			zap.String("message_id", msg.MessageID),
			zap.String("date", msg.Date),
			zap.Error(err),
		)
		return err
	}

	logger.Logger.Info("Published leave digest message",
		zap.String("message_id", msg.MessageID),
		zap.String("date", msg.Date),
		zap.Int("pending_count", msg.PendingCount),
	)

	return nil
}
