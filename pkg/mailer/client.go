package mailer

import (
	"context"
	"sync"

	"HRDesk/config"
	"HRDesk/pkg/logger"

	"go.uber.org/zap"
)

// Client 邮件客户端接口
type Client interface {
	// Send 发送一封纯文本邮件
	// to: 收件人列表
	// subject: 主题
	// body: 正文
	Send(ctx context.Context, to []string, subject, body string) error
}

var (
	mailClient Client
	mailOnce   sync.Once
)

// Init 初始化邮件客户端
// SMTP_HOST 未配置时退化为日志输出，开发环境可以不起邮件服务
func Init() error {
	mailOnce.Do(func() {
		cfg := config.Cfg

		if cfg.SMTPHost == "" {
			mailClient = NewLogClient()
			logger.Logger.Warn("SMTP host not configured, mails will only be logged")
			return
		}

		mailClient = NewSMTPClient()
		logger.Logger.Info("Mail client initialized successfully",
			zap.String("host", cfg.SMTPHost),
			zap.String("from", cfg.SMTPFrom),
		)
	})

	return nil
}

func GetClient() Client {
	if mailClient == nil {
		panic("mail client not initialized, call mailer.Init() first")
	}
	return mailClient
}

// SetClient 替换客户端实例，测试用
func SetClient(c Client) {
	mailOnce.Do(func() {})
	mailClient = c
}

func Send(ctx context.Context, to []string, subject, body string) error {
	return GetClient().Send(ctx, to, subject, body)
}
