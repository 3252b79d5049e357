package mailer

import (
	"context"
	"errors"
	"sync"

	"HRDesk/pkg/logger"

	"go.uber.org/zap"
)

type MockSend struct {
	To      []string
	Subject string
	Body    string
}

// MockClient 可配置的邮件客户端 mock，实现 Client 接口
type MockClient struct {
	mu    sync.Mutex
	Sends []MockSend

	// FailNext 置为 true 时，下一次调用返回 mock 错误并自动复位
	FailNext bool
}

func NewMockClient() *MockClient {
	return &MockClient{
		Sends: make([]MockSend, 0),
	}
}

func (m *MockClient) Send(ctx context.Context, to []string, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Sends = append(m.Sends, MockSend{To: to, Subject: subject, Body: body})

	if m.FailNext {
		m.FailNext = false
		return errors.New("mock mail send failure")
	}

	return nil
}

// LogClient 只打日志不真正发信，SMTP 未配置时的兜底
type LogClient struct{}

func NewLogClient() *LogClient {
	return &LogClient{}
}

func (l *LogClient) Send(ctx context.Context, to []string, subject, body string) error {
	logger.Logger.Info("mail send (log only)",
		zap.Strings("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}
