package mq

import (
	"context"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"HRDesk/config"
)

// 邮件通知的交换机和队列拓扑
const (
	MailExchange = "hrdesk.mail"

	OTPQueue    = "hrdesk.mail.otp"
	LeaveQueue  = "hrdesk.mail.leave"
	DigestQueue = "hrdesk.mail.digest"

	OTPRoutingKey    = "mail.otp"
	LeaveRoutingKey  = "mail.leave"
	DigestRoutingKey = "mail.digest"
)

var (
	conn     *amqp.Connection
	connOnce sync.Once
	connErr  error
)

func Init() error {
	connOnce.Do(func() {
		url := config.Cfg.GetRabbitMQURL()

		conn, connErr = amqp.Dial(url)
		if connErr != nil {
			return
		}

		ch, err := conn.Channel()
		if err != nil {
			connErr = err
			return
		}
		defer ch.Close()

		connErr = declareTopology(ch)
	})

	return connErr
}

func Connection() *amqp.Connection {
	return conn
}

func Close(ctx context.Context) error {
	if conn == nil {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.Close()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

func declareTopology(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(MailExchange, "direct", true, false, false, false, nil); err != nil {
		return err
	}

	bindings := []struct {
		queue      string
		routingKey string
	}{
		{OTPQueue, OTPRoutingKey},
		{LeaveQueue, LeaveRoutingKey},
		{DigestQueue, DigestRoutingKey},
	}

	for _, b := range bindings {
		if _, err := ch.QueueDeclare(b.queue, true, false, false, false, nil); err != nil {
			return err
		}
		if err := ch.QueueBind(b.queue, b.routingKey, MailExchange, false, nil); err != nil {
			return err
		}
	}

	return nil
}
