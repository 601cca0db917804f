package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// Sender отправляет подготовленные письма (*mail.Client)
type Sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// Client клиент отправки писем
type Client struct {
	sender   Sender
	from     string
	fromName string
	baseURL  string
	log      Logger
}

// NewClient создает клиента по конфигурации.
// При выключенной почте письма только пишутся в лог
func NewClient(cfg Config, log Logger) (*Client, error) {
	if !cfg.Enabled {
		return &Client{from: cfg.From, fromName: cfg.FromName, baseURL: cfg.BaseURL, log: log}, nil
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}

	smtpClient, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: create smtp client: %w", ErrInternal, err)
	}

	return NewClientWithSender(smtpClient, cfg.From, cfg.FromName, cfg.BaseURL, log), nil
}

// NewClientWithSender создает клиента с произвольным отправителем
func NewClientWithSender(sender Sender, from, fromName, baseURL string, log Logger) *Client {
	return &Client{sender: sender, from: from, fromName: fromName, baseURL: baseURL, log: log}
}

// Send отправляет письмо
func (c *Client) Send(ctx context.Context, message Message) error {
	if c.sender == nil {
		c.log.Info("Mailer disabled, message to=%s subject=%q not sent", message.To, message.Subject)
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(c.fromName, c.from); err != nil {
		return fmt.Errorf("%w: from %s: %w", ErrInvalidAddress, c.from, err)
	}
	if err := msg.To(message.To); err != nil {
		return fmt.Errorf("%w: to %s: %w", ErrInvalidAddress, message.To, err)
	}
	msg.Subject(message.Subject)
	msg.SetBodyString(mail.TypeTextPlain, message.Body)

	if err := c.sender.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%w: to %s: %w", ErrSend, message.To, err)
	}

	c.log.Info("Mail sent to=%s subject=%q", message.To, message.Subject)
	return nil
}

// SendWithGracefulDegradation отправляет письмо, не прерывая бизнес-операцию при сбое SMTP
func (c *Client) SendWithGracefulDegradation(ctx context.Context, message Message) {
	if err := c.Send(ctx, message); err != nil {
		c.log.Warn("Mail to=%s not delivered: %v", message.To, err)
	}
}

// ReservationCreated письмо гостю о принятой брони
func (c *Client) ReservationCreated(ctx context.Context, reservation *domain.Reservation) {
	body := fmt.Sprintf(
		"Здравствуйте, %s!\n\nВаша бронь №%d принята и ожидает подтверждения.\nСтол: №%s\nДата: %s\nВремя: %s\nГостей: %d\n",
		reservation.Name,
		reservation.ID,
		reservation.TableNumber,
		reservation.Date.Format(domain.DateFormat),
		reservation.Time,
		reservation.Guests,
	)

	c.SendWithGracefulDegradation(ctx, Message{
		To:      reservation.Email,
		Subject: "Бронирование столика",
		Body:    body,
	})
}

// ReservationStatusChanged письмо гостю о смене статуса брони
func (c *Client) ReservationStatusChanged(ctx context.Context, reservation *domain.Reservation) {
	var subject, text string
	switch reservation.Status {
	case domain.StatusConfirmed:
		subject, text = "Бронь подтверждена", "подтверждена"
	case domain.StatusCanceled:
		subject, text = "Бронь отменена", "отменена"
	default:
		return
	}

	c.SendWithGracefulDegradation(ctx, Message{
		To:      reservation.Email,
		Subject: subject,
		Body: fmt.Sprintf("Здравствуйте, %s!\n\nВаша бронь №%d на %s %s %s.\n",
			reservation.Name, reservation.ID, reservation.Date.Format(domain.DateFormat), reservation.Time, text),
	})
}

// EmailConfirmation письмо со ссылкой подтверждения e-mail
func (c *Client) EmailConfirmation(ctx context.Context, email, token string) {
	link := strings.TrimRight(c.baseURL, "/") + "/api/v1/users/confirm/" + token

	c.SendWithGracefulDegradation(ctx, Message{
		To:      email,
		Subject: "Подтверждение почты",
		Body:    "Для подтверждения регистрации перейдите по ссылке: " + link + "\n",
	})
}

// PasswordReset письмо с новым паролем
func (c *Client) PasswordReset(ctx context.Context, email, password string) {
	c.SendWithGracefulDegradation(ctx, Message{
		To:      email,
		Subject: "Восстановление пароля",
		Body:    "Ваш новый пароль: " + password + "\n",
	})
}
