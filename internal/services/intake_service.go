package services

import (
	"context"
	"log"

	"github.com/Yuuta12-maker/MEC-App/internal/forms"
	"github.com/Yuuta12-maker/MEC-App/internal/models"
	"github.com/Yuuta12-maker/MEC-App/internal/notify"
	"github.com/Yuuta12-maker/MEC-App/internal/repository"
)

type clientWriter interface {
	Create(ctx context.Context, rec repository.ClientRecord) (*models.Client, error)
}

type sessionWriter interface {
	Create(ctx context.Context, rec repository.SessionRecord) (*models.Session, error)
	ListByStatus(ctx context.Context, status string) ([]models.Session, error)
}

type changePublisher interface {
	Invalidate(collection string)
}

// IntakeService runs the public apply and book workflows. Both create the
// client with trial status; booking additionally creates a trial session
// assigned to the practice's default coach.
type IntakeService struct {
	clientRepo  clientWriter
	sessionRepo sessionWriter
	notifier    notify.Notifier
	changes     changePublisher
	coachName   string
	adminEmail  string
}

func NewIntakeService(
	clientRepo clientWriter,
	sessionRepo sessionWriter,
	notifier notify.Notifier,
	changes changePublisher,
	coachName string,
	adminEmail string,
) *IntakeService {
	return &IntakeService{
		clientRepo:  clientRepo,
		sessionRepo: sessionRepo,
		notifier:    notifier,
		changes:     changes,
		coachName:   coachName,
		adminEmail:  adminEmail,
	}
}

func (s *IntakeService) Apply(ctx context.Context, values forms.ApplicationValues) (*models.Client, error) {
	client, err := s.clientRepo.Create(ctx, repository.ClientRecord{
		Name:        values.Name,
		Kana:        values.Kana,
		Email:       values.Email,
		Status:      models.ClientStatusTrial,
		Gender:      values.Gender,
		Birthday:    values.Birthday,
		Phone:       values.Phone,
		Address:     values.Address,
		SessionType: values.SessionType,
		Notes:       values.Notes,
	})
	if err != nil {
		return nil, err
	}
	s.changes.Invalidate("clients")

	s.sendBestEffort(ctx, notify.Notification{
		To:      s.adminEmail,
		Subject: "新規クライアントお申し込み",
		Body:    values.Name + " さんから申し込みがありました。",
	})
	s.sendBestEffort(ctx, notify.Notification{
		To:      values.Email,
		Subject: "お申し込みありがとうございます",
		Body:    "内容を確認後、改めてご連絡いたします。",
	})

	return client, nil
}

// Book creates the client first and then the session. If the session write
// fails the client is left in place; there is no rollback.
func (s *IntakeService) Book(ctx context.Context, values forms.BookingValues) (*models.Client, *models.Session, error) {
	client, err := s.clientRepo.Create(ctx, repository.ClientRecord{
		Name:   values.Name,
		Email:  values.Email,
		Status: models.ClientStatusTrial,
	})
	if err != nil {
		return nil, nil, err
	}
	s.changes.Invalidate("clients")

	session, err := s.sessionRepo.Create(ctx, repository.SessionRecord{
		ClientID:   client.ID,
		ClientName: values.Name,
		Date:       values.Date,
		Time:       values.Time,
		Type:       models.SessionTypeTrial,
		Status:     models.SessionStatusScheduled,
		CoachName:  s.coachName,
		Notes:      values.Notes,
	})
	if err != nil {
		return client, nil, err
	}
	s.changes.Invalidate("sessions")

	s.sendBestEffort(ctx, notify.Notification{
		To:      s.adminEmail,
		Subject: "新規セッション予約",
		Body:    values.Name + " さんが " + session.Date + " " + session.Time + " を予約しました。",
	})
	s.sendBestEffort(ctx, notify.Notification{
		To:      values.Email,
		Subject: "セッション予約が完了しました",
		Body:    session.Date + " " + session.Time + " にご予約を承りました。",
	})

	return client, session, nil
}

// AvailableTimes collects the time values of scheduled sessions on the given
// date. Open slots are operator-defined scheduled sessions, not a separate
// calendar concept.
func (s *IntakeService) AvailableTimes(ctx context.Context, date string) ([]string, error) {
	sessions, err := s.sessionRepo.ListByStatus(ctx, models.SessionStatusScheduled)
	if err != nil {
		return nil, err
	}

	times := make([]string, 0)
	for _, session := range sessions {
		if session.Date == date {
			times = append(times, session.Time)
		}
	}
	return times, nil
}

func (s *IntakeService) sendBestEffort(ctx context.Context, n notify.Notification) {
	if n.To == "" {
		return
	}
	if err := s.notifier.Send(ctx, n); err != nil {
		log.Printf("intake notification failed: %v", err)
	}
}
