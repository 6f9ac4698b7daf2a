package services

import (
	"context"
	"errors"

	"github.com/Yuuta12-maker/MEC-App/internal/models"
)

var ErrUnknownCollection = errors.New("unknown collection")

type clientLister interface {
	List(ctx context.Context) ([]models.Client, error)
}

type sessionLister interface {
	List(ctx context.Context) ([]models.Session, error)
}

type paymentLister interface {
	List(ctx context.Context) ([]models.Payment, error)
}

// SnapshotService serves the full current contents of a collection for the
// live subscription hub.
type SnapshotService struct {
	clientRepo  clientLister
	sessionRepo sessionLister
	paymentRepo paymentLister
}

func NewSnapshotService(
	clientRepo clientLister,
	sessionRepo sessionLister,
	paymentRepo paymentLister,
) *SnapshotService {
	return &SnapshotService{
		clientRepo:  clientRepo,
		sessionRepo: sessionRepo,
		paymentRepo: paymentRepo,
	}
}

func (s *SnapshotService) Snapshot(ctx context.Context, collection string) (any, error) {
	switch collection {
	case "clients":
		return s.clientRepo.List(ctx)
	case "sessions":
		return s.sessionRepo.List(ctx)
	case "payments":
		return s.paymentRepo.List(ctx)
	default:
		return nil, ErrUnknownCollection
	}
}
