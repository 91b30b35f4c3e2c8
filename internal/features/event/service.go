package event

import (
	"context"
	"errors"
	"time"

	"go-temple/internal/common/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type EventService interface {
	Create(ctx context.Context, templeID primitive.ObjectID, req CreateEventRequest) (*Event, error)
	GetByTemple(ctx context.Context, templeID primitive.ObjectID) ([]Event, error)
	Update(ctx context.Context, templeID, id primitive.ObjectID, req UpdateEventRequest) (*Event, error)
	Delete(ctx context.Context, templeID, id primitive.ObjectID) error
}

type EventServiceImpl struct {
	Repo EventRepository
}

func NewEventService(repo EventRepository) EventService {
	return &EventServiceImpl{Repo: repo}
}

func (s *EventServiceImpl) Create(ctx context.Context, templeID primitive.ObjectID, req CreateEventRequest) (*Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = DefaultStatus
	}
	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	now := time.Now()
	event := &Event{
		ID:        primitive.NewObjectID(),
		TempleID:  templeID,
		Name:      req.Name,
		Date:      date,
		Location:  req.Location,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventServiceImpl) GetByTemple(ctx context.Context, templeID primitive.ObjectID) ([]Event, error) {
	return s.Repo.FindByTemple(ctx, templeID)
}

func (s *EventServiceImpl) Update(ctx context.Context, templeID, id primitive.ObjectID, req UpdateEventRequest) (*Event, error) {
	event, err := s.Repo.FindOne(ctx, templeID, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Event not found.")
		}
		return nil, err
	}

	if req.Name != "" {
		event.Name = req.Name
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.Location != "" {
		event.Location = req.Location
	}
	if req.Status != "" {
		if !validStatus(req.Status) {
			return nil, apperr.Validation("Invalid status.")
		}
		event.Status = req.Status
	}
	event.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, templeID, id, event); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Event not found.")
		}
		return nil, err
	}
	return event, nil
}

func (s *EventServiceImpl) Delete(ctx context.Context, templeID, id primitive.ObjectID) error {
	if err := s.Repo.Delete(ctx, templeID, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.NotFound("Event not found.")
		}
		return err
	}
	return nil
}
