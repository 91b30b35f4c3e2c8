package donation

import (
	"context"
	"errors"
	"time"

	"go-temple/internal/common/apperr"
	"go-temple/internal/features/activity"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DonationService interface {
	Create(ctx context.Context, templeID primitive.ObjectID, req CreateDonationRequest) (*Donation, error)
	Get(ctx context.Context, templeID, id primitive.ObjectID) (*Donation, error)
	List(ctx context.Context, templeID primitive.ObjectID, query ListQuery) (*ListResult, error)
	Update(ctx context.Context, templeID, id primitive.ObjectID, req UpdateDonationRequest) (*Donation, error)
	Delete(ctx context.Context, templeID, id primitive.ObjectID) error
}

type DonationServiceImpl struct {
	Repo DonationRepository
	Feed *activity.Hub
}

func NewDonationService(repo DonationRepository, feed *activity.Hub) DonationService {
	return &DonationServiceImpl{
		Repo: repo,
		Feed: feed,
	}
}

func (s *DonationServiceImpl) Create(ctx context.Context, templeID primitive.ObjectID, req CreateDonationRequest) (*Donation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	donation := &Donation{
		ID:             primitive.NewObjectID(),
		TempleID:       templeID,
		DonorName:      req.DonorName,
		SevaName:       req.SevaName,
		Country:        req.Country,
		State:          req.State,
		District:       req.District,
		Tehsil:         req.Tehsil,
		Village:        req.Village,
		ContactInfo:    req.ContactInfo,
		PaymentMethod:  req.PaymentMethod,
		DonationAmount: req.DonationAmount,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.Repo.Create(ctx, donation); err != nil {
		return nil, err
	}

	if s.Feed != nil {
		s.Feed.Publish(activity.Event{
			Type:     "donation.created",
			TempleID: templeID.Hex(),
			Payload:  donation,
		})
	}
	return donation, nil
}

func (s *DonationServiceImpl) Get(ctx context.Context, templeID, id primitive.ObjectID) (*Donation, error) {
	donation, err := s.Repo.FindOne(ctx, templeID, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Donation not found.")
		}
		return nil, err
	}
	return donation, nil
}

// List pages through a temple's donations. The totals are temple-wide, not
// filtered, so the dashboard counters stay stable while searching.
func (s *DonationServiceImpl) List(ctx context.Context, templeID primitive.ObjectID, query ListQuery) (*ListResult, error) {
	donations, err := s.Repo.List(ctx, templeID, query)
	if err != nil {
		return nil, err
	}

	total, err := s.Repo.Count(ctx, templeID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	oneMonthAgo := time.Date(now.Year(), now.Month()-1, now.Day(), 0, 0, 0, 0, now.Location())
	lastMonth, err := s.Repo.CountSince(ctx, templeID, oneMonthAgo)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Donations:     donations,
		Total:         total,
		LastMonthDaan: lastMonth,
	}, nil
}

func (s *DonationServiceImpl) Update(ctx context.Context, templeID, id primitive.ObjectID, req UpdateDonationRequest) (*Donation, error) {
	donation, err := s.Repo.FindOne(ctx, templeID, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Donation not found.")
		}
		return nil, err
	}

	if req.DonorName != "" {
		donation.DonorName = req.DonorName
	}
	if req.SevaName != "" {
		donation.SevaName = req.SevaName
	}
	if req.Country != "" {
		donation.Country = req.Country
	}
	if req.State != "" {
		donation.State = req.State
	}
	if req.District != "" {
		donation.District = req.District
	}
	if req.Tehsil != "" {
		donation.Tehsil = req.Tehsil
	}
	if req.Village != "" {
		donation.Village = req.Village
	}
	if req.ContactInfo != "" {
		donation.ContactInfo = req.ContactInfo
	}
	if req.PaymentMethod != "" {
		if !validPaymentMethod(req.PaymentMethod) {
			return nil, apperr.Validation("Invalid payment method.")
		}
		donation.PaymentMethod = req.PaymentMethod
	}
	if req.DonationAmount > 0 {
		donation.DonationAmount = req.DonationAmount
	}
	donation.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, templeID, id, donation); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Donation not found.")
		}
		return nil, err
	}
	return donation, nil
}

func (s *DonationServiceImpl) Delete(ctx context.Context, templeID, id primitive.ObjectID) error {
	if err := s.Repo.Delete(ctx, templeID, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.NotFound("Donation not found.")
		}
		return err
	}
	return nil
}
