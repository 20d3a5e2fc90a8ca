package service

import (
	"context"

	"github.com/atlasrent/rental-service/internal/errs"
	"github.com/atlasrent/rental-service/internal/model"
	"github.com/atlasrent/rental-service/pkg/kafka"
)

// RatingEvent is published on every rating mutation.
type RatingEvent struct {
	Type     string `json:"type"`
	RatingID int    `json:"ratingId"`
	CarID    int    `json:"carId"`
	UserID   int    `json:"userId"`
	Score    int    `json:"score,omitempty"`
}

// AddRating creates a rating against an accepted or completed, not-yet-rated
// reservation the renter holds on the car. One rating per qualifying
// reservation.
func (s *Service) AddRating(ctx context.Context, actor model.Actor, carID int, req model.RatingRequest) (model.Rating, error) {
	if actor.Role != model.RoleRenter {
		return model.Rating{}, errs.ErrNotEligible
	}
	if _, err := s.repo.GetCar(ctx, carID); err != nil {
		return model.Rating{}, err
	}
	rsv, err := s.repo.FindUnratedFinished(ctx, carID, actor.ID)
	if err != nil {
		return model.Rating{}, err
	}
	rating, err := s.repo.AddRating(ctx, rsv.ID, model.Rating{
		UserID:  actor.ID,
		CarID:   carID,
		Score:   req.Score,
		Comment: req.Comment,
	})
	if err != nil {
		return model.Rating{}, err
	}
	s.publish(kafka.RatingTopic, RatingEvent{
		Type:     "rating.created",
		RatingID: rating.ID,
		CarID:    rating.CarID,
		UserID:   rating.UserID,
		Score:    rating.Score,
	})
	return rating, nil
}

// UpdateRating lets the authoring renter revise score or comment; the car
// aggregate follows in the same transaction.
func (s *Service) UpdateRating(ctx context.Context, actor model.Actor, id int, req model.RatingRequest) (model.Rating, error) {
	rating, err := s.repo.GetRating(ctx, id)
	if err != nil {
		return model.Rating{}, err
	}
	if rating.UserID != actor.ID {
		return model.Rating{}, errs.ErrNotAuthorized
	}
	updated, err := s.repo.UpdateRating(ctx, id, req.Score, req.Comment)
	if err != nil {
		return model.Rating{}, err
	}
	s.publish(kafka.RatingTopic, RatingEvent{
		Type:     "rating.updated",
		RatingID: updated.ID,
		CarID:    updated.CarID,
		UserID:   updated.UserID,
		Score:    updated.Score,
	})
	return updated, nil
}

// DeleteRating is open to the author and admins. Removing the rating frees
// the underlying reservation to be rated again.
func (s *Service) DeleteRating(ctx context.Context, actor model.Actor, id int) error {
	rating, err := s.repo.GetRating(ctx, id)
	if err != nil {
		return err
	}
	if rating.UserID != actor.ID && !actor.Admin() {
		return errs.ErrNotAuthorized
	}
	if err := s.repo.DeleteRating(ctx, id); err != nil {
		return err
	}
	s.publish(kafka.RatingTopic, RatingEvent{
		Type:     "rating.deleted",
		RatingID: rating.ID,
		CarID:    rating.CarID,
		UserID:   rating.UserID,
	})
	return nil
}

func (s *Service) CarRatings(ctx context.Context, carID int) ([]model.Rating, error) {
	if _, err := s.repo.GetCar(ctx, carID); err != nil {
		return nil, err
	}
	return s.repo.ListRatingsByCar(ctx, carID)
}

func (s *Service) MyRatings(ctx context.Context, actor model.Actor) ([]model.Rating, error) {
	return s.repo.ListRatingsByAuthor(ctx, actor.ID)
}

// ReceivedRatings lists ratings left on the owner's cars.
func (s *Service) ReceivedRatings(ctx context.Context, actor model.Actor) ([]model.Rating, error) {
	if actor.Role != model.RoleOwner && !actor.Admin() {
		return nil, errs.ErrOwnerOnly
	}
	return s.repo.ListRatingsForOwner(ctx, actor.ID)
}
