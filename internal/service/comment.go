package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bakelk/cake_shop/internal/logging"
	"github.com/bakelk/cake_shop/internal/models"
	"github.com/bakelk/cake_shop/internal/repo"
	"github.com/bakelk/cake_shop/internal/transport"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentService struct {
	Repo *repo.GormRepo
}

func (svc *CommentService) AddComment(ctx context.Context, caller Identity, req transport.AddCommentRequest) (*models.Comment, error) {
	if req.CakeID == uuid.Nil || req.CommentText == "" {
		return nil, fmt.Errorf("%w: cakeId and commentText are required", ErrValidation)
	}
	if req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	comment := &models.Comment{
		ProductID:   req.CakeID,
		UserID:      caller.UserID,
		UserName:    caller.Name,
		CommentText: req.CommentText,
		Rating:      req.Rating,
		Likes:       []uuid.UUID{},
	}

	comment, err := svc.Repo.CreateComment(ctx, comment)
	if err != nil {
		return nil, err
	}

	if comment.Rating >= 1 {
		svc.recomputeRating(ctx, comment.ProductID)
	}
	return comment, nil
}

func (svc *CommentService) ListByProduct(ctx context.Context, productID uuid.UUID) ([]models.Comment, error) {
	return svc.Repo.ListCommentsByProduct(ctx, productID)
}

func (svc *CommentService) UpdateComment(ctx context.Context, caller Identity, id uuid.UUID, req transport.UpdateCommentRequest) (*models.Comment, error) {
	comment, err := svc.getOwned(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if req.Rating != nil && *req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	if req.CommentText != nil {
		comment.CommentText = *req.CommentText
	}
	if req.Rating != nil {
		comment.Rating = *req.Rating
	}

	if err := svc.Repo.SaveComment(ctx, comment); err != nil {
		return nil, err
	}

	if req.Rating != nil {
		svc.recomputeRating(ctx, comment.ProductID)
	}
	return comment, nil
}

// DeleteComment always recomputes the product rating afterwards: an
// unrated comment costs nothing to recount, a rated one must come out of
// the average.
func (svc *CommentService) DeleteComment(ctx context.Context, caller Identity, id uuid.UUID) error {
	comment, err := svc.getOwned(ctx, caller, id)
	if err != nil {
		return err
	}

	if err := svc.Repo.DeleteComment(ctx, comment.ID); err != nil {
		return err
	}

	svc.recomputeRating(ctx, comment.ProductID)
	return nil
}

// ToggleLike adds the caller to the comment's liker set, or removes them
// when already present.
func (svc *CommentService) ToggleLike(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*models.Comment, error) {
	comment, err := svc.Repo.GetComment(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: comment %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, liker := range comment.Likes {
		if liker == userID {
			idx = i
			break
		}
	}
	if idx >= 0 {
		comment.Likes = append(comment.Likes[:idx], comment.Likes[idx+1:]...)
	} else {
		comment.Likes = append(comment.Likes, userID)
	}

	if err := svc.Repo.SaveComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (svc *CommentService) AddReply(ctx context.Context, caller Identity, id uuid.UUID, replyText string) (*models.Comment, error) {
	if replyText == "" {
		return nil, fmt.Errorf("%w: replyText is required", ErrValidation)
	}

	comment, err := svc.Repo.GetComment(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: comment %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	reply := &models.Reply{
		CommentID: comment.ID,
		UserID:    caller.UserID,
		UserName:  caller.Name,
		ReplyText: replyText,
	}
	if err := svc.Repo.AddReply(ctx, reply); err != nil {
		return nil, err
	}

	return svc.Repo.GetComment(ctx, id)
}

func (svc *CommentService) getOwned(ctx context.Context, caller Identity, id uuid.UUID) (*models.Comment, error) {
	comment, err := svc.Repo.GetComment(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: comment %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	if comment.UserID != caller.UserID && !caller.IsAdmin() {
		return nil, fmt.Errorf("%w: not the author", ErrForbidden)
	}
	return comment, nil
}

// recomputeRating refreshes the denormalized average/count pair on the
// product. A failed recompute is logged and swallowed so the comment
// mutation that triggered it still succeeds.
func (svc *CommentService) recomputeRating(ctx context.Context, productID uuid.UUID) {
	avg, count, err := svc.Repo.RatingStats(ctx, productID)
	if err == nil {
		err = svc.Repo.UpdateRating(ctx, productID, avg, count)
	}
	if err != nil {
		logging.FromContext(ctx).Error("rating_recompute_failed", "product_id", productID, "error", err)
	}
}
