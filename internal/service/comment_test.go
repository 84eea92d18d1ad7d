package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/bakelk/cake_shop/internal/models"
	"github.com/bakelk/cake_shop/internal/transport"
)

func productStats(t *testing.T, svc *CommentService, id uuid.UUID) (float64, uint) {
	t.Helper()
	var p models.Product
	require.NoError(t, svc.Repo.DB.First(&p, "id = ?", id).Error)
	return p.AverageRating, p.RatingsCount
}

func TestAddCommentValidation(t *testing.T) {
	svc := &CommentService{Repo: newTestRepo(t)}
	author := userIdentity("Nimal")

	_, err := svc.AddComment(context.Background(), author, transport.AddCommentRequest{CommentText: "nice"})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddComment(context.Background(), author, transport.AddCommentRequest{CakeID: uuid.New()})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddComment(context.Background(), author, transport.AddCommentRequest{CakeID: uuid.New(), CommentText: "nice", Rating: 6})
	require.ErrorIs(t, err, ErrValidation)
}

func TestRatingAggregateIgnoresUnrated(t *testing.T) {
	r := newTestRepo(t)
	svc := &CommentService{Repo: r}
	p := seedProduct(t, r, "Ribbon Cake", 1000, 5)

	for _, rating := range []uint{5, 3, 0, 4} {
		_, err := svc.AddComment(context.Background(), userIdentity("Nimal"), transport.AddCommentRequest{
			CakeID:      p.ID,
			CommentText: "so good",
			Rating:      rating,
		})
		require.NoError(t, err)
	}

	avg, count := productStats(t, svc, p.ID)
	require.Equal(t, 4.0, avg)
	require.Equal(t, uint(3), count)
}

func TestRatingRecomputeIsIdempotent(t *testing.T) {
	r := newTestRepo(t)
	svc := &CommentService{Repo: r}
	p := seedProduct(t, r, "Ribbon Cake", 1000, 5)
	author := userIdentity("Nimal")

	c, err := svc.AddComment(context.Background(), author, transport.AddCommentRequest{CakeID: p.ID, CommentText: "so good", Rating: 4})
	require.NoError(t, err)

	// Writing back the same rating leaves the aggregate unchanged.
	same := uint(4)
	_, err = svc.UpdateComment(context.Background(), author, c.ID, transport.UpdateCommentRequest{Rating: &same})
	require.NoError(t, err)
	_, err = svc.UpdateComment(context.Background(), author, c.ID, transport.UpdateCommentRequest{Rating: &same})
	require.NoError(t, err)

	avg, count := productStats(t, svc, p.ID)
	require.Equal(t, 4.0, avg)
	require.Equal(t, uint(1), count)
}

func TestUpdateCommentAuthorOnly(t *testing.T) {
	r := newTestRepo(t)
	svc := &CommentService{Repo: r}
	p := seedProduct(t, r, "Ribbon Cake", 1000, 5)
	author := userIdentity("Nimal")

	c, err := svc.AddComment(context.Background(), author, transport.AddCommentRequest{CakeID: p.ID, CommentText: "so good", Rating: 4})
	require.NoError(t, err)

	text := "edited"
	_, err = svc.UpdateComment(context.Background(), userIdentity("Kamal"), c.ID, transport.UpdateCommentRequest{CommentText: &text})
	require.ErrorIs(t, err, ErrForbidden)

	// Admins may edit anyone's comment.
	got, err := svc.UpdateComment(context.Background(), adminIdentity("Sunil"), c.ID, transport.UpdateCommentRequest{CommentText: &text})
	require.NoError(t, err)
	require.Equal(t, "edited", got.CommentText)
	require.Equal(t, uint(4), got.Rating)
}

func TestUpdateCommentRatingMovesAggregate(t *testing.T) {
	r := newTestRepo(t)
	svc := &CommentService{Repo: r}
	p := seedProduct(t, r, "Ribbon Cake", 1000, 5)
	author := userIdentity("Nimal")

	c, err := svc.AddComment(context.Background(), author, transport.AddCommentRequest{CakeID: p.ID, CommentText: "so good", Rating: 2})
	require.NoError(t, err)
	_, err = svc.AddComment(context.Background(), userIdentity("Kamal"), transport.AddCommentRequest{CakeID: p.ID, CommentText: "great", Rating: 4})
	require.NoError(t, err)

	five := uint(5)
	_, err = svc.UpdateComment(context.Background(), author, c.ID, transport.UpdateCommentRequest{Rating: &five})
	require.NoError(t, err)

	avg, count := productStats(t, svc, p.ID)
	require.Equal(t, 4.5, avg)
	require.Equal(t, uint(2), count)
}

func TestDeleteLastRatedCommentResetsAggregate(t *testing.T) {
	r := newTestRepo(t)
	svc := &CommentService{Repo: r}
	p := seedProduct(t, r, "Ribbon Cake", 1000, 5)
	author := userIdentity("Nimal")

	c, err := svc.AddComment(context.Background(), author, transport.AddCommentRequest{CakeID: p.ID, CommentText: "so good", Rating: 5})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteComment(context.Background(), author, c.ID))

	avg, count := productStats(t, svc, p.ID)
	require.Zero(t, avg)
	require.Zero(t, count)

	_, err = svc.Repo.GetComment(context.Background(), c.ID)
	require.Error(t, err)
}

func TestToggleLikeBehavesLikeASet(t *testing.T) {
	r := newTestRepo(t)
	svc := &CommentService{Repo: r}
	p := seedProduct(t, r, "Ribbon Cake", 1000, 5)

	c, err := svc.AddComment(context.Background(), userIdentity("Nimal"), transport.AddCommentRequest{CakeID: p.ID, CommentText: "so good"})
	require.NoError(t, err)

	liker := uuid.New()
	other := uuid.New()

	got, err := svc.ToggleLike(context.Background(), liker, c.ID)
	require.NoError(t, err)
	require.Len(t, got.Likes, 1)

	got, err = svc.ToggleLike(context.Background(), other, c.ID)
	require.NoError(t, err)
	require.Len(t, got.Likes, 2)

	// A second toggle by the same user withdraws only their like.
	got, err = svc.ToggleLike(context.Background(), liker, c.ID)
	require.NoError(t, err)
	require.Len(t, got.Likes, 1)
	require.Equal(t, other, got.Likes[0])

	_, err = svc.ToggleLike(context.Background(), liker, uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAddReply(t *testing.T) {
	r := newTestRepo(t)
	svc := &CommentService{Repo: r}
	p := seedProduct(t, r, "Ribbon Cake", 1000, 5)

	c, err := svc.AddComment(context.Background(), userIdentity("Nimal"), transport.AddCommentRequest{CakeID: p.ID, CommentText: "so good"})
	require.NoError(t, err)

	replier := userIdentity("Kamal")
	got, err := svc.AddReply(context.Background(), replier, c.ID, "thank you!")
	require.NoError(t, err)
	require.Len(t, got.Replies, 1)
	require.Equal(t, "thank you!", got.Replies[0].ReplyText)
	require.Equal(t, "Kamal", got.Replies[0].UserName)

	_, err = svc.AddReply(context.Background(), replier, c.ID, "")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddReply(context.Background(), replier, uuid.New(), "hello")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListByProductNewestFirst(t *testing.T) {
	r := newTestRepo(t)
	svc := &CommentService{Repo: r}
	p := seedProduct(t, r, "Ribbon Cake", 1000, 5)

	for _, text := range []string{"first", "second"} {
		_, err := svc.AddComment(context.Background(), userIdentity("Nimal"), transport.AddCommentRequest{CakeID: p.ID, CommentText: text})
		require.NoError(t, err)
	}

	comments, err := svc.ListByProduct(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
}
