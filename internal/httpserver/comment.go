package httpserver

import (
	"net/http"

	"github.com/bakelk/cake_shop/internal/logging"
	"github.com/bakelk/cake_shop/internal/service"
	"github.com/bakelk/cake_shop/internal/transport"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CommentHTTP struct {
	Svc *service.CommentService
}

func (h *CommentHTTP) AddComment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "comment.add")

	id, err := caller(c)
	if err != nil {
		l.Warn("add_comment_error", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var req transport.AddCommentRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_comment_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	comment, err := h.Svc.AddComment(ctx, id, req)
	if err != nil {
		return respondError(c, l, "add_comment_error", err)
	}

	l.Info("add_comment_success", "comment_id", comment.ID)
	return c.JSON(http.StatusCreated, comment)
}

func (h *CommentHTTP) GetCommentsByCake(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "comment.list")

	cakeID, err := uuid.Parse(c.Param("cakeId"))
	if err != nil {
		l.Warn("list_comments_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid cake id")
	}

	comments, err := h.Svc.ListByProduct(ctx, cakeID)
	if err != nil {
		return respondError(c, l, "list_comments_error", err)
	}

	return c.JSON(http.StatusOK, comments)
}

func (h *CommentHTTP) UpdateComment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "comment.update")

	id, err := caller(c)
	if err != nil {
		l.Warn("update_comment_error", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("update_comment_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid comment id")
	}

	var req transport.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_comment_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	comment, err := h.Svc.UpdateComment(ctx, id, commentID, req)
	if err != nil {
		return respondError(c, l, "update_comment_error", err)
	}

	l.Info("update_comment_success", "comment_id", comment.ID)
	return c.JSON(http.StatusOK, comment)
}

func (h *CommentHTTP) DeleteComment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "comment.delete")

	id, err := caller(c)
	if err != nil {
		l.Warn("delete_comment_error", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("delete_comment_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid comment id")
	}

	if err := h.Svc.DeleteComment(ctx, id, commentID); err != nil {
		return respondError(c, l, "delete_comment_error", err)
	}

	l.Info("delete_comment_success", "comment_id", commentID)
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *CommentHTTP) ToggleLike(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "comment.like")

	id, err := caller(c)
	if err != nil {
		l.Warn("toggle_like_error", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("toggle_like_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid comment id")
	}

	comment, err := h.Svc.ToggleLike(ctx, id.UserID, commentID)
	if err != nil {
		return respondError(c, l, "toggle_like_error", err)
	}

	return c.JSON(http.StatusOK, comment)
}

func (h *CommentHTTP) AddReply(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "comment.reply")

	id, err := caller(c)
	if err != nil {
		l.Warn("add_reply_error", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("add_reply_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid comment id")
	}

	var req transport.AddReplyRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_reply_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	comment, err := h.Svc.AddReply(ctx, id, commentID, req.ReplyText)
	if err != nil {
		return respondError(c, l, "add_reply_error", err)
	}

	l.Info("add_reply_success", "comment_id", commentID)
	return c.JSON(http.StatusCreated, comment)
}
