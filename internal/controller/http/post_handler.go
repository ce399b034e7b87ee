package http

import (
	"net/http"

	"guestbook/internal/entity"
	"guestbook/internal/usecase"
	"guestbook/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

func (h *PostHandler) formatMessageResponse(post *entity.Post, likeCount int64, liked bool) map[string]interface{} {
	return map[string]interface{}{
		"id":          post.ID,
		"user_id":     post.UserID,
		"name":        post.Name,
		"message":     post.Message,
		"likes_count": likeCount,
		"liked":       liked,
		"created_at":  post.CreatedAt,
		"updated_at":  post.UpdatedAt,
	}
}

type PostMessageRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	Message string `json:"message" binding:"required,min=5,max=100"`
}

type UpdateMessageRequest struct {
	Message string `json:"message" binding:"required,min=5,max=100"`
}

type AddCommentRequest struct {
	Message string `json:"message" binding:"required,min=5,max=100"`
}

// PostMessage godoc
// @Summary      Post a guestbook message
// @Description  Create a new message. Requires an active subscription.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body PostMessageRequest true "Message data"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Router       /messages [post]
func (h *PostHandler) PostMessage(c *gin.Context) {
	userID := c.GetString("user_id")

	var req PostMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	post, err := h.postUseCase.PostMessage(userID, req.Name, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetAllMessages godoc
// @Summary      List guestbook messages
// @Description  Get all messages, newest first, each annotated with the like count and whether the caller liked it.
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /messages [get]
func (h *PostHandler) GetAllMessages(c *gin.Context) {
	userID := c.GetString("user_id")

	posts, err := h.postUseCase.GetAllMessages()
	if err != nil {
		respondError(c, err)
		return
	}

	messages := make([]map[string]interface{}, len(posts))
	for i, post := range posts {
		likeCount, err := h.postUseCase.GetLikeCount(post.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		liked, err := h.postUseCase.IsLiked(userID, post.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		messages[i] = h.formatMessageResponse(post, likeCount, liked)
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages, "count": len(messages)})
}

// UpdateMessage godoc
// @Summary      Update a message
// @Description  Update the text of a message. Only the author can update their own messages.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Message ID"
// @Param        request body UpdateMessageRequest true "New message text"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /messages/{id} [put]
func (h *PostHandler) UpdateMessage(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	var req UpdateMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	post, err := h.postUseCase.UpdateMessage(postID, userID, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeleteMessage godoc
// @Summary      Delete a message
// @Description  Delete a message together with its likes and comments. Only the author can delete their own messages.
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Message ID"
// @Success      200  {object}  entity.Post
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /messages/{id} [delete]
func (h *PostHandler) DeleteMessage(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	post, err := h.postUseCase.DeleteMessage(postID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// LikeMessage godoc
// @Summary      Like a message
// @Description  Like a message. Liking twice returns a conflict. Requires an active subscription.
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Message ID"
// @Success      201  {object}  entity.Like
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /messages/{id}/like [post]
func (h *PostHandler) LikeMessage(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	like, err := h.postUseCase.LikeMessage(userID, postID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, like)
}

// UnlikeMessage godoc
// @Summary      Unlike a message
// @Description  Remove the caller's like. Fails with not-found if the message was never liked.
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Message ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /messages/{id}/like [delete]
func (h *PostHandler) UnlikeMessage(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	if err := h.postUseCase.UnlikeMessage(userID, postID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message unliked"})
}

// GetAllComments godoc
// @Summary      List comments
// @Description  Get all comments, newest first, each with the author's name.
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /comments [get]
func (h *PostHandler) GetAllComments(c *gin.Context) {
	comments, err := h.postUseCase.GetAllComments()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments, "count": len(comments)})
}

// AddComment godoc
// @Summary      Comment on a message
// @Description  Add a comment to a message. Requires an active subscription.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Message ID"
// @Param        request body AddCommentRequest true "Comment data"
// @Success      201  {object}  entity.Comment
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /messages/{id}/comments [post]
func (h *PostHandler) AddComment(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	var req AddCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.postUseCase.AddComment(userID, postID, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Delete a comment. Only the creator can delete their own comment.
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Success      200  {object}  entity.Comment
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [delete]
func (h *PostHandler) DeleteComment(c *gin.Context) {
	commentID := c.Param("id")
	userID := c.GetString("user_id")

	comment, err := h.postUseCase.DeleteComment(commentID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}
