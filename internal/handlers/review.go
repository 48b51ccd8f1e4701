package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/handylink/handylink-backend/internal/services"
)

type ReviewHandler struct {
	reviewService services.ReviewService
}

func NewReviewHandler(reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (rh *ReviewHandler) CreateUserReview(c *gin.Context) {
	var req struct {
		RevieweeID string `json:"reviewee_id"`
		Text       string `json:"review_text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	revieweeID, pErr := uuid.Parse(req.RevieweeID)
	if pErr != nil {
		RespondBadRequest(c, "invalid reviewee_id")
		return
	}

	review, err := rh.reviewService.CreateUserReview(c.Request.Context(), revieweeID, req.Text)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, review)
}

func (rh *ReviewHandler) ListUserReviews(c *gin.Context) {
	revieweeID, ok := pathUUID(c, "userId")
	if !ok {
		return
	}
	reviews, err := rh.reviewService.ListUserReviews(c.Request.Context(), revieweeID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, reviews)
}

func (rh *ReviewHandler) UpdateUserReview(c *gin.Context) {
	reviewID, ok := pathUUID(c, "reviewId")
	if !ok {
		return
	}
	var req struct {
		Text string `json:"review_text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}

	if err := rh.reviewService.UpdateUserReview(c.Request.Context(), reviewID, req.Text); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"updated": true})
}

func (rh *ReviewHandler) DeleteUserReview(c *gin.Context) {
	reviewID, ok := pathUUID(c, "reviewId")
	if !ok {
		return
	}
	if err := rh.reviewService.DeleteUserReview(c.Request.Context(), reviewID); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

func (rh *ReviewHandler) CreateWorkReview(c *gin.Context) {
	var req struct {
		WorkID string `json:"work_id"`
		Rating int    `json:"rating"`
		Text   string `json:"review_text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	workID, pErr := uuid.Parse(req.WorkID)
	if pErr != nil {
		RespondBadRequest(c, "invalid work_id")
		return
	}

	review, err := rh.reviewService.CreateWorkReview(c.Request.Context(), workID, req.Rating, req.Text)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, review)
}

func (rh *ReviewHandler) ListWorkReviews(c *gin.Context) {
	workID, ok := pathUUID(c, "workId")
	if !ok {
		return
	}
	list, err := rh.reviewService.ListWorkReviews(c.Request.Context(), workID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, list)
}

func (rh *ReviewHandler) UpdateWorkReview(c *gin.Context) {
	reviewID, ok := pathUUID(c, "reviewId")
	if !ok {
		return
	}
	var req struct {
		Rating *int    `json:"rating"`
		Text   *string `json:"review_text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}

	if err := rh.reviewService.UpdateWorkReview(c.Request.Context(), reviewID, req.Rating, req.Text); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"updated": true})
}

func (rh *ReviewHandler) DeleteWorkReview(c *gin.Context) {
	reviewID, ok := pathUUID(c, "reviewId")
	if !ok {
		return
	}
	if err := rh.reviewService.DeleteWorkReview(c.Request.Context(), reviewID); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
