package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trellium-dev/trellium/db"
	"github.com/trellium-dev/trellium/internal/models"
	"github.com/trellium-dev/trellium/internal/utils"
	"gorm.io/gorm"
)

type CreateCommentRequest struct {
	Message string `json:"message" binding:"required"`
}

type UpdateCommentRequest struct {
	Message string `json:"message"`
}

// CommentSummary is the comment shape nested under a card, without a card
// back-reference.
type CommentSummary struct {
	ID      uint      `json:"id"`
	Message string    `json:"message"`
	User    CardOwner `json:"user"`
}

type CommentResponse struct {
	ID      uint         `json:"id"`
	Message string       `json:"message"`
	User    CardOwner    `json:"user"`
	Card    CardResponse `json:"card"`
}

func ListComments(ctx *gin.Context) {
	cardID, err := utils.GetCardID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var card models.Card

	if err := db.DB.Where("id = ?", cardID).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Card %d not found", cardID)})
		} else {
			log.Printf("Failed to retrieve card: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve card"})
		}
		return
	}

	var comments []models.Comment

	if err := db.DB.Preload("User").Where("card_id = ?", cardID).Find(&comments).Error; err != nil {
		log.Printf("Failed to retrieve comments: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comments"})
		return
	}

	response := make([]CommentSummary, 0, len(comments))

	for _, comment := range comments {
		response = append(response, CommentSummary{
			ID:      comment.ID,
			Message: comment.Message,
			User:    CardOwner{Name: comment.User.Name, Email: comment.User.Email},
		})
	}

	ctx.JSON(http.StatusOK, response)
}

func CreateComment(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	cardID, err := utils.GetCardID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var body CreateCommentRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var card models.Card

	if err := db.DB.Preload("User").Where("id = ?", cardID).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Card %d not found", cardID)})
		} else {
			log.Printf("Failed to retrieve card: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve card"})
		}
		return
	}

	comment := models.Comment{
		Message: body.Message,
		UserID:  currentUser.ID,
		CardID:  card.ID,
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		log.Printf("Failed to create comment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	ctx.JSON(http.StatusCreated, CommentResponse{
		ID:      comment.ID,
		Message: comment.Message,
		User:    CardOwner{Name: currentUser.Name, Email: currentUser.Email},
		Card:    cardResponse(card, CardOwner{Name: card.User.Name, Email: card.User.Email}),
	})
}

func EditComment(ctx *gin.Context) {
	cardID, commentID, err := utils.GetCardCommentID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var body UpdateCommentRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var comment models.Comment

	err = db.DB.Preload("User").Preload("Card.User").
		Where("id = ? AND card_id = ?", commentID, cardID).First(&comment).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Comment %d not found", commentID)})
		} else {
			log.Printf("Failed to retrieve comment: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comment"})
		}
		return
	}

	if body.Message != "" {
		if err := db.DB.Model(&comment).Update("message", body.Message).Error; err != nil {
			log.Printf("Failed to update comment: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update comment"})
			return
		}
	}

	ctx.JSON(http.StatusOK, CommentResponse{
		ID:      comment.ID,
		Message: comment.Message,
		User:    CardOwner{Name: comment.User.Name, Email: comment.User.Email},
		Card:    cardResponse(comment.Card, CardOwner{Name: comment.Card.User.Name, Email: comment.Card.User.Email}),
	})
}

func DeleteComment(ctx *gin.Context) {
	cardID, commentID, err := utils.GetCardCommentID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var comment models.Comment

	if err := db.DB.Where("id = ?", commentID).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Comment %d not found", commentID)})
		} else {
			log.Printf("Failed to retrieve comment: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comment"})
		}
		return
	}

	if comment.CardID != cardID {
		ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Comment %d not found", commentID)})
		return
	}

	if err := db.DB.Delete(&comment).Error; err != nil {
		log.Printf("Failed to delete comment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Comment %d deleted successfully", commentID)})
}
