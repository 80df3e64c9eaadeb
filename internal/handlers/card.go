package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/trellium-dev/trellium/db"
	"github.com/trellium-dev/trellium/internal/models"
	"github.com/trellium-dev/trellium/internal/utils"
	"gorm.io/gorm"
)

type CreateCardRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
}

type UpdateCardRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
}

// CardOwner is the owner shape nested in card and comment responses, name and
// email only.
type CardOwner struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CardResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	User        CardOwner `json:"user"`
}

type CardDetailResponse struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Date        string           `json:"date"`
	Status      string           `json:"status"`
	Priority    string           `json:"priority"`
	User        CardOwner        `json:"user"`
	Comments    []CommentSummary `json:"comments"`
}

const dateLayout = "2006-01-02"

func cardResponse(card models.Card, owner CardOwner) CardResponse {
	return CardResponse{
		ID:          card.ID,
		Title:       card.Title,
		Description: card.Description,
		Date:        card.Date.Format(dateLayout),
		Status:      card.Status,
		Priority:    card.Priority,
		User:        owner,
	}
}

func ListCards(ctx *gin.Context) {
	var cards []models.Card

	if err := db.DB.Preload("User").Order("date DESC").Find(&cards).Error; err != nil {
		log.Printf("Failed to retrieve cards: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cards"})
		return
	}

	response := make([]CardResponse, 0, len(cards))

	for _, card := range cards {
		response = append(response, cardResponse(card, CardOwner{Name: card.User.Name, Email: card.User.Email}))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetCard(ctx *gin.Context) {
	cardID, err := utils.GetCardID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var card models.Card

	err = db.DB.Preload("User").Preload("Comments").Preload("Comments.User").
		Where("id = ?", cardID).First(&card).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Card %d not found", cardID)})
		} else {
			log.Printf("Failed to retrieve card: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve card"})
		}
		return
	}

	comments := make([]CommentSummary, 0, len(card.Comments))

	for _, comment := range card.Comments {
		comments = append(comments, CommentSummary{
			ID:      comment.ID,
			Message: comment.Message,
			User:    CardOwner{Name: comment.User.Name, Email: comment.User.Email},
		})
	}

	ctx.JSON(http.StatusOK, CardDetailResponse{
		ID:          card.ID,
		Title:       card.Title,
		Description: card.Description,
		Date:        card.Date.Format(dateLayout),
		Status:      card.Status,
		Priority:    card.Priority,
		User:        CardOwner{Name: card.User.Name, Email: card.User.Email},
		Comments:    comments,
	})
}

func validateCardFields(title, status, priority string) error {
	if title != "" {
		if err := utils.ValidateTitle(title); err != nil {
			return err
		}
	}

	if status != "" {
		if err := utils.ValidateStatus(status); err != nil {
			return err
		}
	}

	if priority != "" {
		if err := utils.ValidatePriority(priority); err != nil {
			return err
		}
	}

	return nil
}

func CreateCard(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body CreateCardRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validateCardFields(body.Title, body.Status, body.Priority); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card := models.Card{
		Title:       body.Title,
		Description: body.Description,
		Date:        time.Now(),
		Status:      body.Status,
		Priority:    body.Priority,
		UserID:      currentUser.ID,
	}

	if err := db.DB.Create(&card).Error; err != nil {
		if db.IsUniqueViolation(err, db.OngoingIndexName) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Another card is already marked Ongoing"})
			return
		}
		log.Printf("Failed to create card: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create card"})
		return
	}

	ctx.JSON(http.StatusCreated, cardResponse(card, CardOwner{Name: currentUser.Name, Email: currentUser.Email}))
}

func UpdateCard(ctx *gin.Context) {
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

	var body UpdateCardRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validateCardFields(body.Title, body.Status, body.Priority); err != nil {
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

	if card.UserID != currentUser.ID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only the card owner can edit it"})
		return
	}

	// Supplied fields replace the stored ones; empty fields are left alone.
	if body.Title != "" {
		card.Title = body.Title
	}
	if body.Description != "" {
		card.Description = body.Description
	}
	if body.Status != "" {
		card.Status = body.Status
	}
	if body.Priority != "" {
		card.Priority = body.Priority
	}

	if err := db.DB.Save(&card).Error; err != nil {
		if db.IsUniqueViolation(err, db.OngoingIndexName) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Another card is already marked Ongoing"})
			return
		}
		log.Printf("Failed to update card: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update card"})
		return
	}

	ctx.JSON(http.StatusOK, cardResponse(card, CardOwner{Name: currentUser.Name, Email: currentUser.Email}))
}

func DeleteCard(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if !currentUser.IsAdmin {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only an admin can delete cards"})
		return
	}

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

	// Hard delete; comments go with the card via ON DELETE CASCADE.
	if err := db.DB.Delete(&card).Error; err != nil {
		log.Printf("Failed to delete card: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete card"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Card %s deleted successfully", card.Title)})
}
