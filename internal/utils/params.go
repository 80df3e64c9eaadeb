package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetCardID(ctx *gin.Context) (uint, error) {
	cardIDStr := ctx.Param("card_id")

	if cardIDStr == "" {
		return 0, errors.New("Card ID not found")
	}

	cardID, err := strconv.ParseUint(cardIDStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid Card ID")
	}

	return uint(cardID), nil
}

func GetCommentID(ctx *gin.Context) (uint, error) {
	commentIDStr := ctx.Param("comment_id")

	if commentIDStr == "" {
		return 0, errors.New("Comment ID not found")
	}

	commentID, err := strconv.ParseUint(commentIDStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid Comment ID")
	}

	return uint(commentID), nil
}

func GetCardCommentID(ctx *gin.Context) (uint, uint, error) {
	cardID, err := GetCardID(ctx)

	if err != nil {
		return 0, 0, err
	}

	commentID, err := GetCommentID(ctx)

	if err != nil {
		return 0, 0, err
	}

	return cardID, commentID, nil
}
