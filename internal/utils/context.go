package utils

import (
	"fmt"

	"github.com/foodgram-dev/foodgram/internal/middleware"
	"github.com/foodgram-dev/foodgram/internal/types"
	"github.com/gin-gonic/gin"
)

func GetCurrentUser(ctx *gin.Context) (middleware.AuthenticatedUser, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return middleware.AuthenticatedUser{}, fmt.Errorf("User not authenticated")
	}

	authenticatedUser, ok := user.(middleware.AuthenticatedUser)

	if !ok {
		return middleware.AuthenticatedUser{}, fmt.Errorf("Invalid user type in context")
	}

	return authenticatedUser, nil
}

func GetCurrentUserID(ctx *gin.Context) (uint, error) {
	user, err := GetCurrentUser(ctx)

	if err != nil {
		return 0, err
	}

	return user.ID, nil
}

// OptionalUserID returns the current user's ID, or 0 for anonymous
// requests that passed through the optional auth middleware.
func OptionalUserID(ctx *gin.Context) uint {
	user, err := GetCurrentUser(ctx)

	if err != nil {
		return 0
	}

	return user.ID
}
