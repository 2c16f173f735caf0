package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/foodgram-dev/foodgram/db"
	"github.com/foodgram-dev/foodgram/internal/models"
	"github.com/foodgram-dev/foodgram/internal/relations"
	"github.com/foodgram-dev/foodgram/internal/types"
	"github.com/foodgram-dev/foodgram/internal/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required,max=150"`
	FirstName string `json:"first_name" binding:"required,max=150"`
	LastName  string `json:"last_name" binding:"required,max=150"`
	Password  string `json:"password" binding:"required,min=8"`
}

type SetAvatarRequest struct {
	Avatar string `json:"avatar" binding:"required"`
}

func CreateUser(ctx *gin.Context) {
	var body CreateUserRequest

	if err := ctx.BindJSON(&body); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))
	body.Username = strings.TrimSpace(body.Username)

	var existing models.User

	err := db.DB.Where("email = ? OR username = ?", body.Email, body.Username).First(&existing).Error

	if err == nil {
		if existing.Email == body.Email {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		} else {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
		}
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user := models.User{
		Email:        body.Email,
		Username:     body.Username,
		FirstName:    body.FirstName,
		LastName:     body.LastName,
		PasswordHash: string(passwordHash),
	}

	if err := db.DB.Create(&user).Error; err != nil {
		log.Printf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, buildUserResponse(user, 0))
}

func ListUsers(ctx *gin.Context) {
	viewerID := utils.OptionalUserID(ctx)
	params := utils.GetPageParams(ctx)

	var count int64

	if err := db.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Printf("Failed to count users: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var users []models.User

	err := db.DB.Order("username ASC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&users).Error

	if err != nil {
		log.Printf("Failed to retrieve users: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	results := make([]types.UserResponse, 0, len(users))

	for _, user := range users {
		results = append(results, buildUserResponse(user, viewerID))
	}

	ctx.JSON(http.StatusOK, utils.Paginated(ctx, params, count, results))
}

func GetUser(ctx *gin.Context) {
	viewerID := utils.OptionalUserID(ctx)

	var user models.User

	if err := db.DB.First(&user, "id = ?", ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			log.Printf("Failed to retrieve user: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, buildUserResponse(user, viewerID))
}

func Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var user models.User

	if err := db.DB.First(&user, currentUser.ID).Error; err != nil {
		log.Printf("Failed to fetch user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, buildUserResponse(user, user.ID))
}

func SetAvatar(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body SetAvatarRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Avatar field is required"})
		return
	}

	var user models.User

	if err := db.DB.First(&user, currentUser.ID).Error; err != nil {
		log.Printf("Failed to fetch user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	path, err := utils.SaveBase64Image(body.Avatar, "avatars")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	previous := user.Avatar

	if err := db.DB.Model(&user).Update("avatar", path).Error; err != nil {
		log.Printf("Failed to update avatar: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := utils.RemoveMediaFile(previous); err != nil {
		log.Printf("Failed to remove previous avatar: %v", err)
	}

	ctx.JSON(http.StatusOK, gin.H{"avatar": utils.MediaURL(path)})
}

func DeleteAvatar(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var user models.User

	if err := db.DB.First(&user, currentUser.ID).Error; err != nil {
		log.Printf("Failed to fetch user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if user.Avatar == "" {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Avatar not found"})
		return
	}

	previous := user.Avatar

	if err := db.DB.Model(&user).Update("avatar", "").Error; err != nil {
		log.Printf("Failed to delete avatar: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := utils.RemoveMediaFile(previous); err != nil {
		log.Printf("Failed to remove avatar file: %v", err)
	}

	ctx.Status(http.StatusNoContent)
}

func Subscribe(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var author models.User

	if err := db.DB.First(&author, "id = ?", ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			log.Printf("Failed to retrieve user: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	service := relations.NewSubscriptionService(db.DB)

	if ctx.Request.Method == http.MethodDelete {
		err := service.Remove(currentUser.ID, author.ID)

		switch {
		case errors.Is(err, relations.ErrNotFound):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "You are not subscribed to this user"})
		case err != nil:
			log.Printf("Failed to remove subscription: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		default:
			ctx.Status(http.StatusNoContent)
		}
		return
	}

	err = service.Add(currentUser.ID, author.ID)

	switch {
	case errors.Is(err, relations.ErrSelfSubscription):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "You cannot subscribe to yourself"})
		return
	case errors.Is(err, relations.ErrAlreadyExists):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "You are already subscribed to this user"})
		return
	case err != nil:
		log.Printf("Failed to create subscription: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response, err := buildUserWithRecipes(author, currentUser.ID, recipesLimit(ctx))

	if err != nil {
		log.Printf("Failed to build subscription response: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

func ListSubscriptions(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	params := utils.GetPageParams(ctx)

	var count int64

	err = db.DB.Model(&models.Subscription{}).
		Where("subscriber_id = ?", currentUser.ID).
		Count(&count).Error

	if err != nil {
		log.Printf("Failed to count subscriptions: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var authors []models.User

	err = db.DB.Model(&models.User{}).
		Joins("JOIN subscriptions ON subscriptions.author_id = users.id").
		Where("subscriptions.subscriber_id = ? AND subscriptions.deleted_at IS NULL", currentUser.ID).
		Order("users.username ASC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&authors).Error

	if err != nil {
		log.Printf("Failed to retrieve subscriptions: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	limit := recipesLimit(ctx)
	results := make([]types.UserWithRecipesResponse, 0, len(authors))

	for _, author := range authors {
		response, err := buildUserWithRecipes(author, currentUser.ID, limit)

		if err != nil {
			log.Printf("Failed to build subscription entry: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		results = append(results, response)
	}

	ctx.JSON(http.StatusOK, utils.Paginated(ctx, params, count, results))
}

// recipesLimit caps embedded recipe previews; 0 means no cap.
func recipesLimit(ctx *gin.Context) int {
	limit, err := strconv.Atoi(ctx.Query("recipes_limit"))

	if err != nil || limit < 0 {
		return 0
	}

	return limit
}
