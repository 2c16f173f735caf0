package relations

import (
	"github.com/foodgram-dev/foodgram/internal/models"
	"gorm.io/gorm"
)

// Join rows are removed with Unscoped: a soft-deleted row would keep its
// slot in the composite unique index and block re-adding the relation.

type favoriteStore struct {
	db *gorm.DB
}

func (s favoriteStore) Exists(userID, recipeID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	return count > 0, err
}

func (s favoriteStore) Create(userID, recipeID uint) error {
	return s.db.Create(&models.Favorite{UserID: userID, RecipeID: recipeID}).Error
}

func (s favoriteStore) Remove(userID, recipeID uint) (int64, error) {
	result := s.db.Unscoped().
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Favorite{})
	return result.RowsAffected, result.Error
}

type shoppingCartStore struct {
	db *gorm.DB
}

func (s shoppingCartStore) Exists(userID, recipeID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.ShoppingCart{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	return count > 0, err
}

func (s shoppingCartStore) Create(userID, recipeID uint) error {
	return s.db.Create(&models.ShoppingCart{UserID: userID, RecipeID: recipeID}).Error
}

func (s shoppingCartStore) Remove(userID, recipeID uint) (int64, error) {
	result := s.db.Unscoped().
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.ShoppingCart{})
	return result.RowsAffected, result.Error
}

type subscriptionStore struct {
	db *gorm.DB
}

func (s subscriptionStore) Exists(subscriberID, authorID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Subscription{}).
		Where("subscriber_id = ? AND author_id = ?", subscriberID, authorID).
		Count(&count).Error
	return count > 0, err
}

func (s subscriptionStore) Create(subscriberID, authorID uint) error {
	return s.db.Create(&models.Subscription{SubscriberID: subscriberID, AuthorID: authorID}).Error
}

func (s subscriptionStore) Remove(subscriberID, authorID uint) (int64, error) {
	result := s.db.Unscoped().
		Where("subscriber_id = ? AND author_id = ?", subscriberID, authorID).
		Delete(&models.Subscription{})
	return result.RowsAffected, result.Error
}

func NewFavoriteService(db *gorm.DB) *Service {
	return NewService(favoriteStore{db: db}, false)
}

func NewShoppingCartService(db *gorm.DB) *Service {
	return NewService(shoppingCartStore{db: db}, false)
}

func NewSubscriptionService(db *gorm.DB) *Service {
	return NewService(subscriptionStore{db: db}, true)
}
