package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessSearchRecipes   = "success search recipes"
	MessageSuccessGetHome         = "success get home page"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedSearchRecipes   = "failed to search recipes"
	MessageFailedGetHome         = "failed to get home page"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedUploadImage     = "failed to upload recipe image"

	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrInvalidStatus     = errors.New("status must be active or inactive")
	ErrInvalidDifficulty = errors.New("difficulty must be easy, medium or hard")
	ErrNegativeTime      = errors.New("prep and cook time must not be negative")
)

type (
	CreateRecipeRequest struct {
		Title           string `json:"title" validate:"required,max=200"`
		Description     string `json:"description"`
		Content         string `json:"content"`
		CategoryID      string `json:"category_id" validate:"required,uuid"`
		PrepTimeMinutes int    `json:"prep_time_minutes" validate:"min=0"`
		CookTimeMinutes int    `json:"cook_time_minutes" validate:"min=0"`
		Servings        int    `json:"servings" validate:"omitempty,min=1"`
		Difficulty      string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
		IsTrending      bool   `json:"is_trending"`
		IsFeatured      bool   `json:"is_featured"`
		Publish         bool   `json:"publish"`
	}

	UpdateRecipeRequest struct {
		Title           string `json:"title" validate:"omitempty,max=200"`
		Description     string `json:"description"`
		Content         string `json:"content"`
		CategoryID      string `json:"category_id" validate:"omitempty,uuid"`
		Status          string `json:"status" validate:"omitempty,oneof=active inactive"`
		PrepTimeMinutes *int   `json:"prep_time_minutes" validate:"omitempty,min=0"`
		CookTimeMinutes *int   `json:"cook_time_minutes" validate:"omitempty,min=0"`
		Servings        *int   `json:"servings" validate:"omitempty,min=1"`
		Difficulty      string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
		IsTrending      *bool  `json:"is_trending"`
		IsFeatured      *bool  `json:"is_featured"`
		Publish         *bool  `json:"publish"`
	}

	UploadRecipeImageRequest struct {
		RecipeImage *multipart.FileHeader `form:"recipe_image" validate:"required"`
	}

	RecipeResponse struct {
		ID               string     `json:"id"`
		Title            string     `json:"title"`
		Description      string     `json:"description,omitempty"`
		ImageURL         string     `json:"image_url,omitempty"`
		CategoryID       string     `json:"category_id"`
		CategoryName     string     `json:"category_name,omitempty"`
		Status           string     `json:"status"`
		PrepTimeMinutes  int        `json:"prep_time_minutes"`
		CookTimeMinutes  int        `json:"cook_time_minutes"`
		TotalTimeMinutes int        `json:"total_time_minutes"`
		Servings         int        `json:"servings"`
		Difficulty       string     `json:"difficulty"`
		ViewsCount       int64      `json:"views_count"`
		LikesCount       int64      `json:"likes_count"`
		Rating           float64    `json:"rating"`
		IsTrending       bool       `json:"is_trending"`
		IsFeatured       bool       `json:"is_featured"`
		PublishedAt      *time.Time `json:"published_at,omitempty"`
	}

	RecipeDetailResponse struct {
		RecipeResponse
		Content        string           `json:"content,omitempty"`
		RelatedRecipes []RecipeResponse `json:"related_recipes"`
		Reviews        []ReviewResponse `json:"reviews"`
	}

	HomeResponse struct {
		Categories      []CategoryResponse `json:"categories"`
		TrendingRecipes []RecipeResponse   `json:"trending_recipes"`
	}
)
