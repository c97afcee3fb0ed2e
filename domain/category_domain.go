package domain

import "errors"

var (
	MessageSuccessGetCategories     = "success get categories"
	MessageSuccessGetCategoryDetail = "success get category detail"
	MessageSuccessCreateCategory    = "category created successfully"
	MessageSuccessUpdateCategory    = "category updated successfully"

	MessageFailedGetCategories     = "failed to get categories"
	MessageFailedGetCategoryDetail = "failed to get category detail"
	MessageFailedCreateCategory    = "failed to create category"
	MessageFailedUpdateCategory    = "failed to update category"

	ErrCategoryNotFound = errors.New("category not found")
)

type (
	CreateCategoryRequest struct {
		Name         string `json:"name" validate:"required,max=100"`
		Icon         string `json:"icon" validate:"omitempty,max=100"`
		Description  string `json:"description"`
		GradientFrom string `json:"gradient_from"`
		GradientTo   string `json:"gradient_to"`
		Order        int    `json:"order"`
	}

	UpdateCategoryRequest struct {
		Name         string `json:"name" validate:"omitempty,max=100"`
		Icon         string `json:"icon" validate:"omitempty,max=100"`
		Description  string `json:"description"`
		GradientFrom string `json:"gradient_from"`
		GradientTo   string `json:"gradient_to"`
		Order        *int   `json:"order"`
	}

	CategoryResponse struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Icon         string `json:"icon,omitempty"`
		ImageURL     string `json:"image_url,omitempty"`
		Description  string `json:"description,omitempty"`
		GradientFrom string `json:"gradient_from"`
		GradientTo   string `json:"gradient_to"`
		Order        int    `json:"order"`
	}

	// RelatedCategoryResponse carries the derived active-recipe count used on
	// category pages. The count is computed per request, never stored.
	RelatedCategoryResponse struct {
		CategoryResponse
		TotalRecipes int64 `json:"total_recipes"`
	}

	CategoryDetailResponse struct {
		Category          CategoryResponse          `json:"category"`
		Recipes           []RecipeResponse          `json:"recipes"`
		RelatedCategories []RelatedCategoryResponse `json:"related_categories"`
		Pagination        PaginationResponse        `json:"pagination"`
	}

	PaginationResponse struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		Total      int64 `json:"total"`
		TotalPages int64 `json:"total_pages"`
	}
)
