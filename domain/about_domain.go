package domain

var (
	MessageSuccessGetAbout    = "success get about page"
	MessageSuccessUpdateAbout = "about page updated successfully"

	MessageFailedGetAbout    = "failed to get about page"
	MessageFailedUpdateAbout = "failed to update about page"
)

type (
	UpsertAboutRequest struct {
		Title   string `json:"title" validate:"required,max=200"`
		Mission string `json:"mission"`
		Story   string `json:"story"`
	}

	AboutPageResponse struct {
		Title    string `json:"title"`
		Mission  string `json:"mission,omitempty"`
		Story    string `json:"story,omitempty"`
		ImageURL string `json:"image_url,omitempty"`
	}

	CoreValueResponse struct {
		Title       string `json:"title"`
		Icon        string `json:"icon,omitempty"`
		Description string `json:"description,omitempty"`
	}

	TeamMemberResponse struct {
		Name     string `json:"name"`
		Role     string `json:"role,omitempty"`
		Bio      string `json:"bio,omitempty"`
		ImageURL string `json:"image_url,omitempty"`
	}

	// AboutStats are the live counters shown on the about page.
	AboutStats struct {
		ActiveSubscribers int64 `json:"active_subscribers"`
		ActiveRecipes     int64 `json:"active_recipes"`
		ApprovedReviews   int64 `json:"approved_reviews"`
		Categories        int64 `json:"categories"`
	}

	AboutResponse struct {
		About      *AboutPageResponse   `json:"about"`
		CoreValues []CoreValueResponse  `json:"core_values"`
		Team       []TeamMemberResponse `json:"team"`
		Stats      AboutStats           `json:"stats"`
	}
)
