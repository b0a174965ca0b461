package categories

import "github.com/joefazee/directory-admin/models"

// CategoryRequest is the body of create and update calls.
type CategoryRequest struct {
	EnglishName string `json:"englishName"`
	ArabicName  string `json:"arabicName"`
}

// CategoryResponse represents the response for category data
type CategoryResponse struct {
	ID               string `json:"_id"`
	EnglishName      string `json:"englishName"`
	ArabicName       string `json:"arabicName"`
	SubCategoryCount int    `json:"subCategoryCount"`
}

func (r CategoryRequest) names() models.CategoryNames {
	return models.CategoryNames{EnglishName: r.EnglishName, ArabicName: r.ArabicName}
}

// ToCategoryResponse converts a models.MainCategory to CategoryResponse
func ToCategoryResponse(category *models.MainCategory) *CategoryResponse {
	return &CategoryResponse{
		ID:               category.ID,
		EnglishName:      category.EnglishName,
		ArabicName:       category.ArabicName,
		SubCategoryCount: category.Count(),
	}
}

// ToCategoryResponseList converts a slice of models.MainCategory to CategoryResponse
func ToCategoryResponseList(categories []models.MainCategory) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = *ToCategoryResponse(&categories[i])
	}
	return responses
}
