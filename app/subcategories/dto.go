package subcategories

import (
	"github.com/joefazee/directory-admin/app/categories"
	"github.com/joefazee/directory-admin/models"
)

// SubCategoryRequest carries the same name pair as a main category.
type SubCategoryRequest = categories.CategoryRequest

type SubCategoryResponse struct {
	ID                   string `json:"_id"`
	MainCategoryID       string `json:"mainCategoryId"`
	EnglishName          string `json:"englishName"`
	ArabicName           string `json:"arabicName"`
	ServiceProviderCount int    `json:"serviceProviderCount"`
}

func ToSubCategoryResponse(mainCategoryID string, sub *models.SubCategory) *SubCategoryResponse {
	return &SubCategoryResponse{
		ID:                   sub.ID,
		MainCategoryID:       mainCategoryID,
		EnglishName:          sub.EnglishName,
		ArabicName:           sub.ArabicName,
		ServiceProviderCount: sub.Count(),
	}
}

func ToSubCategoryResponseList(mainCategoryID string, subs []models.SubCategory) []SubCategoryResponse {
	responses := make([]SubCategoryResponse, len(subs))
	for i := range subs {
		responses[i] = *ToSubCategoryResponse(mainCategoryID, &subs[i])
	}
	return responses
}
