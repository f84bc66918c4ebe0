package response

import (
	"carhaul-portal/internal/usecase/readmodel"
)

type BrandsResponse struct {
	Brands []string `json:"brands"`
}

type ModelsResponse struct {
	Models []string `json:"models"`
}

type SuggestionsResponse struct {
	Suggestions []readmodel.SuggestionRM `json:"suggestions"`
}

type DirectionsResponse struct {
	Distance string `json:"distance"`
	Duration string `json:"duration"`
}

func FromDirections(rm *readmodel.DirectionsRM) *DirectionsResponse {
	return &DirectionsResponse{Distance: rm.DistanceText, Duration: rm.DurationText}
}
