package upstream

import (
	"context"
	"net/url"
)

type Suggestion struct {
	Description string `json:"description"`
	PlaceID     string `json:"placeId"`
}

type Directions struct {
	DistanceText string `json:"distanceText"`
	DurationText string `json:"durationText"`
}

type MapsClient struct {
	*Client
}

func NewMapsClient(c *Client) *MapsClient {
	return &MapsClient{Client: c}
}

func (m *MapsClient) Autocomplete(ctx context.Context, input string) ([]Suggestion, error) {
	var suggestions []Suggestion
	if err := m.get(ctx, "/maps/autocomplete", url.Values{"input": {input}}, "", &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (m *MapsClient) Directions(ctx context.Context, origin, destination string) (*Directions, error) {
	query := url.Values{"origin": {origin}, "destination": {destination}}
	var directions Directions
	if err := m.get(ctx, "/maps/directions", query, "", &directions); err != nil {
		return nil, err
	}
	return &directions, nil
}
