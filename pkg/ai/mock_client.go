// pkg/ai/mock_client.go

package ai

import (
	"fmt"
	"strings"
)

type mockClient struct{}

func NewMock() Client { return &mockClient{} }

func (m *mockClient) GenerateCropNotes(r NotesRequest) (string, error) {
	var tips []string
	switch strings.ToLower(r.Status) {
	case "attention":
		tips = append(tips, "Inspect leaves and soil moisture daily until the status clears.")
		tips = append(tips, "Check for early signs of pests or nutrient deficiency.")
	case "critical":
		tips = append(tips, "Act today: isolate affected rows and review irrigation output.")
		tips = append(tips, "Consider a soil test before applying any treatment.")
	default:
		tips = append(tips, "Keep the current watering and fertilizing schedule.")
		tips = append(tips, "Scout weekly for seasonal pests.")
	}
	if r.Stage != "" {
		tips = append(tips, fmt.Sprintf("Typical time in the %s stage is 2-4 weeks; plan the next step accordingly.", r.Stage))
	}
	return fmt.Sprintf("%s (%s): %s", r.CropName, r.Status, strings.Join(tips, " ")), nil
}
