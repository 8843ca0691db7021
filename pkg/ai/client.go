// pkg/ai/client.go

package ai

// NotesRequest carries the crop fields embedded into the prompt.
// CropName and Status are required; the handler validates before calling.
type NotesRequest struct {
	CropName string
	Variety  string
	Stage    string
	Status   string
}

type Client interface {
	GenerateCropNotes(req NotesRequest) (string, error)
}
