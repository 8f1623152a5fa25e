package models

// DropZone is the snapshot of the file acquisition state used for rendering.
type DropZone struct {
	FileName   string
	HasFile    bool
	DragActive bool
}

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Request      RequestState // Snapshot pushed by core
	DropZone     DropZone     // Snapshot of the picker
	Input        string       // Path input field
	Status       string       // Status bar text
	Notice       *Notice      // Modal notice awaiting dismissal
	LoadingDots  int          // Animation counter for loading dots
	Width        int          // Terminal width
	Height       int          // Terminal height
	DropZoneTop  int          // First row of the drop zone in the last frame
	DropZoneRows int          // Height of the drop zone in the last frame
	BackendLabel string       // Active profile and origin for the header
}
