package replay

// FormatVersion is the version written to new recordings
const FormatVersion = "2.0"

// FrameInput records input state and frame time for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	DT float64 `json:"dt"`           // Frame delta in seconds
	L  bool    `json:"l,omitempty"`  // Left
	R  bool    `json:"r,omitempty"`  // Right
	JP bool    `json:"jp,omitempty"` // JumpPressed
	P  bool    `json:"p,omitempty"`  // DebugPill
}

// ReplayData contains all data needed to replay a level session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Level     int          `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
