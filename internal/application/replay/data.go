package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	MX int  `json:"mx"`           // Virtual cursor X
	MY int  `json:"my"`           // Virtual cursor Y
	MC bool `json:"mc,omitempty"` // MouseClick
}

// SettingsData is the applied settings a session started with
type SettingsData struct {
	Theme      string `json:"theme"`
	Resolution string `json:"resolution"`
	Difficulty int    `json:"difficulty"`
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	StartTime string       `json:"startTime"`
	Settings  SettingsData `json:"settings"`
	Frames    []FrameInput `json:"frames"`
}

// Version is written into every recording
const Version = "1.0"
