package replay

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/younwookim/hanoi/internal/application/system"
	"github.com/younwookim/hanoi/internal/domain/entity"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.UserInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.UserInput{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.UserInput{
		Position: image.Pt(fi.MX, fi.MY),
		Clicked:  fi.MC,
	}, true
}

// Settings decodes the settings the recording started with
func (r *Replayer) Settings() (entity.Settings, error) {
	return decodeSettings(r.data.Settings)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

func encodeSettings(s entity.Settings) SettingsData {
	return SettingsData{
		Theme:      s.Theme.String(),
		Resolution: s.Resolution.String(),
		Difficulty: s.Difficulty,
	}
}

func decodeSettings(d SettingsData) (entity.Settings, error) {
	theme, err := entity.ParseTheme(d.Theme)
	if err != nil {
		return entity.Settings{}, fmt.Errorf("replay settings: %w", err)
	}
	res, err := entity.ParseResolution(d.Resolution)
	if err != nil {
		return entity.Settings{}, fmt.Errorf("replay settings: %w", err)
	}
	s := entity.Settings{Theme: theme, Resolution: res, Difficulty: d.Difficulty}
	if err := s.Validate(); err != nil {
		return entity.Settings{}, fmt.Errorf("replay settings: %w", err)
	}
	return s, nil
}

// CreateTestReplayData creates replay data for testing (cursor parked, no clicks)
func CreateTestReplayData(frames int, mouseX, mouseY int) ReplayData {
	data := ReplayData{
		Version:   Version,
		StartTime: time.Now().Format(time.RFC3339),
		Settings:  encodeSettings(entity.DefaultSettings()),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			MX: mouseX,
			MY: mouseY,
		}
	}

	return data
}
