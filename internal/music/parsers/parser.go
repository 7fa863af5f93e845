package parsers

import "time"

const (
	Channels   = 2
	SampleRate = 48000
	FrameSize  = 960 // 20ms at 48kHz
)

// TrackParse is the input of a streamer. Streamers fill in whatever metadata
// the extraction yields.
type TrackParse struct {
	URL      string
	Title    string
	Artist   string
	Duration time.Duration
	Parser   string
}
