package models

// VisualSummary is an AI-generated illustrated explainer on a topic.
type VisualSummary struct {
	ID          int64          `json:"id"`
	Topic       string         `json:"topic"`
	SummaryData map[string]any `json:"summary_data"`
	CreatedAt   string         `json:"created_at"`
}

// VisualSummaryCreate requests a new summary. The camelCase tags match
// what the backend reads.
type VisualSummaryCreate struct {
	Topic         string `json:"topic"`
	Context       string `json:"context"`
	Language      string `json:"language"`
	GenerateAudio bool   `json:"generateAudio"`
	AudioOnDemand bool   `json:"audioOnDemand"`
}

// VisualSummaryUpdate is a partial VisualSummary.
type VisualSummaryUpdate struct {
	Topic       *string        `json:"topic,omitempty"`
	SummaryData map[string]any `json:"summary_data,omitempty"`
}

// SummaryAudioUpdate attaches generated audio to one section of a summary.
type SummaryAudioUpdate struct {
	SummaryID    int64  `json:"summary_id"`
	SectionIndex int    `json:"section_index"`
	AudioURL     string `json:"audio_url"`
}

// AudioRequest asks the text-to-speech service for a clip.
type AudioRequest struct {
	Text    string `json:"text"`
	Speaker string `json:"speaker"`
}

// AudioClip names the generated audio file.
type AudioClip struct {
	Filename string `json:"filename"`
}

// YoutubeSummaryRequest asks for an audio summary of a video.
type YoutubeSummaryRequest struct {
	YoutubeURL string `json:"youtube_url"`
	Language   string `json:"language"`
}
