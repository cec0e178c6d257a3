package models

// AssistantRequest is a free-text question to the AI assistant.
type AssistantRequest struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

// AssistantResponse is the assistant answer. FeatureType tells the UI which
// renderer to use for StructuredData.
type AssistantResponse struct {
	Output         string         `json:"output"`
	FeatureType    string         `json:"feature_type,omitempty"`
	StructuredData map[string]any `json:"structured_data,omitempty"`
	Summary        string         `json:"summary,omitempty"`
}

type CourseSuggestion struct {
	CourseTitle string `json:"course_title"`
	Reason      string `json:"reason"`
	Type        string `json:"type"`
	URL         string `json:"url"`
}

// CourseSuggestions is the recommender answer for a learning goal.
type CourseSuggestions struct {
	Introduction    string             `json:"introduction"`
	Recommendations []CourseSuggestion `json:"recommendations"`
}

// SchemeExplanation describes one government scheme in plain language.
type SchemeExplanation struct {
	Name               string         `json:"name"`
	Goal               string         `json:"goal"`
	Benefit            string         `json:"benefit"`
	Eligibility        string         `json:"eligibility"`
	ApplicationProcess string         `json:"application_process"`
	SpecialFeatures    string         `json:"special_features"`
	FullJSON           map[string]any `json:"full_json,omitempty"`
}

// SchemeRecommendation lists schemes relevant to an occupation.
type SchemeRecommendation struct {
	RelevantSchemes []string            `json:"relevant_schemes"`
	Explanation     []SchemeExplanation `json:"explanation"`
}

// BusinessSuggestions holds generated business ideas. Each idea is kept as
// a generic object because its shape varies by prompt.
type BusinessSuggestions struct {
	Suggestions []map[string]any `json:"suggestions"`
}

// TranslateJSONRequest translates every string leaf of JSON.
type TranslateJSONRequest struct {
	JSON           any    `json:"json"`
	TargetLanguage string `json:"target_language"`
}

// TranslateTextRequest translates one chunk of text.
type TranslateTextRequest struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

type TranslateTextResponse struct {
	Translated string `json:"translated"`
}

// Transcription is the speech-to-text result.
type Transcription struct {
	Text string `json:"text"`
}

// VoiceProfileRequest asks the backend to merge a spoken description into
// the current profile.
type VoiceProfileRequest struct {
	Transcription  string         `json:"transcription"`
	CurrentProfile map[string]any `json:"current_profile"`
}

// Scheme is a row of the government scheme catalogue.
type Scheme struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	TargetGroup        string `json:"target_group"`
	Benefits           string `json:"benefits"`
	Eligibility        string `json:"eligibility"`
	ApplicationProcess string `json:"application_process"`
	DocumentsRequired  string `json:"documents_required"`
	ContactInfo        string `json:"contact_info"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}
