package suno

import (
	"io"
	"time"
)

// Song is one generated clip as returned by the feed endpoint.
// A song is ready once both AudioURL and VideoURL are non-empty.
type Song struct {
	// ID is the song UUID.
	ID string `json:"id" yaml:"id"`
	// VideoURL is the MP4 rendition, empty while generating.
	VideoURL string `json:"video_url" yaml:"video_url"`
	// AudioURL is the MP3 rendition, empty while generating.
	AudioURL string `json:"audio_url" yaml:"audio_url"`
	// ImageURL is the cover art.
	ImageURL *string `json:"image_url" yaml:"image_url"`
	// ImageLargeURL is the large cover art.
	ImageLargeURL *string `json:"image_large_url" yaml:"image_large_url"`
	// MajorModelVersion is the model family, e.g. "v3".
	MajorModelVersion string `json:"major_model_version" yaml:"major_model_version"`
	// ModelName is the model that produced the song, e.g. "chirp-v3".
	ModelName string `json:"model_name" yaml:"model_name"`
	// Metadata holds free-form generation details: tags, prompt, gpt_description_prompt, type, duration.
	Metadata map[string]any `json:"metadata" yaml:"metadata"`
	// IsLiked reports whether the owner liked the song.
	IsLiked bool `json:"is_liked" yaml:"is_liked"`
	// UserID is the owner id.
	UserID string `json:"user_id" yaml:"user_id"`
	// IsTrashed reports whether the song is in the trash.
	IsTrashed bool `json:"is_trashed" yaml:"is_trashed"`
	// Reaction is the viewer's reaction, nil when there is none.
	Reaction map[string]any `json:"reaction" yaml:"reaction"`
	// CreatedAt is the creation time.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	// Status is the generation status: submitted, queued, streaming, complete, error.
	Status string `json:"status" yaml:"status"`
	// Title is the song title.
	Title string `json:"title" yaml:"title"`
	// PlayCount is the number of plays.
	PlayCount int `json:"play_count" yaml:"play_count"`
	// UpvoteCount is the number of upvotes.
	UpvoteCount int `json:"upvote_count" yaml:"upvote_count"`
	// IsPublic reports whether the song page is public.
	IsPublic bool `json:"is_public" yaml:"is_public"`
}

// Metadata keys used by the tagger and the CSV printer.
const (
	// MetadataTags is the style tags key.
	MetadataTags = "tags"
	// MetadataPrompt is the lyrics key.
	MetadataPrompt = "prompt"
	// MetadataDescriptionPrompt is the description prompt key.
	MetadataDescriptionPrompt = "gpt_description_prompt"
	// MetadataType is the generation type key.
	MetadataType = "type"
	// MetadataDuration is the duration in seconds key.
	MetadataDuration = "duration"
)

// IsReady reports whether both media URLs are populated.
func (s *Song) IsReady() bool {
	return s.AudioURL != "" && s.VideoURL != ""
}

// MetadataString returns a string metadata value, or an empty string.
func (s *Song) MetadataString(key string) string {
	value, ok := s.Metadata[key].(string)
	if !ok {
		return ""
	}

	return value
}

// Duration returns the song duration from the metadata, or zero.
func (s *Song) Duration() time.Duration {
	seconds, ok := s.Metadata[MetadataDuration].(float64)
	if !ok {
		return 0
	}

	return time.Duration(seconds * float64(time.Second))
}

// CoverURL returns the best available cover art URL.
func (s *Song) CoverURL() string {
	switch {
	case s.ImageLargeURL != nil && *s.ImageLargeURL != "":
		return *s.ImageLargeURL
	case s.ImageURL != nil:
		return *s.ImageURL
	default:
		return ""
	}
}

// GenerateRequest is the body of POST /api/generate/v2/.
// Tags and GPTDescriptionPrompt are omitted when nil, matching the web app's payloads.
type GenerateRequest struct {
	// ModelVersion is the model identifier.
	ModelVersion string `json:"mv"`
	// Tags is the style description in custom mode.
	Tags *string `json:"tags,omitempty"`
	// Prompt holds the lyrics in custom mode and is empty otherwise.
	Prompt string `json:"prompt"`
	// GPTDescriptionPrompt is the free-text description in description mode.
	GPTDescriptionPrompt *string `json:"gpt_description_prompt,omitempty"`
	// MakeInstrumental requests a song without vocals.
	MakeInstrumental bool `json:"make_instrumental"`
}

// GenerateResponse is the answer of the generation endpoint.
type GenerateResponse struct {
	// ID is the batch id.
	ID string `json:"id"`
	// Clips are the provisional songs, usually two.
	Clips []*Clip `json:"clips"`
	// Status is the batch status.
	Status string `json:"status"`
}

// Clip is a provisional song returned right after submission.
type Clip struct {
	// ID is the song UUID used for polling.
	ID string `json:"id"`
	// Status is the clip status.
	Status string `json:"status"`
	// Title is the provisional title.
	Title string `json:"title"`
}

// ClipIDs returns the ids of all clips in submission order.
func (r *GenerateResponse) ClipIDs() []string {
	ids := make([]string, 0, len(r.Clips))
	for _, clip := range r.Clips {
		ids = append(ids, clip.ID)
	}

	return ids
}

// BillingInfo is the answer of the billing endpoint.
type BillingInfo struct {
	// TotalCreditsLeft is the number of credits that can still be spent.
	TotalCreditsLeft int `json:"total_credits_left"`
	// Credits is the number of purchased credits.
	Credits int `json:"credits"`
	// MonthlyLimit is the subscription allowance.
	MonthlyLimit int `json:"monthly_limit"`
	// MonthlyUsage is the part of the allowance already used.
	MonthlyUsage int `json:"monthly_usage"`
	// Period is the subscription period, nil for free accounts.
	Period *string `json:"period"`
	// IsActive reports whether a subscription is active.
	IsActive bool `json:"is_active"`
}

// FetchAudioResult is an open audio stream.
type FetchAudioResult struct {
	// Body is the response body, the caller closes it.
	Body io.ReadCloser
	// TotalBytes is the content length, -1 when unknown.
	TotalBytes int64
}
