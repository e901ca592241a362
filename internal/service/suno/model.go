package suno

import "errors"

// GenerateParams describes a generation request as accepted by the CLI and the REST server.
type GenerateParams struct {
	// Prompt is the description in description mode, the lyrics in custom mode,
	// or the style in custom instrumental mode.
	Prompt string `json:"prompt"`
	// Custom switches from description mode to custom lyrics mode.
	Custom bool `json:"custom"`
	// Tags is the style of music in custom lyrics mode.
	Tags string `json:"tags"`
	// Instrumental requests a song without vocals.
	Instrumental bool `json:"instrumental"`
}

// DownloadResult describes a finished or skipped song download.
type DownloadResult struct {
	// SongID is the downloaded song id.
	SongID string `json:"song_id"`
	// URL is the audio source URL.
	URL string `json:"url"`
	// Path is the destination file path.
	Path string `json:"path"`
	// BytesDownloaded is the number of bytes written, zero when skipped.
	BytesDownloaded int64 `json:"bytes_downloaded"`
	// IsExist reports that the file already existed and the download was skipped.
	IsExist bool `json:"is_exist"`
}

// Static error definitions for better error handling.
var (
	// ErrEmptyPrompt indicates that the generation prompt is empty.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")
	// ErrNoClips indicates that the generation endpoint returned no clips.
	ErrNoClips = errors.New("generation returned no clips")
	// ErrGenerationTimeout indicates that the songs did not become ready within the generation timeout.
	ErrGenerationTimeout = errors.New("songs were not ready before the generation timeout")
	// ErrInvalidSongID indicates that no song id could be found in the input.
	ErrInvalidSongID = errors.New("invalid song id")
	// ErrIncompleteDownload indicates that the downloaded size differs from the announced one.
	ErrIncompleteDownload = errors.New("incomplete download")
)
