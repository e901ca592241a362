package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/suno-cli/internal/client/suno"
	suno_service "github.com/oshokin/suno-cli/internal/service/suno"
)

// Output formats accepted by the --format flag.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// ErrUnknownFormat indicates an unsupported --format value.
var ErrUnknownFormat = errors.New("unknown output format")

// songRow is the flat CSV view of a song.
type songRow struct {
	// ID is the song UUID.
	ID string `csv:"id"`
	// Title is the song title.
	Title string `csv:"title"`
	// Status is the generation status.
	Status string `csv:"status"`
	// ModelName is the model that produced the song.
	ModelName string `csv:"model_name"`
	// Tags is the style description.
	Tags string `csv:"tags"`
	// Duration is the song length in seconds.
	Duration string `csv:"duration"`
	// AudioURL is the MP3 rendition.
	AudioURL string `csv:"audio_url"`
	// VideoURL is the MP4 rendition.
	VideoURL string `csv:"video_url"`
	// ImageURL is the cover art.
	ImageURL string `csv:"image_url"`
	// CreatedAt is the creation time in RFC 3339.
	CreatedAt string `csv:"created_at"`
}

// creditsRow is the flat view of the billing info, shared by all formats.
type creditsRow struct {
	// TotalCreditsLeft is the number of credits that can still be spent.
	TotalCreditsLeft int `json:"total_credits_left" yaml:"total_credits_left" csv:"total_credits_left"`
	// Credits is the number of purchased credits.
	Credits int `json:"credits" yaml:"credits" csv:"credits"`
	// MonthlyLimit is the subscription allowance.
	MonthlyLimit int `json:"monthly_limit" yaml:"monthly_limit" csv:"monthly_limit"`
	// MonthlyUsage is the part of the allowance already used.
	MonthlyUsage int `json:"monthly_usage" yaml:"monthly_usage" csv:"monthly_usage"`
	// Period is the subscription period, empty for free accounts.
	Period string `json:"period" yaml:"period" csv:"period"`
	// IsActive reports whether a subscription is active.
	IsActive bool `json:"is_active" yaml:"is_active" csv:"is_active"`
}

// downloadRow is the flat view of a download result for CSV output.
type downloadRow struct {
	// SongID is the downloaded song id.
	SongID string `csv:"song_id"`
	// Path is the destination file path.
	Path string `csv:"path"`
	// BytesDownloaded is the number of bytes written.
	BytesDownloaded int64 `csv:"bytes_downloaded"`
	// IsExist reports that the download was skipped.
	IsExist bool `csv:"is_exist"`
}

// ValidateFormat checks that format is one of the supported output formats.
func ValidateFormat(format string) error {
	switch strings.ToLower(format) {
	case FormatJSON, FormatYAML, FormatCSV:
		return nil
	default:
		return fmt.Errorf("%w: '%s', expected %s, %s or %s", ErrUnknownFormat, format, FormatJSON, FormatYAML, FormatCSV)
	}
}

// PrintSongs writes songs in the requested format.
func PrintSongs(w io.Writer, format string, songs []*suno.Song) error {
	if strings.EqualFold(format, FormatCSV) {
		rows := make([]*songRow, 0, len(songs))
		for _, song := range songs {
			rows = append(rows, newSongRow(song))
		}

		return gocsv.Marshal(rows, w)
	}

	return printStructured(w, format, songs)
}

// PrintCredits writes the billing info in the requested format.
func PrintCredits(w io.Writer, format string, info *suno.BillingInfo) error {
	row := &creditsRow{
		TotalCreditsLeft: info.TotalCreditsLeft,
		Credits:          info.Credits,
		MonthlyLimit:     info.MonthlyLimit,
		MonthlyUsage:     info.MonthlyUsage,
		IsActive:         info.IsActive,
	}

	if info.Period != nil {
		row.Period = *info.Period
	}

	if strings.EqualFold(format, FormatCSV) {
		return gocsv.Marshal([]*creditsRow{row}, w)
	}

	return printStructured(w, format, row)
}

// PrintDownloads writes download results in the requested format.
func PrintDownloads(w io.Writer, format string, results []*suno_service.DownloadResult) error {
	if strings.EqualFold(format, FormatCSV) {
		rows := make([]*downloadRow, 0, len(results))
		for _, result := range results {
			rows = append(rows, &downloadRow{
				SongID:          result.SongID,
				Path:            result.Path,
				BytesDownloaded: result.BytesDownloaded,
				IsExist:         result.IsExist,
			})
		}

		return gocsv.Marshal(rows, w)
	}

	return printStructured(w, format, results)
}

func printStructured(w io.Writer, format string, value any) error {
	switch strings.ToLower(format) {
	case FormatJSON, "":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)

		return encoder.Encode(value)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2) //nolint:mnd // Two spaces match the JSON output.

		if err := encoder.Encode(value); err != nil {
			return err
		}

		return encoder.Close()
	default:
		return ValidateFormat(format)
	}
}

func newSongRow(song *suno.Song) *songRow {
	row := &songRow{
		ID:        song.ID,
		Title:     song.Title,
		Status:    song.Status,
		ModelName: song.ModelName,
		Tags:      song.MetadataString(suno.MetadataTags),
		AudioURL:  song.AudioURL,
		VideoURL:  song.VideoURL,
		ImageURL:  song.CoverURL(),
	}

	if duration := song.Duration(); duration > 0 {
		row.Duration = fmt.Sprintf("%.2f", duration.Seconds())
	}

	if !song.CreatedAt.IsZero() {
		row.CreatedAt = song.CreatedAt.Format(time.RFC3339)
	}

	return row
}
