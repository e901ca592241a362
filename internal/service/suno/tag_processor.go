package suno

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/oshokin/id3v2/v2"

	"github.com/oshokin/suno-cli/internal/client/suno"
	"github.com/oshokin/suno-cli/internal/logger"
)

// TagProcessor defines the interface for writing metadata tags to MP3 files.
type TagProcessor interface {
	WriteTags(ctx context.Context, req *WriteTagsRequest) error
}

// WriteTagsRequest contains parameters for writing metadata to a song file.
type WriteTagsRequest struct {
	// SongPath is the file path of the MP3 file.
	SongPath string
	// Song is the song record the tags are taken from.
	Song *suno.Song
	// Cover is the cover art, nil to skip embedding.
	Cover *CoverImage
}

// CoverImage contains image data and its MIME type.
type CoverImage struct {
	// Data contains the raw image bytes.
	Data []byte
	// MIMEType specifies the image format (e.g., "image/jpeg").
	MIMEType string
}

// TagProcessorImpl provides the default implementation of TagProcessor.
type TagProcessorImpl struct{}

// songArtist is written as the artist of every song.
const songArtist = "Suno"

// Static error definitions for better error handling.
var (
	// ErrEmptySongPath indicates that the song file path is empty.
	ErrEmptySongPath = errors.New("song path cannot be empty")
	// ErrNilSong indicates that no song record was given.
	ErrNilSong = errors.New("song cannot be nil")
)

// NewTagProcessor creates a new TagProcessor instance.
func NewTagProcessor() TagProcessor {
	return new(TagProcessorImpl)
}

// WriteTags writes the song's title, style, prompt, lyrics, year and cover art into the MP3 file.
func (tp *TagProcessorImpl) WriteTags(ctx context.Context, req *WriteTagsRequest) error {
	if req.SongPath == "" {
		return ErrEmptySongPath
	}

	if req.Song == nil {
		return ErrNilSong
	}

	//nolint:exhaustruct // ParseFrames intentionally omitted when Parse=false (parsing disabled).
	tag, err := id3v2.Open(req.SongPath, id3v2.Options{Parse: false})
	if err != nil {
		return err
	}

	defer tag.Close() //nolint:errcheck // Error on close is not critical here.

	tp.addSongTags(ctx, tag, req.Song)

	if req.Cover != nil && len(req.Cover.Data) > 0 {
		//nolint:exhaustruct // Description field intentionally empty for cover images.
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    req.Cover.MIMEType,
			PictureType: id3v2.PTFrontCover,
			Picture:     req.Cover.Data,
		})
	}

	return tag.Save()
}

func (tp *TagProcessorImpl) addSongTags(ctx context.Context, tag *id3v2.Tag, song *suno.Song) {
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	tag.SetTitle(song.Title)
	tag.SetArtist(songArtist)
	tag.SetGenre(song.MetadataString(suno.MetadataTags))

	if !song.CreatedAt.IsZero() {
		tag.SetYear(strconv.Itoa(song.CreatedAt.Year()))
	}

	if song.ModelName != "" {
		tag.AddTextFrame(tag.CommonID("Publisher"), tag.DefaultEncoding(), song.ModelName)
	}

	if description := strings.TrimSpace(song.MetadataString(suno.MetadataDescriptionPrompt)); description != "" {
		tag.AddCommentFrame(id3v2.CommentFrame{
			Encoding:    id3v2.EncodingUTF8,
			Language:    id3v2.EnglishISO6392Code,
			Description: "Prompt",
			Text:        description,
		})
	}

	// In custom mode the prompt holds the lyrics.
	lyrics := strings.TrimSpace(song.MetadataString(suno.MetadataPrompt))
	if lyrics == "" {
		return
	}

	logger.Debugf(ctx, "Embedding %d characters of lyrics into %s", len(lyrics), song.ID)

	tag.AddUnsynchronisedLyricsFrame(
		//nolint:exhaustruct // ContentDescriptor not available in source data.
		id3v2.UnsynchronisedLyricsFrame{
			Encoding: id3v2.EncodingUTF8,
			// Field is required, so we just use lingua franca.
			Language: id3v2.EnglishISO6392Code,
			Lyrics:   lyrics,
		})
}
