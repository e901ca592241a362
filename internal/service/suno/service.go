package suno

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"time"

	"github.com/oshokin/suno-cli/internal/client/suno"
	"github.com/oshokin/suno-cli/internal/config"
	"github.com/oshokin/suno-cli/internal/utils"
)

// Service provides song generation, lookup and download on top of the studio API.
type Service interface {
	// DownloadSong downloads the MP3 of a song id or song link into <root>/.suno.
	DownloadSong(ctx context.Context, song, root string) (*DownloadResult, error)
	// GenerateSongs submits a generation and blocks until all created songs are ready.
	GenerateSongs(ctx context.Context, params *GenerateParams) ([]*suno.Song, error)
	// GetCredits returns the account's billing info.
	GetCredits(ctx context.Context) (*suno.BillingInfo, error)
	// GetSong returns one song by id.
	GetSong(ctx context.Context, songID string) (*suno.Song, error)
	// ListSongs returns the account's song feed.
	ListSongs(ctx context.Context) ([]*suno.Song, error)
}

// PauseFunc sleeps for a random duration in [minPause, maxPause] or until ctx is done.
type PauseFunc func(ctx context.Context, minPause, maxPause time.Duration) error

// ServiceImpl implements Service.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// sunoClient is the client for interacting with Suno's API.
	sunoClient suno.Client
	// tagProcessor writes ID3 tags to downloaded songs.
	tagProcessor TagProcessor
	// pause is called after every song fetch while polling.
	pause PauseFunc
}

// NewService creates a song service instance with dependency-injected components.
func NewService(cfg *config.Config, sunoClient suno.Client, tagProcessor TagProcessor) Service {
	return &ServiceImpl{
		cfg:          cfg,
		sunoClient:   sunoClient,
		tagProcessor: tagProcessor,
		pause:        utils.RandomPause,
	}
}

// GetCredits returns the account's billing info.
func (s *ServiceImpl) GetCredits(ctx context.Context) (*suno.BillingInfo, error) {
	return s.sunoClient.GetBillingInfo(ctx)
}

// GetSong returns one song by id.
func (s *ServiceImpl) GetSong(ctx context.Context, songID string) (*suno.Song, error) {
	return s.sunoClient.GetSong(ctx, songID)
}

// ListSongs returns the account's song feed.
func (s *ServiceImpl) ListSongs(ctx context.Context) ([]*suno.Song, error) {
	return s.sunoClient.GetSongs(ctx)
}
