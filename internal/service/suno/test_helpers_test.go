package suno

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/oshokin/suno-cli/internal/client/suno"
	mock_suno_client "github.com/oshokin/suno-cli/internal/client/suno/mocks"
	"github.com/oshokin/suno-cli/internal/config"
)

const (
	testSongID      = "0d4e5f6a-1b2c-4d3e-8f9a-0b1c2d3e4f5a"
	testOtherSongID = "7c1d2e3f-4a5b-4c6d-9e8f-1a2b3c4d5e6f"
)

// mockTagProcessor records WriteTags calls.
type mockTagProcessor struct {
	mu       sync.Mutex
	requests []*WriteTagsRequest
	err      error
}

func (m *mockTagProcessor) WriteTags(_ context.Context, req *WriteTagsRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, req)

	return m.err
}

// testSetup encapsulates common test dependencies and configuration.
type testSetup struct {
	mockClient   *mock_suno_client.MockClient
	tagProcessor *mockTagProcessor
	service      *ServiceImpl
	config       *config.Config
	tempDir      string
	pauses       int
}

// newTestSetup creates a standard test setup with optional config overrides.
// Poll pauses are counted instead of slept.
func newTestSetup(t *testing.T, configOverrides ...func(*config.Config)) *testSetup {
	t.Helper()

	ctrl := gomock.NewController(t)
	tempDir := t.TempDir()

	cfg := &config.Config{
		ModelVersion:            config.DefaultModelVersion,
		OutputPath:              tempDir,
		ParsedGenerationTimeout: time.Minute,
		ParsedMinPollPause:      time.Second,
		ParsedMaxPollPause:      6 * time.Second,
	}

	for _, override := range configOverrides {
		override(cfg)
	}

	setup := &testSetup{
		mockClient:   mock_suno_client.NewMockClient(ctrl),
		tagProcessor: new(mockTagProcessor),
		config:       cfg,
		tempDir:      tempDir,
	}

	service, _ := NewService(cfg, setup.mockClient, setup.tagProcessor).(*ServiceImpl)
	service.pause = func(ctx context.Context, minPause, maxPause time.Duration) error {
		setup.pauses++

		if minPause != cfg.ParsedMinPollPause || maxPause != cfg.ParsedMaxPollPause {
			t.Errorf("unexpected pause range %s..%s", minPause, maxPause)
		}

		return ctx.Err()
	}

	setup.service = service

	return setup
}

// newTestSong returns a song record, ready when audio and video are set.
func newTestSong(songID string, ready bool) *suno.Song {
	song := &suno.Song{
		ID:     songID,
		Title:  "Rainy Window",
		Status: "streaming",
		Metadata: map[string]any{
			suno.MetadataTags: "lofi, chill",
		},
	}

	if ready {
		song.Status = "complete"
		song.AudioURL = "https://cdn1.suno.ai/" + songID + ".mp3"
		song.VideoURL = "https://cdn1.suno.ai/" + songID + ".mp4"
	}

	return song
}
