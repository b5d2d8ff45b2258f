package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ErrNoMusic is returned when none of the candidate tracks exist.
var ErrNoMusic = errors.New("no music file found")

// AudioLoader handles loading audio assets from disk
type AudioLoader struct {
	context *audio.Context
	fsys    fs.FS
}

// NewAudioLoader creates a loader reading tracks from dir
func NewAudioLoader(ctx *audio.Context, dir string) *AudioLoader {
	return &AudioLoader{
		context: ctx,
		fsys:    os.DirFS(dir),
	}
}

// FindMusic returns the first candidate that exists in the loader's directory.
func (l *AudioLoader) FindMusic(candidates []string) (string, error) {
	for _, name := range candidates {
		if _, err := fs.Stat(l.fsys, name); err == nil {
			return name, nil
		}
	}
	return "", ErrNoMusic
}

// LoadMusic returns a looping player for an mp3, ogg or wav track.
func (l *AudioLoader) LoadMusic(path string) (*audio.Player, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read music file %s: %w", path, err)
	}

	stream, length, err := l.decode(path, data)
	if err != nil {
		return nil, err
	}

	// Create infinite loop for music
	loop := audio.NewInfiniteLoop(stream, length)
	player, err := l.context.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("failed to create music player %s: %w", path, err)
	}
	return player, nil
}

func (l *AudioLoader) decode(path string, data []byte) (io.ReadSeeker, int64, error) {
	sampleRate := l.context.SampleRate()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		stream, err := mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode mp3 %s: %w", path, err)
		}
		return stream, stream.Length(), nil

	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}
		return stream, stream.Length(), nil

	case ".wav":
		stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
		return stream, stream.Length(), nil

	default:
		return nil, 0, fmt.Errorf("unsupported audio format: %s", ext)
	}
}
