// Package sound plays the background track. Failures are logged and never
// reach the simulation.
package sound

import (
	"errors"
	"sync"

	"github.com/automoto/dreamrunner/assets"
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/logger"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, cfg.Audio.MusicDir)
		loadMusic()
	})
}

func loadMusic() {
	path, err := globalAudioLoader.FindMusic(cfg.Audio.MusicCandidates)
	if errors.Is(err, assets.ErrNoMusic) {
		logger.Infof("no music files found in %q, running without background music", cfg.Audio.MusicDir)
		return
	}

	player, err := globalAudioLoader.LoadMusic(path)
	if err != nil {
		logger.Warningf("could not load music: %v", err)
		return
	}
	player.SetVolume(cfg.Audio.MusicVolume)
	globalMusicPlayer = player
	logger.Infof("loaded music: %s", path)
}

// SetMusicEnabled starts or pauses the background track.
func SetMusicEnabled(enabled bool) {
	initGlobalAudio()
	if globalMusicPlayer == nil {
		return
	}

	if enabled && !globalMusicPlayer.IsPlaying() {
		globalMusicPlayer.Play()
	} else if !enabled && globalMusicPlayer.IsPlaying() {
		globalMusicPlayer.Pause()
	}
}

// MusicPlaying reports whether a track is loaded and currently playing.
func MusicPlaying() bool {
	return globalMusicPlayer != nil && globalMusicPlayer.IsPlaying()
}
