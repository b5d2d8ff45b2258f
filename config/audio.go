package config

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate  int
	MusicVolume float64
	MusicDir    string
	// Candidate background tracks, tried in order. The first file that exists is looped.
	MusicCandidates []string
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:  44100,
		MusicVolume: 0.3,
		MusicDir:    ".",
		MusicCandidates: []string{
			"background_music.mp3",
			"background_music.ogg",
			"background_music.wav",
			"music.mp3",
			"music.ogg",
			"music.wav",
			"bgm.mp3",
			"bgm.ogg",
			"bgm.wav",
		},
	}
}
