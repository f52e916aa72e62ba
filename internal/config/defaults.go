package config

const (
	defaultSubtitleExtensions = "srt"
	defaultVideoExtensions    = "mkv"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Extensions: Extensions{
			Subtitles: defaultSubtitleExtensions,
			Videos:    defaultVideoExtensions,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
