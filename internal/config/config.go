package config

// Config holds user preferences. Field tags serve both the viper loader and
// the yaml writer.
type Config struct {
	Path            string   `mapstructure:"path" yaml:"path"`
	ShowHidden      bool     `mapstructure:"show_hidden" yaml:"show_hidden"`
	HideComments    bool     `mapstructure:"hide_comments" yaml:"hide_comments"`
	PageSize        int      `mapstructure:"page_size" yaml:"page_size"`
	Theme           string   `mapstructure:"theme" yaml:"theme"`
	ExcludePatterns []string `mapstructure:"exclude_patterns" yaml:"exclude_patterns,omitempty"`
	LogLevel        string   `mapstructure:"log_level" yaml:"log_level"`
	LogFile         string   `mapstructure:"log_file" yaml:"log_file,omitempty"`
}

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)
