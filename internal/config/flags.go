package config

import "github.com/spf13/cobra"

const (
	FlagConfig       = "config"
	FlagPageSize     = "page-size"
	FlagHideComments = "hide-comments"
	FlagShowHidden   = "show-hidden"
	FlagExclude      = "exclude"
	FlagLogLevel     = "log-level"
	FlagLogFile      = "log-file"
)

// RegisterFlags adds the preference flags to cmd as persistent flags so every
// subcommand accepts them.
func RegisterFlags(cmd *cobra.Command) {
	defaults := DefaultConfig()
	flags := cmd.PersistentFlags()
	flags.String(FlagConfig, "", "config file (default is $XDG_CONFIG_HOME/foldersize/config.yaml)")
	flags.IntP(FlagPageSize, "p", defaults.PageSize, "How many results to show per page load")
	flags.BoolP(FlagHideComments, "c", false, "Hides comments next to directory entries")
	flags.BoolP(FlagShowHidden, "s", false, "Show hidden files and folders")
	flags.StringArray(FlagExclude, nil, "Extra regular expression of directory paths to skip (repeatable)")
	flags.String(FlagLogLevel, defaults.LogLevel, "Log level (debug, info, warn, error)")
	flags.String(FlagLogFile, "", "Write logs to this file")
}

// ApplyFlags overrides base with the flags the user actually set.
func ApplyFlags(cmd *cobra.Command, base Config) (Config, error) {
	flags := cmd.Flags()
	var err error
	if flags.Changed(FlagPageSize) {
		if base.PageSize, err = flags.GetInt(FlagPageSize); err != nil {
			return base, err
		}
	}
	if flags.Changed(FlagHideComments) {
		if base.HideComments, err = flags.GetBool(FlagHideComments); err != nil {
			return base, err
		}
	}
	if flags.Changed(FlagShowHidden) {
		if base.ShowHidden, err = flags.GetBool(FlagShowHidden); err != nil {
			return base, err
		}
	}
	if flags.Changed(FlagExclude) {
		extra, err := flags.GetStringArray(FlagExclude)
		if err != nil {
			return base, err
		}
		base.ExcludePatterns = append(append([]string{}, base.ExcludePatterns...), extra...)
	}
	if flags.Changed(FlagLogLevel) {
		if base.LogLevel, err = flags.GetString(FlagLogLevel); err != nil {
			return base, err
		}
	}
	if flags.Changed(FlagLogFile) {
		if base.LogFile, err = flags.GetString(FlagLogFile); err != nil {
			return base, err
		}
	}
	return normalize(base, DefaultConfig()), nil
}

// ConfigFile returns the --config value, or "" when unset.
func ConfigFile(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString(FlagConfig)
	return path
}
