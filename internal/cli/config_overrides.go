package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mithrel/readmegen/internal/config"
)

// flagConfigKeys maps flag names to the config key they override.
// Flags a command does not define are skipped.
var flagConfigKeys = map[string]string{
	"theme":     "theme",
	"log-level": "log.level",
	"name":      "profile.name",
	"tagline":   "profile.tagline",
	"about":     "profile.about_me",
	"github":    "profile.github_username",
	"stats":     "profile.show_github_stats",
	"top-langs": "profile.show_top_languages",
	"skill":     "profile.skills",
	"social":    "profile.socials",
	"wrap":      "preview.word_wrap",
}

func applyConfigFlagOverrides(cmd *cobra.Command, v *viper.Viper, extra map[string]string) {
	for _, opt := range config.GetConfigOptions() {
		flag := cmd.Flags().Lookup(opt.Key)
		if flag == nil || !flag.Changed {
			continue
		}
		setFromFlag(cmd, v, opt.Key, opt.Key)
	}
	for flagName, key := range extra {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil || !flag.Changed {
			continue
		}
		setFromFlag(cmd, v, flagName, key)
	}
}

// applyListResets empties a list when its --no-* flag is set; it wins over --skill/--social.
func applyListResets(cmd *cobra.Command, v *viper.Viper) {
	for flagName, key := range map[string]string{"no-skills": "profile.skills", "no-socials": "profile.socials"} {
		if on, err := cmd.Flags().GetBool(flagName); err == nil && on {
			v.Set(key, []string{})
		}
	}
}

func setFromFlag(cmd *cobra.Command, v *viper.Viper, flagName, key string) {
	switch cmd.Flags().Lookup(flagName).Value.Type() {
	case "bool":
		if val, err := cmd.Flags().GetBool(flagName); err == nil {
			v.Set(key, val)
		}
	case "int":
		if val, err := cmd.Flags().GetInt(flagName); err == nil {
			v.Set(key, val)
		}
	case "int64":
		if val, err := cmd.Flags().GetInt64(flagName); err == nil {
			v.Set(key, val)
		}
	case "stringSlice":
		if val, err := cmd.Flags().GetStringSlice(flagName); err == nil {
			v.Set(key, val)
		}
	case "stringArray":
		if val, err := cmd.Flags().GetStringArray(flagName); err == nil {
			v.Set(key, val)
		}
	default:
		if val, err := cmd.Flags().GetString(flagName); err == nil {
			v.Set(key, val)
		}
	}
}
