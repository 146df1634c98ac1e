package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mithrel/readmegen/internal/logx"
	"github.com/mithrel/readmegen/internal/theme"
)

// CheckConfigValidity reports every invalid option at once.
func CheckConfigValidity(v *viper.Viper) error {
	var errs []error

	if _, err := theme.Parse(v.GetString("theme")); err != nil {
		errs = append(errs, fmt.Errorf("theme: %w", err))
	}
	switch strings.ToLower(strings.TrimSpace(v.GetString("output"))) {
	case "raw", "pretty":
	default:
		errs = append(errs, fmt.Errorf("output must be raw or pretty, got %q", v.GetString("output")))
	}
	if v.GetInt("preview.word_wrap") <= 0 {
		errs = append(errs, errors.New("preview.word_wrap must be greater than 0"))
	}
	if !logx.ValidLevel(v.GetString("log.level")) {
		errs = append(errs, fmt.Errorf("log.level %q is not a known level", v.GetString("log.level")))
	}
	if !logx.ValidFormat(v.GetString("log.format")) {
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", v.GetString("log.format")))
	}
	for i, s := range v.GetStringSlice("profile.socials") {
		if _, _, err := ParseSocial(s); err != nil {
			errs = append(errs, fmt.Errorf("profile.socials[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
