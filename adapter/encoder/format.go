package encoder

import (
	"github.com/mitchellh/mapstructure"

	"github.com/attrkit/jsonmap/domain"
)

type formatConfig struct {
	OutputMode string `mapstructure:"output_mode"`
	Attr       struct {
		Prefix string `mapstructure:"prefix"`
	} `mapstructure:"attr"`
	Value struct {
		ValueAsArray   bool `mapstructure:"value_as_array"`
		DatesAsInteger bool `mapstructure:"dates_as_integer"`
	} `mapstructure:"value"`
}

// ParseFormat decodes a raw configuration section into a [domain.Format].
// An unrecognized output_mode is a hard error, never a runtime default; an
// absent output_mode selects "object".
func ParseFormat(section map[string]any) (domain.Format, error) {
	var cfg formatConfig
	if err := mapstructure.Decode(section, &cfg); err != nil {
		return domain.Format{}, err
	}

	format := domain.Format{
		AttrPrefix:     cfg.Attr.Prefix,
		ValueAsArray:   cfg.Value.ValueAsArray,
		DatesAsInteger: cfg.Value.DatesAsInteger,
	}
	if cfg.OutputMode == "" {
		format.Mode = domain.ModeObject
		return format, nil
	}

	mode, err := domain.ParseMode(cfg.OutputMode)
	if err != nil {
		return domain.Format{}, err
	}
	format.Mode = mode
	return format, nil
}
