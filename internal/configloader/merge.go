package configloader

import "github.com/yaklabco/goswon/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Optional values: override overwrites base if override is non-nil
//   - Slices: override replaces base entirely if override is non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Format.IndentWidth != 0 {
		result.Format.IndentWidth = override.Format.IndentWidth
	}
	result.Unformat = mergeUnformat(base.Unformat, override.Unformat)

	if override.Color != "" {
		result.Color = override.Color
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.ValueFormat != "" {
		result.ValueFormat = override.ValueFormat
	}

	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	return &result
}

func mergeUnformat(base, override config.UnformatConfig) config.UnformatConfig {
	result := base
	if override.Seed != nil {
		result.Seed = override.Seed
	}
	if override.WeirdSpace != nil {
		result.WeirdSpace = override.WeirdSpace
	}
	if override.EmptyLine != nil {
		result.EmptyLine = override.EmptyLine
	}
	if override.LineRemoval != nil {
		result.LineRemoval = override.LineRemoval
	}
	if override.WhitespaceRemoval != nil {
		result.WhitespaceRemoval = override.WhitespaceRemoval
	}
	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
