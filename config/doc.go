// Package config resolves the CLI option table of spec.md §6 into a
// validated Config, mirroring builder.builderConfig/BuilderOption:
// functional options over an internal struct, validated once in New,
// returning *gbaderr.OptionError sentinels on domain violations
// (spec.md §6-§7) rather than panicking.
package config
