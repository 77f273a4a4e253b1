// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the firetime
// command.
//
// Configuration is loaded from a single file specified by either the
// FIRETIME_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There are no fallbacks, no ~/.config discovery,
// and no automatic file search. Without a file the command runs on
// [Default].
//
// Files are YAML, or JSONC when the name ends in .json or .jsonc. A
// holidays_file may be kept separately and is merged into the holiday
// list on load, after ${HOME}, ${CONFIG_DIR} and ${VAR:-default}
// expansion of its path.
//
// Key exports:
//
//   - [Config] -- time zone, weekend days, holidays, adjustment, count
//   - [Default] -- Local zone, Saturday and Sunday weekends, skip, 5
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.Validate] -- reports every invalid field at once
package config
