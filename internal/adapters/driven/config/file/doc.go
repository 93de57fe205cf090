// Package file provides the TOML-file implementation of driven.ConfigStore.
//
// Configuration lives in ~/.chembalance/config.toml unless another
// directory is given. Nested tables are flattened into dot keys
// ("balance.max_coefficient") on load and nested again on save.
// Watch follows external edits with fsnotify.
package file
