// Package file stores adsclient settings in a TOML file under the user's
// home directory. Nested tables are flattened into dot keys on load, so
// "dfa.user_name" reads the user_name entry of the [dfa] table.
package file
