// Package paths resolves where linkrouter reads its rule files and settings
// and where it writes its log, following the XDG Base Directory specification.
//
// # Environment Variables
//
//   - LINKROUTER_CONFIG_DIR: replaces every XDG config location with a single directory
//   - XDG_CONFIG_HOME / XDG_CONFIG_DIRS: user and system config locations
//   - XDG_STATE_HOME: log file location
//
// # Rule Files
//
// Rule files live directly inside the config directories (no recursion). The
// user directory is listed first, then each system directory. Inside a
// directory files are taken in lexical order, which is the rule priority
// order across files.
package paths
