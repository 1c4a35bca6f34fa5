// Package rules holds the pattern-to-action routing directives linkrouter
// reads from its config directory.
//
// # Rule Files
//
// A rule file is YAML (a top-level list, or a mapping with a `rules` list) or
// TOML (an array of `[[rules]]` tables). Each rule has a regular expression
// and exactly one action:
//
//	- pattern: '^https?://(www\.)?youtube\.com/'
//	  exec: [mpv, '$0']
//
//	- pattern: '^mailto:(.*)$'
//	  remote_call:
//	    destination: org.example.Mail
//	    path: /org/example/Mail
//	    interface: org.example.Mail
//	    method: Compose
//	    signature: sb
//	    args: ["", true]
//
// The older form with a `command` string and an `args` list is still read
// and turned into an exec action.
//
// # Rule Priority
//
// There are no priority numbers. Rules are tried in the order they were
// loaded (files in directory-listing order, rules within a file top to
// bottom) and the first rule whose pattern matches wins.
package rules
