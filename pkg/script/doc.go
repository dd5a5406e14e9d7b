// Package script reads action scripts: ordered, untyped steps (YAML or JSON)
// that a host replays against an AppStore.
package script
