// Package config provides configuration loading, merging, and validation
// for the gateway admin client.
//
// Configuration is assembled from two sources in priority order (earlier
// sources win):
//  1. Environment variables (MSGGW_*)
//  2. Compiled-in defaults, including the documented placeholder values
//
// The tool is deliberately flagless: the interactive menu is the whole CLI
// surface, so the environment is the only external configuration input.
// The main entry point is [GetConfig].
package config
