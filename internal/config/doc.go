// Package config loads the optional runmenu configuration file.
//
// Configuration is read from ~/.config/runmenu/config.toml, or from the path
// in RUNMENU_CONFIG when set. A missing file is not an error: defaults apply.
//
// Only presentation settings live here. The menu's actions are fixed and
// cannot be changed from config.
//
//	[theme]
//	name = "nord"   # default, none, nord
//	mode = "auto"   # auto, light, dark
package config
