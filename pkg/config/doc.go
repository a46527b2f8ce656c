/*
Package config loads and validates batch rotation settings.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   JSON   | |   HCL    |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Reads a run description (input, output, angle, naming, overwrite, filters)
- Picks the parser from the file extension
- Defaults the angle to 90 when the file does not set one

🔄 Flow:
1. Reads configuration from file
2. Parses format-specific syntax, refusing unknown fields
3. Resolves relative folders against the config file's folder
4. Validates the settings after command-line flags are merged in

🔍 Example:

	input     = "photos"
	output    = "photos/rotated"
	angle     = 90
	suffix    = "_rot{angle}"
	overwrite = false
	recursive = true
	exclude   = ["rotated/**"]
*/
package config
