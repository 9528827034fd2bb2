package source

import (
	jsonbind "github.com/reoring/jsonbind"
	drvgojson "github.com/reoring/jsonbind/source/gojson"
)

// init in a separate package to avoid import cycle in root. This sets go-json as default driver.
func init() { jsonbind.SetJSONDriver(drvgojson.Driver()) }
