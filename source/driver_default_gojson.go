// Package source installs the go-json driver as the default descriptor JSON
// driver when imported for side effects.
package source

import (
	gostyle "github.com/reoring/gostyle"
	drvgojson "github.com/reoring/gostyle/source/gojson"
)

// init lives in a separate package to avoid an import cycle with the root.
func init() { gostyle.SetJSONDriver(drvgojson.Driver()) }
