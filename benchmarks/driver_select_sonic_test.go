//go:build sonic

package canonjson_test

import (
	canonjson "github.com/reoring/canonjson"
	drv "github.com/reoring/canonjson/source/sonicjson"
)

func init() {
	canonjson.SetDriver(drv.Driver())
}
