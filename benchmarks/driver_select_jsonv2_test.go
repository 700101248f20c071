//go:build jsonv2

package canonjson_test

import (
	canonjson "github.com/reoring/canonjson"
	drv "github.com/reoring/canonjson/source/jsonv2"
)

func init() {
	canonjson.SetDriver(drv.Driver())
}
