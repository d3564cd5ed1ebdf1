package analytics

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Normalize coerces a raw answer value into the canonical string form
// used as an aggregation key. Submissions arrive over JSON and come back
// out of BSON, so numbers may surface as float64, int32 or int64
// depending on the path taken. This operation is total: any scalar maps
// to some string.
func Normalize(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
