package version

import (
	"fmt"
	"runtime"
)

// Binary is the version stamped into build banners and the /info
// endpoint.
const Binary = "0.1.0"

func String(app string) string {
	return fmt.Sprintf("%s v%s (built w/%s)", app, Binary, runtime.Version())
}
