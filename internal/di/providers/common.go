// Package providers contains dependency injection providers for the Quill server.
package providers

import "time"

// shutdownTimeout bounds how long any single component may take to shut
// down before we give up on it.
const shutdownTimeout = 10 * time.Second
