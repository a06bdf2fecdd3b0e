package entities

// Artifact is the converted output returned to the caller. It lives only
// for the duration of the request; nothing is cached or stored.
type Artifact struct {
	Data      []byte
	MediaType string
	Filename  string
}
