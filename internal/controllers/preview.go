package controllers

import "github.com/google/uuid"

// Preview is the transient handle for a locally selected image. It
// stands in for a browser object URL: created when a file is chosen,
// and it must be released on every exit path (replaced by a new file,
// cleared, or reset) or the underlying resource leaks.
type Preview struct {
	url      string
	released bool
}

func newPreview() *Preview {
	return &Preview{url: "local-preview://" + uuid.NewString()}
}

func (p *Preview) URL() string {
	if p.released {
		return ""
	}
	return p.url
}

// Release frees the handle. Releasing twice is a no-op.
func (p *Preview) Release() {
	p.released = true
}

func (p *Preview) Released() bool {
	return p.released
}
