// Package version negotiates the header-carried API version. Clients request a
// representation with a vendor media type such as
// "application/vnd.hedtech.integration.v2+json" in Accept or X-Media-Type.
package version

import (
	"fmt"
	"mime"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/colleague-student-api/pkg/errors"
	"github.com/noah-isme/colleague-student-api/pkg/response"
)

const (
	// HeaderMediaType carries the resolved media type on responses.
	HeaderMediaType = "X-Media-Type"
	contextKey      = "api_version"
)

// Negotiator resolves request versions against a vendor name.
type Negotiator struct {
	vendor         string
	defaultVersion int
	reject         func(c *gin.Context, err error)
}

// Option customises a Negotiator.
type Option func(*Negotiator)

// WithRejectHandler routes 406 answers through fn instead of writing them
// directly, so the caller can log and count them.
func WithRejectHandler(fn func(c *gin.Context, err error)) Option {
	return func(n *Negotiator) {
		n.reject = fn
	}
}

// NewNegotiator builds a Negotiator. An empty vendor falls back to "hedtech.integration".
func NewNegotiator(vendor string, defaultVersion int, opts ...Option) *Negotiator {
	if vendor == "" {
		vendor = "hedtech.integration"
	}
	if defaultVersion <= 0 {
		defaultVersion = 1
	}
	n := &Negotiator{vendor: vendor, defaultVersion: defaultVersion}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// MediaType formats the vendor media type for a version.
func (n *Negotiator) MediaType(v int) string {
	return fmt.Sprintf("application/vnd.%s.v%d+json", n.vendor, v)
}

// Require returns middleware accepting only the listed versions. With no
// versions listed the negotiator default is the only one supported.
func (n *Negotiator) Require(supported ...int) gin.HandlerFunc {
	if len(supported) == 0 {
		supported = []int{n.defaultVersion}
	}
	allowed := make(map[int]struct{}, len(supported))
	latest := supported[0]
	for _, v := range supported {
		allowed[v] = struct{}{}
		if v > latest {
			latest = v
		}
	}

	return func(c *gin.Context) {
		requested, explicit := n.requested(c.GetHeader(HeaderMediaType), c.GetHeader("Accept"))
		if !explicit {
			requested = latest
		}
		if _, ok := allowed[requested]; !ok {
			err := appErrors.Clone(appErrors.ErrNotAcceptable,
				fmt.Sprintf("media type %s is not supported for this resource", n.MediaType(requested)))
			if n.reject != nil {
				n.reject(c, err)
			} else {
				response.Error(c, err)
			}
			c.Abort()
			return
		}

		c.Set(contextKey, requested)
		c.Writer.Header().Set(HeaderMediaType, n.MediaType(requested))
		c.Next()
	}
}

// requested scans the headers in priority order and returns the first vendor
// version found.
func (n *Negotiator) requested(headers ...string) (int, bool) {
	prefix := "application/vnd." + n.vendor + ".v"
	for _, header := range headers {
		for _, part := range strings.Split(header, ",") {
			mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
			if err != nil || !strings.HasPrefix(mediaType, prefix) {
				continue
			}
			raw := strings.TrimSuffix(strings.TrimPrefix(mediaType, prefix), "+json")
			if dot := strings.IndexByte(raw, '.'); dot >= 0 {
				raw = raw[:dot]
			}
			if v, err := strconv.Atoi(raw); err == nil && v > 0 {
				return v, true
			}
		}
	}
	return 0, false
}

// Value returns the negotiated version stored on the context.
func Value(c *gin.Context) int {
	if v, exists := c.Get(contextKey); exists {
		if typed, ok := v.(int); ok {
			return typed
		}
	}
	return 0
}
