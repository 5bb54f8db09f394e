package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/colleague-student-api/pkg/response"
)

// FaultWriter answers a request rejected by middleware. Implementations log
// and count the fault once, the same way handler faults are reported.
type FaultWriter func(c *gin.Context, err error)

func reject(fail FaultWriter, c *gin.Context, err error) {
	if fail != nil {
		fail(c, err)
	} else {
		response.Error(c, err)
	}
	c.Abort()
}
