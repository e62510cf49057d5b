package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Kariqs/vkusnyashka/initializers"
	"github.com/gin-gonic/gin"
	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
)

func TestRequestTimeFollowsLocation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	moscow := time.FixedZone("MSK", 3*60*60)
	// 22:30 UTC on the 31st is already the 1st in Moscow.
	clk := testclock.NewClock(time.Date(2024, time.January, 31, 22, 30, 0, 0, time.UTC))

	c := New(nil, nil, JSONRenderer{}, nil, clk, moscow, initializers.Config{})
	assert.Equal(t, moscow, c.Location)

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, "/shop/promotions", nil)
	req := c.request(ctx)
	assert.Equal(t, moscow, req.Now.Location())
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), req.Today())
	assert.False(t, req.Viewer.Authenticated())
}
