// Package services holds the shop and blog logic: catalog filtering, search,
// home curation, promotions, the cart toggle and product management.
package services

import (
	"context"
	"time"

	"github.com/Kariqs/vkusnyashka/models"
	"github.com/juju/clock"
)

// Viewer is the caller's identity. The zero value is the anonymous visitor.
type Viewer struct {
	UserID   uint
	Username string
	Role     string
}

func (v Viewer) Authenticated() bool {
	return v.UserID != 0
}

func (v Viewer) IsAdmin() bool {
	return v.Authenticated() && v.Role == models.RoleAdmin
}

// Picker chooses an index in [0, n). *math/rand.Rand satisfies it.
type Picker interface {
	Intn(n int) int
}

// Request carries everything a service call may depend on besides storage. Now
// is captured once so every item in a response is classified against the same
// instant.
type Request struct {
	Context context.Context
	Viewer  Viewer
	Now     time.Time
	Picker  Picker
}

func NewRequest(ctx context.Context, viewer Viewer, clk clock.Clock, picker Picker) Request {
	return Request{
		Context: ctx,
		Viewer:  viewer,
		Now:     clk.Now(),
		Picker:  picker,
	}
}

// Today is the calendar date of the request.
func (r Request) Today() time.Time {
	return dateOf(r.Now)
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
