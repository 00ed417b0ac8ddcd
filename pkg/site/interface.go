// Package site fetches the community site's content lists. The backend is a
// plain JSON API; every endpoint wraps its payload in a {"data": [...]}
// envelope.
package site

import (
	"context"

	"github.com/devcircle/hub/pkg/data"
)

type Source interface {
	Demos(ctx context.Context) ([]data.Demo, error)
	Resources(ctx context.Context) ([]data.Resource, error)
	Presentations(ctx context.Context) ([]data.Presentation, error)
}
