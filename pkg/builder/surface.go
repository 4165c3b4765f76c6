package builder

import (
	"github.com/goliatone/go-fieldkit/pkg/config"
	"github.com/goliatone/go-fieldkit/pkg/field"
	"github.com/goliatone/go-fieldkit/pkg/middleware"
)

// Surface is the closed capability set a wrapped builder provides.
// Extensions hold a Surface value and add their own methods; because they
// embed the interface rather than re-implementing it, a shell cannot shadow
// a base operation, and shells chain to arbitrary depth.
type Surface interface {
	Field(ref any, args ...any) (string, error)
	Accessor(name field.Name) RenderFunc
	Configure(fn func(*config.Configuration))
	Config() *config.Configuration
	Clone() *Builder
	Scoped(opts *config.Options, fn func(*Builder) error) error
	WithMiddlewares(refs []middleware.Ref, fn func(*Builder) error) error
}

var _ Surface = (*Builder)(nil)

// Extension is a delegating shell around a Surface. Embed it in a concrete
// extension type to add behavior on top of a base builder:
//
//	type AdminSurface struct {
//		builder.Extension
//	}
//
//	func NewAdminSurface(base builder.Surface) *AdminSurface {
//		return &AdminSurface{Extension: builder.Extend(base)}
//	}
//
// An AdminSurface satisfies Surface through the embedded value, so it can
// itself be wrapped by further shells.
type Extension struct {
	Surface
}

// Extend wraps base in a delegating shell.
func Extend(base Surface) Extension {
	return Extension{Surface: base}
}

// Base returns the wrapped surface.
func (e Extension) Base() Surface { return e.Surface }
