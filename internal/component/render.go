// component/render.go
package component

import "image/color"

// Renderable is a filled circle.
type Renderable struct {
	Color     color.RGBA
	HasStroke bool
}
