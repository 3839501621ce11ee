package claylake

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// gradientShaderSrc maps each destination pixel back into paint space with
// Inverse, evaluates a linear or radial gradient parameter and blends up to
// three stops. dstPos is a texture position, so the image's texture origin
// is subtracted and Origin (the clip's offset in the full image) added back
// before Inverse applies. Ebitengine uses premultiplied alpha; stop colors
// arrive premultiplied and the vertex color carries the global alpha.
const gradientShaderSrc = `//kage:unit pixels
package main

var Inverse [6]float
var Origin vec2
var Start vec2
var End vec2
var Radii vec2
var Radial float
var Offsets vec3
var Color0 vec4
var Color1 vec4
var Color2 vec4

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	q := dstPos.xy - imageDstOrigin() + Origin
	p := vec2(
		Inverse[0]*q.x+Inverse[2]*q.y+Inverse[4],
		Inverse[1]*q.x+Inverse[3]*q.y+Inverse[5],
	)
	s := 0.0
	if Radial > 0.5 {
		s = (distance(p, Start) - Radii.x) / max(Radii.y-Radii.x, 0.0001)
	} else {
		d := End - Start
		s = dot(p-Start, d) / max(dot(d, d), 0.0001)
	}
	s = clamp(s, 0, 1)

	c := Color0
	if s > Offsets.x {
		c = mix(Color0, Color1, clamp((s-Offsets.x)/max(Offsets.y-Offsets.x, 0.0001), 0, 1))
	}
	if s > Offsets.y {
		c = mix(Color1, Color2, clamp((s-Offsets.y)/max(Offsets.z-Offsets.y, 0.0001), 0, 1))
	}
	return c * color.a
}
`

// --- Lazy shader compilation (single-threaded, no sync.Once) ---

var gradientShader *ebiten.Shader

// ensureGradientShader compiles the gradient shader on first use. A compile
// failure is returned rather than panicking so the scene can degrade to
// drawing nothing.
func ensureGradientShader() (*ebiten.Shader, error) {
	if gradientShader == nil {
		s, err := ebiten.NewShader([]byte(gradientShaderSrc))
		if err != nil {
			return nil, fmt.Errorf("compile gradient shader: %w", err)
		}
		gradientShader = s
	}
	return gradientShader, nil
}

// gradientUniforms fills u with the uniform values for paint p drawn under
// the device transform m into an image whose bounds start at origin. u is
// reused across draws to avoid per-call maps.
func gradientUniforms(u map[string]any, p Paint, m [6]float64, origin image.Point) {
	inv := invertAffine(m)
	stops := p.normalizedStops()

	u["Inverse"] = []float32{
		float32(inv[0]), float32(inv[1]), float32(inv[2]),
		float32(inv[3]), float32(inv[4]), float32(inv[5]),
	}
	u["Origin"] = []float32{float32(origin.X), float32(origin.Y)}
	u["Start"] = []float32{float32(p.Start.X), float32(p.Start.Y)}
	u["End"] = []float32{float32(p.End.X), float32(p.End.Y)}
	u["Radii"] = []float32{float32(p.Radius0), float32(p.Radius1)}
	radial := float32(0)
	if p.Kind == PaintRadial {
		radial = 1
	}
	u["Radial"] = radial
	u["Offsets"] = []float32{float32(stops[0].Offset), float32(stops[1].Offset), float32(stops[2].Offset)}
	u["Color0"] = stops[0].Color.premultiplied()
	u["Color1"] = stops[1].Color.premultiplied()
	u["Color2"] = stops[2].Color.premultiplied()
}
