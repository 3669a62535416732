package glsprite

import "github.com/db47h/glsprite/gl"

// DefaultVertexShader is a GLSL 1.20 vertex shader using the DefaultNames
// inputs.
//
const DefaultVertexShader = `#version 120
attribute vec2 a_position;
attribute vec2 a_texCoord;

uniform mat3 u_world;
uniform mat3 u_object;
uniform vec2 u_frame;

varying vec2 v_texCoord;

void main()
{
	vec3 p = u_world * u_object * vec3(a_position, 1.0);
	gl_Position = vec4(p.xy, 0.0, 1.0);
	v_texCoord = a_texCoord + u_frame;
}
`

// DefaultFragmentShader samples u_image at the interpolated texture
// coordinates.
//
const DefaultFragmentShader = `#version 120
varying vec2 v_texCoord;

uniform sampler2D u_image;

void main()
{
	gl_FragColor = texture2D(u_image, v_texCoord);
}
`

// NewDefaultSprite is like NewSpriteFromSource with DefaultVertexShader and
// DefaultFragmentShader.
//
func NewDefaultSprite(ctx gl.Context, img ImageFuture, position Vec2, opts ...SpriteOption) *Sprite {
	return NewSpriteFromSource(ctx, DefaultVertexShader, DefaultFragmentShader, img, position, opts...)
}
