package render

// Names the stock shaders and RenderTarget.Draw agree on.
const (
	UniformProjection = "projection"
	UniformModel      = "model"
	UniformTexture    = "tex"
	AttributePosition = "position"
	AttributeUV       = "uv"
)

// Stock sprite shaders. The version/precision header is prepended at compile
// time, so none appears here.
const (
	SpriteVertexSource = `in vec2 position;
in vec2 uv;
uniform mat4 projection;
uniform mat4 model;
out vec2 frag_uv;
void main() {
  frag_uv = uv;
  gl_Position = projection * model * vec4(position, 0.0, 1.0);
}
`

	SpriteFragmentSource = `in vec2 frag_uv;
uniform sampler2D tex;
out vec4 out_color;
void main() {
  out_color = texture(tex, frag_uv);
}
`
)
