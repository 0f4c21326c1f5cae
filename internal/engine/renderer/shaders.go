package renderer

// Lit objects are shaded in view space with a single point light.
const litVertexShader = `
#version 410 core

layout (location = 0) in vec3 a_pos;
layout (location = 1) in vec3 a_normal;

uniform mat4 u_mvp_mat;
uniform mat4 u_model_view_mat;
uniform mat3 u_normal_mat;

out vec3 v_pos;
out vec3 v_normal;

void main() {
	v_pos = vec3(u_model_view_mat * vec4(a_pos, 1.0));
	v_normal = normalize(u_normal_mat * a_normal);
	gl_Position = u_mvp_mat * vec4(a_pos, 1.0);
}
`

const litFragmentShader = `
#version 410 core

in vec3 v_pos;
in vec3 v_normal;

uniform vec3 u_color;
uniform vec3 u_light_pos;
uniform vec3 u_light_color;
uniform vec3 u_view_pos;

out vec4 frag_color;

void main() {
	vec3 ambient = 0.15 * u_light_color;

	vec3 n = normalize(v_normal);
	vec3 to_light = normalize(u_light_pos - v_pos);
	vec3 diffuse = max(dot(n, to_light), 0.0) * u_light_color;

	vec3 to_view = normalize(u_view_pos - v_pos);
	vec3 halfway = normalize(to_light + to_view);
	vec3 specular = 0.5 * pow(max(dot(n, halfway), 0.0), 32.0) * u_light_color;

	frag_color = vec4((ambient + diffuse + specular) * u_color, 1.0);
}
`

// Emissive objects ignore lighting, e.g. the light marker itself.
const emissiveVertexShader = `
#version 410 core

layout (location = 0) in vec3 a_pos;

uniform mat4 u_mvp_mat;

void main() {
	gl_Position = u_mvp_mat * vec4(a_pos, 1.0);
}
`

const emissiveFragmentShader = `
#version 410 core

uniform vec3 u_color;

out vec4 frag_color;

void main() {
	frag_color = vec4(u_color, 1.0);
}
`
