package renderer

// Uniforms owned by the renderer rather than the sky configuration.
const (
	uniformViewProjection = "viewProjection"
	uniformTime           = "_Time"
)

var skyVertexShaderSource = `#version 410 core

layout(location = 0) in vec3 inPosition;

uniform mat4 viewProjection;

out vec3 viewDir;

void main() {
    viewDir = inPosition;
    vec4 pos = viewProjection * vec4(inPosition, 1.0);
    // Force depth to the far plane so the sky is behind everything.
    gl_Position = pos.xyww;
}
`

var skyFragmentShaderSource = `#version 410 core

in vec3 viewDir;

uniform float _Kr;
uniform vec4  _RayleighColor;
uniform vec4  _MieColor;
uniform float _Scattering;
uniform vec4  _LuminanceColor;
uniform float _Luminance;
uniform float _IsDay;

uniform mat4      _LightSourceDirectionMatrix;
uniform sampler2D _LightSourceTexture;
uniform float     _LightSourceTextureSize;
uniform float     _LightSourceTextureIntensity;
uniform vec4      _LightSourceTextureColor;

uniform samplerCube _StarFieldTexture;
uniform mat4        _StarFieldRotationMatrix;
uniform float       _StarFieldIntensity;
uniform vec4        _StarFieldColor;

uniform sampler2D _CloudTexture;
uniform float     _CloudDensity;
uniform float     _CloudAltitude;
uniform vec4      _CloudSpeed;
uniform vec4      _CloudColor1;
uniform vec4      _CloudColor2;
uniform float     _CloudEdge1;
uniform float     _CloudEdge2;

uniform float _Exposure;
uniform float _Time;

out vec4 FragColor;

const float PI = 3.14159265;

float rayleighPhase(float cosTheta) {
    return 0.75 * (1.0 + cosTheta * cosTheta);
}

float miePhase(float cosTheta, float g) {
    float g2 = g * g;
    return 1.5 * ((1.0 - g2) / (2.0 + g2)) * (1.0 + cosTheta * cosTheta) /
        pow(1.0 + g2 - 2.0 * g * cosTheta, 1.5);
}

void main() {
    vec3 dir = normalize(viewDir);

    // Light forward axis in world space; the matrix is a pure rotation.
    vec3 lightDir = normalize((_LightSourceDirectionMatrix * vec4(0.0, 0.0, -1.0, 0.0)).xyz);
    vec3 toLight = -lightDir;
    float cosTheta = dot(dir, toLight);

    // Optical depth grows toward the horizon; _Kr is the atmosphere thickness.
    float height = max(dir.y, 0.0) + 0.02;
    float depth = clamp(_Kr / (height * 100000.0), 0.0, 8.0);

    vec3 rayleigh = _RayleighColor.rgb * rayleighPhase(cosTheta) * depth * 0.1;
    vec3 mie = _MieColor.rgb * miePhase(cosTheta, 0.76) * _Scattering * 0.01;
    vec3 ambient = _LuminanceColor.rgb * _Luminance * mix(0.05, 0.3, _IsDay);
    vec3 color = ambient + (rayleigh + mie) * mix(0.2, 1.0, _IsDay);

    // Light source disc, sampled in the light's local frame.
    vec3 local = (transpose(_LightSourceDirectionMatrix) * vec4(dir, 0.0)).xyz;
    if (local.z < 0.0) {
        vec2 uv = local.xy / (_LightSourceTextureSize * 0.1) * 0.5 + 0.5;
        if (all(greaterThanEqual(uv, vec2(0.0))) && all(lessThanEqual(uv, vec2(1.0)))) {
            vec4 disc = texture(_LightSourceTexture, uv);
            color += disc.rgb * disc.a * _LightSourceTextureColor.rgb * _LightSourceTextureIntensity;
        }
    }

    // Stars fade in as the sky darkens.
    vec3 starDir = (_StarFieldRotationMatrix * vec4(dir, 0.0)).xyz;
    vec3 stars = texture(_StarFieldTexture, starDir).rgb * _StarFieldColor.rgb * _StarFieldIntensity;
    color += stars * (1.0 - _IsDay) * smoothstep(0.0, 0.2, dir.y);

    // Cloud plane projected onto the upper hemisphere.
    if (dir.y > 0.0) {
        vec2 cloudUV = dir.xz / (dir.y + _CloudAltitude) + _CloudSpeed.xy * _Time * 0.01;
        vec3 noise = texture(_CloudTexture, cloudUV).rgb;
        float shape = noise.r * 0.6 + noise.g * 0.3 + noise.b * 0.1;
        float coverage = clamp(1.0 - exp(-shape * (25.0 - _CloudDensity) * 0.2), 0.0, 1.0);
        float fade = 1.0 - smoothstep(_CloudEdge1, _CloudEdge2, 1.0 - dir.y);
        vec3 cloudColor = mix(_CloudColor2.rgb, _CloudColor1.rgb, noise.g);
        color = mix(color, cloudColor * mix(0.2, 1.0, _IsDay), coverage * fade);
    }

    // Negative exposure: 1 - exp(-e * c).
    color = vec3(1.0) - exp(_Exposure * color);
    FragColor = vec4(color, 1.0);
}
`

// InitSkyShader returns the procedural sky program, uncompiled.
func InitSkyShader() *Shader {
	return NewShader("sky", skyVertexShaderSource, skyFragmentShaderSource)
}
