package triangle

import (
	"fmt"
	"image/color"
	"io"

	"golang.org/x/mobile/asset"
	"golang.org/x/mobile/gl"
)

// VertexShader transforms each vertex position by uMVPMatrix.
const VertexShader = `#version 100

uniform mat4 uMVPMatrix;

attribute vec4 vPosition;

void main() {
	gl_Position = uMVPMatrix * vPosition;
}`

// FragmentShader fills every fragment with vColor.
const FragmentShader = `#version 100
precision mediump float;

uniform vec4 vColor;

void main() {
	gl_FragColor = vColor;
}`

// ReadShader reads a complete shader source from r.
func ReadShader(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", fmt.Errorf("empty shader source")
	}
	return string(b), nil
}

// ReadShaderPath reads the shader source in the app asset at path.
func ReadShaderPath(path string) (string, error) {
	f, err := asset.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	src, err := ReadShader(f)
	if err != nil {
		return "", fmt.Errorf("shader asset %s: %v", path, err)
	}
	return src, nil
}

// NewFromAssets is like NewFromSource but reads both shader sources from app
// assets.
func NewFromAssets(glctx gl.Context, vertexPath, fragmentPath string, c color.Color) (*Renderer, error) {
	vertexSrc, err := ReadShaderPath(vertexPath)
	if err != nil {
		return nil, err
	}
	fragmentSrc, err := ReadShaderPath(fragmentPath)
	if err != nil {
		return nil, err
	}
	return NewFromSource(glctx, vertexSrc, fragmentSrc, c)
}
