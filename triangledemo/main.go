//go:build darwin || linux || windows
// +build darwin linux windows

// Triangledemo draws a single green triangle using the triangle package.
// Dragging horizontally orbits the camera around it.
//
// See http://godoc.org/golang.org/x/mobile/cmd/gomobile to install gomobile.
//
//	$ gomobile build github.com/bmatsuo/mobile-gl-triangle/triangledemo # will build an APK
//	$ gomobile install github.com/bmatsuo/mobile-gl-triangle/triangledemo
//
// You can also run the application on your desktop.
//
//	$ go install github.com/bmatsuo/mobile-gl-triangle/triangledemo && triangledemo
package main

import (
	"log"
	"time"

	"github.com/bmatsuo/mobile-gl-triangle/triangle"
	"github.com/bmatsuo/mobile-gl-triangle/xform"
	"github.com/chewxy/math32"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/exp/app/debug"
	"golang.org/x/mobile/exp/f32"
	"golang.org/x/mobile/exp/gl/glutil"
	"golang.org/x/mobile/gl"
)

// Optional shader assets.  When both exist they replace the built in
// shaders.
const (
	vertexShaderPath   = "triangle.vert"
	fragmentShaderPath = "triangle.frag"
)

// orbitRadius is the distance from the camera to the triangle.
const orbitRadius = 3

var (
	images   *glutil.Images
	fps      *debug.FPS
	renderer *triangle.Renderer

	projection *f32.Mat4
	view       *f32.Mat4
	mvp        *f32.Mat4
	viewCenter *f32.Vec3
	viewUp     *f32.Vec3

	angle     float32 // camera orbit angle in radians
	touchDown bool
	touchX    float32
	numDraw   uint64
	statsTime time.Time
)

func main() {
	app.Main(func(a app.App) {
		var glctx gl.Context
		var sz size.Event
		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, _ = e.DrawContext.(gl.Context)
					onStart(glctx)
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					onStop(glctx)
					glctx = nil
				}
			case size.Event:
				sz = e
			case paint.Event:
				if glctx == nil || e.External {
					// As we are actively painting as fast as
					// we can (usually 60 FPS), skip any paint
					// events sent by the system.
					continue
				}

				onPaint(glctx, sz)
				a.Publish()
				// Drive the animation by preparing to paint the next frame
				// after this one is shown.
				a.Send(paint.Event{})
			case touch.Event:
				onTouch(e, sz)
			}
		}
	})
}

func onTouch(e touch.Event, sz size.Event) {
	switch e.Type {
	case touch.TypeBegin:
		touchDown = true
	case touch.TypeMove:
		if touchDown && sz.WidthPx > 0 {
			// one full screen width is one full orbit
			angle += 2 * math32.Pi * (e.X - touchX) / float32(sz.WidthPx)
		}
	case touch.TypeEnd:
		touchDown = false
	}
	touchX = e.X
}

func newRenderer(glctx gl.Context) (*triangle.Renderer, error) {
	r, err := triangle.NewFromAssets(glctx, vertexShaderPath, fragmentShaderPath, triangle.DefaultColor)
	if err == nil {
		return r, nil
	}
	log.Printf("using built in shaders: %v", err)
	return triangle.New(glctx)
}

func onStart(glctx gl.Context) {
	var err error
	renderer, err = newRenderer(glctx)
	if err != nil {
		log.Printf("error creating triangle renderer: %v", err)
		return
	}

	projection = new(f32.Mat4)
	view = new(f32.Mat4)
	mvp = new(f32.Mat4)
	viewCenter = &f32.Vec3{0, 0, 0}
	viewUp = &f32.Vec3{0, 1, 0}
	statsTime = time.Now()

	images = glutil.NewImages(glctx)
	fps = debug.NewFPS(images)
}

func onStop(glctx gl.Context) {
	if renderer != nil {
		renderer.Release()
		renderer = nil
	}
	if fps != nil {
		fps.Release()
		fps = nil
	}
	if images != nil {
		images.Release()
		images = nil
	}
}

func onPaint(glctx gl.Context, sz size.Event) {
	glctx.ClearColor(0, 0, 0, 1)
	glctx.Clear(gl.COLOR_BUFFER_BIT)

	if renderer == nil {
		return
	}

	numDraw++
	if now := time.Now(); now.Sub(statsTime) > 5*time.Second {
		log.Printf("FRAMES=%d ANGLE=%.03f", numDraw, angle)
		numDraw = 0
		statsTime = now
	}

	aspect := float32(1)
	if sz.HeightPx > 0 {
		aspect = float32(sz.WidthPx) / float32(sz.HeightPx)
	}
	xform.Perspective(projection, f32.Radian(math32.Pi/4), aspect, 0.1, 100)

	eye := &f32.Vec3{orbitRadius * math32.Sin(angle), 0, orbitRadius * math32.Cos(angle)}
	xform.LookAt(view, eye, viewCenter, viewUp)

	xform.ViewProjection(mvp, projection, view)
	renderer.SetTransformMat4(mvp)
	renderer.Draw()

	fps.Draw(sz)
}
