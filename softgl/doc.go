// Package softgl is a software reference device with a WebGL-shaped API.
//
// A [Canvas] owns a drawing buffer and hands out one [Context]. Every
// method of the context is a traced call: it does its work first and then
// reports the call, with its arguments and result, to the canvas's
// intercept.Observer. Wiring a recording.Session as the observer captures
// everything an application draws:
//
//	sess := recording.NewSession(2)
//	canvas := softgl.NewCanvas(300, 150, softgl.WithObserver(sess))
//	gl := canvas.GetContext("webgl", nil)
//
// The same types serve as the replay host registered under the name
// "softgl", so a trace captured here replays back onto a fresh canvas.
//
// # Shaders
//
// Shader sources are WGSL. CompileShader compiles them with naga and keeps
// the reflected interface: uniforms come from uniform-space globals and
// texture bindings, attributes from the @location inputs of the vertex
// entry point. Shaders are not executed. Draw calls rasterize triangles
// from the "position" attribute (or location 0) and shade them with the
// "color" attribute or uniform, falling back to opaque white.
//
// # Errors
//
// Invalid calls follow GL error-flag semantics: the first error is latched
// and returned by GetError, and the call has no other effect.
package softgl
