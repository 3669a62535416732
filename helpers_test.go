package glsprite_test

import (
	"bytes"
	"log/slog"
	"reflect"
	"testing"

	"github.com/db47h/glsprite"
	"github.com/db47h/glsprite/gl"
	"github.com/db47h/glsprite/gl/gltest"
)

// Locations reported by a Recorder set up with spriteInputs.
const (
	locPosition = gl.Attrib(0)
	locTexCoord = gl.Attrib(1)
	locImage    = gl.Uniform(0)
	locFrame    = gl.Uniform(1)
	locWorld    = gl.Uniform(2)
	locObject   = gl.Uniform(3)
)

func spriteInputs(r *gltest.Recorder) *gltest.Recorder {
	r.Attribs = []gltest.Var{
		{Name: "a_position", Type: gl.GL_FLOAT_VEC2},
		{Name: "a_texCoord", Type: gl.GL_FLOAT_VEC2},
	}
	r.Uniforms = []gltest.Var{
		{Name: "u_image", Type: gl.GL_SAMPLER_2D},
		{Name: "u_frame", Type: gl.GL_FLOAT_VEC2},
		{Name: "u_world", Type: gl.GL_FLOAT_MAT3},
		{Name: "u_object", Type: gl.GL_FLOAT_MAT3},
	}
	return r
}

func checkCall(t *testing.T, c gltest.Call, name string, args ...interface{}) {
	t.Helper()
	if c.Name != name || !reflect.DeepEqual(c.Args, args) {
		t.Errorf("got %v, want %v", c, gltest.Call{Name: name, Args: args})
	}
}

func checkNoCalls(t *testing.T, r *gltest.Recorder) {
	t.Helper()
	if len(r.Calls) != 0 {
		t.Errorf("expected no GL calls, got %v", r.Names())
	}
}

// captureLog installs a logger writing to the returned buffer for the
// duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	glsprite.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { glsprite.SetLogger(nil) })
	return &buf
}
