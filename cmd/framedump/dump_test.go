package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/affinity/internal/engine/camera"
	"github.com/Faultbox/affinity/internal/engine/scene"
	"github.com/Faultbox/affinity/internal/engine/transform"
	"github.com/Faultbox/affinity/pkg/math"
)

func testScene(t *testing.T) *scene.Scene {
	t.Helper()
	s := scene.New("test", camera.NewFlyCamera())
	g := transform.NewGroup(transform.GroupTranslation)
	require.NoError(t, g.Add(transform.Translate(math.Vec3{X: 1, Y: 2, Z: 3})))
	obj, err := transform.NewObject("box", g)
	require.NoError(t, err)
	require.NoError(t, s.Add(obj))
	return s
}

func TestDumperText(t *testing.T) {
	var buf bytes.Buffer
	d, err := newDumper(&buf, "text")
	require.NoError(t, err)

	ev := scene.NewEvaluator(testScene(t))
	require.NoError(t, ev.Evaluate(0.1, d))
	require.NoError(t, ev.Evaluate(0.1, d))
	require.NoError(t, d.Flush())

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "== frame"))
	assert.Contains(t, out, "-- box")
	assert.Contains(t, out, "    1.0000     0.0000     0.0000     1.0000\n")
}

func TestDumperYAML(t *testing.T) {
	var buf bytes.Buffer
	d, err := newDumper(&buf, "yaml")
	require.NoError(t, err)

	ev := scene.NewEvaluator(testScene(t))
	require.NoError(t, ev.Evaluate(0.1, d))
	require.NoError(t, d.Flush())

	var frames []frameRecord
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &frames))
	require.Len(t, frames, 1)
	assert.Equal(t, 1, frames[0].Frame)
	assert.Equal(t, [3]float32{0, 0, 3}, frames[0].CameraPos)
	require.Len(t, frames[0].Objects, 1)

	box := frames[0].Objects[0]
	assert.Equal(t, "box", box.Name)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, box.Model[0])
	assert.Equal(t, [4]float32{0, 0, 1, 3}, box.Model[2])
}

func TestNewDumperUnknownFormat(t *testing.T) {
	_, err := newDumper(&bytes.Buffer{}, "json")
	assert.Error(t, err)
}
