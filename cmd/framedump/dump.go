package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/affinity/internal/engine/scene"
	"github.com/Faultbox/affinity/internal/engine/transform"
	"github.com/Faultbox/affinity/pkg/math"
)

// objectRecord is one submitted object in yaml output. Matrices are row-major.
type objectRecord struct {
	Name      string        `yaml:"name"`
	Primitive string        `yaml:"primitive,omitempty"`
	Material  string        `yaml:"material,omitempty"`
	Model     [4][4]float32 `yaml:"model,flow"`
	MVP       [4][4]float32 `yaml:"mvp,flow"`
}

type frameRecord struct {
	Frame     int            `yaml:"frame"`
	CameraPos [3]float32     `yaml:"camera_pos,flow"`
	View      [4][4]float32  `yaml:"view,flow"`
	Objects   []objectRecord `yaml:"objects"`
}

// dumper is a scene.FrameSink that prints every submission.
type dumper struct {
	w      io.Writer
	yaml   bool
	frame  int
	frames []frameRecord
}

var _ scene.FrameSink = (*dumper)(nil)

func newDumper(w io.Writer, format string) (*dumper, error) {
	switch format {
	case "", "text":
		return &dumper{w: w}, nil
	case "yaml":
		return &dumper{w: w, yaml: true}, nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

func (d *dumper) BeginFrame(f scene.Frame) error {
	d.frame++
	if d.yaml {
		d.frames = append(d.frames, frameRecord{
			Frame:     d.frame,
			CameraPos: [3]float32{f.CameraPos.X, f.CameraPos.Y, f.CameraPos.Z},
			View:      rows(f.View),
		})
		return nil
	}
	_, err := fmt.Fprintf(d.w, "== frame %d  camera (%.4f, %.4f, %.4f)\n",
		d.frame, f.CameraPos.X, f.CameraPos.Y, f.CameraPos.Z)
	return err
}

func (d *dumper) Submit(obj *transform.Object, set scene.FrameMatrixSet) error {
	if d.yaml {
		fr := &d.frames[len(d.frames)-1]
		fr.Objects = append(fr.Objects, objectRecord{
			Name:      obj.Name,
			Primitive: obj.Primitive,
			Material:  obj.Material,
			Model:     rows(set.Model),
			MVP:       rows(set.MVP()),
		})
		return nil
	}
	_, err := fmt.Fprintf(d.w, "-- %s\nmodel:\n%smvp:\n%s", obj.Name, set.Model, set.MVP())
	return err
}

// Flush writes buffered yaml output.
func (d *dumper) Flush() error {
	if !d.yaml {
		return nil
	}
	enc := yaml.NewEncoder(d.w)
	enc.SetIndent(2)
	if err := enc.Encode(d.frames); err != nil {
		return err
	}
	d.frames = nil
	return enc.Close()
}

func rows(m math.Mat4) [4][4]float32 {
	var out [4][4]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = m.At(r, c)
		}
	}
	return out
}
